package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/anton-94/mealweek/internal/services"
)

// DragHandler exposes the drag-and-drop gesture as three intents. The
// session only carries the dragged meal id between begin and drop; the
// schedule move itself is the same stateless operation the move endpoint
// uses.
type DragHandler struct {
	session *services.DragSession
	planner *services.PlannerService
}

func NewDragHandler(session *services.DragSession, plannerService *services.PlannerService) *DragHandler {
	return &DragHandler{session: session, planner: plannerService}
}

type beginDragRequest struct {
	MealID  string `json:"mealId"`
	FromDay int    `json:"fromDay"`
}

func (handler *DragHandler) Begin(w http.ResponseWriter, r *http.Request) {
	var request beginDragRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if request.MealID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "mealId is required"})
		return
	}

	handler.session.Begin(request.MealID, request.FromDay)
	w.WriteHeader(http.StatusNoContent)
}

type dropRequest struct {
	TargetDay    int    `json:"targetDay"`
	BeforeMealID string `json:"beforeMealId"`
}

func (handler *DragHandler) Drop(w http.ResponseWriter, r *http.Request) {
	var request dropRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	mealID, _, err := handler.session.Drop()
	if err != nil {
		writeError(w, err, "dropping meal")
		return
	}

	ctx := r.Context()
	if err := handler.planner.MoveMeal(ctx, mealID, request.TargetDay, request.BeforeMealID); err != nil {
		// The meal may have been deleted mid-drag; the session is already
		// cleared either way.
		writeError(w, err, "moving dropped meal")
		return
	}

	week, err := handler.planner.Week(ctx)
	if err != nil {
		writeError(w, err, "loading week after drop")
		return
	}
	writeJSON(w, http.StatusOK, weekResponse(week))
}

// Cancel ends the gesture with no move, covering ESC and drops outside any
// target.
func (handler *DragHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	handler.session.Cancel()
	w.WriteHeader(http.StatusNoContent)
}
