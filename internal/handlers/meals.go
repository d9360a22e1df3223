package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anton-94/mealweek/internal/models"
	"github.com/anton-94/mealweek/internal/planner"
	"github.com/anton-94/mealweek/internal/services"
)

type MealHandler struct {
	planner *services.PlannerService
}

func NewMealHandler(plannerService *services.PlannerService) *MealHandler {
	return &MealHandler{planner: plannerService}
}

type weekDay struct {
	Day   int           `json:"day"`
	Name  string        `json:"name"`
	Meals []models.Meal `json:"meals"`
}

func (handler *MealHandler) Week(w http.ResponseWriter, r *http.Request) {
	week, err := handler.planner.Week(r.Context())
	if err != nil {
		writeError(w, err, "loading week")
		return
	}
	writeJSON(w, http.StatusOK, weekResponse(week))
}

func (handler *MealHandler) Save(w http.ResponseWriter, r *http.Request) {
	var request services.SaveMealRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	creating := request.ID == ""
	saved, err := handler.planner.SaveMeal(r.Context(), request)
	if err != nil {
		writeError(w, err, "saving meal")
		return
	}

	status := http.StatusOK
	if creating {
		status = http.StatusCreated
	}
	writeJSON(w, status, saved)
}

type moveRequest struct {
	TargetDay    int    `json:"targetDay"`
	BeforeMealID string `json:"beforeMealId"`
}

func (handler *MealHandler) Move(w http.ResponseWriter, r *http.Request) {
	var request moveRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	ctx := r.Context()
	if err := handler.planner.MoveMeal(ctx, chi.URLParam(r, "id"), request.TargetDay, request.BeforeMealID); err != nil {
		writeError(w, err, "moving meal")
		return
	}

	week, err := handler.planner.Week(ctx)
	if err != nil {
		writeError(w, err, "loading week after move")
		return
	}
	writeJSON(w, http.StatusOK, weekResponse(week))
}

func (handler *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.planner.DeleteMeal(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "deleting meal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *MealHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := handler.planner.ClearAll(r.Context()); err != nil {
		writeError(w, err, "clearing week")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func weekResponse(week [models.DaysPerWeek][]models.Meal) []weekDay {
	days := make([]weekDay, 0, models.DaysPerWeek)
	for day, meals := range week {
		if meals == nil {
			meals = []models.Meal{}
		}
		days = append(days, weekDay{Day: day, Name: models.DayNames[day], Meals: meals})
	}
	return days
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps engine errors onto status codes: rejected input is a 400,
// a stale id is a 404, an out-of-state drag is a 409, anything else a logged
// 500.
func writeError(w http.ResponseWriter, err error, logMessage string) {
	var validationErr *planner.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": validationErr.Message})
	case errors.Is(err, planner.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, services.ErrNoActiveDrag):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "no active drag"})
	default:
		slog.Error(logMessage, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
