package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anton-94/mealweek/internal/services"
)

type InventoryHandler struct {
	planner *services.PlannerService
}

func NewInventoryHandler(plannerService *services.PlannerService) *InventoryHandler {
	return &InventoryHandler{planner: plannerService}
}

func (handler *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := handler.planner.Inventory(r.Context())
	if err != nil {
		writeError(w, err, "loading inventory")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type addItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func (handler *InventoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var request addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	item, err := handler.planner.AddInventoryItem(r.Context(), request.Name, request.Quantity)
	if err != nil {
		writeError(w, err, "adding inventory item")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

type setBoughtRequest struct {
	Bought bool `json:"bought"`
}

func (handler *InventoryHandler) SetBought(w http.ResponseWriter, r *http.Request) {
	var request setBoughtRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := handler.planner.SetItemBought(r.Context(), chi.URLParam(r, "id"), request.Bought); err != nil {
		writeError(w, err, "updating bought flag")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type adjustQuantityRequest struct {
	Delta int `json:"delta"`
}

func (handler *InventoryHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	var request adjustQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := handler.planner.AdjustItemQuantity(r.Context(), chi.URLParam(r, "id"), request.Delta); err != nil {
		writeError(w, err, "adjusting quantity")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *InventoryHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := handler.planner.RemoveInventoryItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "removing inventory item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
