package handlers

import (
	"net/http"

	"github.com/anton-94/mealweek/internal/services"
)

type CatalogHandler struct {
	planner *services.PlannerService
}

func NewCatalogHandler(plannerService *services.PlannerService) *CatalogHandler {
	return &CatalogHandler{planner: plannerService}
}

// Suggest serves autocomplete for the ingredient inputs. Queries under three
// characters yield an empty list.
func (handler *CatalogHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	suggestions, err := handler.planner.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err, "loading suggestions")
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}
