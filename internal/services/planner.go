// Package services orchestrates the planner engine over the collection
// store: every user intent loads the collections it needs, applies the pure
// engine functions, and persists what changed.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/anton-94/mealweek/internal/models"
	"github.com/anton-94/mealweek/internal/planner"
	"github.com/anton-94/mealweek/internal/store"
)

var emptyCollection = json.RawMessage("[]")

// SaveMealRequest is the discriminated save intent: an empty ID creates a
// new meal, a set ID updates the existing one. There is no ambient
// "currently editing" mode anywhere.
type SaveMealRequest struct {
	ID          string                  `json:"id"`
	Day         int                     `json:"day"`
	Name        string                  `json:"name"`
	Ingredients []models.MealIngredient `json:"ingredients"`
}

type PlannerService struct {
	collections store.CollectionStore
}

func NewPlannerService(collections store.CollectionStore) *PlannerService {
	return &PlannerService{collections: collections}
}

// SaveMeal applies a create-or-update intent to the schedule and merges the
// meal's ingredients into the shopping inventory and the name catalog. The
// merge re-applies every ingredient line, without diffing against the meal's
// previous list, so re-editing a meal increments inventory quantities again.
// That matches how saves have always behaved; see DESIGN.md.
func (service *PlannerService) SaveMeal(ctx context.Context, request SaveMealRequest) (models.Meal, error) {
	meals, err := service.loadMeals(ctx)
	if err != nil {
		return models.Meal{}, err
	}

	var saved models.Meal
	if request.ID == "" {
		meals, saved, err = planner.AddMeal(meals, request.Day, request.Name, request.Ingredients)
	} else {
		meals, saved, err = planner.EditMeal(meals, request.ID, request.Day, request.Name, request.Ingredients)
	}
	if err != nil {
		return models.Meal{}, err
	}

	inventory, err := service.loadInventory(ctx)
	if err != nil {
		return models.Meal{}, err
	}
	catalog, err := service.loadCatalog(ctx)
	if err != nil {
		return models.Meal{}, err
	}

	now := time.Now()
	for _, ingredient := range saved.Ingredients {
		inventory, _, err = planner.AddOrIncrement(inventory, ingredient.Name, ingredient.Quantity, now)
		if err != nil {
			return models.Meal{}, err
		}
		catalog = planner.RegisterName(catalog, ingredient.Name)
	}

	if err := service.collections.Save(ctx, store.CollectionMeals, meals); err != nil {
		return models.Meal{}, err
	}
	if err := service.collections.Save(ctx, store.CollectionInventory, inventory); err != nil {
		return models.Meal{}, err
	}
	if err := service.collections.Save(ctx, store.CollectionCatalog, catalog); err != nil {
		return models.Meal{}, err
	}
	return saved, nil
}

func (service *PlannerService) DeleteMeal(ctx context.Context, id string) error {
	meals, err := service.loadMeals(ctx)
	if err != nil {
		return err
	}
	meals, err = planner.DeleteMeal(meals, id)
	if err != nil {
		return err
	}
	return service.collections.Save(ctx, store.CollectionMeals, meals)
}

func (service *PlannerService) MoveMeal(ctx context.Context, id string, targetDay int, beforeMealID string) error {
	meals, err := service.loadMeals(ctx)
	if err != nil {
		return err
	}
	meals, err = planner.MoveMeal(meals, id, targetDay, beforeMealID)
	if err != nil {
		return err
	}
	return service.collections.Save(ctx, store.CollectionMeals, meals)
}

// ClearAll wipes the week and the shopping inventory but keeps the catalog:
// the catalog is suggestion history, not shopping state.
func (service *PlannerService) ClearAll(ctx context.Context) error {
	if err := service.collections.Save(ctx, store.CollectionMeals, planner.ClearAll()); err != nil {
		return err
	}
	return service.collections.Save(ctx, store.CollectionInventory, []models.InventoryItem{})
}

// Week returns the schedule bucketed into the seven day slots, each sorted
// by order ascending.
func (service *PlannerService) Week(ctx context.Context) ([models.DaysPerWeek][]models.Meal, error) {
	meals, err := service.loadMeals(ctx)
	if err != nil {
		return [models.DaysPerWeek][]models.Meal{}, err
	}
	return planner.GroupByDay(meals), nil
}

// Inventory returns the shopping list in display order, unbought first.
func (service *PlannerService) Inventory(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := service.loadInventory(ctx)
	if err != nil {
		return nil, err
	}
	return planner.ListForDisplay(items), nil
}

// AddInventoryItem handles the direct add from the shopping screen. Like the
// meal-save path it also registers the name with the catalog.
func (service *PlannerService) AddInventoryItem(ctx context.Context, name string, quantity int) (models.InventoryItem, error) {
	items, err := service.loadInventory(ctx)
	if err != nil {
		return models.InventoryItem{}, err
	}
	items, item, err := planner.AddOrIncrement(items, name, quantity, time.Now())
	if err != nil {
		return models.InventoryItem{}, err
	}

	catalog, err := service.loadCatalog(ctx)
	if err != nil {
		return models.InventoryItem{}, err
	}
	catalog = planner.RegisterName(catalog, name)

	if err := service.collections.Save(ctx, store.CollectionInventory, items); err != nil {
		return models.InventoryItem{}, err
	}
	if err := service.collections.Save(ctx, store.CollectionCatalog, catalog); err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

func (service *PlannerService) SetItemBought(ctx context.Context, id string, bought bool) error {
	items, err := service.loadInventory(ctx)
	if err != nil {
		return err
	}
	items, err = planner.SetBought(items, id, bought)
	if err != nil {
		return err
	}
	return service.collections.Save(ctx, store.CollectionInventory, items)
}

func (service *PlannerService) AdjustItemQuantity(ctx context.Context, id string, delta int) error {
	items, err := service.loadInventory(ctx)
	if err != nil {
		return err
	}
	items, err = planner.AdjustQuantity(items, id, delta)
	if err != nil {
		return err
	}
	return service.collections.Save(ctx, store.CollectionInventory, items)
}

func (service *PlannerService) RemoveInventoryItem(ctx context.Context, id string) error {
	items, err := service.loadInventory(ctx)
	if err != nil {
		return err
	}
	items, err = planner.RemoveItem(items, id)
	if err != nil {
		return err
	}
	return service.collections.Save(ctx, store.CollectionInventory, items)
}

// Suggest returns autocomplete candidates for a partially typed name.
func (service *PlannerService) Suggest(ctx context.Context, query string) ([]string, error) {
	catalog, err := service.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return planner.Suggest(catalog, query, planner.SuggestLimit), nil
}

func (service *PlannerService) loadMeals(ctx context.Context) ([]models.Meal, error) {
	raw, err := service.collections.Load(ctx, store.CollectionMeals, emptyCollection)
	if err != nil {
		return nil, fmt.Errorf("loading meals: %w", err)
	}
	return planner.UpgradeMeals(raw), nil
}

func (service *PlannerService) loadInventory(ctx context.Context) ([]models.InventoryItem, error) {
	raw, err := service.collections.Load(ctx, store.CollectionInventory, emptyCollection)
	if err != nil {
		return nil, fmt.Errorf("loading inventory: %w", err)
	}
	var items []models.InventoryItem
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("inventory collection does not match schema, starting empty", "error", err)
		return []models.InventoryItem{}, nil
	}
	return items, nil
}

func (service *PlannerService) loadCatalog(ctx context.Context) ([]string, error) {
	raw, err := service.collections.Load(ctx, store.CollectionCatalog, emptyCollection)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	var catalog []string
	if err := json.Unmarshal(raw, &catalog); err != nil {
		slog.Warn("catalog collection does not match schema, starting empty", "error", err)
		return []string{}, nil
	}
	return catalog, nil
}
