package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/anton-94/mealweek/internal/models"
	"github.com/anton-94/mealweek/internal/planner"
	"github.com/anton-94/mealweek/internal/services"
	"github.com/anton-94/mealweek/internal/store"
	"github.com/anton-94/mealweek/internal/testutil"
)

func newTestPlanner(t *testing.T) (*services.PlannerService, store.CollectionStore) {
	t.Helper()
	db := testutil.NewTestDatabase(t)
	collections := store.NewCollectionStore(db)
	return services.NewPlannerService(collections), collections
}

func TestSaveMeal_CreateMergesIngredientsIntoInventory(t *testing.T) {
	service, _ := newTestPlanner(t)
	ctx := context.Background()

	saved, err := service.SaveMeal(ctx, services.SaveMealRequest{
		Day:  0,
		Name: "Oatmeal",
		Ingredients: []models.MealIngredient{
			{Name: "Oats", Quantity: 1},
			{Name: "Milk", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("saving meal: %v", err)
	}
	if saved.Day != 0 || saved.Order != 0 {
		t.Errorf("expected day=0 order=0, got day=%d order=%d", saved.Day, saved.Order)
	}

	week, err := service.Week(ctx)
	if err != nil {
		t.Fatalf("loading week: %v", err)
	}
	if len(week[0]) != 1 {
		t.Fatalf("expected 1 meal on Monday, got %d", len(week[0]))
	}

	items, err := service.Inventory(ctx)
	if err != nil {
		t.Fatalf("loading inventory: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 inventory items, got %d", len(items))
	}
	for _, item := range items {
		if item.Quantity != 1 {
			t.Errorf("item %s: expected quantity 1, got %d", item.Name, item.Quantity)
		}
		if item.Bought {
			t.Errorf("item %s: expected unbought", item.Name)
		}
	}
}

// Saving an edit re-applies every ingredient line without diffing against the
// meal's previous list, so the inventory counts it again. Longstanding
// behavior, kept deliberately.
func TestSaveMeal_ReEditCountsIngredientsAgain(t *testing.T) {
	service, _ := newTestPlanner(t)
	ctx := context.Background()

	ingredients := []models.MealIngredient{{Name: "Milk", Quantity: 1}}
	saved, err := service.SaveMeal(ctx, services.SaveMealRequest{Day: 1, Name: "Pancakes", Ingredients: ingredients})
	if err != nil {
		t.Fatalf("saving meal: %v", err)
	}

	if _, err := service.SaveMeal(ctx, services.SaveMealRequest{
		ID: saved.ID, Day: 1, Name: "Pancakes", Ingredients: ingredients,
	}); err != nil {
		t.Fatalf("re-saving meal: %v", err)
	}

	items, err := service.Inventory(ctx)
	if err != nil {
		t.Fatalf("loading inventory: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 inventory item, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected re-edit to double-count to 2, got %d", items[0].Quantity)
	}
}

func TestSaveMeal_UpdateUnknownIDFailsWithoutCreating(t *testing.T) {
	service, _ := newTestPlanner(t)
	ctx := context.Background()

	_, err := service.SaveMeal(ctx, services.SaveMealRequest{
		ID: "deleted-in-another-tab", Day: 0, Name: "Ghost",
	})
	if !errors.Is(err, planner.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	week, err := service.Week(ctx)
	if err != nil {
		t.Fatalf("loading week: %v", err)
	}
	for day, meals := range week {
		if len(meals) != 0 {
			t.Errorf("day %d: expected no replacement record, got %v", day, meals)
		}
	}
}

func TestSaveMeal_ValidationFailureLeavesStateUntouched(t *testing.T) {
	service, _ := newTestPlanner(t)
	ctx := context.Background()

	_, err := service.SaveMeal(ctx, services.SaveMealRequest{
		Day: 0, Name: "  ",
		Ingredients: []models.MealIngredient{{Name: "Oats", Quantity: 1}},
	})
	var validationErr *planner.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	items, err := service.Inventory(ctx)
	if err != nil {
		t.Fatalf("loading inventory: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no inventory mutation on validation failure, got %v", items)
	}
}

func TestSaveMeal_RegistersIngredientsWithCatalog(t *testing.T) {
	service, _ := newTestPlanner(t)
	ctx := context.Background()

	_, err := service.SaveMeal(ctx, services.SaveMealRequest{
		Day: 2, Name: "Curry",
		Ingredients: []models.MealIngredient{{Name: "Coconut Milk", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("saving meal: %v", err)
	}

	suggestions, err := service.Suggest(ctx, "coco")
	if err != nil {
		t.Fatalf("suggesting: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0] != "Coconut Milk" {
		t.Errorf("expected [Coconut Milk], got %v", suggestions)
	}
}

func TestClearAll_EmptiesMealsAndInventoryButKeepsCatalog(t *testing.T) {
	service, _ := newTestPlanner(t)
	ctx := context.Background()

	if _, err := service.SaveMeal(ctx, services.SaveMealRequest{
		Day: 0, Name: "Oatmeal",
		Ingredients: []models.MealIngredient{{Name: "Oats", Quantity: 1}},
	}); err != nil {
		t.Fatalf("saving meal: %v", err)
	}

	if err := service.ClearAll(ctx); err != nil {
		t.Fatalf("clearing: %v", err)
	}

	week, err := service.Week(ctx)
	if err != nil {
		t.Fatalf("loading week: %v", err)
	}
	for day, meals := range week {
		if len(meals) != 0 {
			t.Errorf("day %d: expected empty, got %v", day, meals)
		}
	}

	items, err := service.Inventory(ctx)
	if err != nil {
		t.Fatalf("loading inventory: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty inventory, got %v", items)
	}

	// the catalog is suggestion history, not shopping state
	suggestions, err := service.Suggest(ctx, "oat")
	if err != nil {
		t.Fatalf("suggesting: %v", err)
	}
	if len(suggestions) != 1 {
		t.Errorf("expected catalog to survive the clear, got %v", suggestions)
	}
}

func TestMoveMeal_PersistsReordering(t *testing.T) {
	service, _ := newTestPlanner(t)
	ctx := context.Background()

	first, err := service.SaveMeal(ctx, services.SaveMealRequest{Day: 3, Name: "Stew"})
	if err != nil {
		t.Fatalf("saving first meal: %v", err)
	}
	second, err := service.SaveMeal(ctx, services.SaveMealRequest{Day: 3, Name: "Pasta"})
	if err != nil {
		t.Fatalf("saving second meal: %v", err)
	}

	if err := service.MoveMeal(ctx, second.ID, 3, first.ID); err != nil {
		t.Fatalf("moving meal: %v", err)
	}

	week, err := service.Week(ctx)
	if err != nil {
		t.Fatalf("loading week: %v", err)
	}
	day3 := week[3]
	if day3[0].ID != second.ID || day3[1].ID != first.ID {
		t.Errorf("expected Pasta before Stew, got %v", day3)
	}
	if day3[0].Order != 0 || day3[1].Order != 1 {
		t.Errorf("expected contiguous orders after move, got %d and %d", day3[0].Order, day3[1].Order)
	}
}

func TestDirectInventoryAdd_RegistersCatalogAndMerges(t *testing.T) {
	service, _ := newTestPlanner(t)
	ctx := context.Background()

	if _, err := service.AddInventoryItem(ctx, "Butter", 1); err != nil {
		t.Fatalf("adding item: %v", err)
	}
	item, err := service.AddInventoryItem(ctx, " butter ", 2)
	if err != nil {
		t.Fatalf("adding item again: %v", err)
	}
	if item.Quantity != 3 {
		t.Errorf("expected merged quantity 3, got %d", item.Quantity)
	}

	suggestions, err := service.Suggest(ctx, "but")
	if err != nil {
		t.Fatalf("suggesting: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0] != "Butter" {
		t.Errorf("expected [Butter], got %v", suggestions)
	}
}

// Deleting an inventory item must not unregister its name: the catalog is a
// superset history of everything ever typed.
func TestCatalog_SurvivesInventoryDeletion(t *testing.T) {
	service, _ := newTestPlanner(t)
	ctx := context.Background()

	item, err := service.AddInventoryItem(ctx, "Paprika", 1)
	if err != nil {
		t.Fatalf("adding item: %v", err)
	}
	if err := service.RemoveInventoryItem(ctx, item.ID); err != nil {
		t.Fatalf("removing item: %v", err)
	}

	suggestions, err := service.Suggest(ctx, "papr")
	if err != nil {
		t.Fatalf("suggesting: %v", err)
	}
	if len(suggestions) != 1 {
		t.Errorf("expected Paprika still suggested, got %v", suggestions)
	}
}

func TestLoadMeals_UpgradesLegacyRecords(t *testing.T) {
	service, collections := newTestPlanner(t)
	ctx := context.Background()

	legacy := json.RawMessage(`[
		{"id":"old-1","dayIndex":5,"name":"Pierogi","ingredients":["Flour","Potatoes"],"order":0}
	]`)
	if err := collections.Save(ctx, store.CollectionMeals, legacy); err != nil {
		t.Fatalf("seeding legacy meals: %v", err)
	}

	week, err := service.Week(ctx)
	if err != nil {
		t.Fatalf("loading week: %v", err)
	}
	saturday := week[5]
	if len(saturday) != 1 {
		t.Fatalf("expected the legacy meal on Saturday, got %v", week)
	}
	if len(saturday[0].Ingredients) != 2 || saturday[0].Ingredients[0].Quantity != 1 {
		t.Errorf("expected string ingredients upgraded to quantity 1, got %v", saturday[0].Ingredients)
	}
}
