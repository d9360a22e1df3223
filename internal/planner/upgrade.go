package planner

import (
	"encoding/json"

	"github.com/anton-94/mealweek/internal/models"
)

// storedMeal accepts every shape the meals collection has ever been persisted
// in. Older records carried the day slot as "dayIndex" and ingredients as a
// plain list of names.
type storedMeal struct {
	ID          string          `json:"id"`
	Day         *int            `json:"day"`
	DayIndex    *int            `json:"dayIndex"`
	Name        string          `json:"name"`
	Ingredients json.RawMessage `json:"ingredients"`
	Order       int             `json:"order"`
}

// UpgradeMeals decodes a persisted meals collection, rewriting legacy records
// to the current schema: dayIndex becomes day, and string-only ingredient
// lists become {name, quantity: 1} entries. Current-schema records pass
// through unchanged, so applying the upgrade twice is the same as applying it
// once. An unparsable payload yields an empty schedule rather than an error;
// the planner always prefers showing something over reporting corruption.
func UpgradeMeals(raw json.RawMessage) []models.Meal {
	if len(raw) == 0 {
		return []models.Meal{}
	}

	var stored []storedMeal
	if err := json.Unmarshal(raw, &stored); err != nil {
		return []models.Meal{}
	}

	meals := make([]models.Meal, 0, len(stored))
	for _, record := range stored {
		day := 0
		switch {
		case record.Day != nil:
			day = *record.Day
		case record.DayIndex != nil:
			day = *record.DayIndex
		}

		meals = append(meals, models.Meal{
			ID:          record.ID,
			Day:         day,
			Name:        record.Name,
			Ingredients: upgradeIngredients(record.Ingredients),
			Order:       record.Order,
		})
	}
	return meals
}

func upgradeIngredients(raw json.RawMessage) []models.MealIngredient {
	if len(raw) == 0 {
		return nil
	}

	var current []models.MealIngredient
	if err := json.Unmarshal(raw, &current); err == nil {
		return current
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil
	}
	upgraded := make([]models.MealIngredient, 0, len(names))
	for _, name := range names {
		upgraded = append(upgraded, models.MealIngredient{Name: name, Quantity: 1})
	}
	return upgraded
}
