package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/anton-94/mealweek/internal/models"
)

// AddMeal appends a new meal to the end of a day slot. Its order is one past
// the highest order currently on that day, so it stays last even when earlier
// deletions left gaps. Returns the updated schedule and the created meal.
func AddMeal(meals []models.Meal, day int, name string, ingredients []models.MealIngredient) ([]models.Meal, models.Meal, error) {
	if err := validateDay(day); err != nil {
		return nil, models.Meal{}, err
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, models.Meal{}, newValidationError("meal name is required")
	}

	meal := models.Meal{
		ID:          uuid.New().String(),
		Day:         day,
		Name:        trimmed,
		Ingredients: dedupIngredients(ingredients),
		Order:       nextOrder(meals, day),
	}

	next := cloneMeals(meals)
	next = append(next, meal)
	return next, meal, nil
}

// EditMeal updates a meal's name, ingredients and day slot. When the day is
// unchanged the meal keeps its order. When the day changes the meal is
// appended to the end of the new day's sequence; the old day is not
// renumbered here, which display tolerates (see DeleteMeal).
func EditMeal(meals []models.Meal, id string, day int, name string, ingredients []models.MealIngredient) ([]models.Meal, models.Meal, error) {
	if err := validateDay(day); err != nil {
		return nil, models.Meal{}, err
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, models.Meal{}, newValidationError("meal name is required")
	}

	idx := indexByID(meals, id)
	if idx < 0 {
		return nil, models.Meal{}, ErrNotFound
	}

	next := cloneMeals(meals)
	meal := &next[idx]
	meal.Name = trimmed
	meal.Ingredients = dedupIngredients(ingredients)

	if meal.Day != day {
		count := 0
		for _, other := range next {
			if other.ID != id && other.Day == day {
				count++
			}
		}
		meal.Day = day
		meal.Order = count
	}

	return next, *meal, nil
}

// DeleteMeal removes a meal from the schedule. Remaining meals on its day are
// deliberately not renumbered: display sorts by order ascending, so gaps are
// harmless, and the next move touching the day restores contiguity.
func DeleteMeal(meals []models.Meal, id string) ([]models.Meal, error) {
	idx := indexByID(meals, id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	next := make([]models.Meal, 0, len(meals)-1)
	next = append(next, meals[:idx]...)
	next = append(next, meals[idx+1:]...)
	return next, nil
}

// MoveMeal is the drag-and-drop primitive. The meal is spliced into the
// target day's sequence immediately before beforeMealID, or at the end when
// beforeMealID is empty or not on that day (a drop on the day card rather
// than on a row). The destination day is renumbered to 0..n-1; on a cross-day
// move the source day is renumbered too. Days untouched by the move keep
// their order values. Applying the same move twice yields the same ordering
// as applying it once.
func MoveMeal(meals []models.Meal, id string, targetDay int, beforeMealID string) ([]models.Meal, error) {
	if err := validateDay(targetDay); err != nil {
		return nil, err
	}

	idx := indexByID(meals, id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	next := cloneMeals(meals)
	moved := &next[idx]
	sourceDay := moved.Day

	dest := dayPointers(next, targetDay, id)

	insertAt := len(dest)
	if beforeMealID != "" {
		for i, other := range dest {
			if other.ID == beforeMealID {
				insertAt = i
				break
			}
		}
	}

	moved.Day = targetDay
	dest = append(dest, nil)
	copy(dest[insertAt+1:], dest[insertAt:])
	dest[insertAt] = moved
	for i, meal := range dest {
		meal.Order = i
	}

	if sourceDay != targetDay {
		for i, meal := range dayPointers(next, sourceDay, "") {
			meal.Order = i
		}
	}

	return next, nil
}

// ClearAll empties the whole week.
func ClearAll() []models.Meal {
	return []models.Meal{}
}

// MealsOnDay returns the meals scheduled on one day slot, sorted by order
// ascending. The result is safe for the caller to keep.
func MealsOnDay(meals []models.Meal, day int) []models.Meal {
	var onDay []models.Meal
	for _, meal := range meals {
		if meal.Day == day {
			onDay = append(onDay, meal)
		}
	}
	sort.SliceStable(onDay, func(i, j int) bool {
		return onDay[i].Order < onDay[j].Order
	})
	return onDay
}

// GroupByDay buckets the schedule into the seven day slots, each sorted by
// order ascending.
func GroupByDay(meals []models.Meal) [models.DaysPerWeek][]models.Meal {
	var week [models.DaysPerWeek][]models.Meal
	for day := range week {
		week[day] = MealsOnDay(meals, day)
	}
	return week
}

// dayPointers collects pointers into next for meals on day, excluding
// excludeID, sorted by current order.
func dayPointers(next []models.Meal, day int, excludeID string) []*models.Meal {
	var onDay []*models.Meal
	for i := range next {
		if next[i].Day == day && next[i].ID != excludeID {
			onDay = append(onDay, &next[i])
		}
	}
	sort.SliceStable(onDay, func(i, j int) bool {
		return onDay[i].Order < onDay[j].Order
	})
	return onDay
}

// dedupIngredients drops empty names and collapses duplicates within a single
// meal by normalized name. The first occurrence keeps its casing and
// position; quantities of later duplicates are folded into it.
func dedupIngredients(ingredients []models.MealIngredient) []models.MealIngredient {
	deduped := make([]models.MealIngredient, 0, len(ingredients))
	seen := make(map[string]int)
	for _, ingredient := range ingredients {
		key := Normalize(ingredient.Name)
		if key == "" {
			continue
		}
		quantity := ingredient.Quantity
		if quantity < 1 {
			quantity = 1
		}
		if at, ok := seen[key]; ok {
			deduped[at].Quantity += quantity
			continue
		}
		seen[key] = len(deduped)
		deduped = append(deduped, models.MealIngredient{
			Name:     strings.TrimSpace(ingredient.Name),
			Quantity: quantity,
		})
	}
	return deduped
}

func nextOrder(meals []models.Meal, day int) int {
	order := 0
	for _, meal := range meals {
		if meal.Day == day && meal.Order >= order {
			order = meal.Order + 1
		}
	}
	return order
}

func indexByID(meals []models.Meal, id string) int {
	for i := range meals {
		if meals[i].ID == id {
			return i
		}
	}
	return -1
}

func validateDay(day int) error {
	if day < 0 || day >= models.DaysPerWeek {
		return newValidationError(fmt.Sprintf("day must be between 0 and %d", models.DaysPerWeek-1))
	}
	return nil
}

func cloneMeals(meals []models.Meal) []models.Meal {
	next := make([]models.Meal, len(meals))
	copy(next, meals)
	return next
}
