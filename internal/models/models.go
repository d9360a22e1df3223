package models

import "time"

// DaysPerWeek is the number of fixed day slots in the planner week.
const DaysPerWeek = 7

// DayNames indexes display names by day slot, Monday first.
var DayNames = [DaysPerWeek]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// MealIngredient is a meal's private copy of one ingredient line. Editing the
// shopping inventory later never changes it, and vice versa.
type MealIngredient struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Meal struct {
	ID          string           `json:"id"`
	Day         int              `json:"day"`
	Name        string           `json:"name"`
	Ingredients []MealIngredient `json:"ingredients"`
	Order       int              `json:"order"`
}

// InventoryItem is one line of the shopping list, deduplicated by normalized
// name. Name keeps the first-seen casing and spacing.
type InventoryItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Bought    bool      `json:"bought"`
	CreatedAt time.Time `json:"createdAt"`
}
