package planner

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anton-94/mealweek/internal/models"
)

// AddOrIncrement merges one ingredient into the inventory. If an item with
// the same normalized name exists its quantity grows by quantity; otherwise a
// fresh unbought item is prepended, keeping the given casing and spacing.
// Quantities below 1 count as 1. Returns the updated inventory and the
// affected item. The input slice is never mutated.
func AddOrIncrement(items []models.InventoryItem, name string, quantity int, now time.Time) ([]models.InventoryItem, models.InventoryItem, error) {
	key := Normalize(name)
	if key == "" {
		return items, models.InventoryItem{}, newValidationError("ingredient name is required")
	}
	if quantity < 1 {
		quantity = 1
	}

	for i, existing := range items {
		if Normalize(existing.Name) == key {
			next := cloneItems(items)
			next[i].Quantity += quantity
			return next, next[i], nil
		}
	}

	item := models.InventoryItem{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Quantity:  quantity,
		Bought:    false,
		CreatedAt: now,
	}
	next := make([]models.InventoryItem, 0, len(items)+1)
	next = append(next, item)
	next = append(next, items...)
	return next, item, nil
}

// SetBought flips the purchase flag on the item with the given id.
func SetBought(items []models.InventoryItem, id string, bought bool) ([]models.InventoryItem, error) {
	for i := range items {
		if items[i].ID == id {
			next := cloneItems(items)
			next[i].Bought = bought
			return next, nil
		}
	}
	return nil, ErrNotFound
}

// AdjustQuantity adds delta to the item's quantity, clamped to a minimum of
// 1. Decrementing a quantity of 1 is a no-op, not a deletion; removing an
// item is a separate explicit operation.
func AdjustQuantity(items []models.InventoryItem, id string, delta int) ([]models.InventoryItem, error) {
	for i := range items {
		if items[i].ID == id {
			next := cloneItems(items)
			next[i].Quantity += delta
			if next[i].Quantity < 1 {
				next[i].Quantity = 1
			}
			return next, nil
		}
	}
	return nil, ErrNotFound
}

// RemoveItem deletes the item with the given id.
func RemoveItem(items []models.InventoryItem, id string) ([]models.InventoryItem, error) {
	for i := range items {
		if items[i].ID == id {
			next := make([]models.InventoryItem, 0, len(items)-1)
			next = append(next, items[:i]...)
			next = append(next, items[i+1:]...)
			return next, nil
		}
	}
	return nil, ErrNotFound
}

// ListForDisplay orders the inventory for the shopping screen: unbought items
// first, bought items after, each group keeping its relative storage order.
// A stable partition, not a sort by any other key.
func ListForDisplay(items []models.InventoryItem) []models.InventoryItem {
	ordered := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if !item.Bought {
			ordered = append(ordered, item)
		}
	}
	for _, item := range items {
		if item.Bought {
			ordered = append(ordered, item)
		}
	}
	return ordered
}

func cloneItems(items []models.InventoryItem) []models.InventoryItem {
	next := make([]models.InventoryItem, len(items))
	copy(next, items)
	return next
}
