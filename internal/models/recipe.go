package models

import "time"

// Ingredient is one structured line of a recipe. Amount is nil when no
// quantity could be determined from the source text; Unit is the raw token
// prior to normalization.
type Ingredient struct {
	Item             string   `json:"item"`
	Amount           *float64 `json:"amount"`
	Unit             string   `json:"unit"`
	Modifier         string   `json:"modifier,omitempty"`
	ShoppingCategory string   `json:"shopping_category,omitempty"`
}

type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Servings     int          `json:"servings"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions,omitempty"`
	CreatedAt    time.Time    `json:"created_at,omitempty"`
}

// PantryItem is a normalized lowercase item name; membership only, no quantity.
type PantryItem struct {
	Item string `json:"item"`
}

// Float returns a pointer to v, for optional amount fields.
func Float(v float64) *float64 {
	return &v
}
