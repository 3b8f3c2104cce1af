package models

import "time"

// MealHistory records when a recipe was last made, used to keep recently
// cooked meals out of new plans.
type MealHistory struct {
	RecipeID string    `json:"recipe_id"`
	MadeAt   time.Time `json:"made_at"`
}

type PlannedRecipe struct {
	RecipeID   string `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	Category   string `json:"category"`
	Day        string `json:"day,omitempty"`
}

// WeeklyPlan is a best-effort selection. Errors carries advisory shortfall
// messages; the plan itself is always valid.
type WeeklyPlan struct {
	Recipes []PlannedRecipe `json:"recipes"`
	Errors  []string        `json:"errors,omitempty"`
}
