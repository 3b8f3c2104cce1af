package shopping

import (
	"fmt"

	"mealplanner/internal/models"
	"mealplanner/internal/normalize"
)

// NewList returns an empty shopping list at scale 1.
func NewList() *models.ShoppingList {
	return &models.ShoppingList{Scale: 1}
}

// MergeResult folds one generation pass into an existing list. Each bucket
// merges independently; source recipe names accumulate with dedup and the
// serving total grows by the batch's servings.
func MergeResult(list *models.ShoppingList, result models.ShoppingListResult, recipeNames []string, opts Options) {
	opts.PreserveCustomOrder = opts.PreserveCustomOrder || list.CustomOrder

	list.Items = MergeItems(list.Items, result.Items, opts)
	list.AlreadyHave = MergeItems(list.AlreadyHave, result.AlreadyHave, opts)
	list.Excluded = MergeItems(list.Excluded, result.Excluded, opts)

	for _, name := range recipeNames {
		if !containsString(list.SourceRecipes, name) {
			list.SourceRecipes = append(list.SourceRecipes, name)
		}
	}
	list.TotalServings += result.TotalServings
	if list.Scale == 0 {
		list.Scale = result.Scale
	}
}

// AddManualItem merges a hand-entered item into the to-buy bucket with the
// synthetic Manual source. An empty name is the one caller error this layer
// reports.
func AddManualItem(list *models.ShoppingList, name string, amount *float64, unit string, categoryOverride string) error {
	if normalize.ItemName(name) == "" {
		return fmt.Errorf("manual item needs a name")
	}

	item := models.ShoppingItem{
		Item:             name,
		Amount:           amount,
		Unit:             unit,
		ShoppingCategory: categoryOverride,
		Sources:          []models.Source{{RecipeName: models.SourceManual}},
	}
	list.Items = MergeItems(list.Items, []models.ShoppingItem{item}, Options{
		PreserveUserOverrides: true,
		PreserveCustomOrder:   list.CustomOrder,
	})
	return nil
}

// RemoveRecipe strips a recipe's contribution from every bucket and from the
// list's source recipe names.
func RemoveRecipe(list *models.ShoppingList, recipeName string) {
	list.Items = RemoveRecipeFromItems(list.Items, recipeName)
	list.AlreadyHave = RemoveRecipeFromItems(list.AlreadyHave, recipeName)
	list.Excluded = RemoveRecipeFromItems(list.Excluded, recipeName)

	var kept []string
	for _, name := range list.SourceRecipes {
		if name != recipeName {
			kept = append(kept, name)
		}
	}
	list.SourceRecipes = kept
}

// SetChecked toggles an item's checked state by normalized name.
func SetChecked(list *models.ShoppingList, name string, checked bool) bool {
	key := normalize.ItemName(name)
	for i := range list.Items {
		if list.Items[i].Item == key {
			list.Items[i].Checked = checked
			return true
		}
	}
	return false
}

// Clear resets the list to empty, keeping the scale.
func Clear(list *models.ShoppingList) {
	scale := list.Scale
	*list = models.ShoppingList{Scale: scale}
}

// Resort re-sorts every bucket unless the user has taken over ordering.
func Resort(list *models.ShoppingList) {
	if list.CustomOrder {
		return
	}
	SortItems(list.Items)
	SortItems(list.AlreadyHave)
	SortItems(list.Excluded)
}

func containsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
