// Package shopping aggregates recipe ingredients into shopping lists and
// merges new batches into existing lists without duplicating rows.
package shopping

import (
	"math"
	"sort"

	"mealplanner/internal/categorize"
	"mealplanner/internal/models"
	"mealplanner/internal/normalize"
)

// aggregate accumulates contributions to one (item, raw unit) pair during a
// generation pass.
type aggregate struct {
	item             string
	unit             string
	amount           float64
	hasAmount        bool
	sources          []models.Source
	shoppingCategory string
}

// Generate aggregates the ingredients of a recipe set into three buckets:
// to-buy, already in the pantry, and excluded by user keyword. Aggregation
// at this stage keys on the raw unit spelling; cross-unit merging is the
// merge engine's job downstream.
func Generate(recipes []models.Recipe, pantry []models.PantryItem, excludedKeywords []string, scale float64) models.ShoppingListResult {
	if scale <= 0 {
		scale = 1
	}

	pantrySet := make(map[string]bool, len(pantry))
	for _, p := range pantry {
		pantrySet[normalize.ItemName(p.Item)] = true
	}

	aggregates := make(map[string]*aggregate)
	var order []string

	totalServings := 0
	for _, recipe := range recipes {
		totalServings += recipe.Servings
		for _, ing := range recipe.Ingredients {
			name := normalize.ItemName(ing.Item)
			if name == "" {
				continue
			}
			key := normalize.ItemKey(ing.Item, ing.Unit)

			agg, ok := aggregates[key]
			if !ok {
				agg = &aggregate{item: name, unit: ing.Unit}
				aggregates[key] = agg
				order = append(order, key)
			}
			if ing.Amount != nil {
				agg.amount += *ing.Amount * scale
				agg.hasAmount = true
			}
			agg.sources = appendSource(agg.sources, models.Source{RecipeID: recipe.ID, RecipeName: recipe.Name})
			if agg.shoppingCategory == "" {
				agg.shoppingCategory = ing.ShoppingCategory
			}
		}
	}

	result := models.ShoppingListResult{
		Scale:         scale,
		TotalServings: int(math.Round(float64(totalServings) * scale)),
	}

	excluded := categorize.NewKeywordMatcher(excludedKeywords)
	for _, key := range order {
		agg := aggregates[key]
		item := agg.toItem()
		switch {
		case pantrySet[item.Item]:
			result.AlreadyHave = append(result.AlreadyHave, item)
		case excluded.Matches(item.Item):
			result.Excluded = append(result.Excluded, item)
		default:
			result.Items = append(result.Items, item)
		}
	}

	SortItems(result.Items)
	SortItems(result.AlreadyHave)
	SortItems(result.Excluded)
	return result
}

func (agg *aggregate) toItem() models.ShoppingItem {
	key, order := categorize.Categorize(agg.item, agg.shoppingCategory)

	item := models.ShoppingItem{
		Item:             agg.item,
		Unit:             normalize.Unit(agg.unit),
		CategoryKey:      key,
		CategoryOrder:    order,
		Sources:          agg.sources,
		ShoppingCategory: agg.shoppingCategory,
	}
	// a non-positive accumulated amount means "no quantity", not "zero"
	if agg.hasAmount && agg.amount > 0 {
		item.Amount = models.Float(agg.amount)
	}
	return item
}

func appendSource(sources []models.Source, s models.Source) []models.Source {
	for _, existing := range sources {
		if existing.Key() == s.Key() {
			return sources
		}
	}
	return append(sources, s)
}

// SortItems orders a bucket by category order, then item name.
func SortItems(items []models.ShoppingItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CategoryOrder != items[j].CategoryOrder {
			return items[i].CategoryOrder < items[j].CategoryOrder
		}
		return items[i].Item < items[j].Item
	})
}
