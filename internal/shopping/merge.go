package shopping

import (
	"mealplanner/internal/categorize"
	"mealplanner/internal/models"
	"mealplanner/internal/normalize"
	"mealplanner/internal/units"
)

// Options controls how a merge treats conflicting fields and ordering.
type Options struct {
	// PreserveUserOverrides makes the existing item the merge base, so a
	// user's manual category reassignment is not clobbered by newly
	// generated data. When false the incoming item wins as base.
	PreserveUserOverrides bool

	// UserCategoryOverrides re-derives the merged item's category from this
	// map (normalized item name -> category key), taking priority over
	// whatever the base carried.
	UserCategoryOverrides map[string]string

	// PreserveCustomOrder skips the final re-sort; the user has manually
	// ordered the list.
	PreserveCustomOrder bool
}

// MergeItems merges a batch of new items into an existing slice, keyed by
// normalized item name. Existing input containing duplicate keys is a data
// anomaly the engine tolerates: duplicates are merged pairwise first.
//
// Repeated identical merges are idempotent modulo source accumulation:
// sources dedup by recipe identity, but amounts merge additively per item,
// so re-adding the same recipe batch still double-counts quantities. That is
// accepted behavior, inherent to source identity.
func MergeItems(existing, newItems []models.ShoppingItem, opts Options) []models.ShoppingItem {
	byKey := make(map[string]int)
	var merged []models.ShoppingItem

	for _, item := range existing {
		key := normalize.ItemName(item.Item)
		if idx, ok := byKey[key]; ok {
			merged[idx] = mergeTwo(merged[idx], item)
			continue
		}
		byKey[key] = len(merged)
		merged = append(merged, normalizeItem(item))
	}

	for _, item := range newItems {
		key := normalize.ItemName(item.Item)
		idx, ok := byKey[key]
		if !ok {
			byKey[key] = len(merged)
			merged = append(merged, normalizeItem(item))
			continue
		}

		base, other := merged[idx], item
		if !opts.PreserveUserOverrides {
			base, other = item, merged[idx]
		}
		merged[idx] = mergeTwo(base, other)
	}

	if opts.UserCategoryOverrides != nil {
		for i := range merged {
			if override, ok := opts.UserCategoryOverrides[normalize.ItemName(merged[i].Item)]; ok {
				merged[i].CategoryKey, merged[i].CategoryOrder = categorize.Categorize(merged[i].Item, override)
			}
		}
	}

	if !opts.PreserveCustomOrder {
		SortItems(merged)
	}
	return merged
}

// mergeTwo combines two records for the same item. The base item's fields
// win; the other contributes its sources and quantity. A successful amount
// merge supersedes any prior overflow; a failed one preserves the other
// quantity losslessly in AdditionalAmounts.
func mergeTwo(base, other models.ShoppingItem) models.ShoppingItem {
	result := normalizeItem(base)
	other = normalizeItem(other)

	for _, s := range other.Sources {
		result.Sources = appendSource(result.Sources, s)
	}

	switch {
	case other.Amount == nil:
		// nothing to reconcile; keep the base quantity as is
		result.AdditionalAmounts = append(result.AdditionalAmounts, other.AdditionalAmounts...)
	case result.Amount == nil:
		result.Amount = other.Amount
		result.Unit = other.Unit
		result.AdditionalAmounts = append(result.AdditionalAmounts, other.AdditionalAmounts...)
	default:
		if m, ok := units.MergeAmounts(result.Amount, result.Unit, other.Amount, other.Unit); ok {
			result.Amount = models.Float(m.Amount)
			result.Unit = m.Unit
			// successful reconciliation supersedes prior overflow
			result.AdditionalAmounts = append([]models.Amount(nil), other.AdditionalAmounts...)
		} else {
			result.AdditionalAmounts = append(result.AdditionalAmounts,
				models.Amount{Amount: *other.Amount, Unit: other.Unit})
			result.AdditionalAmounts = append(result.AdditionalAmounts, other.AdditionalAmounts...)
		}
	}

	result.Checked = result.Checked || other.Checked
	return result
}

// normalizeItem canonicalizes name and unit and fills in missing category
// info, leaving everything else untouched.
func normalizeItem(item models.ShoppingItem) models.ShoppingItem {
	item.Item = normalize.ItemName(item.Item)
	item.Unit = normalize.Unit(item.Unit)
	if item.CategoryKey == "" {
		item.CategoryKey, item.CategoryOrder = categorize.Categorize(item.Item, item.ShoppingCategory)
	}
	return item
}

// RemoveRecipeFromItems strips the named recipe from every item's sources.
// Items left without sources are dropped, unless they carry the synthetic
// Manual source, which always keeps an item alive.
func RemoveRecipeFromItems(items []models.ShoppingItem, recipeName string) []models.ShoppingItem {
	var kept []models.ShoppingItem
	for _, item := range items {
		manual := false
		var remaining []models.Source
		for _, s := range item.Sources {
			if s.RecipeName == models.SourceManual {
				manual = true
				remaining = append(remaining, s)
				continue
			}
			if s.RecipeName == recipeName {
				continue
			}
			remaining = append(remaining, s)
		}
		if len(remaining) == 0 && !manual {
			continue
		}
		item.Sources = remaining
		kept = append(kept, item)
	}
	return kept
}
