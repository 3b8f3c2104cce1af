package shopping

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplanner/internal/models"
)

func shoppingItem(name string, amount *float64, unit string, sources ...models.Source) models.ShoppingItem {
	return models.ShoppingItem{Item: name, Amount: amount, Unit: unit, Sources: sources}
}

func TestMergeItems_InsertNew(t *testing.T) {
	merged := MergeItems(nil, []models.ShoppingItem{
		shoppingItem("Flour", models.Float(2), "cups", models.Source{RecipeName: "Bread"}),
	}, Options{})

	require.Len(t, merged, 1)
	assert.Equal(t, "flour", merged[0].Item)
	assert.Equal(t, "cup", merged[0].Unit)
	// category info is computed when missing
	assert.Equal(t, "pantry", merged[0].CategoryKey)
}

func TestMergeItems_CompatibleUnits(t *testing.T) {
	existing := []models.ShoppingItem{
		shoppingItem("flour", models.Float(2), "cup", models.Source{RecipeName: "A"}),
	}
	incoming := []models.ShoppingItem{
		shoppingItem("flour", models.Float(1), "cup", models.Source{RecipeName: "B"}),
	}

	merged := MergeItems(existing, incoming, Options{})

	require.Len(t, merged, 1)
	assert.Equal(t, 3.0, *merged[0].Amount)
	assert.Len(t, merged[0].Sources, 2)
	assert.Empty(t, merged[0].AdditionalAmounts)
}

// merging (2,"cup") with (1,"lb") must keep both quantities somewhere
func TestMergeItems_IncompatibleUnitsLossless(t *testing.T) {
	existing := []models.ShoppingItem{
		shoppingItem("flour", models.Float(2), "cup", models.Source{RecipeName: "A"}),
	}
	incoming := []models.ShoppingItem{
		shoppingItem("flour", models.Float(1), "lb", models.Source{RecipeName: "B"}),
	}

	merged := MergeItems(existing, incoming, Options{PreserveUserOverrides: true})

	require.Len(t, merged, 1)
	assert.Equal(t, 2.0, *merged[0].Amount)
	assert.Equal(t, "cup", merged[0].Unit)
	require.Len(t, merged[0].AdditionalAmounts, 1)
	assert.Equal(t, models.Amount{Amount: 1, Unit: "lb"}, merged[0].AdditionalAmounts[0])
}

func TestMergeItems_IncompatibleOverflowGrows(t *testing.T) {
	existing := []models.ShoppingItem{
		{
			Item: "flour", Amount: models.Float(2), Unit: "cup",
			AdditionalAmounts: []models.Amount{{Amount: 1, Unit: "lb"}},
			Sources:           []models.Source{{RecipeName: "A"}},
		},
	}
	incoming := []models.ShoppingItem{
		shoppingItem("flour", models.Float(1), "knob", models.Source{RecipeName: "B"}),
	}

	merged := MergeItems(existing, incoming, Options{PreserveUserOverrides: true})

	require.Len(t, merged, 1)
	assert.Len(t, merged[0].AdditionalAmounts, 2)
}

func TestMergeItems_SuccessfulMergeClearsOverflow(t *testing.T) {
	existing := []models.ShoppingItem{
		{
			Item: "flour", Amount: models.Float(2), Unit: "cup",
			AdditionalAmounts: []models.Amount{{Amount: 1, Unit: "lb"}},
			Sources:           []models.Source{{RecipeName: "A"}},
		},
	}
	incoming := []models.ShoppingItem{
		shoppingItem("flour", models.Float(1), "cup", models.Source{RecipeName: "B"}),
	}

	merged := MergeItems(existing, incoming, Options{PreserveUserOverrides: true})

	require.Len(t, merged, 1)
	assert.Equal(t, 3.0, *merged[0].Amount)
	assert.Empty(t, merged[0].AdditionalAmounts)
}

// a stream of small compatible contributions must accumulate; 16 tbsp is a
// full cup, so 16 separate 1-tbsp merges into 2 cups have to reach 3 cups
func TestMergeItems_SmallContributionsAccumulate(t *testing.T) {
	items := []models.ShoppingItem{
		shoppingItem("broth", models.Float(2), "cup", models.Source{RecipeName: "Base"}),
	}

	for i := 0; i < 16; i++ {
		items = MergeItems(items, []models.ShoppingItem{
			shoppingItem("broth", models.Float(1), "tbsp",
				models.Source{RecipeName: fmt.Sprintf("Recipe %d", i)}),
		}, Options{PreserveUserOverrides: true})
	}

	require.Len(t, items, 1)
	assert.Equal(t, "cup", items[0].Unit)
	require.NotNil(t, items[0].Amount)
	assert.InDelta(t, 3.0, *items[0].Amount, 0.001)
}

func TestMergeItems_SourceDedup(t *testing.T) {
	existing := []models.ShoppingItem{
		shoppingItem("flour", models.Float(2), "cup", models.Source{RecipeID: "r1", RecipeName: "Bread"}),
	}
	incoming := []models.ShoppingItem{
		shoppingItem("flour", models.Float(1), "cup",
			models.Source{RecipeID: "r1", RecipeName: "Bread"},
			models.Source{RecipeName: "Pizza"},
		),
	}

	merged := MergeItems(existing, incoming, Options{PreserveUserOverrides: true})

	require.Len(t, merged, 1)
	assert.Len(t, merged[0].Sources, 2)
}

// final sources are a set: merge order must not matter
func TestMergeItems_SourceAssociativity(t *testing.T) {
	base := shoppingItem("flour", models.Float(1), "cup", models.Source{RecipeName: "A"})
	b := shoppingItem("flour", models.Float(1), "cup", models.Source{RecipeName: "B"})
	c := shoppingItem("flour", models.Float(1), "cup", models.Source{RecipeName: "C"})

	first := MergeItems(MergeItems([]models.ShoppingItem{base}, []models.ShoppingItem{b}, Options{}), []models.ShoppingItem{c}, Options{})
	second := MergeItems(MergeItems([]models.ShoppingItem{base}, []models.ShoppingItem{c}, Options{}), []models.ShoppingItem{b}, Options{})

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.ElementsMatch(t, first[0].Sources, second[0].Sources)
	assert.Equal(t, *first[0].Amount, *second[0].Amount)
}

func TestMergeItems_DirtyExistingDuplicatesCollapse(t *testing.T) {
	existing := []models.ShoppingItem{
		shoppingItem("flour", models.Float(1), "cup", models.Source{RecipeName: "A"}),
		shoppingItem("Flour", models.Float(2), "cup", models.Source{RecipeName: "B"}),
	}

	merged := MergeItems(existing, nil, Options{})

	require.Len(t, merged, 1)
	assert.Equal(t, 3.0, *merged[0].Amount)
	assert.Len(t, merged[0].Sources, 2)
}

func TestMergeItems_PreserveUserOverrides(t *testing.T) {
	existing := []models.ShoppingItem{
		{
			Item: "flour", Amount: models.Float(1), Unit: "cup",
			CategoryKey: "bakery", CategoryOrder: 3,
			Sources: []models.Source{{RecipeName: "A"}},
		},
	}
	incoming := []models.ShoppingItem{
		{
			Item: "flour", Amount: models.Float(1), Unit: "cup",
			CategoryKey: "pantry", CategoryOrder: 4,
			Sources: []models.Source{{RecipeName: "B"}},
		},
	}

	preserved := MergeItems(existing, incoming, Options{PreserveUserOverrides: true})
	require.Len(t, preserved, 1)
	assert.Equal(t, "bakery", preserved[0].CategoryKey)

	clobbered := MergeItems(existing, incoming, Options{PreserveUserOverrides: false})
	require.Len(t, clobbered, 1)
	assert.Equal(t, "pantry", clobbered[0].CategoryKey)
}

func TestMergeItems_UserCategoryOverrides(t *testing.T) {
	incoming := []models.ShoppingItem{
		shoppingItem("flour", models.Float(1), "cup"),
	}

	merged := MergeItems(nil, incoming, Options{
		UserCategoryOverrides: map[string]string{"flour": "produce"},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "produce", merged[0].CategoryKey)
	assert.Equal(t, 1, merged[0].CategoryOrder)
}

func TestMergeItems_PreserveCustomOrderSkipsSort(t *testing.T) {
	existing := []models.ShoppingItem{
		shoppingItem("flour", models.Float(1), "cup", models.Source{RecipeName: "A"}),
		shoppingItem("apples", models.Float(2), "", models.Source{RecipeName: "A"}),
	}

	unsorted := MergeItems(existing, nil, Options{PreserveCustomOrder: true})
	assert.Equal(t, []string{"flour", "apples"}, itemNames(unsorted))

	sorted := MergeItems(existing, nil, Options{})
	assert.Equal(t, []string{"apples", "flour"}, itemNames(sorted))
}

// re-merging the same batch dedups sources but still adds amounts; that is
// accepted behavior, not a defect to fix
func TestMergeItems_RepeatedMerge(t *testing.T) {
	existing := []models.ShoppingItem{
		shoppingItem("flour", models.Float(2), "cup", models.Source{RecipeName: "Bread"}),
	}
	batch := []models.ShoppingItem{
		shoppingItem("flour", models.Float(2), "cup", models.Source{RecipeName: "Bread"}),
	}

	once := MergeItems(existing, batch, Options{PreserveUserOverrides: true})
	twice := MergeItems(once, batch, Options{PreserveUserOverrides: true})

	require.Len(t, twice, 1)
	assert.Len(t, twice[0].Sources, 1)
	assert.Equal(t, 6.0, *twice[0].Amount)
}

func TestRemoveRecipeFromItems(t *testing.T) {
	items := []models.ShoppingItem{
		shoppingItem("flour", models.Float(1), "cup", models.Source{RecipeName: "Bread"}),
		shoppingItem("milk", models.Float(1), "cup",
			models.Source{RecipeName: "Bread"}, models.Source{RecipeName: "Pancakes"}),
		shoppingItem("batteries", nil, "",
			models.Source{RecipeName: models.SourceManual}, models.Source{RecipeName: "Bread"}),
	}

	kept := RemoveRecipeFromItems(items, "Bread")

	require.Len(t, kept, 2)
	assert.Equal(t, "milk", kept[0].Item)
	assert.Equal(t, []models.Source{{RecipeName: "Pancakes"}}, kept[0].Sources)
	// the manual item survives with its Manual source
	assert.Equal(t, "batteries", kept[1].Item)
	assert.Equal(t, []models.Source{{RecipeName: models.SourceManual}}, kept[1].Sources)
}
