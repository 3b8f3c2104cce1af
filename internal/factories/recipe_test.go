package factories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipe(t *testing.T) {
	rf := NewRecipeFactory(42)
	recipe := rf.CreateRecipe("chicken")

	assert.NotEmpty(t, recipe.ID)
	assert.NotEmpty(t, recipe.Name)
	assert.Equal(t, "chicken", recipe.Category)
	assert.GreaterOrEqual(t, recipe.Servings, 2)
	require.NotEmpty(t, recipe.Ingredients)
	for _, ing := range recipe.Ingredients {
		assert.NotEmpty(t, ing.Item)
		require.NotNil(t, ing.Amount)
		assert.Greater(t, *ing.Amount, 0.0)
	}
}

func TestCreateRecipes_UniqueIDs(t *testing.T) {
	rf := NewRecipeFactory(42)
	recipes := rf.CreateRecipes(8)

	require.Len(t, recipes, 8)
	ids := make(map[string]bool)
	for _, r := range recipes {
		assert.False(t, ids[r.ID])
		ids[r.ID] = true
	}
}

func TestCreatePantry(t *testing.T) {
	rf := NewRecipeFactory(42)
	pantry := rf.CreatePantry()
	assert.NotEmpty(t, pantry)
}
