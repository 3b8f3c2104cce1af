package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIngredientLine_Basic(t *testing.T) {
	ing := ParseIngredientLine("2 cups flour")
	require.NotNil(t, ing.Amount)
	assert.Equal(t, 2.0, *ing.Amount)
	assert.Equal(t, "cups", ing.Unit)
	assert.Equal(t, "flour", ing.Item)
	assert.Empty(t, ing.Modifier)
}

func TestParseIngredientLine_UnicodeFraction(t *testing.T) {
	ing := ParseIngredientLine("½ tsp oregano")
	require.NotNil(t, ing.Amount)
	assert.Equal(t, 0.5, *ing.Amount)
	assert.Equal(t, "tsp", ing.Unit)
	assert.Equal(t, "oregano", ing.Item)
}

func TestParseIngredientLine_MixedNumber(t *testing.T) {
	ing := ParseIngredientLine("1½ cups milk")
	require.NotNil(t, ing.Amount)
	assert.Equal(t, 1.5, *ing.Amount)
	assert.Equal(t, "cups", ing.Unit)
	assert.Equal(t, "milk", ing.Item)
}

func TestParseIngredientLine_AsciiFraction(t *testing.T) {
	ing := ParseIngredientLine("1/4 cup sugar")
	require.NotNil(t, ing.Amount)
	assert.Equal(t, 0.25, *ing.Amount)
	assert.Equal(t, "cup", ing.Unit)
	assert.Equal(t, "sugar", ing.Item)
}

func TestParseIngredientLine_ParentheticalUnit(t *testing.T) {
	ing := ParseIngredientLine("1 (28 oz) can crushed tomatoes")
	require.NotNil(t, ing.Amount)
	assert.Equal(t, 1.0, *ing.Amount)
	assert.Equal(t, "can (28 oz)", ing.Unit)
	assert.Equal(t, "crushed tomatoes", ing.Item)
}

func TestParseIngredientLine_UnitThenParenthetical(t *testing.T) {
	ing := ParseIngredientLine("1 can (15 oz) black beans")
	require.NotNil(t, ing.Amount)
	assert.Equal(t, "can (15 oz)", ing.Unit)
	assert.Equal(t, "black beans", ing.Item)
}

func TestParseIngredientLine_Range(t *testing.T) {
	ing := ParseIngredientLine("½-1 cup broth")
	require.NotNil(t, ing.Amount)
	// only the lower bound is kept numerically
	assert.Equal(t, 0.5, *ing.Amount)
	// the range text survives verbatim in the unit for display
	assert.Equal(t, "0.5-1 cup", ing.Unit)
	assert.Equal(t, "broth", ing.Item)
}

func TestParseIngredientLine_EnDashRange(t *testing.T) {
	ing := ParseIngredientLine("2–3 tbsp olive oil")
	require.NotNil(t, ing.Amount)
	assert.Equal(t, 2.0, *ing.Amount)
	assert.Equal(t, "2-3 tbsp", ing.Unit)
	assert.Equal(t, "olive oil", ing.Item)
}

func TestParseIngredientLine_NoAmount(t *testing.T) {
	ing := ParseIngredientLine("salt and pepper to taste")
	assert.Nil(t, ing.Amount)
	assert.Empty(t, ing.Unit)
	assert.Equal(t, "salt and pepper to taste", ing.Item)
}

func TestParseIngredientLine_ListMarkers(t *testing.T) {
	for _, line := range []string{"- 2 cups flour", "* 2 cups flour", "• 2 cups flour"} {
		ing := ParseIngredientLine(line)
		require.NotNil(t, ing.Amount, line)
		assert.Equal(t, 2.0, *ing.Amount, line)
		assert.Equal(t, "flour", ing.Item, line)
	}
}

func TestParseIngredientLine_Modifier(t *testing.T) {
	ing := ParseIngredientLine("2 cups spinach, rinsed and chopped")
	assert.Equal(t, "spinach", ing.Item)
	assert.Equal(t, "rinsed and chopped", ing.Modifier)
}

func TestParseIngredientLine_CommaInsideParens(t *testing.T) {
	// the comma inside parentheses must not trigger the modifier split
	ing := ParseIngredientLine("1 cup nuts (almonds, toasted)")
	assert.Equal(t, "nuts (almonds, toasted)", ing.Item)
	assert.Empty(t, ing.Modifier)
}

func TestParseIngredientLine_OfPrefix(t *testing.T) {
	ing := ParseIngredientLine("2 cups of flour")
	assert.Equal(t, "flour", ing.Item)
}

func TestParseIngredientLine_NoUnit(t *testing.T) {
	ing := ParseIngredientLine("3 eggs")
	require.NotNil(t, ing.Amount)
	assert.Equal(t, 3.0, *ing.Amount)
	assert.Empty(t, ing.Unit)
	assert.Equal(t, "eggs", ing.Item)
}

func TestParseIngredientLine_LongestUnitWins(t *testing.T) {
	ing := ParseIngredientLine("4 fluid ounces cream")
	assert.Equal(t, "fluid ounces", ing.Unit)
	assert.Equal(t, "cream", ing.Item)
}

func TestParseIngredientLine_UnitNotInsideWord(t *testing.T) {
	// "g" must not match the start of "garlic"
	ing := ParseIngredientLine("2 garlic cloves")
	require.NotNil(t, ing.Amount)
	assert.Empty(t, ing.Unit)
	assert.Equal(t, "garlic cloves", ing.Item)
}

func TestNormalizeFractions(t *testing.T) {
	assert.Equal(t, "0.5 cup", normalizeFractions("½ cup"))
	assert.Equal(t, "1.5 cup", normalizeFractions("1½ cup"))
	assert.Equal(t, "2-3", normalizeFractions("2–3"))
	assert.Equal(t, "plain text", normalizeFractions("plain text"))
}

func TestExtractModifier_LongCandidateRejected(t *testing.T) {
	long := "this trailing clause is far too long to be a preparation note because it rambles on"
	item, modifier := extractModifier("tomatoes, " + long)
	assert.Equal(t, "tomatoes, "+long, item)
	assert.Empty(t, modifier)

	// unless it opens with a preparation word
	item, modifier = extractModifier("tomatoes, chopped " + long)
	assert.Equal(t, "tomatoes", item)
	assert.Equal(t, "chopped "+long, modifier)
}
