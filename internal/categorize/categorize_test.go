package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize_KeywordScan(t *testing.T) {
	tests := []struct {
		item string
		key  string
	}{
		{"flour", KeyPantry},
		{"Baby Spinach", KeyProduce},
		{"chicken thighs", KeyDeli},
		{"sourdough bread", KeyBakery},
		{"aluminum foil", KeyMisc},  // "oil" must not match inside "foil"
		{"rice vinegar", KeyPantry}, // whole-word "rice" still matches as a token
	}
	for _, tt := range tests {
		key, _ := Categorize(tt.item, "")
		assert.Equal(t, tt.key, key, tt.item)
	}
}

func TestCategorize_FallbackMisc(t *testing.T) {
	key, order := Categorize("unicorn dust", "")
	assert.Equal(t, KeyMisc, key)

	miscOrder, ok := OrderFor(KeyMisc)
	assert.True(t, ok)
	assert.Equal(t, miscOrder, order)
}

func TestCategorize_Override(t *testing.T) {
	key, order := Categorize("flour", "Produce")
	assert.Equal(t, KeyProduce, key)
	produceOrder, _ := OrderFor(KeyProduce)
	assert.Equal(t, produceOrder, order)

	// unrecognized override falls back to the keyword scan
	key, _ = Categorize("flour", "freezer")
	assert.Equal(t, KeyPantry, key)
}

// Every item's assigned order must equal its category's table order.
func TestCategorize_OrderConsistent(t *testing.T) {
	items := []string{"flour", "spinach", "chicken", "bread", "unicorn dust", "milk"}
	for _, item := range items {
		key, order := Categorize(item, "")
		tableOrder, ok := OrderFor(key)
		assert.True(t, ok, item)
		assert.Equal(t, tableOrder, order, item)
	}
}

func TestCategories_OrderedByPriority(t *testing.T) {
	cats := Categories()
	for i := 1; i < len(cats); i++ {
		assert.Less(t, cats[i-1].Order, cats[i].Order)
	}
	assert.Equal(t, KeyMisc, cats[len(cats)-1].Key)
}

func TestKeywordMatcher_WordBoundary(t *testing.T) {
	m := NewKeywordMatcher([]string{"pepper"})

	assert.True(t, m.Matches("pepper"))
	assert.True(t, m.Matches("black pepper"))
	// multi-token containment is intentional
	assert.True(t, m.Matches("poblano pepper"))
	// substrings are not
	assert.False(t, m.Matches("peppering"))
	assert.False(t, m.Matches("peppercorn blend"))
	assert.False(t, m.Matches("garlic powder"))
}

func TestKeywordMatcher_EmptyKeywords(t *testing.T) {
	assert.False(t, NewKeywordMatcher(nil).Matches("pepper"))
	assert.False(t, NewKeywordMatcher([]string{"", "  "}).Matches("pepper"))
}
