// Package categorize assigns ingredients to shopping categories and decides
// keyword-based exclusions. Matching is case-insensitive whole-word, so "oil"
// matches "olive oil" but never "foil".
package categorize

import (
	"regexp"
	"strings"

	"mealplanner/internal/normalize"
)

type Category struct {
	Key      string
	Order    int
	Keywords []string
}

const (
	KeyProduce = "produce"
	KeyDeli    = "deli"
	KeyBakery  = "bakery"
	KeyPantry  = "pantry"
	KeyMisc    = "misc"
)

// categories is scanned in order; the first keyword hit wins, so the slice
// order is semantically significant. Misc is the fallback and carries the
// highest sort order.
var categories = []Category{
	{
		Key:   KeyProduce,
		Order: 1,
		Keywords: []string{
			"lettuce", "spinach", "kale", "arugula", "cabbage", "broccoli",
			"cauliflower", "carrot", "carrots", "celery", "cucumber", "zucchini",
			"squash", "asparagus", "mushroom", "mushrooms", "onion", "onions",
			"scallion", "scallions", "shallot", "shallots", "garlic", "ginger",
			"potato", "potatoes", "tomato", "tomatoes", "avocado", "avocados",
			"pepper", "peppers", "jalapeno", "corn", "green beans", "peas",
			"apple", "apples", "banana", "bananas", "orange", "oranges",
			"lemon", "lemons", "lime", "limes", "berries", "strawberries",
			"blueberries", "grapes", "melon", "pineapple", "mango", "peach",
			"pear", "cilantro", "parsley", "basil", "mint", "thyme", "rosemary",
			"dill", "chives",
		},
	},
	{
		Key:   KeyDeli,
		Order: 2,
		Keywords: []string{
			"chicken", "beef", "pork", "turkey", "lamb", "bacon", "sausage",
			"ham", "steak", "salmon", "shrimp", "tuna", "fish", "tilapia",
			"cod", "crab", "prosciutto", "salami", "pepperoni", "tofu",
			"milk", "butter", "cheese", "mozzarella", "parmesan", "cheddar",
			"feta", "yogurt", "cream", "sour cream", "cream cheese", "eggs",
			"egg",
		},
	},
	{
		Key:   KeyBakery,
		Order: 3,
		Keywords: []string{
			"bread", "baguette", "bagel", "bagels", "tortilla", "tortillas",
			"pita", "bun", "buns", "roll", "rolls", "croissant", "muffin",
			"muffins", "naan",
		},
	},
	{
		Key:   KeyPantry,
		Order: 4,
		Keywords: []string{
			"flour", "sugar", "salt", "rice", "pasta", "spaghetti", "noodles",
			"oats", "oatmeal", "cereal", "beans", "lentils", "chickpeas",
			"quinoa", "oil", "olive oil", "vinegar", "soy sauce", "honey",
			"maple syrup", "peanut butter", "jam", "broth", "stock", "salsa",
			"ketchup", "mustard", "mayonnaise", "cumin", "paprika", "oregano",
			"cinnamon", "nutmeg", "turmeric", "curry powder", "chili powder",
			"garlic powder", "onion powder", "baking soda", "baking powder",
			"vanilla", "cocoa", "chocolate", "almonds", "walnuts", "pecans",
			"raisins", "crackers", "breadcrumbs", "cornstarch", "yeast",
		},
	},
	{
		Key:      KeyMisc,
		Order:    5,
		Keywords: nil,
	},
}

// keywordPatterns holds one compiled whole-word regexp per category keyword.
// Built once at init; the table never changes at runtime.
var keywordPatterns = func() map[string][]*regexp.Regexp {
	patterns := make(map[string][]*regexp.Regexp, len(categories))
	for _, c := range categories {
		compiled := make([]*regexp.Regexp, len(c.Keywords))
		for i, kw := range c.Keywords {
			compiled[i] = wordPattern(kw)
		}
		patterns[c.Key] = compiled
	}
	return patterns
}()

var orderByKey = func() map[string]int {
	m := make(map[string]int, len(categories))
	for _, c := range categories {
		m[c.Key] = c.Order
	}
	return m
}()

func wordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.TrimSpace(keyword)) + `\b`)
}

// Categories returns the ordered category table.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// OrderFor returns the sort order of a category key, and whether the key is
// part of the table.
func OrderFor(key string) (int, bool) {
	order, ok := orderByKey[normalize.ItemName(key)]
	return order, ok
}

// Categorize maps an ingredient name to (categoryKey, categoryOrder). A
// recognized override category wins with its table order; otherwise the
// ordered keyword scan decides, falling back to misc.
func Categorize(itemName, overrideCategory string) (string, int) {
	if overrideCategory != "" {
		key := normalize.ItemName(overrideCategory)
		if order, ok := orderByKey[key]; ok {
			return key, order
		}
	}

	name := normalize.ItemName(itemName)
	for _, c := range categories {
		for _, p := range keywordPatterns[c.Key] {
			if p.MatchString(name) {
				return c.Key, c.Order
			}
		}
	}
	return KeyMisc, orderByKey[KeyMisc]
}

// KeywordMatcher holds the compiled whole-word patterns for a set of
// exclusion keywords. Compile once, match many.
type KeywordMatcher struct {
	patterns []*regexp.Regexp
}

// NewKeywordMatcher compiles the keywords, skipping blank entries.
func NewKeywordMatcher(keywords []string) *KeywordMatcher {
	m := &KeywordMatcher{}
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		m.patterns = append(m.patterns, wordPattern(kw))
	}
	return m
}

// Matches reports whether any keyword matches the item name as a whole word.
// Multi-token containment counts: keyword "pepper" matches both "pepper" and
// "poblano pepper", but never substrings like "peppering".
func (m *KeywordMatcher) Matches(itemName string) bool {
	name := normalize.ItemName(itemName)
	for _, p := range m.patterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}
