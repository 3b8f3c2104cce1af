package models

// SourceManual marks list entries the user added by hand rather than from a
// recipe. Items carrying it survive recipe removal.
const SourceManual = "Manual"

// Source records which recipe contributed to a shopping item's quantity.
type Source struct {
	RecipeID   string `json:"recipe_id,omitempty"`
	RecipeName string `json:"recipe_name"`
}

// Key is the dedup identity of a source: the recipe ID when present,
// otherwise the recipe name.
func (s Source) Key() string {
	if s.RecipeID != "" {
		return s.RecipeID
	}
	return s.RecipeName
}

// Amount is an (amount, unit) pair preserved in AdditionalAmounts when it
// could not be summed into an item's primary quantity.
type Amount struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// ShoppingItem is the central mutable record of a shopping list. Item is the
// normalized lowercase name and is unique within a list; duplicates are
// merged, never kept side by side.
type ShoppingItem struct {
	Item              string   `json:"item"`
	Amount            *float64 `json:"amount"`
	Unit              string   `json:"unit"`
	CategoryKey       string   `json:"category_key"`
	CategoryOrder     int      `json:"category_order"`
	Sources           []Source `json:"sources,omitempty"`
	AdditionalAmounts []Amount `json:"additional_amounts,omitempty"`
	Checked           bool     `json:"checked,omitempty"`
	ShoppingCategory  string   `json:"shopping_category,omitempty"`
}

// ShoppingList is the single mutable aggregate per user. CustomOrder set
// means the user has reordered items by hand and automatic category sorting
// is suppressed.
type ShoppingList struct {
	Items         []ShoppingItem `json:"items"`
	AlreadyHave   []ShoppingItem `json:"already_have"`
	Excluded      []ShoppingItem `json:"excluded"`
	SourceRecipes []string       `json:"source_recipes"`
	Scale         float64        `json:"scale"`
	TotalServings int            `json:"total_servings"`
	CustomOrder   bool           `json:"custom_order"`
}

// ShoppingListResult is the output of one generation pass over a recipe set,
// before it is merged into a persisted list.
type ShoppingListResult struct {
	Items         []ShoppingItem `json:"items"`
	AlreadyHave   []ShoppingItem `json:"already_have"`
	Excluded      []ShoppingItem `json:"excluded"`
	Scale         float64        `json:"scale"`
	TotalServings int            `json:"total_servings"`
}
