// Package factories generates sample recipes and pantry data for trying the
// tool and seeding tests.
package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"mealplanner/internal/models"
	"mealplanner/internal/units"
)

var fake = faker.New()

type RecipeFactory struct {
	Rng *rand.Rand
}

func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{Rng: rand.New(rand.NewSource(seed))}
}

var recipeNames = map[string][]string{
	"chicken":    {"Lemon Roast Chicken", "Chicken Tikka Masala", "Chicken Noodle Soup", "Honey Garlic Chicken"},
	"beef":       {"Weeknight Chili", "Beef Stroganoff", "Classic Meatloaf", "Beef Tacos"},
	"fish":       {"Baked Salmon", "Fish Tacos", "Shrimp Scampi", "Tuna Casserole"},
	"vegetarian": {"Mushroom Risotto", "Vegetable Stir Fry", "Lentil Curry", "Caprese Pasta"},
}

type ingredientTemplate struct {
	item string
	min  float64
	max  float64
	unit string
}

var ingredientTemplates = []ingredientTemplate{
	{"flour", 1, 3, "cup"},
	{"olive oil", 1, 3, "tbsp"},
	{"garlic", 1, 4, "cloves"},
	{"onion", 1, 2, ""},
	{"chicken breast", 1, 2, "lb"},
	{"ground beef", 1, 2, "lb"},
	{"crushed tomatoes", 1, 2, "can (28 oz)"},
	{"spinach", 2, 4, "cup"},
	{"rice", 1, 2, "cup"},
	{"milk", 0.5, 2, "cup"},
	{"butter", 1, 4, "tbsp"},
	{"oregano", 0.5, 2, "tsp"},
	{"cumin", 0.5, 2, "tsp"},
	{"salt", 0.5, 1, "tsp"},
	{"black pepper", 0.25, 1, "tsp"},
	{"cheddar cheese", 0.5, 2, "cup"},
}

// CreateRecipe builds a recipe in the given category with a plausible set of
// ingredients.
func (rf *RecipeFactory) CreateRecipe(category string) models.Recipe {
	names, ok := recipeNames[category]
	if !ok {
		names = []string{fake.Food().Fruit() + " Surprise"}
	}

	count := rf.Rng.Intn(4) + 4 // 4 to 7 ingredients
	ingredients := make([]models.Ingredient, 0, count)
	seen := make(map[string]bool)
	for len(ingredients) < count {
		tpl := ingredientTemplates[rf.Rng.Intn(len(ingredientTemplates))]
		if seen[tpl.item] {
			continue
		}
		seen[tpl.item] = true
		amount := tpl.min + rf.Rng.Float64()*(tpl.max-tpl.min)
		ingredients = append(ingredients, models.Ingredient{
			Item:   tpl.item,
			Amount: models.Float(units.RoundForDisplay(amount)),
			Unit:   tpl.unit,
		})
	}

	return models.Recipe{
		ID:          cuid.New(),
		Name:        names[rf.Rng.Intn(len(names))],
		Category:    category,
		Servings:    rf.Rng.Intn(5) + 2, // 2 to 6 servings
		Ingredients: ingredients,
	}
}

// CreateRecipes builds count recipes spread across the known categories.
func (rf *RecipeFactory) CreateRecipes(count int) []models.Recipe {
	categories := []string{"chicken", "beef", "fish", "vegetarian"}
	recipes := make([]models.Recipe, count)
	for i := range recipes {
		recipes[i] = rf.CreateRecipe(categories[i%len(categories)])
	}
	return recipes
}

// CreatePantry builds a small pantry of staples.
func (rf *RecipeFactory) CreatePantry() []models.PantryItem {
	staples := []string{"salt", "black pepper", "olive oil", "flour", "sugar"}
	items := make([]models.PantryItem, len(staples))
	for i, s := range staples {
		items[i] = models.PantryItem{Item: s}
	}
	return items
}
