// Package normalize canonicalizes ingredient names and unit tokens into
// stable keys so contributions from different recipes can be compared.
package normalize

import "strings"

// unitSynonyms collapses plural and spelled-out unit variants to canonical
// abbreviations. Discrete count words (piece, clove, can, ...) map to the
// empty string: they carry no unit semantics for merging.
var unitSynonyms = map[string]string{
	"teaspoon":  "tsp",
	"teaspoons": "tsp",
	"tsps":      "tsp",
	"tsp.":      "tsp",

	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"tbsps":       "tbsp",
	"tbs":         "tbsp",
	"tbsp.":       "tbsp",

	"cups": "cup",
	"c":    "cup",

	"fluid ounce":  "fl oz",
	"fluid ounces": "fl oz",
	"fl. oz.":      "fl oz",
	"fl. oz":       "fl oz",
	"floz":         "fl oz",

	"ounce":  "oz",
	"ounces": "oz",
	"oz.":    "oz",

	"pound":  "lb",
	"pounds": "lb",
	"lbs":    "lb",
	"lb.":    "lb",

	"gram":  "g",
	"grams": "g",
	"g.":    "g",

	"kilogram":  "kg",
	"kilograms": "kg",
	"kgs":       "kg",

	"milligram":  "mg",
	"milligrams": "mg",

	"milliliter":  "ml",
	"milliliters": "ml",
	"millilitre":  "ml",
	"millilitres": "ml",
	"mls":         "ml",

	"liter":  "l",
	"liters": "l",
	"litre":  "l",
	"litres": "l",

	"pints":   "pint",
	"pt":      "pint",
	"quarts":  "quart",
	"qt":      "quart",
	"gallons": "gallon",
	"gal":     "gallon",

	// count words collapse to the empty unit
	"piece":      "",
	"pieces":     "",
	"clove":      "",
	"cloves":     "",
	"can":        "",
	"cans":       "",
	"bunch":      "",
	"bunches":    "",
	"head":       "",
	"heads":      "",
	"slice":      "",
	"slices":     "",
	"stalk":      "",
	"stalks":     "",
	"sprig":      "",
	"sprigs":     "",
	"stick":      "",
	"sticks":     "",
	"package":    "",
	"packages":   "",
	"pkg":        "",
	"container":  "",
	"containers": "",
	"jar":        "",
	"jars":       "",
	"bottle":     "",
	"bottles":    "",
	"box":        "",
	"boxes":      "",
	"bag":        "",
	"bags":       "",
	"large":      "",
	"medium":     "",
	"small":      "",
	"whole":      "",
	"each":       "",
	"count":      "",
	"ct":         "",
}

// ItemName lowercases and trims an ingredient name. Idempotent.
func ItemName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Unit lowercases, trims and collapses a unit token through the synonym
// table. Unrecognized tokens pass through unchanged so that distinct unknown
// units never collide. Idempotent.
func Unit(s string) string {
	u := strings.ToLower(strings.TrimSpace(s))
	if canonical, ok := unitSynonyms[u]; ok {
		return canonical
	}
	return u
}

// ItemKey is the generation-stage dedup key: normalized item name joined
// with the raw unit spelling. The unit is deliberately left unnormalized, so
// "flour|cup" and "flour|cups" stay separate rows until the merge engine
// reconciles them; the merge engine itself keys on the item name alone.
func ItemKey(item, rawUnit string) string {
	return ItemName(item) + "|" + rawUnit
}
