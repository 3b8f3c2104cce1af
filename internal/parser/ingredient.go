// Package parser turns free-text recipe lines into structured ingredients.
// Parsing is never fatal: a line that defeats every heuristic becomes an item
// name with a nil amount, and problems surface as advisory warnings at the
// recipe level.
package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"mealplanner/internal/models"
)

// vulgarFractions maps unicode fraction runes to their numeric value.
var vulgarFractions = map[rune]float64{
	'¼': 0.25, '½': 0.5, '¾': 0.75,
	'⅓': 1.0 / 3, '⅔': 2.0 / 3,
	'⅕': 0.2, '⅖': 0.4, '⅗': 0.6, '⅘': 0.8,
	'⅙': 1.0 / 6, '⅚': 5.0 / 6,
	'⅐': 1.0 / 7,
	'⅛': 0.125, '⅜': 0.375, '⅝': 0.625, '⅞': 0.875,
	'⅑': 1.0 / 9, '⅒': 0.1,
}

// unitVocabulary is every unit or container word the parser recognizes after
// the amount. Matching is longest-first so "fluid ounce" beats "ounce".
var unitVocabulary = func() []string {
	words := []string{
		"fluid ounce", "fluid ounces", "fl oz", "fl. oz.",
		"tablespoon", "tablespoons", "tbsp", "tbs",
		"teaspoon", "teaspoons", "tsp",
		"milliliter", "milliliters", "millilitre", "millilitres", "ml",
		"kilogram", "kilograms", "kg",
		"gram", "grams", "g",
		"liter", "liters", "litre", "litres", "l",
		"ounce", "ounces", "oz",
		"pound", "pounds", "lbs", "lb",
		"gallon", "gallons", "quart", "quarts", "pint", "pints",
		"cup", "cups",
		"can", "cans", "jar", "jars", "bag", "bags", "box", "boxes",
		"bottle", "bottles", "package", "packages", "container", "containers",
		"bunch", "bunches", "clove", "cloves", "head", "heads",
		"slice", "slices", "stalk", "stalks", "sprig", "sprigs",
		"stick", "sticks", "piece", "pieces", "pinch", "pinches",
		"dash", "dashes", "handful", "handfuls",
	}
	sort.Slice(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	return words
}()

// preparationWords make a trailing comma clause acceptable as a modifier even
// when the short-length check would not.
var preparationWords = map[string]bool{
	"rinsed": true, "drained": true, "chopped": true, "diced": true,
	"minced": true, "sliced": true, "grated": true, "shredded": true,
	"peeled": true, "crushed": true, "melted": true, "softened": true,
	"beaten": true, "cubed": true, "julienned": true, "trimmed": true,
	"halved": true, "quartered": true, "thawed": true, "toasted": true,
	"divided": true, "seeded": true, "stemmed": true, "cored": true,
	"zested": true, "juiced": true, "mashed": true, "cooked": true,
	"uncooked": true, "optional": true, "finely": true, "roughly": true,
	"freshly": true,
}

const numberPattern = `\d+/\d+|\d+(?:\.\d+)?`

var (
	amountRe        = regexp.MustCompile(`^(` + numberPattern + `)(?:\s*-\s*(` + numberPattern + `))?(?:\s+|$)`)
	parentheticalRe = regexp.MustCompile(`^\(([^)]+)\)\s*`)
	wordRe          = regexp.MustCompile(`^([A-Za-z]+)\.?(?:\s+|$)`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// ParseIngredientLine parses one free-text line into a structured ingredient.
func ParseIngredientLine(line string) models.Ingredient {
	s := stripListMarker(line)
	s = normalizeFractions(s)

	amount, rangeText, rest := extractAmount(s)

	// no leading amount: the whole remainder is the item name
	var unit string
	if amount != nil {
		unit, rest = extractUnit(rest)
		if rangeText != "" {
			// ranges are not preserved numerically; keep the text for display
			unit = strings.TrimSpace(rangeText + " " + unit)
		}
	}

	item := cleanItemName(rest)
	item, modifier := extractModifier(item)

	return models.Ingredient{
		Item:     item,
		Amount:   amount,
		Unit:     unit,
		Modifier: modifier,
	}
}

// stripListMarker removes leading bullet, dash and dot markers.
func stripListMarker(s string) string {
	s = strings.TrimSpace(s)
	for len(s) > 0 {
		r := []rune(s)[0]
		if r == '-' || r == '*' || r == '•' || r == '·' || r == '.' {
			s = strings.TrimSpace(s[len(string(r)):])
			continue
		}
		break
	}
	return s
}

// normalizeFractions rewrites unicode vulgar fractions as decimal strings,
// folding a directly preceding integer into a single mixed value ("1½" →
// "1.5"), and normalizes en/em dashes to ASCII hyphens.
func normalizeFractions(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '–' || r == '—' {
			b.WriteRune('-')
			continue
		}
		frac, ok := vulgarFractions[r]
		if !ok {
			b.WriteRune(r)
			continue
		}

		// pull back any integer digits already written
		out := b.String()
		j := len(out)
		for j > 0 && out[j-1] >= '0' && out[j-1] <= '9' {
			j--
		}
		whole := 0.0
		if j < len(out) {
			whole, _ = strconv.ParseFloat(out[j:], 64)
			b.Reset()
			b.WriteString(out[:j])
		}
		b.WriteString(formatAmount(whole + frac))
	}
	return b.String()
}

// extractAmount matches a leading integer, decimal or a/b fraction, with an
// optional hyphenated range. Only the lower bound survives as the numeric
// amount; the verbatim range text is returned for display.
func extractAmount(s string) (*float64, string, string) {
	m := amountRe.FindStringSubmatch(s)
	if m == nil {
		return nil, "", s
	}
	value, err := parseNumber(m[1])
	if err != nil {
		return nil, "", s
	}

	rangeText := ""
	if m[2] != "" {
		rangeText = strings.TrimSpace(m[0])
	}
	rest := strings.TrimSpace(s[len(m[0]):])
	return models.Float(value), rangeText, rest
}

func parseNumber(s string) (float64, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, err
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return 0, err
		}
		return n / d, nil
	}
	return strconv.ParseFloat(s, 64)
}

// extractUnit pulls a unit off the front of the post-amount text. A leading
// parenthetical like "(28 oz)" combines with a following container word into
// "can (28 oz)"; otherwise the longest vocabulary word wins, again absorbing
// a trailing parenthetical.
func extractUnit(s string) (string, string) {
	if m := parentheticalRe.FindStringSubmatch(s); m != nil {
		rest := strings.TrimSpace(s[len(m[0]):])
		if w := matchUnitWord(rest); w != "" {
			unit := w + " (" + m[1] + ")"
			return unit, strings.TrimSpace(rest[len(w):])
		}
		return "(" + m[1] + ")", rest
	}

	w := matchUnitWord(s)
	if w == "" {
		return "", s
	}
	unit := strings.TrimSuffix(w, ".")
	rest := strings.TrimSpace(s[len(w):])

	if m := parentheticalRe.FindStringSubmatch(rest); m != nil {
		unit = unit + " (" + m[1] + ")"
		rest = strings.TrimSpace(rest[len(m[0]):])
	}
	return unit, rest
}

// matchUnitWord returns the vocabulary word as spelled at the start of s, or
// "" when none matches on a word boundary.
func matchUnitWord(s string) string {
	lower := strings.ToLower(s)
	for _, w := range unitVocabulary {
		if !strings.HasPrefix(lower, w) {
			continue
		}
		if len(s) > len(w) {
			next := s[len(w)]
			if next != ' ' && next != '\t' && next != '.' && next != '(' {
				continue
			}
		}
		matched := s[:len(w)]
		if len(s) > len(w) && s[len(w)] == '.' {
			matched = s[:len(w)+1]
		}
		return matched
	}
	return ""
}

// extractModifier splits a trailing preparation note off the item name at the
// last comma outside parentheses. The candidate is accepted when it is short
// or opens with a known preparation word; otherwise the whole string stays
// the item name. The heuristic is approximate on purpose.
func extractModifier(item string) (string, string) {
	depth := 0
	split := -1
	for i := len(item) - 1; i >= 0; i-- {
		switch item[i] {
		case ')':
			depth++
		case '(':
			depth--
		case ',':
			if depth == 0 {
				split = i
			}
		}
		if split >= 0 {
			break
		}
	}
	if split < 0 {
		return item, ""
	}

	base := strings.TrimSpace(item[:split])
	candidate := strings.TrimSpace(item[split+1:])
	if base == "" || candidate == "" {
		return item, ""
	}
	if len(candidate) < 60 || preparationWords[firstWord(candidate)] {
		return base, candidate
	}
	return item, ""
}

func firstWord(s string) string {
	m := wordRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

func cleanItemName(s string) string {
	s = whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "of ") {
		s = strings.TrimSpace(s[3:])
	}
	return strings.Trim(s, " ,")
}

// formatAmount renders a float in its shortest round-trip form, so "1½"
// becomes "1.5" rather than "1.500000".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
