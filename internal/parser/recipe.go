package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"mealplanner/internal/models"
)

var (
	servingsRe    = regexp.MustCompile(`(?i)^(?:serves|servings?|yield)s?\s*:?\s*(\d+)`)
	stepNumberRe  = regexp.MustCompile(`^\d+[.)]\s*`)
	sectionHeader = map[string]string{
		"ingredients":  "ingredients",
		"instructions": "instructions",
		"directions":   "instructions",
		"method":       "instructions",
		"steps":        "instructions",
		"preparation":  "instructions",
	}
)

// ParseRecipeText parses a free-text recipe into a structured Recipe with a
// list of advisory warnings. Warnings never block the parse; the worst input
// yields an empty recipe and a handful of warnings.
func ParseRecipeText(text string) (models.Recipe, []string) {
	var recipe models.Recipe
	var warnings []string

	section := ""
	var looseLines []string

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if name := headerFor(line); name != "" {
			section = name
			continue
		}

		if m := servingsRe.FindStringSubmatch(line); m != nil {
			recipe.Servings, _ = strconv.Atoi(m[1])
			continue
		}

		switch section {
		case "ingredients":
			recipe.Ingredients = append(recipe.Ingredients, ParseIngredientLine(line))
		case "instructions":
			recipe.Instructions = append(recipe.Instructions, stepNumberRe.ReplaceAllString(line, ""))
		default:
			if recipe.Name == "" {
				recipe.Name = line
			} else {
				looseLines = append(looseLines, line)
			}
		}
	}

	// no section headers: classify loose lines by shape
	if len(recipe.Ingredients) == 0 && len(recipe.Instructions) == 0 {
		for _, line := range looseLines {
			if looksLikeIngredient(line) {
				recipe.Ingredients = append(recipe.Ingredients, ParseIngredientLine(line))
			} else {
				recipe.Instructions = append(recipe.Instructions, stepNumberRe.ReplaceAllString(line, ""))
			}
		}
	}

	if recipe.Name == "" {
		warnings = append(warnings, "no recipe name detected")
	}
	if len(recipe.Ingredients) == 0 {
		warnings = append(warnings, "no ingredients found")
	}
	if len(recipe.Instructions) == 0 {
		warnings = append(warnings, "no instructions found")
	}
	for _, ing := range recipe.Ingredients {
		if ing.Amount == nil {
			warnings = append(warnings, fmt.Sprintf("no amount found for ingredient %q", ing.Item))
		}
	}

	return recipe, warnings
}

func headerFor(line string) string {
	key := strings.ToLower(strings.TrimRight(strings.TrimSpace(line), ": "))
	return sectionHeader[key]
}

// looksLikeIngredient is the header-less fallback: bulleted lines and lines
// opening with a quantity are ingredients, the rest are instructions.
func looksLikeIngredient(line string) bool {
	for _, marker := range []string{"-", "*", "•", "·"} {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	s := normalizeFractions(line)
	if amount, _, _ := extractAmount(s); amount != nil {
		// step numbers like "1. Preheat the oven" are not quantities
		return !stepNumberRe.MatchString(s)
	}
	return false
}
