// Package planner selects recipes for a weekly plan and assigns them to
// days. Selection is best-effort: shortfalls degrade gracefully and are
// reported as warning strings, never as errors.
package planner

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"mealplanner/internal/models"
)

// Weekdays in assignment order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Selector holds the random source for selection and swapping. Tests inject
// a seeded source for reproducibility.
type Selector struct {
	Rng *rand.Rand
}

func NewSelector(seed int64) *Selector {
	return &Selector{Rng: rand.New(rand.NewSource(seed))}
}

// GeneratePlan picks, per category in selection, the requested number of
// recipes not made within exclusionDays of now. When the non-recent pool
// falls short it is topped up from recently made recipes; when the whole
// category pool falls short the entire pool is used. Both cases add a
// warning to the plan's Errors.
func (s *Selector) GeneratePlan(allRecipes []models.Recipe, history []models.MealHistory, selection map[string]int, exclusionDays int, now time.Time) models.WeeklyPlan {
	cutoff := now.AddDate(0, 0, -exclusionDays)

	lastMade := make(map[string]time.Time, len(history))
	for _, h := range history {
		if h.MadeAt.After(lastMade[h.RecipeID]) {
			lastMade[h.RecipeID] = h.MadeAt
		}
	}

	// deterministic category processing order
	categories := make([]string, 0, len(selection))
	for c := range selection {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var plan models.WeeklyPlan
	for _, category := range categories {
		count := selection[category]
		if count <= 0 {
			continue
		}

		var fresh, recent []models.Recipe
		for _, r := range allRecipes {
			if !strings.EqualFold(r.Category, category) {
				continue
			}
			if made, ok := lastMade[r.ID]; ok && !made.Before(cutoff) {
				recent = append(recent, r)
			} else {
				fresh = append(fresh, r)
			}
		}

		var picked []models.Recipe
		switch {
		case len(fresh) >= count:
			picked = s.pick(fresh, count)
		case len(fresh)+len(recent) >= count:
			picked = append(picked, fresh...)
			picked = append(picked, s.pick(recent, count-len(fresh))...)
			plan.Errors = append(plan.Errors, fmt.Sprintf(
				"only %d non-recent %s recipes available; filled %d from recently made",
				len(fresh), category, count-len(fresh)))
		default:
			picked = append(picked, fresh...)
			picked = append(picked, recent...)
			plan.Errors = append(plan.Errors, fmt.Sprintf(
				"only %d %s recipes available, wanted %d",
				len(picked), category, count))
		}

		for _, r := range picked {
			plan.Recipes = append(plan.Recipes, models.PlannedRecipe{
				RecipeID:   r.ID,
				RecipeName: r.Name,
				Category:   r.Category,
			})
		}
	}
	return plan
}

// pick returns count recipes chosen uniformly via Fisher-Yates shuffle.
func (s *Selector) pick(pool []models.Recipe, count int) []models.Recipe {
	shuffled := make([]models.Recipe, len(pool))
	copy(shuffled, pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.Rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// SwapRecipe picks a uniform-random recipe from the category pool minus the
// excluded IDs, nil when the pool is empty.
func (s *Selector) SwapRecipe(allRecipes []models.Recipe, category string, excludeIDs []string) *models.Recipe {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	var pool []models.Recipe
	for _, r := range allRecipes {
		if strings.EqualFold(r.Category, category) && !excluded[r.ID] {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		return nil
	}
	picked := pool[s.Rng.Intn(len(pool))]
	return &picked
}

// AutoAssignDays assigns a weekday to each recipe. Pre-existing assignments
// are preserved; newly unassigned recipes take days round-robin from a
// priority list of preferred available days followed by the remaining
// available days, all minus excluded days. With more recipes than days,
// assignments wrap around and share days.
func AutoAssignDays(recipeIDs []string, excludedDays, preferredDays []string, existing map[string]string) map[string]string {
	available := func(day string) bool {
		for _, ex := range excludedDays {
			if strings.EqualFold(ex, day) {
				return false
			}
		}
		return true
	}

	var priority []string
	for _, day := range preferredDays {
		if canonical, ok := canonicalDay(day); ok && available(canonical) {
			priority = append(priority, canonical)
		}
	}
	for _, day := range Weekdays {
		if available(day) && !containsFold(priority, day) {
			priority = append(priority, day)
		}
	}

	assigned := make(map[string]string, len(recipeIDs))
	next := 0
	for _, id := range recipeIDs {
		if day, ok := existing[id]; ok && day != "" {
			assigned[id] = day
			continue
		}
		if len(priority) == 0 {
			continue
		}
		assigned[id] = priority[next%len(priority)]
		next++
	}
	return assigned
}

func canonicalDay(day string) (string, bool) {
	for _, d := range Weekdays {
		if strings.EqualFold(d, day) {
			return d, true
		}
	}
	return "", false
}

func containsFold(slice []string, s string) bool {
	for _, v := range slice {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
