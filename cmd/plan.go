package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mealplanner/internal/models"
	"mealplanner/internal/planner"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a weekly meal plan from a recipe collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		recipePaths, _ := cmd.Flags().GetStringSlice("recipes")
		historyPath, _ := cmd.Flags().GetString("history")
		outPath, _ := cmd.Flags().GetString("out")
		seed, _ := cmd.Flags().GetInt64("seed")

		if len(recipePaths) == 0 {
			return fmt.Errorf("at least one --recipes file is required")
		}
		recipes, err := loadRecipes(recipePaths)
		if err != nil {
			return err
		}

		var history []models.MealHistory
		if historyPath != "" {
			if err := readJSON(historyPath, &history); err != nil {
				return fmt.Errorf("reading history from %s: %w", historyPath, err)
			}
		}

		selection := cfg.DefaultSelection
		if len(selection) == 0 {
			return fmt.Errorf("config has no default_selection")
		}

		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		selector := planner.NewSelector(seed)
		plan := selector.GeneratePlan(recipes, history, selection, cfg.HistoryExclusionDays, time.Now())

		if cfg.AutoAssignDays {
			ids := make([]string, len(plan.Recipes))
			for i, r := range plan.Recipes {
				ids[i] = r.RecipeID
			}
			assigned := planner.AutoAssignDays(ids, cfg.ExcludedDays, cfg.PreferredDays, nil)
			for i := range plan.Recipes {
				plan.Recipes[i].Day = assigned[plan.Recipes[i].RecipeID]
			}
		}

		for _, warning := range plan.Errors {
			logger.Warn("plan shortfall", zap.String("detail", warning))
		}
		logger.Info("meal plan generated", zap.Int("recipes", len(plan.Recipes)))

		return writeJSON(outPath, plan)
	},
}

func init() {
	planCmd.Flags().StringSlice("recipes", nil, "Recipe JSON files to plan from")
	planCmd.Flags().String("history", "", "Meal history JSON file")
	planCmd.Flags().String("out", "", "Output path (defaults to stdout)")
	planCmd.Flags().Int64("seed", 0, "Random seed (0 uses the current time)")

	rootCmd.AddCommand(planCmd)
}
