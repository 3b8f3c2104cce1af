package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mealplanner/internal/categorize"
	"mealplanner/internal/shopping"
)

var shoppingListCmd = &cobra.Command{
	Use:   "shoppinglist",
	Short: "Generate a shopping list from recipe files, merging into an existing list",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		warnUnknownOverrideCategories(cfg.CategoryOverrides)

		recipePaths, _ := cmd.Flags().GetStringSlice("recipes")
		pantryPath, _ := cmd.Flags().GetString("pantry")
		listPath, _ := cmd.Flags().GetString("list")
		outPath, _ := cmd.Flags().GetString("out")
		scale, _ := cmd.Flags().GetFloat64("scale")

		if len(recipePaths) == 0 {
			return fmt.Errorf("at least one --recipes file is required")
		}
		if scale == 0 {
			scale = cfg.Scale
		}

		recipes, err := loadRecipes(recipePaths)
		if err != nil {
			return err
		}
		pantry, err := loadPantry(pantryPath)
		if err != nil {
			return err
		}

		list := shopping.NewList()
		if listPath != "" {
			if err := readJSON(listPath, list); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("reading existing list from %s: %w", listPath, err)
			}
		}

		result := shopping.Generate(recipes, pantry, cfg.ExcludedKeywords, scale)

		names := make([]string, len(recipes))
		for i, r := range recipes {
			names[i] = r.Name
		}
		shopping.MergeResult(list, result, names, shopping.Options{
			PreserveUserOverrides: true,
			UserCategoryOverrides: cfg.CategoryOverrides,
		})

		logger.Info("shopping list generated",
			zap.Int("recipes", len(recipes)),
			zap.Int("to_buy", len(list.Items)),
			zap.Int("already_have", len(list.AlreadyHave)),
			zap.Int("excluded", len(list.Excluded)),
		)

		if outPath == "" {
			outPath = listPath
		}
		return writeJSON(outPath, list)
	},
}

// warnUnknownOverrideCategories flags config overrides pointing at categories
// the table does not know; those items fall back to the keyword scan.
func warnUnknownOverrideCategories(overrides map[string]string) {
	var known []string
	for _, c := range categorize.Categories() {
		known = append(known, c.Key)
	}
	for item, category := range overrides {
		if _, ok := categorize.OrderFor(category); !ok {
			logger.Warn("unknown category in override",
				zap.String("item", item),
				zap.String("category", category),
				zap.Strings("known", known),
			)
		}
	}
}

func init() {
	shoppingListCmd.Flags().StringSlice("recipes", nil, "Recipe JSON files to add")
	shoppingListCmd.Flags().String("pantry", "", "Pantry JSON file")
	shoppingListCmd.Flags().String("list", "", "Existing shopping list JSON to merge into")
	shoppingListCmd.Flags().String("out", "", "Output path (defaults to --list, else stdout)")
	shoppingListCmd.Flags().Float64("scale", 0, "Scale factor for all amounts")

	rootCmd.AddCommand(shoppingListCmd)
}
