package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"mealplanner/internal/factories"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Emit generated sample recipes and a pantry for trying the tool",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")
		recipesOut, _ := cmd.Flags().GetString("out")
		pantryOut, _ := cmd.Flags().GetString("pantry-out")

		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rf := factories.NewRecipeFactory(seed)

		if err := writeJSON(recipesOut, rf.CreateRecipes(count)); err != nil {
			return err
		}
		if pantryOut != "" {
			return writeJSON(pantryOut, rf.CreatePantry())
		}
		return nil
	},
}

func init() {
	sampleCmd.Flags().Int("count", 8, "Number of recipes to generate")
	sampleCmd.Flags().Int64("seed", 0, "Random seed (0 uses the current time)")
	sampleCmd.Flags().String("out", "", "Output path for recipes (defaults to stdout)")
	sampleCmd.Flags().String("pantry-out", "", "Optional output path for a sample pantry")

	rootCmd.AddCommand(sampleCmd)
}
