package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mealplanner/internal/parser"
	"mealplanner/internal/shopping"
)

var addCmd = &cobra.Command{
	Use:   "add [item text]",
	Short: "Add a manual item to a shopping list",
	Long: `Parses the item text like a recipe line ("2 cups flour") and merges it
into the list with a Manual source, so it survives recipe removal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listPath, _ := cmd.Flags().GetString("list")
		if listPath == "" {
			return fmt.Errorf("--list is required")
		}

		list := shopping.NewList()
		if err := readJSON(listPath, list); err != nil {
			return fmt.Errorf("reading list from %s: %w", listPath, err)
		}

		ing := parser.ParseIngredientLine(strings.Join(args, " "))
		if err := shopping.AddManualItem(list, ing.Item, ing.Amount, ing.Unit, ""); err != nil {
			return err
		}
		return writeJSON(listPath, list)
	},
}

func init() {
	addCmd.Flags().String("list", "", "Shopping list JSON file to modify")
	rootCmd.AddCommand(addCmd)
}
