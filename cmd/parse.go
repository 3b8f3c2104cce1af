package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucsky/cuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mealplanner/internal/models"
	"mealplanner/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files or directory]",
	Short: "Parse free-text recipe files into recipe JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")

		files, err := collectTextFiles(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no text files found")
		}

		bar := progressbar.Default(int64(len(files)), "parsing recipes")
		var recipes []models.Recipe
		for _, file := range files {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}

			recipe, warnings := parser.ParseRecipeText(string(data))
			recipe.ID = cuid.New()
			for _, w := range warnings {
				logger.Warn("parse warning", zap.String("file", file), zap.String("detail", w))
			}
			recipes = append(recipes, recipe)
			_ = bar.Add(1)
		}

		return writeJSON(outPath, recipes)
	},
}

func collectTextFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.HasSuffix(e.Name(), ".txt") || strings.HasSuffix(e.Name(), ".md") {
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
	}
	return files, nil
}

func init() {
	parseCmd.Flags().String("out", "", "Output path for the recipe JSON (defaults to stdout)")
	rootCmd.AddCommand(parseCmd)
}
