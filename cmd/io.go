package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"mealplanner/internal/models"
)

// loadRecipes reads recipe JSON files; each file may hold one recipe or an
// array of recipes.
func loadRecipes(paths []string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading recipes from %s: %w", path, err)
		}

		var batch []models.Recipe
		if err := json.Unmarshal(data, &batch); err != nil {
			var single models.Recipe
			if err := json.Unmarshal(data, &single); err != nil {
				return nil, fmt.Errorf("parsing recipes from %s: %w", path, err)
			}
			batch = []models.Recipe{single}
		}
		recipes = append(recipes, batch...)
	}
	return recipes, nil
}

func loadPantry(path string) ([]models.PantryItem, error) {
	if path == "" {
		return nil, nil
	}
	var pantry []models.PantryItem
	if err := readJSON(path, &pantry); err != nil {
		return nil, fmt.Errorf("reading pantry from %s: %w", path, err)
	}
	return pantry, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// writeJSON writes indented JSON to path, or to stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
