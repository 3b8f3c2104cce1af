package main

import "mealplanner/cmd"

func main() {
	cmd.Execute()
}
