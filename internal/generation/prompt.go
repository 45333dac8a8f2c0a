package generation

import (
	"fmt"
	"strings"

	"github.com/culinarycode/backend/internal/models"
	"github.com/culinarycode/backend/internal/types"
)

// BuildPrompt turns a filter request and the caller's dietary preferences
// into the natural-language prompt sent to the model. The function is pure:
// identical inputs always yield byte-identical output, and the line order is
// fixed (name, ingredients, difficulty, meal type, cook time, preferences).
// Absent or unrecognized fields contribute no line.
func BuildPrompt(filter types.RecipeFilterRequest, preferences []models.Preference) string {
	lines := make([]string, 0, 6)

	if filter.RecipeName != "" {
		lines = append(lines, fmt.Sprintf("I want a recipe for %s.", filter.RecipeName))
	} else {
		lines = append(lines, "I want a random recipe.")
	}

	if len(filter.Ingredients) > 0 {
		lines = append(lines, "Here are the ingredients I have: "+strings.Join(filter.Ingredients, ", "))
	}

	if filter.Difficulty > types.DifficultyNotAvailable && filter.Difficulty <= types.DifficultyDifficult {
		lines = append(lines, fmt.Sprintf("The recipe difficulty should be %s.", filter.Difficulty))
	}

	if filter.MealType > types.RecipeTypeNotAvailable && filter.MealType <= types.RecipeTypeSnack {
		lines = append(lines, fmt.Sprintf("It should be a %s recipe.", filter.MealType))
	}

	if filter.CookTime > 0 {
		lines = append(lines, fmt.Sprintf("The cooking time should be around %d minutes.", filter.CookTime))
	}

	if len(preferences) > 0 {
		names := make([]string, 0, len(preferences))
		for _, p := range preferences {
			names = append(names, p.Name)
		}
		lines = append(lines, "Take into account that I have the following dietary preferences: "+strings.Join(names, ", ")+".")
	}

	return strings.Join(lines, "\n")
}
