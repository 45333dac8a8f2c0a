// Package generation implements the recipe-generation pipeline: prompt
// construction, validation of raw model output, conversion into the
// persistent domain shape and the bounded retry loop driving them.
package generation

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// GeneratedRecipePayload is the typed deserialization target for the JSON
// the model returns. Field names are the wire contract with the model and
// must be preserved exactly.
type GeneratedRecipePayload struct {
	RecipeName     string              `json:"recipeName" validate:"required"`
	Description    string              `json:"description" validate:"required"`
	Diet           string              `json:"diet"`
	RecipeType     string              `json:"recipeType" validate:"required"`
	CookingTime    int                 `json:"cookingTime" validate:"gt=0"`
	Difficulty     string              `json:"difficulty" validate:"required"`
	AmountOfPeople int                 `json:"amount_of_people"`
	Ingredients    []PayloadIngredient `json:"ingredients" validate:"required,min=1,dive"`
	RecipeSteps    []PayloadStep       `json:"recipeSteps" validate:"required,min=1,dive"`
	ImagePath      string              `json:"imagePath"`
}

// PayloadIngredient is one (name, amount, unit) triple from the model.
type PayloadIngredient struct {
	Name            string `json:"name" validate:"required"`
	Amount          Amount `json:"amount"`
	MeasurementType string `json:"measurementType" validate:"required"`
}

// PayloadStep is one numbered instruction from the model.
type PayloadStep struct {
	StepNumber  int    `json:"stepNumber" validate:"gt=0"`
	Instruction string `json:"instruction" validate:"required"`
}

// Amount tolerates both JSON numbers and numeric strings, since models are
// not consistent about which they emit.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*a = Amount(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		parsed, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", str)
		}
		*a = Amount(parsed)
		return nil
	}

	return fmt.Errorf("invalid amount format")
}
