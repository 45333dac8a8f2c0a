package types

import "fmt"

// Difficulty indicates how hard a recipe is to prepare.
type Difficulty int

const (
	DifficultyNotAvailable Difficulty = iota
	DifficultyEasy
	DifficultyIntermediate
	DifficultyDifficult
)

var difficultyNames = map[Difficulty]string{
	DifficultyNotAvailable: "NotAvailable",
	DifficultyEasy:         "Easy",
	DifficultyIntermediate: "Intermediate",
	DifficultyDifficult:    "Difficult",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return "NotAvailable"
}

// ParseDifficulty maps the wire value back to the enum.
func ParseDifficulty(s string) (Difficulty, error) {
	for d, name := range difficultyNames {
		if name == s {
			return d, nil
		}
	}
	return DifficultyNotAvailable, fmt.Errorf("unknown difficulty %q", s)
}

// RecipeType classifies a recipe by meal slot.
type RecipeType int

const (
	RecipeTypeNotAvailable RecipeType = iota
	RecipeTypeBreakfast
	RecipeTypeLunch
	RecipeTypeDinner
	RecipeTypeDessert
	RecipeTypeSnack
)

var recipeTypeNames = map[RecipeType]string{
	RecipeTypeNotAvailable: "NotAvailable",
	RecipeTypeBreakfast:    "Breakfast",
	RecipeTypeLunch:        "Lunch",
	RecipeTypeDinner:       "Dinner",
	RecipeTypeDessert:      "Dessert",
	RecipeTypeSnack:        "Snack",
}

func (t RecipeType) String() string {
	if name, ok := recipeTypeNames[t]; ok {
		return name
	}
	return "NotAvailable"
}

// ParseRecipeType maps the wire value back to the enum.
func ParseRecipeType(s string) (RecipeType, error) {
	for t, name := range recipeTypeNames {
		if name == s {
			return t, nil
		}
	}
	return RecipeTypeNotAvailable, fmt.Errorf("unknown recipe type %q", s)
}

// MeasurementType is the closed set of units an ingredient can be measured in.
type MeasurementType int

const (
	MeasurementKilogram MeasurementType = iota
	MeasurementLitre
	MeasurementPound
	MeasurementOunce
	MeasurementTeaspoon
	MeasurementTablespoon
	MeasurementPiece
	MeasurementMillilitre
	MeasurementGram
	MeasurementPinch
	MeasurementToTaste
	MeasurementClove
)

var measurementNames = map[MeasurementType]string{
	MeasurementKilogram:   "Kilogram",
	MeasurementLitre:      "Litre",
	MeasurementPound:      "Pound",
	MeasurementOunce:      "Ounce",
	MeasurementTeaspoon:   "Teaspoon",
	MeasurementTablespoon: "Tablespoon",
	MeasurementPiece:      "Piece",
	MeasurementMillilitre: "Millilitre",
	MeasurementGram:       "Gram",
	MeasurementPinch:      "Pinch",
	MeasurementToTaste:    "ToTaste",
	MeasurementClove:      "Clove",
}

func (m MeasurementType) String() string {
	if name, ok := measurementNames[m]; ok {
		return name
	}
	return "Piece"
}

// ParseMeasurementType maps the wire value back to the enum. Values outside
// the closed set are an error, not a default.
func ParseMeasurementType(s string) (MeasurementType, error) {
	for m, name := range measurementNames {
		if name == s {
			return m, nil
		}
	}
	return MeasurementPiece, fmt.Errorf("unknown measurement type %q", s)
}
