package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	for _, name := range []string{"NotAvailable", "Easy", "Intermediate", "Difficult"} {
		d, err := ParseDifficulty(name)
		require.NoError(t, err)
		assert.Equal(t, name, d.String())
	}

	_, err := ParseDifficulty("Impossible")
	assert.Error(t, err)

	_, err = ParseDifficulty("easy")
	assert.Error(t, err, "parsing is case-sensitive")
}

func TestParseRecipeType(t *testing.T) {
	for _, name := range []string{"Breakfast", "Lunch", "Dinner", "Dessert", "Snack"} {
		rt, err := ParseRecipeType(name)
		require.NoError(t, err)
		assert.Equal(t, name, rt.String())
	}

	_, err := ParseRecipeType("Brunch")
	assert.Error(t, err)
}

func TestParseMeasurementType(t *testing.T) {
	names := []string{
		"Kilogram", "Litre", "Pound", "Ounce", "Teaspoon", "Tablespoon",
		"Piece", "Millilitre", "Gram", "Pinch", "ToTaste", "Clove",
	}
	for _, name := range names {
		m, err := ParseMeasurementType(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}

	_, err := ParseMeasurementType("Handful")
	assert.Error(t, err)
}
