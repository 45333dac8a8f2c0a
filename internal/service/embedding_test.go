package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEmbedding(t *testing.T) {
	t.Run("should be deterministic", func(t *testing.T) {
		assert.Equal(t, GenerateEmbedding("pasta"), GenerateEmbedding("pasta"))
	})

	t.Run("should ignore case", func(t *testing.T) {
		assert.Equal(t, GenerateEmbedding("Pasta"), GenerateEmbedding("pasta"))
	})

	t.Run("should count length, vowels and consonants", func(t *testing.T) {
		vec := GenerateEmbedding("pasta").Slice()

		require.Len(t, vec, 3)
		assert.Equal(t, float32(5), vec[0])
		assert.Equal(t, float32(2), vec[1])
		assert.Equal(t, float32(3), vec[2])
	})
}
