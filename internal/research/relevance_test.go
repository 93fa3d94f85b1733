package research

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podcraft-ai/podcraft/internal/research/mocks"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{name: "identical", a: []float64{1, 2, 3}, b: []float64{1, 2, 3}, expected: 1},
		{name: "orthogonal", a: []float64{1, 0}, b: []float64{0, 1}, expected: 0},
		{name: "opposite", a: []float64{1, 1}, b: []float64{-1, -1}, expected: -1},
		{name: "scaled", a: []float64{1, 2}, b: []float64{2, 4}, expected: 1},
		{name: "zero vector", a: []float64{0, 0}, b: []float64{1, 1}, expected: 0},
		{name: "empty", expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, CosineSimilarity(tc.a, tc.b), 1e-9)
		})
	}
}

func TestMostRelevant(t *testing.T) {
	articles := []Article{
		{Title: "Go (game)", Summary: "board game"},
		{Title: "Go (programming language)", Summary: "language"},
	}
	vectors := map[string][]float64{
		"golang":     {1, 0},
		"board game": {0, 1},
		"language":   {0.9, 0.1},
	}
	embedder := &mocks.EmbedderMock{
		EmbeddingFunc: func(_ context.Context, text string) ([]float64, error) {
			return vectors[text], nil
		},
	}

	t.Run("closest summary wins", func(t *testing.T) {
		best, err := MostRelevant(context.Background(), embedder, "golang", articles)
		require.NoError(t, err)
		assert.Equal(t, "Go (programming language)", best.Title)
	})

	t.Run("exact title match skips embeddings", func(t *testing.T) {
		calls := len(embedder.EmbeddingCalls())
		best, err := MostRelevant(context.Background(), embedder, "go (game)", articles)
		require.NoError(t, err)
		assert.Equal(t, "Go (game)", best.Title)
		assert.Len(t, embedder.EmbeddingCalls(), calls)
	})

	t.Run("no articles", func(t *testing.T) {
		_, err := MostRelevant(context.Background(), embedder, "golang", nil)
		require.Error(t, err)
	})

	t.Run("embedding fails", func(t *testing.T) {
		failing := &mocks.EmbedderMock{
			EmbeddingFunc: func(context.Context, string) ([]float64, error) { return nil, errors.New("quota") },
		}
		_, err := MostRelevant(context.Background(), failing, "golang", articles)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota")
	})
}
