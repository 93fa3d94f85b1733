package research

import (
	"context"
	"fmt"
	"math"
	"strings"
)

//go:generate moq -out mocks/embedder.go -pkg mocks -skip-ensure -fmt goimports . Embedder

// Embedder returns a vector representation of a text
type Embedder interface {
	Embedding(ctx context.Context, text string) ([]float64, error)
}

// CosineSimilarity returns the cosine of the angle between a and b, 0 when either is a zero vector
func CosineSimilarity(a, b []float64) float64 {
	n := min(len(a), len(b))
	var dot, na, nb float64
	for i := range n {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// MostRelevant picks the article whose title equals the query, otherwise the one whose
// summary embedding is closest to the query embedding
func MostRelevant(ctx context.Context, embedder Embedder, query string, articles []Article) (Article, error) {
	if len(articles) == 0 {
		return Article{}, fmt.Errorf("no articles to rank")
	}
	for _, a := range articles {
		if strings.EqualFold(strings.TrimSpace(a.Title), strings.TrimSpace(query)) {
			return a, nil
		}
	}

	queryVec, err := embedder.Embedding(ctx, query)
	if err != nil {
		return Article{}, fmt.Errorf("failed to embed query: %w", err)
	}

	best, bestScore := -1, math.Inf(-1)
	for i, a := range articles {
		vec, err := embedder.Embedding(ctx, a.Summary)
		if err != nil {
			return Article{}, fmt.Errorf("failed to embed %q: %w", a.Title, err)
		}
		if score := CosineSimilarity(queryVec, vec); score > bestScore {
			best, bestScore = i, score
		}
	}
	return articles[best], nil
}
