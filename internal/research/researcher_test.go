package research

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/podcraft-ai/podcraft/internal/research/mocks"
)

type fakeWiki struct {
	articles []Article
	err      error
	queries  []string
}

func (f *fakeWiki) Summaries(_ context.Context, query string, _ int) ([]Article, error) {
	f.queries = append(f.queries, query)
	return f.articles, f.err
}

type fakeRecap struct {
	text string
	err  error
}

func (f *fakeRecap) Recap(context.Context) (string, error) { return f.text, f.err }

type fakeArticles struct {
	text, title string
	err         error
}

func (f *fakeArticles) Fetch(context.Context, string) (string, string, error) {
	return f.text, f.title, f.err
}

func TestResearcher_Research(t *testing.T) {
	embedder := &mocks.EmbedderMock{
		EmbeddingFunc: func(_ context.Context, text string) ([]float64, error) {
			if text == "second summary" || text == "space" {
				return []float64{1, 0}, nil
			}
			return []float64{0, 1}, nil
		},
	}
	wiki := &fakeWiki{articles: []Article{{Title: "A", Summary: "first summary"}, {Title: "B", Summary: "second summary"}}}

	tests := []struct {
		name       string
		researcher *Researcher
		topic      string
		contextURL string
		expected   string
	}{
		{
			name:       "most relevant wikipedia summary",
			researcher: &Researcher{wiki: wiki, embedder: embedder},
			topic:      "space",
			expected:   "second summary",
		},
		{
			name:       "nba recap",
			researcher: &Researcher{wiki: wiki, recap: &fakeRecap{text: "Recap of yesterday's games: x"}},
			topic:      "NBA",
			expected:   RecapNote + "Recap of yesterday's games: x",
		},
		{
			name:       "nba recap fails, wikipedia used",
			researcher: &Researcher{wiki: wiki, recap: &fakeRecap{err: ErrRecapNotFound}},
			topic:      "basketball",
			expected:   "first summary",
		},
		{
			name:       "wikipedia fails",
			researcher: &Researcher{wiki: &fakeWiki{err: errors.New("down")}},
			topic:      "space",
			expected:   "",
		},
		{
			name:       "ranking fails, first result used",
			researcher: &Researcher{wiki: wiki, embedder: &mocks.EmbedderMock{EmbeddingFunc: func(context.Context, string) ([]float64, error) { return nil, errors.New("quota") }}},
			topic:      "space",
			expected:   "first summary",
		},
		{
			name:       "article appended",
			researcher: &Researcher{wiki: wiki, articles: &fakeArticles{text: "body", title: "Title"}},
			topic:      "space",
			contextURL: "https://example.com/a",
			expected:   "first summary\n\nArticle \"Title\": body",
		},
		{
			name:       "article fails",
			researcher: &Researcher{articles: &fakeArticles{err: errors.New("404")}},
			topic:      "space",
			contextURL: "https://example.com/a",
			expected:   "",
		},
		{
			name:       "no sources",
			researcher: NewResearcher(nil, nil, nil, nil, nil),
			topic:      "space",
			contextURL: "https://example.com/a",
			expected:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.researcher.logger == nil {
				tc.researcher.logger = discardLogger()
			}
			assert.Equal(t, tc.expected, tc.researcher.Research(context.Background(), tc.topic, tc.contextURL))
		})
	}
}
