package research

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleFetcher_Fallback(t *testing.T) {
	tests := []struct {
		name            string
		html            string
		expectedTitle   string
		expectedContent string
	}{
		{
			name: "article tag",
			html: `<html>
				<head><title>Test Article</title></head>
				<body>
					<article>
						<p>This is the first paragraph of the article.</p>
						<p>This is the second paragraph with more content.</p>
					</article>
				</body>
			</html>`,
			expectedTitle:   "Test Article",
			expectedContent: "This is the first paragraph of the article.\n\nThis is the second paragraph with more content.",
		},
		{
			name: "class content",
			html: `<html>
				<head><title>Another Article</title></head>
				<body>
					<div class="content">
						<p>Content paragraph one.</p>
						<p>Content paragraph two with enough text to be included.</p>
					</div>
				</body>
			</html>`,
			expectedTitle:   "Another Article",
			expectedContent: "Content paragraph one.\n\nContent paragraph two with enough text to be included.",
		},
		{
			name: "all long paragraphs",
			html: `<html>
				<head><title>Simple Page</title></head>
				<body>
					<p>Short.</p>
					<p>This is a longer paragraph that should be included in the content extraction.</p>
					<p>Another long paragraph with sufficient content to pass the length filter.</p>
				</body>
			</html>`,
			expectedTitle:   "Simple Page",
			expectedContent: "This is a longer paragraph that should be included in the content extraction.\n\nAnother long paragraph with sufficient content to pass the length filter.",
		},
	}

	fetcher := NewArticleFetcher(nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, title, err := fetcher.fallback([]byte(tc.html))
			require.NoError(t, err)
			assert.Equal(t, tc.expectedTitle, title)
			assert.Equal(t, tc.expectedContent, text)
		})
	}
}

func TestArticleFetcher_Fetch(t *testing.T) {
	paragraph := "Gophers gathered in the valley to discuss concurrency, channels and the quiet joy of small interfaces. "
	page := `<html><head><title>Gopher News</title></head><body>
		<nav><a href="/">Home</a></nav>
		<article><h1>Gopher News</h1><p>` + strings.Repeat(paragraph, 8) + `</p><p>` + strings.Repeat(paragraph, 6) + `</p></article>
		</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	text, title, err := NewArticleFetcher(server.Client()).Fetch(context.Background(), server.URL+"/news")
	require.NoError(t, err)
	assert.Contains(t, title, "Gopher News")
	assert.Contains(t, text, "quiet joy of small interfaces")
}

func TestArticleFetcher_ContentLengthLimit(t *testing.T) {
	page := `<html><head><title>Long Article</title></head><body><article><p>` +
		strings.Repeat("A", 9000) + `</p></article></body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	text, _, err := NewArticleFetcher(server.Client()).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, 8003, utf8.RuneCountInString(text))
	assert.True(t, strings.HasSuffix(text, "..."))
}

func TestArticleFetcher_Errors(t *testing.T) {
	t.Run("error status code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, _, err := NewArticleFetcher(server.Client()).Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status code 404")
	})

	t.Run("network error", func(t *testing.T) {
		client := &http.Client{Transport: &failingTransport{}}
		text, title, err := NewArticleFetcher(client).Fetch(context.Background(), "http://example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch URL")
		assert.Empty(t, text)
		assert.Empty(t, title)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, _, err := NewArticleFetcher(nil).Fetch(context.Background(), "not a url")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid article URL")
	})
}

// failingTransport is a custom transport that always returns an error
type failingTransport struct{}

func (f *failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, io.ErrUnexpectedEOF
}
