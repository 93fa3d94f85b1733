package research

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/podcraft-ai/podcraft/internal/ai"
	"github.com/podcraft-ai/podcraft/internal/content"
)

// DefaultWikipediaEndpoint is the english MediaWiki action API
const DefaultWikipediaEndpoint = "https://en.wikipedia.org/w/api.php"

const userAgent = "podcraft/1.0 (https://github.com/podcraft-ai/podcraft)"

// Article is the intro summary of one encyclopedia page
type Article struct {
	Title   string
	Summary string
}

// Wikipedia looks up article summaries through the MediaWiki API
type Wikipedia struct {
	endpoint   string
	httpClient ai.HTTPClient
}

// NewWikipedia creates a client for the given api.php endpoint
func NewWikipedia(endpoint string, httpClient ai.HTTPClient) *Wikipedia {
	if endpoint == "" {
		endpoint = DefaultWikipediaEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: content.DefaultHTTPTimeout}
	}
	return &Wikipedia{endpoint: endpoint, httpClient: httpClient}
}

// Summaries searches for query and returns the intro of every hit in search order.
// Disambiguation and missing pages are skipped.
func (w *Wikipedia) Summaries(ctx context.Context, query string, limit int) ([]Article, error) {
	titles, err := w.search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if len(titles) == 0 {
		return nil, nil
	}

	var resp struct {
		Query struct {
			Pages []struct {
				Title     string            `json:"title"`
				Extract   string            `json:"extract"`
				Missing   bool              `json:"missing"`
				PageProps map[string]string `json:"pageprops"`
			} `json:"pages"`
		} `json:"query"`
	}
	err = w.get(ctx, url.Values{
		"action":      {"query"},
		"prop":        {"extracts|pageprops"},
		"exintro":     {"1"},
		"explaintext": {"1"},
		"exlimit":     {"max"},
		"redirects":   {"1"},
		"titles":      {strings.Join(titles, "|")},
	}, &resp)
	if err != nil {
		return nil, err
	}

	byTitle := make(map[string]Article, len(resp.Query.Pages))
	for _, p := range resp.Query.Pages {
		if p.Missing || strings.TrimSpace(p.Extract) == "" {
			continue
		}
		if _, ok := p.PageProps["disambiguation"]; ok {
			continue
		}
		byTitle[p.Title] = Article{Title: p.Title, Summary: strings.TrimSpace(p.Extract)}
	}

	articles := make([]Article, 0, len(byTitle))
	for _, title := range titles {
		if a, ok := byTitle[title]; ok {
			articles = append(articles, a)
		}
	}
	return articles, nil
}

func (w *Wikipedia) search(ctx context.Context, query string, limit int) ([]string, error) {
	var resp struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	err := w.get(ctx, url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {strconv.Itoa(limit)},
	}, &resp)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(resp.Query.Search))
	for _, s := range resp.Query.Search {
		titles = append(titles, s.Title)
	}
	return titles, nil
}

func (w *Wikipedia) get(ctx context.Context, params url.Values, out any) error {
	params.Set("format", "json")
	params.Set("formatversion", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.endpoint+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("wikipedia request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("wikipedia request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode wikipedia response: %w", err)
	}
	return nil
}
