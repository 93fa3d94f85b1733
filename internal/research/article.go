package research

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/podcraft-ai/podcraft/internal/ai"
	"github.com/podcraft-ai/podcraft/internal/content"
)

// ArticleFetcher downloads a web page and extracts its readable text
type ArticleFetcher struct {
	httpClient ai.HTTPClient
	text       *content.TextProcessor
}

// NewArticleFetcher creates a new HTTP article fetcher
func NewArticleFetcher(httpClient ai.HTTPClient) *ArticleFetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: content.DefaultHTTPTimeout}
	}
	return &ArticleFetcher{httpClient: httpClient, text: content.NewTextProcessor()}
}

// Fetch downloads and extracts text from the given URL
func (f *ArticleFetcher) Fetch(ctx context.Context, rawURL string) (text, title string, err error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil || pageURL.Host == "" {
		return "", "", fmt.Errorf("invalid article URL %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), http.NoBody)
	if err != nil {
		return "", "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("failed to fetch article: status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read article: %w", err)
	}

	text, title = f.readable(body, pageURL)
	if text == "" {
		if text, title, err = f.fallback(body); err != nil {
			return "", "", err
		}
	}

	// limit article length for API calls
	return f.text.TruncateString(text, content.MaxArticleContentLength), title, nil
}

// readable extracts the main content with the readability algorithm
func (f *ArticleFetcher) readable(body []byte, pageURL *url.URL) (text, title string) {
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return "", ""
	}
	return strings.TrimSpace(article.TextContent), strings.TrimSpace(article.Title)
}

// fallback extracts paragraphs from common article containers
func (f *ArticleFetcher) fallback(body []byte) (text, title string, err error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	title = strings.TrimSpace(doc.Find("title").First().Text())

	var articleText strings.Builder
	article := doc.Find("article, .article, .post, .content, main")
	if article.Length() > 0 {
		article.Find("p").Each(func(_ int, s *goquery.Selection) {
			articleText.WriteString(s.Text())
			articleText.WriteString("\n\n")
		})
	} else {
		// skip very short paragraphs which are likely not article content
		doc.Find("p").Each(func(_ int, s *goquery.Selection) {
			if len(s.Text()) > content.DisplayTruncateLength {
				articleText.WriteString(s.Text())
				articleText.WriteString("\n\n")
			}
		})
	}
	return strings.TrimSpace(articleText.String()), title, nil
}
