package research

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/podcraft-ai/podcraft/internal/ai"
	"github.com/podcraft-ai/podcraft/internal/content"
)

// DefaultRecapURL is the daily NBA results page
const DefaultRecapURL = "http://www.insidehoops.com/daily.shtml"

const recapDateLayout = "Monday, January 02, 2006"

// RecapNote introduces the recap in the script prompt
const RecapNote = "The following is a recap of yesterday's NBA games. Use this information:\n"

// ErrRecapNotFound means the page has no section for yesterday
var ErrRecapNotFound = errors.New("recap markers not found")

// NBARecap scrapes the recap of yesterday's games
type NBARecap struct {
	url        string
	httpClient ai.HTTPClient
	now        func() time.Time
}

// NewNBARecap creates a scraper for the daily page at url
func NewNBARecap(url string, httpClient ai.HTTPClient) *NBARecap {
	if url == "" {
		url = DefaultRecapURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: content.DefaultHTTPTimeout}
	}
	return &NBARecap{url: url, httpClient: httpClient, now: time.Now}
}

// IsNBATopic reports whether the topic asks for the daily basketball recap
func IsNBATopic(topic string) bool {
	switch strings.ToLower(strings.TrimSpace(topic)) {
	case "nba", "basketball":
		return true
	}
	return false
}

// Recap returns the text between yesterday's and the day before's "NBA Daily For" headers
func (n *NBARecap) Recap(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch recap page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch recap page: status code %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	today := n.now()
	start := "NBA Daily For " + today.AddDate(0, 0, -1).Format(recapDateLayout)
	end := "NBA Daily For " + today.AddDate(0, 0, -2).Format(recapDateLayout)
	return extractRecap(doc, start, end)
}

// extractRecap collects the text nodes that follow the start marker up to the end marker
func extractRecap(doc *goquery.Document, start, end string) (string, error) {
	startSel := findBold(doc, start)
	endSel := findBold(doc, end)
	if startSel == nil || endSel == nil {
		return "", fmt.Errorf("%w: %q / %q", ErrRecapNotFound, start, end)
	}

	// the start marker's own text dates the recap, so it is kept
	var parts []string
	afterMarker, body := skipSubtree(startSel), 0
	for node := nextNode(startSel); node != nil && node != endSel; node = nextNode(node) {
		if node == afterMarker {
			afterMarker = nil
		}
		if node.Type != html.TextNode {
			continue
		}
		if text := strings.Join(strings.Fields(node.Data), " "); text != "" {
			parts = append(parts, text)
			if afterMarker == nil {
				body++
			}
		}
	}
	if body == 0 {
		return "", fmt.Errorf("%w: empty section", ErrRecapNotFound)
	}
	return "Recap of yesterday's games: " + strings.Join(parts, " "), nil
}

func findBold(doc *goquery.Document, marker string) *html.Node {
	sel := doc.Find("b").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), marker)
	}).First()
	if sel.Length() == 0 {
		return nil
	}
	return sel.Get(0)
}

// nextNode returns the node after n in document order
func nextNode(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	return skipSubtree(n)
}

// skipSubtree returns the node after n and all of its descendants in document order
func skipSubtree(n *html.Node) *html.Node {
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}
