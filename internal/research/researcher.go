package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/podcraft-ai/podcraft/internal/content"
)

type summarySource interface {
	Summaries(ctx context.Context, query string, limit int) ([]Article, error)
}

type recapSource interface {
	Recap(ctx context.Context) (string, error)
}

type articleSource interface {
	Fetch(ctx context.Context, rawURL string) (text, title string, err error)
}

// Researcher gathers background material for the script prompt.
// Failures are logged and leave the background empty, research never aborts a run.
type Researcher struct {
	wiki     summarySource
	embedder Embedder
	recap    recapSource
	articles articleSource
	logger   *slog.Logger
}

// NewResearcher creates a researcher, any source may be nil to disable it
func NewResearcher(wiki *Wikipedia, embedder Embedder, recap *NBARecap, articles *ArticleFetcher, logger *slog.Logger) *Researcher {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Researcher{embedder: embedder, logger: logger.With("component", "research")}
	// typed nils must not end up inside the interfaces
	if wiki != nil {
		r.wiki = wiki
	}
	if recap != nil {
		r.recap = recap
	}
	if articles != nil {
		r.articles = articles
	}
	return r
}

// Research returns the background text for topic, optionally extended with the article at contextURL
func (r *Researcher) Research(ctx context.Context, topic, contextURL string) string {
	var sb strings.Builder
	sb.WriteString(r.topicBackground(ctx, topic))

	if contextURL != "" && r.articles != nil {
		text, title, err := r.articles.Fetch(ctx, contextURL)
		switch {
		case err != nil:
			r.logger.Warn("article context unavailable", "url", contextURL, "error", err)
		case text != "":
			if sb.Len() > 0 {
				sb.WriteString("\n\n")
			}
			fmt.Fprintf(&sb, "Article %q: %s", title, text)
		}
	}
	return sb.String()
}

func (r *Researcher) topicBackground(ctx context.Context, topic string) string {
	if IsNBATopic(topic) && r.recap != nil {
		recap, err := r.recap.Recap(ctx)
		if err == nil {
			r.logger.Info("nba recap retrieved", "chars", len(recap))
			return RecapNote + recap
		}
		r.logger.Warn("nba recap unavailable, falling back to wikipedia", "error", err)
	}

	if r.wiki == nil {
		return ""
	}
	articles, err := r.wiki.Summaries(ctx, topic, content.WikipediaResults)
	if err != nil {
		r.logger.Warn("wikipedia lookup failed", "topic", topic, "error", err)
		return ""
	}
	if len(articles) == 0 {
		r.logger.Info("no wikipedia articles found", "topic", topic)
		return ""
	}

	best := articles[0]
	if r.embedder != nil {
		if best, err = MostRelevant(ctx, r.embedder, topic, articles); err != nil {
			r.logger.Warn("relevance ranking failed, using first result", "error", err)
			best = articles[0]
		}
	}
	r.logger.Info("most relevant article", "title", best.Title)
	return best.Summary
}
