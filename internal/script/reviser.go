package script

import (
	"context"
	"log/slog"
	"strings"

	"github.com/podcraft-ai/podcraft/internal/ai"
	"github.com/podcraft-ai/podcraft/internal/content"
	"github.com/podcraft-ai/podcraft/podcast"
)

//go:generate moq -out mocks/rewriter.go -pkg mocks -skip-ensure -fmt goimports . Rewriter

// Rewriter performs a single system+user completion
type Rewriter interface {
	Rewrite(ctx context.Context, system, user string) (ai.Completion, error)
}

// Reviser turns the merged dialogue into a clean, speakable script
type Reviser struct {
	rewriter Rewriter
	hosts    [2]string
	scrubber *content.Scrubber
	logger   *slog.Logger
}

// NewReviser creates a reviser for the two hosts
func NewReviser(rewriter Rewriter, hosts [2]string, logger *slog.Logger) *Reviser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reviser{
		rewriter: rewriter,
		hosts:    hosts,
		scrubber: content.NewScrubber(hosts),
		logger:   logger.With("component", "reviser"),
	}
}

// Revise rewrites the merged script once and scrubs the result, one spoken line per text line
func (r *Reviser) Revise(ctx context.Context, merged string) (string, error) {
	completion, err := r.rewriter.Rewrite(ctx, r.systemPrompt(), merged)
	if err != nil {
		return "", podcast.Wrap(podcast.ErrUpstream, "rewrite script", err)
	}

	text := completion.Text
	if completion.Status != ai.CompletionOK {
		r.logger.Warn("rewrite returned no text, using notice")
		text = content.NoRevisionMessage
	}

	lines := r.scrubber.Script(text)
	if len(lines) == 0 {
		r.logger.Warn("rewrite had no speakable lines, using notice")
		lines = []string{content.NoRevisionMessage}
	}
	r.logger.Info("script revised", "lines", len(lines))
	return strings.Join(lines, "\n"), nil
}

func (r *Reviser) systemPrompt() string {
	return "You are a highly skilled editor. Revise the following podcast script for better structure, flow, " +
		"coherence, fact checks and engagement. Simply take the script given to you and make it better. " +
		"If you see multiple outros, keep only the last one but still include the segments accompanying them. " +
		"Output only the script text itself: no comments, segment announcements or headlines from you. " +
		"Use every piece of information from the original text while keeping it coherent and logical. " +
		"Make it sound like a real conversation between two people and keep the dynamics " + r.hosts[0] +
		" and " + r.hosts[1] + " are having, including the jokes and puns. " +
		"Keep the same length as the script given to you."
}
