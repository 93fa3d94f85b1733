package script

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/podcraft-ai/podcraft/internal/content"
	"github.com/podcraft-ai/podcraft/podcast"
)

const (
	nextSegmentPrompt = "write the next segment of the podcast. Do not announce that the segment is starting " +
		"or that it is a new topic. Just go straight into the discussion."
	lastSegmentPrompt = "write the last segment of the podcast. After the segment, write an outro to the podcast."
)

// Assembler drives a chat session through the segment loop and collects the raw script
type Assembler struct {
	chat     podcast.ChatStarter
	hosts    [2]podcast.Host
	segments int
	logger   *slog.Logger
}

// NewAssembler creates an assembler producing the given number of segments
func NewAssembler(chat podcast.ChatStarter, hosts [2]podcast.Host, segments int, logger *slog.Logger) *Assembler {
	if segments < 1 {
		segments = content.DefaultSegments
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		chat:     chat,
		hosts:    hosts,
		segments: segments,
		logger:   logger.With("component", "assembler"),
	}
}

// Assemble sends one request per segment over a single session and concatenates every streamed fragment.
// Any failure aborts the whole script.
func (a *Assembler) Assemble(ctx context.Context, topic, background string) (string, error) {
	topic = podcast.NormalizeTopic(topic)

	session, err := a.chat.StartChat(ctx)
	if err != nil {
		return "", podcast.Wrap(podcast.ErrUpstream, "start chat", err)
	}

	var raw strings.Builder
	for i, prompt := range a.Prompts(topic, background) {
		before := raw.Len()
		for fragment, err := range session.Send(ctx, prompt) {
			if err != nil {
				return "", podcast.Wrap(podcast.ErrUpstream, fmt.Sprintf("send segment %d", i+1), err)
			}
			raw.WriteString(fragment)
		}
		a.logger.Debug("segment received", "segment", i+1, "of", a.segments, "chars", raw.Len()-before)
	}

	a.logger.Info("script assembled", "topic", topic, "segments", a.segments, "chars", raw.Len())
	return raw.String(), nil
}

// Prompts returns the ordered requests of the segment loop
func (a *Assembler) Prompts(topic, background string) []string {
	prompts := make([]string, 0, a.segments)
	prompts = append(prompts, a.framingPrompt(topic, background))
	for i := 2; i <= a.segments; i++ {
		if i == a.segments {
			prompts = append(prompts, lastSegmentPrompt)
			continue
		}
		prompts = append(prompts, nextSegmentPrompt)
	}
	return prompts
}

func (a *Assembler) framingPrompt(topic, background string) string {
	h1, h2 := a.hosts[0], a.hosts[1]

	var sb strings.Builder
	if background = strings.TrimSpace(background); background != "" {
		fmt.Fprintf(&sb, "Considering the following information: '%s', ", background)
	}
	fmt.Fprintf(&sb, "write a podcast dialogue inspired by the topic '%s'. ", topic)
	sb.WriteString("The podcast's content should be updated to news from the past week. ")
	fmt.Fprintf(&sb, "The podcast is called %s and it is two people (%s and %s) talking about %s. ",
		podcast.ShowName, h1.Name, h2.Name, topic)
	fmt.Fprintf(&sb, "%s: %s %s: %s ", h1.Name, h1.Character, h2.Name, h2.Character)
	sb.WriteString("If the topic is too broad you can narrow it down to something more specific, but keep it " +
		"close to recent news. ")
	fmt.Fprintf(&sb, "Introduce the podcast with %s talking first, choose a topic for the first segment and write "+
		"the conversation for it. ", h1.Name)
	sb.WriteString("Keep the podcast dynamics between the hosts: critical thinking, openness to new ideas and " +
		"opinions, creativity, some teasing. Add jokes and puns but never say that you are trying to be funny. " +
		"If the topic is not appropriate for laughing at, keep it serious. Don't add any more people to the " +
		"conversation (no guests). ")
	fmt.Fprintf(&sb, "Prefix every line with the speaker name like '%s:' and put a newline between the hosts' "+
		"lines. ", h1.Name)

	if a.segments == 1 {
		sb.WriteString("The show has a single segment. After the segment, write an outro to the podcast.")
		return sb.String()
	}
	fmt.Fprintf(&sb, "The show should have %d segments. Stop before the end of this segment, wait and I will "+
		"tell you how to continue. Don't mention or announce that a segment is over, just stop the dialogue.",
		a.segments)
	return sb.String()
}
