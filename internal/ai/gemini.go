package ai

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/podcraft-ai/podcraft/internal/content"
	"github.com/podcraft-ai/podcraft/podcast"
)

// DefaultChatModel is used when the config does not name one
const DefaultChatModel = "gemini-2.0-flash"

type contentStream func(ctx context.Context, contents []*genai.Content) iter.Seq2[*genai.GenerateContentResponse, error]

// GeminiService opens stateful chat sessions against the Gemini API
type GeminiService struct {
	stream contentStream
}

// NewGeminiService creates a Gemini client for the model
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	if model == "" {
		model = DefaultChatModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: content.OpenAIHTTPTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiService{
		stream: func(ctx context.Context, contents []*genai.Content) iter.Seq2[*genai.GenerateContentResponse, error] {
			return client.Models.GenerateContentStream(ctx, model, contents, nil)
		},
	}, nil
}

// StartChat opens a session with empty history
func (s *GeminiService) StartChat(_ context.Context) (podcast.ChatSession, error) {
	return &geminiChat{stream: s.stream}, nil
}

// geminiChat keeps the conversation history, every Send replays it with the new prompt appended
type geminiChat struct {
	mu      sync.Mutex
	stream  contentStream
	history []*genai.Content
}

// Send streams the reply to prompt, the reply joins the history once fully received
func (c *geminiChat) Send(ctx context.Context, prompt string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		c.mu.Lock()
		defer c.mu.Unlock()

		contents := append(c.history, textContent("user", prompt))
		var reply strings.Builder
		for chunk, err := range c.stream(ctx, contents) {
			if err != nil {
				yield("", fmt.Errorf("gemini stream failed: %w", err))
				return
			}
			text := responseText(chunk)
			if text == "" {
				continue
			}
			reply.WriteString(text)
			if !yield(text, nil) {
				return
			}
		}
		c.history = append(contents, textContent("model", reply.String()))
	}
}

func textContent(role, text string) *genai.Content {
	return &genai.Content{Role: role, Parts: []*genai.Part{genai.NewPartFromText(text)}}
}

// responseText joins the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && p.Text != "" {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}
