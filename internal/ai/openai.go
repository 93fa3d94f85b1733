package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/podcraft-ai/podcraft/internal/content"
)

// CompletionStatus tells whether the rewrite service produced any text
type CompletionStatus string

const (
	CompletionOK    CompletionStatus = "ok"
	CompletionEmpty CompletionStatus = "empty"
)

// Completion is the result of a single chat completion request
type Completion struct {
	Text   string
	Status CompletionStatus
}

// DefaultRewriteModel is used when the config does not name one
const DefaultRewriteModel = "gpt-3.5-turbo"

// OpenAIService implements OpenAI API interactions: script rewrite, speech synthesis and embeddings
type OpenAIService struct {
	client openai.Client
	model  string
}

// NewOpenAIService creates a new OpenAI service, opts are passed to the underlying client
func NewOpenAIService(apiKey, model string, opts ...option.RequestOption) *OpenAIService {
	if model == "" {
		model = DefaultRewriteModel
	}
	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: content.OpenAIHTTPTimeout}),
	}
	clientOpts = append(clientOpts, opts...)
	return &OpenAIService{
		client: openai.NewClient(clientOpts...),
		model:  model,
	}
}

// Rewrite sends one system+user exchange and returns the first choice
func (s *OpenAIService) Rewrite(ctx context.Context, system, user string) (Completion, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(content.RewriteTemperature),
		MaxTokens:   openai.Int(content.RewriteMaxTokens),
	})
	if err != nil {
		return Completion{}, fmt.Errorf("failed to rewrite script: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Completion{Status: CompletionEmpty}, nil
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return Completion{Status: CompletionEmpty}, nil
	}
	return Completion{Text: text, Status: CompletionOK}, nil
}

// Speech synthesizes text with the given voice and returns mp3 bytes
func (s *OpenAIService) Speech(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModelTTS1,
		Input:          text,
		Voice:          openai.AudioSpeechNewParamsVoice(voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return nil, fmt.Errorf("TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read TTS response: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty TTS response for voice %s", voice)
	}
	return data, nil
}

// Embedding returns the ada-002 embedding of the text
func (s *OpenAIService) Embedding(ctx context.Context, text string) ([]float64, error) {
	text = strings.ReplaceAll(text, "\n", " ")
	resp, err := s.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModelTextEmbeddingAda002,
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(text)},
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding in response")
	}
	return resp.Data[0].Embedding, nil
}
