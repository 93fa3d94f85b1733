package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAIService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewOpenAIService("test-key", "", option.WithBaseURL(server.URL+"/"), option.WithMaxRetries(0))
}

func TestOpenAIService_Rewrite(t *testing.T) {
	tests := []struct {
		name         string
		responseBody string
		expected     Completion
	}{
		{
			name:         "text returned",
			responseBody: `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-3.5-turbo","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"  Ofir: Hello  "}}]}`,
			expected:     Completion{Text: "Ofir: Hello", Status: CompletionOK},
		},
		{
			name:         "empty content",
			responseBody: `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-3.5-turbo","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":""}}]}`,
			expected:     Completion{Status: CompletionEmpty},
		},
		{
			name:         "no choices",
			responseBody: `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-3.5-turbo","choices":[]}`,
			expected:     Completion{Status: CompletionEmpty},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

				var body struct {
					Model    string `json:"model"`
					Messages []struct {
						Role    string `json:"role"`
						Content string `json:"content"`
					} `json:"messages"`
					Temperature float64 `json:"temperature"`
					MaxTokens   int     `json:"max_tokens"`
				}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, DefaultRewriteModel, body.Model)
				if assert.Len(t, body.Messages, 2) {
					assert.Equal(t, "system", body.Messages[0].Role)
					assert.Equal(t, "be an editor", body.Messages[0].Content)
					assert.Equal(t, "user", body.Messages[1].Role)
					assert.Equal(t, "the script", body.Messages[1].Content)
				}
				assert.InDelta(t, 0.7, body.Temperature, 0.001)
				assert.Equal(t, 4096, body.MaxTokens)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(test.responseBody))
			})

			result, err := service.Rewrite(context.Background(), "be an editor", "the script")
			require.NoError(t, err)
			assert.Equal(t, test.expected, result)
		})
	}
}

func TestOpenAIService_RewriteError(t *testing.T) {
	service := newTestOpenAI(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	})

	_, err := service.Rewrite(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to rewrite script")
}

func TestOpenAIService_Speech(t *testing.T) {
	service := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/audio/speech"), r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tts-1", body["model"])
		assert.Equal(t, "fable", body["voice"])
		assert.Equal(t, "Hello there", body["input"])
		assert.Equal(t, "mp3", body["response_format"])

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3-mp3-bytes"))
	})

	data, err := service.Speech(context.Background(), "Hello there", "fable")
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3-mp3-bytes"), data)
}

func TestOpenAIService_SpeechError(t *testing.T) {
	service := newTestOpenAI(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad voice"}}`))
	})

	_, err := service.Speech(context.Background(), "Hello", "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TTS request failed")
}

func TestOpenAIService_Embedding(t *testing.T) {
	service := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/embeddings"), r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "text-embedding-ada-002", body["model"])
		assert.Equal(t, "line one line two", body["input"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","model":"text-embedding-ada-002","data":[{"object":"embedding","index":0,"embedding":[0.1,0.2,0.3]}],"usage":{"prompt_tokens":4,"total_tokens":4}}`))
	})

	vec, err := service.Embedding(context.Background(), "line one\nline two")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vec)
}
