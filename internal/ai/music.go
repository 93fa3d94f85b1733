package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/podcraft-ai/podcraft/internal/content"
)

//go:generate moq -out mocks/http_client.go -pkg mocks -skip-ensure -fmt goimports . HTTPClient

// HTTPClient defines the interface for HTTP client operations
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultMusicEndpoint is the hosted MusicGen inference endpoint
const DefaultMusicEndpoint = "https://api-inference.huggingface.co/models/facebook/musicgen-small"

// MusicClient generates short music clips from a text description
type MusicClient struct {
	endpoint   string
	token      string
	httpClient HTTPClient
}

// NewMusicClient creates a new music generation client
func NewMusicClient(endpoint, token string, httpClient HTTPClient) *MusicClient {
	if endpoint == "" {
		endpoint = DefaultMusicEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: content.MusicHTTPTimeout}
	}
	return &MusicClient{endpoint: endpoint, token: token, httpClient: httpClient}
}

type musicRequest struct {
	Inputs     string          `json:"inputs"`
	Parameters musicParameters `json:"parameters"`
}

type musicParameters struct {
	Duration int `json:"duration"`
}

// Generate returns the encoded audio (wav) for the description
func (m *MusicClient) Generate(ctx context.Context, description string, duration time.Duration) ([]byte, error) {
	body, err := json.Marshal(musicRequest{
		Inputs:     description,
		Parameters: musicParameters{Duration: int(duration.Seconds())},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/wav")
	if m.token != "" {
		req.Header.Set("Authorization", "Bearer "+m.token)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("music request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("music request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "audio/") {
		return nil, fmt.Errorf("unexpected music response content type %q", ct)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read music response: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty music response")
	}
	return data, nil
}
