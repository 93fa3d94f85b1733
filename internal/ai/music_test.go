package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podcraft-ai/podcraft/internal/ai/mocks"
)

func TestMusicClient_Generate(t *testing.T) {
	tests := []struct {
		name         string
		mockResponse *http.Response
		mockError    error
		expected     []byte
		expectedErr  string
	}{
		{
			name: "wav returned",
			mockResponse: &http.Response{
				StatusCode: http.StatusOK,
				Header:     http.Header{"Content-Type": []string{"audio/wav"}},
				Body:       io.NopCloser(strings.NewReader("RIFF....WAVE")),
			},
			expected: []byte("RIFF....WAVE"),
		},
		{
			name: "model loading",
			mockResponse: &http.Response{
				StatusCode: http.StatusServiceUnavailable,
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Body:       io.NopCloser(strings.NewReader(`{"error":"Model is currently loading"}`)),
			},
			expectedErr: "status 503",
		},
		{
			name: "json instead of audio",
			mockResponse: &http.Response{
				StatusCode: http.StatusOK,
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Body:       io.NopCloser(strings.NewReader(`{}`)),
			},
			expectedErr: "unexpected music response content type",
		},
		{
			name: "empty body",
			mockResponse: &http.Response{
				StatusCode: http.StatusOK,
				Header:     http.Header{"Content-Type": []string{"audio/wav"}},
				Body:       io.NopCloser(strings.NewReader("")),
			},
			expectedErr: "empty music response",
		},
		{
			name:        "transport error",
			mockError:   errors.New("connection refused"),
			expectedErr: "music request failed",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mockClient := &mocks.HTTPClientMock{
				DoFunc: func(req *http.Request) (*http.Response, error) {
					assert.Equal(t, http.MethodPost, req.Method)
					assert.Equal(t, "https://music.example.com/generate", req.URL.String())
					assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
					assert.Equal(t, "Bearer hf-token", req.Header.Get("Authorization"))

					var body musicRequest
					assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
					assert.Equal(t, "soothing and rhythmic music inspired by jazz", body.Inputs)
					assert.Equal(t, 7, body.Parameters.Duration)

					if test.mockError != nil {
						return nil, test.mockError
					}
					return test.mockResponse, nil
				},
			}

			client := NewMusicClient("https://music.example.com/generate", "hf-token", mockClient)
			data, err := client.Generate(context.Background(), "soothing and rhythmic music inspired by jazz", 7*time.Second)
			if test.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, data)
			assert.Len(t, mockClient.DoCalls(), 1)
		})
	}
}

func TestMusicClient_Defaults(t *testing.T) {
	client := NewMusicClient("", "", nil)
	assert.Equal(t, DefaultMusicEndpoint, client.endpoint)
	assert.NotNil(t, client.httpClient)
}

func TestMusicClient_NoToken(t *testing.T) {
	mockClient := &mocks.HTTPClientMock{
		DoFunc: func(req *http.Request) (*http.Response, error) {
			assert.Empty(t, req.Header.Get("Authorization"))
			return &http.Response{
				StatusCode: http.StatusOK,
				Header:     http.Header{"Content-Type": []string{"audio/x-wav"}},
				Body:       io.NopCloser(strings.NewReader("wav")),
			}, nil
		},
	}
	data, err := NewMusicClient("http://local/music", "", mockClient).Generate(context.Background(), "x", time.Second)
	require.NoError(t, err)
	assert.Equal(t, []byte("wav"), data)
}
