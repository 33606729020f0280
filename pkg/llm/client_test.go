package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hugohenrick/chatbot-varejo/pkg/logger/loggertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchFallback(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "object body with generated text",
			status:   http.StatusOK,
			body:     `{"generated_text": "I don't know."}`,
			expected: "I don't know.",
		},
		{
			name:     "array body with generated text",
			status:   http.StatusOK,
			body:     `[{"generated_text": "hello there"}]`,
			expected: "hello there",
		},
		{
			name:     "success without generated text falls back to default",
			status:   http.StatusOK,
			body:     `{"other_field": "x"}`,
			expected: defaultMessage,
		},
		{
			name:     "empty array falls back to default",
			status:   http.StatusOK,
			body:     `[]`,
			expected: defaultMessage,
		},
		{
			name:     "server error degrades to apology",
			status:   http.StatusInternalServerError,
			body:     `{"error": "model overloaded"}`,
			expected: apologyMessage,
		},
		{
			name:     "rate limited degrades to apology",
			status:   http.StatusTooManyRequests,
			body:     ``,
			expected: apologyMessage,
		},
		{
			name:     "malformed body degrades to apology",
			status:   http.StatusOK,
			body:     `not json at all`,
			expected: apologyMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewFallbackClient(server.URL, "", loggertest.New(t))
			response := client.FetchFallback(context.Background(), "what is the weather")

			assert.Equal(t, tt.expected, response)
		})
	}
}

func TestFetchFallbackTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // derruba o servidor antes da chamada

	client := NewFallbackClient(server.URL, "", loggertest.New(t))
	response := client.FetchFallback(context.Background(), "hello")

	assert.Equal(t, apologyMessage, response)
}

func TestFetchFallbackSendsInputsAndAuth(t *testing.T) {
	var gotBody string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"generated_text": "ok"}`))
	}))
	defer server.Close()

	client := NewFallbackClient(server.URL, "secret-key", loggertest.New(t))
	response := client.FetchFallback(context.Background(), "any question")

	require.Equal(t, "ok", response)
	assert.JSONEq(t, `{"inputs": "any question"}`, gotBody)
	assert.Equal(t, "Bearer secret-key", gotAuth)
}

func TestNewFallbackClientDefaultEndpoint(t *testing.T) {
	client := NewFallbackClient("", "", loggertest.New(t))
	assert.Equal(t, DefaultEndpoint, client.endpoint)
}
