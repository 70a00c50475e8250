package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func chatServer(t *testing.T, status int, content string, seen *chatRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  ` + content + `  "}}]}`))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLLMClient_PrimaryAnswers(t *testing.T) {
	var seen chatRequest
	primary := chatServer(t, http.StatusOK, "Crush it, recruit.", &seen)

	client := NewLLMClient(LLMSettings{BaseURL: primary.URL, APIKey: "key", Model: "m", Timeout: time.Second})
	got, err := client.Complete(context.Background(), "sys", " question ")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "Crush it, recruit." {
		t.Errorf("Complete() = %q", got)
	}
	if seen.Model != "m" || len(seen.Messages) != 2 || seen.Messages[1].Content != "question" {
		t.Errorf("unexpected request %+v", seen)
	}
}

func TestLLMClient_FallsBackToSecondEndpoint(t *testing.T) {
	primary := chatServer(t, http.StatusTooManyRequests, "", nil)
	fallback := chatServer(t, http.StatusOK, "from ollama", nil)

	client := NewLLMClient(LLMSettings{
		BaseURL: primary.URL, APIKey: "key", Model: "m",
		FallbackURL: fallback.URL, FallbackModel: "mistral",
		Timeout: time.Second,
	})
	got, err := client.Complete(context.Background(), "sys", "q")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "from ollama" {
		t.Errorf("Complete() = %q, want from ollama", got)
	}
}

func TestLLMClient_SkipsPrimaryWithoutKey(t *testing.T) {
	client := NewLLMClient(LLMSettings{BaseURL: "http://unused", Model: "m"})
	if _, err := client.Complete(context.Background(), "s", "p"); !errors.Is(err, ErrNoLLMEndpoint) {
		t.Errorf("Complete() error = %v, want %v", err, ErrNoLLMEndpoint)
	}
}

func TestCompleteOr(t *testing.T) {
	failing := chatServer(t, http.StatusInternalServerError, "", nil)
	client := NewLLMClient(LLMSettings{BaseURL: failing.URL, APIKey: "key", Model: "m", Timeout: time.Second})

	if got := CompleteOr(context.Background(), client, "s", "p", "fallback"); got != "fallback" {
		t.Errorf("CompleteOr() = %q, want fallback", got)
	}
	if got := CompleteOr(context.Background(), nil, "s", "p", "fallback"); got != "fallback" {
		t.Errorf("CompleteOr(nil) = %q, want fallback", got)
	}
}

func TestGiphyClient_Random(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("tag") != "job hunt" || r.URL.Query().Get("api_key") != "k" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"images":{"original":{"url":"https://gif.example/cat.gif"}}}}`))
	}))
	defer server.Close()

	tests := []struct {
		name     string
		settings GiphySettings
		want     string
	}{
		{
			name:     "returns the original image",
			settings: GiphySettings{BaseURL: server.URL, APIKey: "k", Tag: "job hunt", Rating: "pg"},
			want:     "https://gif.example/cat.gif",
		},
		{
			name:     "falls back on a bad response",
			settings: GiphySettings{BaseURL: server.URL, APIKey: "k", Tag: "other"},
			want:     "fallback.gif",
		},
		{
			name:     "falls back without an API key",
			settings: GiphySettings{BaseURL: server.URL, Tag: "job hunt"},
			want:     "fallback.gif",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.settings.Fallback = "fallback.gif"
			if got := NewGiphyClient(tt.settings).Random(context.Background()); got != tt.want {
				t.Errorf("Random() = %q, want %q", got, tt.want)
			}
		})
	}
}
