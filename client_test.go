package llmtools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/creativitylabs/llm-tools/api"
)

const completionBody = `{
	"id": "cmpl-1",
	"object": "text_completion",
	"created": 1700000000,
	"model": "llama",
	"choices": [{"index": 0, "text": " Paris.", "finish_reason": "stop"}],
	"usage": {"prompt_tokens": 5, "completion_tokens": 3, "total_tokens": 8}
}`

func TestCompletion(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL + "/", APIKey: "secret"})
	ex, err := client.Completion(context.Background(), api.BuildCompletion("llama", "The capital of France is", api.DefaultParams()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1/completions" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("unexpected authorization header: %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type: %q", gotContentType)
	}
	if len(ex.Body) == 0 {
		t.Fatal("raw body must be kept")
	}
	if ex.Elapsed <= 0 {
		t.Fatalf("elapsed must be positive, got %v", ex.Elapsed)
	}
	if len(ex.Response.Choices) != 1 || ex.Response.Choices[0].Content() != " Paris." {
		t.Fatalf("unexpected choices: %+v", ex.Response.Choices)
	}
	if ex.Response.Usage.TotalTokens != 8 {
		t.Fatalf("unexpected usage: %+v", ex.Response.Usage)
	}
}

func TestChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "llama",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "4."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 2, "total_tokens": 14}
		}`))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	ex, err := client.Chat(context.Background(), api.BuildChat("llama", "", "What is 2+2?", api.DefaultParams()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ex.Response.Choices[0].Content(); got != "4." {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestCompletionErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "model not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	_, err := client.Completion(context.Background(), api.BuildCompletion("missing", "hi", api.DefaultParams()))
	if err == nil {
		t.Fatal("expected error")
	}
	for _, s := range []string{"status 404", "model not found"} {
		if !strings.Contains(err.Error(), s) {
			t.Fatalf("error missing %q: %v", s, err)
		}
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path: %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHealthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	err := client.Health(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status 503") {
		t.Fatalf("error missing status: %v", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("unexpected base url: %q", cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		t.Fatalf("timeout must be set, got %v", cfg.Timeout)
	}

	cfg = Config{BaseURL: "http://host:8000///"}.withDefaults()
	if cfg.BaseURL != "http://host:8000" {
		t.Fatalf("trailing slashes must be trimmed, got %q", cfg.BaseURL)
	}
}
