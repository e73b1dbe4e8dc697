package llmtools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/creativitylabs/llm-tools/api"
	"github.com/creativitylabs/llm-tools/internal/diag"
	"github.com/creativitylabs/llm-tools/internal/httputil"
)

const (
	completionsPath     = "/v1/completions"
	chatCompletionsPath = "/v1/chat/completions"
	healthPath          = "/health"
)

// Client is a thin client for a vLLM server's OpenAI-compatible API.
// It issues one blocking request per call and never retries.
type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	cfg = cfg.withDefaults()
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = httputil.NewClient(cfg.Timeout)
	}
	return &Client{cfg: cfg, http: httpClient}
}

// Exchange is the outcome of one request: the raw body as the server
// sent it, the decoded envelope, and the measured wall-clock latency.
type Exchange struct {
	Body     []byte
	Response api.Response
	Elapsed  time.Duration
}

// Completion sends a text completion request.
func (c *Client) Completion(ctx context.Context, payload api.CompletionPayload) (*Exchange, error) {
	return c.post(ctx, completionsPath, payload)
}

// Chat sends a chat completion request.
func (c *Client) Chat(ctx context.Context, payload api.ChatPayload) (*Exchange, error) {
	return c.post(ctx, chatCompletionsPath, payload)
}

func (c *Client) post(ctx context.Context, path string, payload any) (*Exchange, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	diag.LogJSON(c.cfg.Debug, "request "+path, payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := httputil.ReadBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", path, err)
	}
	elapsed := time.Since(start)
	diag.LogBody(c.cfg.Debug, "response "+path, body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("request %s failed with status %d: %s", path, resp.StatusCode, string(body))
	}

	out := &Exchange{Body: body, Elapsed: elapsed}
	if err := json.Unmarshal(body, &out.Response); err != nil {
		return nil, fmt.Errorf("decode response from %s: %w", path, err)
	}
	return out, nil
}

// Health probes GET /health; any 2xx status passes.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+healthPath, nil)
	if err != nil {
		return err
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("health check failed with status %d", resp.StatusCode)
	}
	return nil
}
