package llmtools

import (
	"net/http"
	"strings"
	"time"

	"github.com/creativitylabs/llm-tools/internal/httputil"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultModel   = "meta-llama/Meta-Llama-3.1-8B-Instruct"
)

// Config provides shared configuration for the vLLM client.
// Only BaseURL is meaningful for unauthenticated deployments; APIKey
// covers servers sitting behind an authenticating proxy.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Debug   bool

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

func (cfg Config) withDefaults() Config {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = httputil.DefaultTimeout
	}
	return cfg
}
