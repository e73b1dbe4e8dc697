package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	llmtools "github.com/creativitylabs/llm-tools"
	"github.com/creativitylabs/llm-tools/api"
)

type options struct {
	URL         string
	APIKey      string
	Model       string
	Mode        string
	Prompt      string
	System      string
	UserMessage string
	ConfigPath  string

	Params api.Params

	ShowMetadata bool
	JSONOutput   bool
	Debug        bool
}

// stringList implements flag.Value for repeatable flags.
type stringList []string

func (s *stringList) String() string     { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error { *s = append(*s, v); return nil }

func parseArgs(args []string) (*options, error) {
	fs := flag.NewFlagSet("promptllm", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts options
	var stop stringList
	p := api.DefaultParams()

	fs.StringVar(&opts.ConfigPath, "config", "", "optional yaml file with default values")
	fs.StringVar(&opts.URL, "url", envOrDefault("LLM_API_URL", llmtools.DefaultBaseURL), "base URL of the LLM API")
	fs.StringVar(&opts.APIKey, "api-key", strings.TrimSpace(os.Getenv("LLM_API_KEY")), "bearer token sent with each request")
	fs.StringVar(&opts.Model, "model", envOrDefault("LLM_MODEL", llmtools.DefaultModel), "model name")
	fs.StringVar(&opts.Mode, "mode", api.ModeCompletion, "api mode: completion|chat")
	fs.StringVar(&opts.Prompt, "prompt", "", "text prompt (required for completion mode)")
	fs.StringVar(&opts.System, "system", "", "system message for chat mode")
	fs.StringVar(&opts.UserMessage, "user-message", "", "user message (required for chat mode)")

	fs.IntVar(&p.MaxTokens, "max-tokens", p.MaxTokens, "maximum tokens to generate")
	fs.IntVar(&p.MinTokens, "min-tokens", p.MinTokens, "minimum tokens to generate")
	fs.Float64Var(&p.Temperature, "temperature", p.Temperature, "sampling temperature 0.0-2.0, lower is more deterministic")
	fs.Float64Var(&p.TopP, "top-p", p.TopP, "nucleus sampling threshold 0.0-1.0")
	fs.IntVar(&p.TopK, "top-k", p.TopK, "top-k sampling, -1 to disable")
	fs.Float64Var(&p.FrequencyPenalty, "frequency-penalty", p.FrequencyPenalty, "frequency penalty -2.0 to 2.0")
	fs.Float64Var(&p.PresencePenalty, "presence-penalty", p.PresencePenalty, "presence penalty -2.0 to 2.0")
	fs.Float64Var(&p.RepetitionPenalty, "repetition-penalty", p.RepetitionPenalty, "repetition penalty, >1.0 penalizes repetition")
	fs.Var(&stop, "stop", "stop sequence (may be repeated)")
	fs.IntVar(&p.N, "n", p.N, "number of completions to generate")
	fs.IntVar(&p.BestOf, "best-of", p.BestOf, "generate best_of completions and return the best n (completion mode only)")
	fs.BoolVar(&p.UseBeamSearch, "use-beam-search", p.UseBeamSearch, "use beam search instead of sampling (completion mode only)")
	fs.Float64Var(&p.LengthPenalty, "length-penalty", p.LengthPenalty, "length penalty for beam search")
	fs.BoolVar(&p.Echo, "echo", p.Echo, "echo the prompt in the response (completion mode only)")
	fs.IntVar(&p.LogProbs, "logprobs", p.LogProbs, "return top N log probabilities per token")
	fs.BoolVar(&p.Stream, "stream", p.Stream, "stream the response (accepted but not implemented)")

	fs.BoolVar(&opts.ShowMetadata, "show-metadata", false, "show finish reason, latency and token usage")
	fs.BoolVar(&opts.JSONOutput, "json", false, "print the raw JSON response with timing info")
	fs.BoolVar(&opts.Debug, "debug", envBool("LLM_DEBUG"), "log request and response payloads")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("unexpected argument %q", rest[0])
	}

	opts.Params = p
	opts.Params.Stop = stop

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if strings.TrimSpace(opts.ConfigPath) != "" {
		defaults, err := loadDefaults(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		applyDefaults(&opts, defaults, set)
	}

	opts.Mode = strings.ToLower(strings.TrimSpace(opts.Mode))
	switch opts.Mode {
	case api.ModeCompletion, api.ModeChat:
	default:
		return nil, fmt.Errorf("unsupported mode %q (supported: %s, %s)", opts.Mode, api.ModeCompletion, api.ModeChat)
	}
	if opts.Mode == api.ModeCompletion && strings.TrimSpace(opts.Prompt) == "" {
		return nil, fmt.Errorf("--prompt is required for completion mode")
	}
	if opts.Mode == api.ModeChat && strings.TrimSpace(opts.UserMessage) == "" {
		return nil, fmt.Errorf("--user-message is required for chat mode")
	}

	return &opts, nil
}

func envOrDefault(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func envBool(name string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes":
		return true
	}
	return false
}
