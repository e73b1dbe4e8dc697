package probe

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	llmtools "github.com/creativitylabs/llm-tools"
)

const (
	// GET probes are expected to answer immediately.
	GetTimeout = 5 * time.Second
	// Completion probes wait out a short generation.
	CompletionTimeout = 30 * time.Second
)

const (
	NameHealth         = "health"
	NameListModels     = "list models"
	NameChatCompletion = "chat completion"
	NameTextCompletion = "text completion"
)

const (
	chatProbeMessage   = "What is 2+2? Answer in one short sentence."
	textProbePrompt    = "The capital of France is"
	chatProbeMaxTokens = 50
	textProbeMaxTokens = 10
)

// Result is the outcome of one endpoint probe.
type Result struct {
	Name   string
	OK     bool
	Detail string
	Err    string
}

// Report accumulates probe results in execution order.
type Report struct {
	Results []Result
}

func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.OK {
			n++
		}
	}
	return n
}

func (r *Report) AllPassed() bool { return r.Passed() == len(r.Results) }

type Config struct {
	BaseURL    string
	Model      string
	APIKey     string
	SkipHealth bool

	// OnEvent, when set, receives each result as soon as its probe
	// finishes.
	OnEvent func(Result)
}

// Run exercises the server's endpoints sequentially. A failing probe
// is recorded and never stops the ones after it. The three API probes
// go through a stock OpenAI SDK client so the server is validated
// against an independent implementation of the wire schema.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("base url is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	sdkCfg := openai.DefaultConfig(cfg.APIKey)
	sdkCfg.BaseURL = base + "/v1"
	sdk := openai.NewClientWithConfig(sdkCfg)

	report := &Report{}
	record := func(res Result) {
		report.Results = append(report.Results, res)
		if cfg.OnEvent != nil {
			cfg.OnEvent(res)
		}
	}

	if !cfg.SkipHealth {
		record(probeHealth(ctx, base, cfg.APIKey))
	}
	record(probeListModels(ctx, sdk))
	record(probeChatCompletion(ctx, sdk, model))
	record(probeTextCompletion(ctx, sdk, model))

	return report, nil
}

func probeHealth(ctx context.Context, base, apiKey string) Result {
	ctx, cancel := context.WithTimeout(ctx, GetTimeout)
	defer cancel()

	client := llmtools.New(llmtools.Config{BaseURL: base, APIKey: apiKey, Timeout: GetTimeout})
	if err := client.Health(ctx); err != nil {
		return Result{Name: NameHealth, Err: err.Error()}
	}
	return Result{Name: NameHealth, OK: true}
}

func probeListModels(ctx context.Context, sdk *openai.Client) Result {
	ctx, cancel := context.WithTimeout(ctx, GetTimeout)
	defer cancel()

	resp, err := sdk.ListModels(ctx)
	if err != nil {
		return Result{Name: NameListModels, Err: err.Error()}
	}
	if len(resp.Models) == 0 {
		return Result{Name: NameListModels, Err: "no models in response"}
	}
	return Result{Name: NameListModels, OK: true, Detail: "found model: " + resp.Models[0].ID}
}

func probeChatCompletion(ctx context.Context, sdk *openai.Client, model string) Result {
	ctx, cancel := context.WithTimeout(ctx, CompletionTimeout)
	defer cancel()

	resp, err := sdk.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: chatProbeMessage},
		},
		MaxTokens:   chatProbeMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return Result{Name: NameChatCompletion, Err: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return Result{Name: NameChatCompletion, Err: "no choices in response"}
	}
	return Result{Name: NameChatCompletion, OK: true, Detail: strings.TrimSpace(resp.Choices[0].Message.Content)}
}

func probeTextCompletion(ctx context.Context, sdk *openai.Client, model string) Result {
	ctx, cancel := context.WithTimeout(ctx, CompletionTimeout)
	defer cancel()

	resp, err := sdk.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       model,
		Prompt:      textProbePrompt,
		MaxTokens:   textProbeMaxTokens,
		Temperature: 0.1,
	})
	if err != nil {
		return Result{Name: NameTextCompletion, Err: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return Result{Name: NameTextCompletion, Err: "no choices in response"}
	}
	return Result{Name: NameTextCompletion, OK: true, Detail: strings.TrimSpace(resp.Choices[0].Text)}
}
