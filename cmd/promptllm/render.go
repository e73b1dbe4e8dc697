package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/creativitylabs/llm-tools/api"
)

const (
	sepWidth     = 60
	noChoicesMsg = "no completion choices returned"
)

func sep() string  { return strings.Repeat("=", sepWidth) }
func rule() string { return strings.Repeat("-", sepWidth) }

func printBanner(w io.Writer, o *options) {
	fmt.Fprintf(w, "\n%s\n", sep())
	fmt.Fprintf(w, "promptllm: %s mode\n", o.Mode)
	fmt.Fprintf(w, "%s\n", sep())
	fmt.Fprintf(w, "url=%s model=%s\n", o.URL, o.Model)

	p := o.Params
	fmt.Fprintf(w, "max_tokens=%d temperature=%g top_p=%g\n", p.MaxTokens, p.Temperature, p.TopP)

	extras := make([]string, 0, 8)
	if p.TopK > 0 {
		extras = append(extras, fmt.Sprintf("top_k=%d", p.TopK))
	}
	if p.FrequencyPenalty != 0 {
		extras = append(extras, fmt.Sprintf("frequency_penalty=%g", p.FrequencyPenalty))
	}
	if p.PresencePenalty != 0 {
		extras = append(extras, fmt.Sprintf("presence_penalty=%g", p.PresencePenalty))
	}
	if p.RepetitionPenalty != api.DefaultRepetitionPenalty {
		extras = append(extras, fmt.Sprintf("repetition_penalty=%g", p.RepetitionPenalty))
	}
	if len(p.Stop) > 0 {
		extras = append(extras, fmt.Sprintf("stop=%q", p.Stop))
	}
	if p.N > 1 {
		extras = append(extras, fmt.Sprintf("n=%d", p.N))
	}
	if p.UseBeamSearch {
		extras = append(extras, fmt.Sprintf("use_beam_search=true length_penalty=%g", p.LengthPenalty))
	}
	if len(extras) > 0 {
		fmt.Fprintln(w, strings.Join(extras, " "))
	}

	fmt.Fprintf(w, "%s\n", rule())
	if o.Mode == api.ModeChat {
		if o.System != "" {
			fmt.Fprintf(w, "system: %s\n", o.System)
		}
		fmt.Fprintf(w, "user: %s\n", o.UserMessage)
	} else {
		fmt.Fprintf(w, "prompt: %s\n", o.Prompt)
	}
	fmt.Fprintf(w, "%s\n", rule())
}

// renderHuman writes the generated text, one block per choice, with a
// numbered banner when the server returned more than one.
func renderHuman(w io.Writer, resp *api.Response, elapsed time.Duration, showMeta bool) {
	if len(resp.Choices) == 0 {
		fmt.Fprintln(w, noChoicesMsg)
	}

	for i, choice := range resp.Choices {
		if len(resp.Choices) > 1 {
			fmt.Fprintf(w, "\n%s\ncompletion %d:\n%s\n", sep(), i+1, sep())
		}
		fmt.Fprintln(w, choice.Content())

		if showMeta {
			fmt.Fprintf(w, "\n%s\n", rule())
			reason := choice.FinishReason
			if reason == "" {
				reason = "N/A"
			}
			fmt.Fprintf(w, "Finish reason: %s\n", reason)
			if choice.LogProbs != nil {
				fmt.Fprintln(w, "Logprobs available: yes")
			}
		}
	}

	if showMeta {
		fmt.Fprintf(w, "\n%s\n", rule())
		fmt.Fprintf(w, "Request latency: %.3fs\n", elapsed.Seconds())
		if resp.Usage.CompletionTokens > 0 && elapsed > 0 {
			fmt.Fprintf(w, "Tokens per second: %.2f\n", float64(resp.Usage.CompletionTokens)/elapsed.Seconds())
		}
		fmt.Fprintf(w, "Prompt tokens: %d\n", resp.Usage.PromptTokens)
		fmt.Fprintf(w, "Completion tokens: %d\n", resp.Usage.CompletionTokens)
		fmt.Fprintf(w, "Total tokens: %d\n", resp.Usage.TotalTokens)
	}
}

type timingInfo struct {
	RequestLatencySeconds float64  `json:"request_latency_seconds"`
	TokensPerSecond       *float64 `json:"tokens_per_second"`
}

// renderJSON injects a _timing object into the raw server response and
// re-indents it. The server's own fields pass through untouched.
func renderJSON(raw []byte, elapsed time.Duration) ([]byte, error) {
	timing := timingInfo{RequestLatencySeconds: round(elapsed.Seconds(), 3)}
	if completion := gjson.GetBytes(raw, "usage.completion_tokens").Int(); completion > 0 && elapsed > 0 {
		tps := round(float64(completion)/elapsed.Seconds(), 2)
		timing.TokensPerSecond = &tps
	}

	out, err := sjson.SetBytes(raw, "_timing", timing)
	if err != nil {
		return nil, fmt.Errorf("inject timing info: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, out, "", "  "); err != nil {
		return out, nil
	}
	return buf.Bytes(), nil
}

func round(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}
