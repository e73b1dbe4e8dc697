package api

import (
	"encoding/json"
	"testing"
)

func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	return m
}

func TestBuildCompletionDefaults(t *testing.T) {
	m := marshalToMap(t, BuildCompletion("llama", "hello", DefaultParams()))

	always := []string{
		"model", "prompt", "max_tokens", "temperature", "top_p",
		"frequency_penalty", "presence_penalty", "stream", "n", "echo",
	}
	for _, k := range always {
		if _, ok := m[k]; !ok {
			t.Fatalf("payload missing always-on key %q: %v", k, m)
		}
	}

	omitted := []string{
		"top_k", "repetition_penalty", "stop", "best_of",
		"logprobs", "min_tokens", "use_beam_search", "length_penalty",
	}
	for _, k := range omitted {
		if _, ok := m[k]; ok {
			t.Fatalf("default payload must omit %q: %v", k, m)
		}
	}

	if m["model"] != "llama" || m["prompt"] != "hello" {
		t.Fatalf("unexpected model/prompt: %v", m)
	}
	if m["max_tokens"] != float64(DefaultMaxTokens) {
		t.Fatalf("unexpected max_tokens: %v", m["max_tokens"])
	}
	if m["stream"] != false {
		t.Fatalf("stream must default to false, got %v", m["stream"])
	}
}

func TestBuildCompletionNonDefaults(t *testing.T) {
	p := DefaultParams()
	p.TopK = 40
	p.RepetitionPenalty = 1.2
	p.Stop = []string{"###", "\n\n"}
	p.BestOf = 4
	p.LogProbs = 5
	p.MinTokens = 8
	p.UseBeamSearch = true
	p.LengthPenalty = 0.8

	m := marshalToMap(t, BuildCompletion("llama", "hello", p))

	if m["top_k"] != float64(40) {
		t.Fatalf("unexpected top_k: %v", m["top_k"])
	}
	if m["repetition_penalty"] != 1.2 {
		t.Fatalf("unexpected repetition_penalty: %v", m["repetition_penalty"])
	}
	stop, ok := m["stop"].([]any)
	if !ok || len(stop) != 2 || stop[0] != "###" {
		t.Fatalf("unexpected stop: %v", m["stop"])
	}
	if m["best_of"] != float64(4) || m["logprobs"] != float64(5) || m["min_tokens"] != float64(8) {
		t.Fatalf("unexpected optional ints: %v", m)
	}
	if m["use_beam_search"] != true || m["length_penalty"] != 0.8 {
		t.Fatalf("unexpected beam search fields: %v", m)
	}
}

func TestBuildCompletionRepetitionPenaltyBelowOne(t *testing.T) {
	p := DefaultParams()
	p.RepetitionPenalty = 0.5

	m := marshalToMap(t, BuildCompletion("llama", "hello", p))
	if m["repetition_penalty"] != 0.5 {
		t.Fatalf("repetition_penalty 0.5 must be sent, got %v", m["repetition_penalty"])
	}
}

func TestBuildCompletionLengthPenaltyWithoutBeam(t *testing.T) {
	p := DefaultParams()
	p.LengthPenalty = 0.8

	m := marshalToMap(t, BuildCompletion("llama", "hello", p))
	if _, ok := m["length_penalty"]; ok {
		t.Fatalf("length_penalty must be omitted without beam search: %v", m)
	}
}

func TestBuildChat(t *testing.T) {
	p := DefaultParams()
	p.TopK = 10
	pl := BuildChat("llama", "be brief", "hi", p)

	if len(pl.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(pl.Messages))
	}
	if pl.Messages[0].Role != RoleSystem || pl.Messages[0].Content != "be brief" {
		t.Fatalf("unexpected system message: %+v", pl.Messages[0])
	}
	if pl.Messages[1].Role != RoleUser || pl.Messages[1].Content != "hi" {
		t.Fatalf("unexpected user message: %+v", pl.Messages[1])
	}

	m := marshalToMap(t, pl)
	if m["top_k"] != float64(10) {
		t.Fatalf("unexpected top_k: %v", m["top_k"])
	}
	for _, k := range []string{"echo", "best_of", "min_tokens", "use_beam_search", "length_penalty", "prompt"} {
		if _, ok := m[k]; ok {
			t.Fatalf("chat payload must not carry %q: %v", k, m)
		}
	}
}

func TestBuildChatNoSystem(t *testing.T) {
	pl := BuildChat("llama", "", "hi", DefaultParams())
	if len(pl.Messages) != 1 || pl.Messages[0].Role != RoleUser {
		t.Fatalf("unexpected messages without system: %+v", pl.Messages)
	}
}
