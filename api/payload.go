package api

// CompletionPayload is the wire body for POST /v1/completions.
// The always-on fields are serialized even at their zero values; the
// optional block is populated by BuildCompletion only when a knob
// differs from its server-side default, keeping payloads minimal.
type CompletionPayload struct {
	Model            string  `json:"model"`
	Prompt           string  `json:"prompt"`
	MaxTokens        int     `json:"max_tokens"`
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"top_p"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty"`
	Stream           bool    `json:"stream"`
	N                int     `json:"n"`
	Echo             bool    `json:"echo"`

	TopK              int      `json:"top_k,omitempty"`
	RepetitionPenalty *float64 `json:"repetition_penalty,omitempty"`
	Stop              []string `json:"stop,omitempty"`
	BestOf            int      `json:"best_of,omitempty"`
	LogProbs          int      `json:"logprobs,omitempty"`
	MinTokens         int      `json:"min_tokens,omitempty"`
	UseBeamSearch     bool     `json:"use_beam_search,omitempty"`
	LengthPenalty     *float64 `json:"length_penalty,omitempty"`
}

// ChatPayload is the wire body for POST /v1/chat/completions.
type ChatPayload struct {
	Model            string    `json:"model"`
	Messages         []Message `json:"messages"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	TopP             float64   `json:"top_p"`
	FrequencyPenalty float64   `json:"frequency_penalty"`
	PresencePenalty  float64   `json:"presence_penalty"`
	Stream           bool      `json:"stream"`
	N                int       `json:"n"`

	TopK              int      `json:"top_k,omitempty"`
	RepetitionPenalty *float64 `json:"repetition_penalty,omitempty"`
	Stop              []string `json:"stop,omitempty"`
	LogProbs          int      `json:"logprobs,omitempty"`
}

// BuildCompletion maps a parameter set onto a completion payload.
func BuildCompletion(model, prompt string, p Params) CompletionPayload {
	out := CompletionPayload{
		Model:            model,
		Prompt:           prompt,
		MaxTokens:        p.MaxTokens,
		Temperature:      p.Temperature,
		TopP:             p.TopP,
		FrequencyPenalty: p.FrequencyPenalty,
		PresencePenalty:  p.PresencePenalty,
		Stream:           p.Stream,
		N:                p.N,
		Echo:             p.Echo,
	}
	if p.TopK > 0 {
		out.TopK = p.TopK
	}
	if p.RepetitionPenalty != DefaultRepetitionPenalty {
		v := p.RepetitionPenalty
		out.RepetitionPenalty = &v
	}
	if len(p.Stop) > 0 {
		out.Stop = append([]string{}, p.Stop...)
	}
	if p.BestOf > 0 {
		out.BestOf = p.BestOf
	}
	if p.LogProbs > 0 {
		out.LogProbs = p.LogProbs
	}
	if p.MinTokens > 0 {
		out.MinTokens = p.MinTokens
	}
	if p.UseBeamSearch {
		out.UseBeamSearch = true
		v := p.LengthPenalty
		out.LengthPenalty = &v
	}
	return out
}

// BuildChat maps a parameter set onto a chat payload. Completion-only
// knobs (echo, best_of, min_tokens, beam search) are ignored here.
func BuildChat(model, system, user string, p Params) ChatPayload {
	out := ChatPayload{
		Model:            model,
		Messages:         BuildMessages(system, user),
		MaxTokens:        p.MaxTokens,
		Temperature:      p.Temperature,
		TopP:             p.TopP,
		FrequencyPenalty: p.FrequencyPenalty,
		PresencePenalty:  p.PresencePenalty,
		Stream:           p.Stream,
		N:                p.N,
	}
	if p.TopK > 0 {
		out.TopK = p.TopK
	}
	if p.RepetitionPenalty != DefaultRepetitionPenalty {
		v := p.RepetitionPenalty
		out.RepetitionPenalty = &v
	}
	if len(p.Stop) > 0 {
		out.Stop = append([]string{}, p.Stop...)
	}
	if p.LogProbs > 0 {
		out.LogProbs = p.LogProbs
	}
	return out
}
