package api

// LogProbs carries the per-token probability block a completion
// choice may include when logprobs were requested.
type LogProbs struct {
	Tokens        []string             `json:"tokens,omitempty"`
	TokenLogProbs []float64            `json:"token_logprobs,omitempty"`
	TopLogProbs   []map[string]float64 `json:"top_logprobs,omitempty"`
	TextOffset    []int                `json:"text_offset,omitempty"`
}

// Choice is one generated alternative. Completion responses fill
// Text; chat responses fill Message.
type Choice struct {
	Index        int       `json:"index"`
	Text         string    `json:"text,omitempty"`
	Message      *Message  `json:"message,omitempty"`
	FinishReason string    `json:"finish_reason"`
	LogProbs     *LogProbs `json:"logprobs,omitempty"`
}

// Content returns the generated text regardless of mode.
func (c Choice) Content() string {
	if c.Message != nil {
		return c.Message.Content
	}
	return c.Text
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the envelope both endpoints return.
type Response struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}
