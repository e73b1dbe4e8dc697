package api

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	ModeCompletion = "completion"
	ModeChat       = "chat"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func System(text string) Message { return Message{Role: RoleSystem, Content: text} }
func User(text string) Message   { return Message{Role: RoleUser, Content: text} }

// BuildMessages assembles the chat message sequence: an optional
// system entry followed by exactly one user entry.
func BuildMessages(system, user string) []Message {
	msgs := make([]Message, 0, 2)
	if system != "" {
		msgs = append(msgs, System(system))
	}
	msgs = append(msgs, User(user))
	return msgs
}

// Params holds every inference knob the vLLM OpenAI-compatible API
// accepts. Zero-configured fields keep the server-side defaults; the
// payload builders decide which ones go on the wire.
type Params struct {
	MaxTokens         int
	MinTokens         int
	Temperature       float64
	TopP              float64
	TopK              int
	FrequencyPenalty  float64
	PresencePenalty   float64
	RepetitionPenalty float64
	Stop              []string
	N                 int
	BestOf            int
	LogProbs          int
	Echo              bool
	UseBeamSearch     bool
	LengthPenalty     float64
	Stream            bool
}

const (
	DefaultMaxTokens         = 512
	DefaultTemperature       = 0.7
	DefaultTopP              = 1.0
	DefaultTopK              = -1
	DefaultRepetitionPenalty = 1.0
	DefaultN                 = 1
	DefaultLengthPenalty     = 1.0
)

func DefaultParams() Params {
	return Params{
		MaxTokens:         DefaultMaxTokens,
		Temperature:       DefaultTemperature,
		TopP:              DefaultTopP,
		TopK:              DefaultTopK,
		RepetitionPenalty: DefaultRepetitionPenalty,
		N:                 DefaultN,
		LengthPenalty:     DefaultLengthPenalty,
	}
}
