package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDefaults mirrors the flag surface that makes sense to pin in a
// defaults file. Pointer fields distinguish "absent" from zero.
type fileDefaults struct {
	URL               *string  `yaml:"url"`
	APIKey            *string  `yaml:"api_key"`
	Model             *string  `yaml:"model"`
	MaxTokens         *int     `yaml:"max_tokens"`
	MinTokens         *int     `yaml:"min_tokens"`
	Temperature       *float64 `yaml:"temperature"`
	TopP              *float64 `yaml:"top_p"`
	TopK              *int     `yaml:"top_k"`
	FrequencyPenalty  *float64 `yaml:"frequency_penalty"`
	PresencePenalty   *float64 `yaml:"presence_penalty"`
	RepetitionPenalty *float64 `yaml:"repetition_penalty"`
	Stop              []string `yaml:"stop"`
	N                 *int     `yaml:"n"`
}

func loadDefaults(path string) (*fileDefaults, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg fileDefaults
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	return &cfg, nil
}

// applyDefaults fills options from the defaults file for every flag
// the user did not set explicitly.
func applyDefaults(opts *options, d *fileDefaults, set map[string]bool) {
	if d.URL != nil && !set["url"] {
		opts.URL = *d.URL
	}
	if d.APIKey != nil && !set["api-key"] {
		opts.APIKey = *d.APIKey
	}
	if d.Model != nil && !set["model"] {
		opts.Model = *d.Model
	}
	if d.MaxTokens != nil && !set["max-tokens"] {
		opts.Params.MaxTokens = *d.MaxTokens
	}
	if d.MinTokens != nil && !set["min-tokens"] {
		opts.Params.MinTokens = *d.MinTokens
	}
	if d.Temperature != nil && !set["temperature"] {
		opts.Params.Temperature = *d.Temperature
	}
	if d.TopP != nil && !set["top-p"] {
		opts.Params.TopP = *d.TopP
	}
	if d.TopK != nil && !set["top-k"] {
		opts.Params.TopK = *d.TopK
	}
	if d.FrequencyPenalty != nil && !set["frequency-penalty"] {
		opts.Params.FrequencyPenalty = *d.FrequencyPenalty
	}
	if d.PresencePenalty != nil && !set["presence-penalty"] {
		opts.Params.PresencePenalty = *d.PresencePenalty
	}
	if d.RepetitionPenalty != nil && !set["repetition-penalty"] {
		opts.Params.RepetitionPenalty = *d.RepetitionPenalty
	}
	if len(d.Stop) > 0 && !set["stop"] {
		opts.Params.Stop = append([]string{}, d.Stop...)
	}
	if d.N != nil && !set["n"] {
		opts.Params.N = *d.N
	}
}
