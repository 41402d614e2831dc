package llm

import (
	"context"
	"encoding/json"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// Result is the raw generation outcome. Generation backends have drifted
// between field names over time, so the provider fills whichever fields it
// recognizes and keeps the undecoded body around. Callers probe Answer
// first, then OutputText, then fall back to stringifying Raw.
type Result struct {
	Answer     string          // primary answer field
	OutputText string          // alternate field some backends emit instead
	Raw        json.RawMessage // full response body
}

// Text extracts the answer with the tolerant field-probing order.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	if r.Answer != "" {
		return r.Answer
	}
	if r.OutputText != "" {
		return r.OutputText
	}
	return string(r.Raw)
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the raw result
	Chat(ctx context.Context, history []Message, options ...Option) (*Result, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (*Result, error)
}
