package llm

import (
	"context"
)

// Provider is the core abstraction for text generation.
// Consumers send a prompt and receive the service's free-form text.
type Provider interface {
	// Generate sends a prompt to the generation service and returns the
	// first candidate's text. Failures are typed: *ErrUnreachable,
	// *ErrEmptyResponse, *ErrService. Callers surface them to the user;
	// nothing here retries.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the generation service.
type Request struct {
	// System is the system prompt. Empty means none.
	System string

	// Messages is the conversation history. For single-turn generation
	// (the only case in Solvo), this contains one user message.
	Messages []Message

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the generation service's output.
type Response struct {
	// Text is the first candidate's text content, as returned by the
	// service. Never empty: an empty candidate list or empty text is
	// reported as *ErrEmptyResponse instead.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserPrompt builds a single-turn Request carrying one user message.
func UserPrompt(prompt string) Request {
	return Request{
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}
