// Package providers contains the remote model clients. A Client is the
// single chokepoint between the application and a generative text service:
// one invocation, one outcome. Clients never retry, never parse structured
// responses, and report every transport or service failure as an error.
package providers

import (
	"context"
	"encoding/json"
	"time"
)

// Client sends a composed instruction to a generative text service.
type Client interface {
	// Generate forwards the instruction (and optional response schema)
	// and returns the service's reply.
	Generate(ctx context.Context, req *Request) (*Result, error)

	// Name returns the client identifier (e.g., "gemini").
	Name() string
}

// ResponseFormat constrains the reply to schema-conformant JSON.
type ResponseFormat struct {
	// JSONSchema is a plain JSON Schema object. Clients translate it to
	// whatever structured-output envelope their service expects.
	JSONSchema json.RawMessage `json:"json_schema"`
}

// Request is a single invocation of the remote capability.
type Request struct {
	// Instruction is the fully composed meta-instruction.
	Instruction string `json:"instruction"`

	// Model overrides the client's configured default when non-empty.
	Model string `json:"model,omitempty"`

	// ResponseFormat, when set, asks the service for raw JSON matching
	// the schema. The returned text is still opaque to the client.
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`

	// RequestID is generated when empty; used for diagnostic tracing.
	RequestID string `json:"-"`
}

// Result is the outcome of a successful invocation.
type Result struct {
	// Text is the service's reply with surrounding whitespace trimmed.
	Text string `json:"text"`

	Provider  string        `json:"provider"`
	ModelUsed string        `json:"model_used"`
	RequestID string        `json:"request_id"`
	Latency   time.Duration `json:"latency"`
}
