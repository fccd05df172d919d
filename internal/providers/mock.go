package providers

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

const MockName = "mock"

// MockClient is a Client for testing.
type MockClient struct {
	// Configurable behavior
	Latency      time.Duration
	ShouldFail   bool
	ResponseText string

	// ResponseFor overrides ResponseText per-request when set.
	ResponseFor func(req *Request) string

	requestCount atomic.Int64
}

// NewMockClient creates a mock client with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{
		ResponseText: "mock response",
	}
}

// Name returns the client identifier.
func (c *MockClient) Name() string { return MockName }

// Requests returns how many invocations the mock has received.
func (c *MockClient) Requests() int64 { return c.requestCount.Load() }

// Generate returns the configured response, or fails if ShouldFail is set.
func (c *MockClient) Generate(ctx context.Context, req *Request) (*Result, error) {
	start := time.Now()
	count := c.requestCount.Add(1)

	if c.ShouldFail {
		return nil, fmt.Errorf("mock client configured to fail")
	}

	if c.Latency > 0 {
		select {
		case <-time.After(c.Latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	text := c.ResponseText
	if c.ResponseFor != nil {
		text = c.ResponseFor(req)
	}

	model := req.Model
	if model == "" {
		model = "mock-model"
	}

	return &Result{
		Text:      strings.TrimSpace(text),
		Provider:  MockName,
		ModelUsed: model,
		RequestID: fmt.Sprintf("mock-%d", count),
		Latency:   time.Since(start),
	}, nil
}
