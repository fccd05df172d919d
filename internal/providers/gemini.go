package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	GeminiName           = "gemini"
	geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiDefaultModel   = "gemini-2.5-pro"
)

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey  string
	Model   string        // default "gemini-2.5-pro"
	Timeout time.Duration // HTTP timeout
	BaseURL string        // Optional (tests)
}

// GeminiClient calls the generateContent endpoint of the Gemini API.
type GeminiClient struct {
	apiKey       string
	defaultModel string
	baseURL      string
	client       *http.Client
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	if cfg.Model == "" {
		cfg.Model = geminiDefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = geminiDefaultBaseURL
	}

	return &GeminiClient{
		apiKey:       cfg.APIKey,
		defaultModel: cfg.Model,
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		client:       &http.Client{Timeout: cfg.Timeout},
	}
}

// Name returns the client identifier.
func (c *GeminiClient) Name() string { return GeminiName }

// Wire types for the generateContent request/response. Only the fields the
// application reads are declared.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends one generateContent call. There is no retry or backoff;
// any failure is returned to the caller as-is.
func (c *GeminiClient) Generate(ctx context.Context, req *Request) (*Result, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini: missing API key")
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	gReq := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: req.Instruction}}, Role: "user"}},
	}
	if req.ResponseFormat != nil {
		gReq.GenerationConfig = &geminiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   req.ResponseFormat.JSONSchema,
		}
	}

	body, err := json.Marshal(gReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini: error (status %d): %s", resp.StatusCode, truncate(string(respBody), 512))
	}

	var gResp geminiResponse
	if err := json.Unmarshal(respBody, &gResp); err != nil {
		return nil, fmt.Errorf("gemini: failed to unmarshal response: %w", err)
	}
	if gResp.Error != nil {
		return nil, fmt.Errorf("gemini: API error (%s): %s", gResp.Error.Status, gResp.Error.Message)
	}
	if len(gResp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: no candidates in response")
	}

	var text strings.Builder
	for _, part := range gResp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	return &Result{
		Text:      strings.TrimSpace(text.String()),
		Provider:  GeminiName,
		ModelUsed: model,
		RequestID: requestID,
		Latency:   time.Since(start),
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
