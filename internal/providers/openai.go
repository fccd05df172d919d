package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	OpenAIName         = "openai"
	openAIDefaultModel = "gpt-4o-mini"
)

// OpenAIConfig holds configuration for the OpenAI-compatible client.
type OpenAIConfig struct {
	APIKey     string
	Model      string        // default "gpt-4o-mini"
	Timeout    time.Duration // HTTP timeout
	BaseURL    string        // Optional: any OpenAI-compatible endpoint
	HTTPClient *http.Client  // Optional (tests)
}

// OpenAIClient implements Client over chat completions using the official
// OpenAI SDK. Structured replies use the json_schema response format.
type OpenAIClient struct {
	defaultModel string
	client       openai.Client
}

// NewOpenAIClient creates a new OpenAI-compatible client.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	if cfg.Model == "" {
		cfg.Model = openAIDefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
		// Single attempt: failures surface immediately to the caller.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIClient{
		defaultModel: cfg.Model,
		client:       openai.NewClient(opts...),
	}
}

// Name returns the client identifier.
func (c *OpenAIClient) Name() string { return OpenAIName }

// Generate sends one chat completion call.
func (c *OpenAIClient) Generate(ctx context.Context, req *Request) (*Result, error) {
	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Instruction),
		},
	}

	if req.ResponseFormat != nil {
		var schema any
		if err := json.Unmarshal(req.ResponseFormat.JSONSchema, &schema); err != nil {
			return nil, fmt.Errorf("openai: invalid response schema: %w", err)
		}
		schema = strictSchema(schema)
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "response",
					Strict: openai.Bool(true),
					Schema: schema,
				},
			},
		}
	}

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai: request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices in response")
	}

	return &Result{
		Text:      strings.TrimSpace(resp.Choices[0].Message.Content),
		Provider:  OpenAIName,
		ModelUsed: string(resp.Model),
		RequestID: requestID,
		Latency:   time.Since(start),
	}, nil
}

// strictSchema sets additionalProperties to false on every object in the
// schema. The strict json_schema response format rejects object schemas
// that leave it open. The transform is local to this client so other
// services receive the schema as composed.
func strictSchema(schema any) any {
	obj, ok := schema.(map[string]any)
	if !ok {
		return schema
	}
	if t, _ := obj["type"].(string); t == "object" {
		if _, set := obj["additionalProperties"]; !set {
			obj["additionalProperties"] = false
		}
	}
	if props, ok := obj["properties"].(map[string]any); ok {
		for name, sub := range props {
			props[name] = strictSchema(sub)
		}
	}
	if items, ok := obj["items"]; ok {
		obj["items"] = strictSchema(items)
	}
	return obj
}
