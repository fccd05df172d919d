package analyze

import "encoding/json"

// responseSchema declares the exact shape the model must return: four
// numeric scores plus a suggestions array, all required.
var responseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"clarity":     map[string]any{"type": "number"},
		"specificity": map[string]any{"type": "number"},
		"context":     map[string]any{"type": "number"},
		"bias":        map[string]any{"type": "number"},
		"suggestions": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"required": []string{"clarity", "specificity", "context", "bias", "suggestions"},
}

var schemaJSON = func() json.RawMessage {
	b, err := json.Marshal(responseSchema)
	if err != nil {
		panic(err)
	}
	return b
}()

// Schema returns the JSON schema constraining the analysis response.
func Schema() json.RawMessage {
	return schemaJSON
}
