package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/api"
	"github.com/promptforge/promptforge/internal/types"
)

// Option pairs a machine value with its form label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionsResponse lists every option set the form offers, plus the config a
// fresh session starts with. The server is the source of truth so the
// embedded frontend and API clients render identical choices.
type OptionsResponse struct {
	PromptTypes       []string           `json:"prompt_types"`
	Tones             []string           `json:"tones"`
	WritingStyles     []string           `json:"writing_styles"`
	Audiences         []string           `json:"audiences"`
	OutputFormats     []string           `json:"output_formats"`
	Languages         []string           `json:"languages"`
	DetailLevels      []Option           `json:"detail_levels"`
	OptimizationModes []Option           `json:"optimization_modes"`
	Defaults          types.PromptConfig `json:"defaults"`
}

// OptionsEndpoint handles GET /api/options.
type OptionsEndpoint struct{}

func (e *OptionsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/options", e.handler
}

func (e *OptionsEndpoint) RequiresInit() bool { return false }

func (e *OptionsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, OptionsResponse{
		PromptTypes:   types.PromptTypes,
		Tones:         types.Tones,
		WritingStyles: types.WritingStyles,
		Audiences:     types.Audiences,
		OutputFormats: types.OutputFormats,
		Languages:     types.Languages,
		DetailLevels: []Option{
			{Value: string(types.DetailSimple), Label: types.DetailLevels[types.DetailSimple]},
			{Value: string(types.DetailModerate), Label: types.DetailLevels[types.DetailModerate]},
			{Value: string(types.DetailAdvanced), Label: types.DetailLevels[types.DetailAdvanced]},
		},
		OptimizationModes: []Option{
			{Value: string(types.OptimizeNone), Label: types.OptimizationModes[types.OptimizeNone]},
			{Value: string(types.OptimizeClarity), Label: types.OptimizationModes[types.OptimizeClarity]},
			{Value: string(types.OptimizeCreativity), Label: types.OptimizationModes[types.OptimizeCreativity]},
			{Value: string(types.OptimizePrecision), Label: types.OptimizationModes[types.OptimizePrecision]},
		},
		Defaults: types.DefaultPromptConfig(),
	})
}

func (e *OptionsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List form option sets and default config",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp OptionsResponse
			if err := client.Get(cmd.Context(), "/api/options", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
