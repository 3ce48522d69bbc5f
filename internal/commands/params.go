// internal/commands/params.go
package parabolic

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mwiater/parabolic/internal/parabola"
	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidParams is wrapped by every rejected parameter document.
var ErrInvalidParams = errors.New("invalid parabola parameters")

// paramsSchema describes {"a": number, "h": number, "k": number}.
var paramsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"a": map[string]any{"type": "number", "description": "leading coefficient"},
		"h": map[string]any{"type": "number", "description": "horizontal vertex offset"},
		"k": map[string]any{"type": "number", "description": "vertical vertex offset"},
	},
	"required":             []string{"a", "h", "k"},
	"additionalProperties": false,
}

var (
	equationText  = color.New(color.FgMagenta).SprintFunc()
	targetText    = color.New(color.FgCyan, color.Bold).SprintFunc()
	correctText   = color.New(color.FgGreen, color.Bold).SprintFunc()
	incorrectText = color.New(color.FgRed, color.Bold).SprintFunc()
)

// parseParams validates raw against the params schema and decodes it.
func parseParams(raw string) (parabola.Params, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return parabola.Params{}, fmt.Errorf("%w: empty document", ErrInvalidParams)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(paramsSchema), gojsonschema.NewStringLoader(raw))
	if err != nil {
		return parabola.Params{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return parabola.Params{}, fmt.Errorf("%w: %s", ErrInvalidParams, strings.Join(errs, ", "))
	}

	var p parabola.Params
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return parabola.Params{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return p, nil
}

// renderVerdict colours a verdict message by outcome.
func renderVerdict(v parabola.Verdict) string {
	if v.Correct() {
		return correctText(v.Message)
	}
	return incorrectText(v.Message)
}
