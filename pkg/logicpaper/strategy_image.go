package logicpaper

import (
	"strconv"
	"strings"
)

// ImageRef is the descriptor an image directive produces instead of text.
// The rendering layer resolves Filename against its assets directory and
// applies its own default for any unset dimension.
type ImageRef struct {
	Filename string   `json:"filename"`
	Width    *float64 `json:"width,omitempty"`  // centimeters
	Height   *float64 `json:"height,omitempty"` // centimeters
}

// ImageStrategy parses dimensions from the first two ops. The literal token
// "auto" or an unparsable token leaves that dimension unset. Never fails.
type ImageStrategy struct{}

func NewImageStrategy() *ImageStrategy {
	return &ImageStrategy{}
}

func (s *ImageStrategy) Name() string {
	return "image"
}

func (s *ImageStrategy) Format(value interface{}, ops []string) Result {
	ref := ImageRef{Filename: Stringify(value)}

	var warnings []Warning
	parseDim := func(which string, raw string) *float64 {
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.EqualFold(raw, "auto") {
			return nil
		}
		dim, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			warnings = append(warnings, warnf(s.Name(), which, "invalid %s %q", which, raw))
			return nil
		}
		return &dim
	}

	if len(ops) > 0 {
		ref.Width = parseDim("width", ops[0])
	}
	if len(ops) > 1 {
		ref.Height = parseDim("height", ops[1])
	}

	return Result{Value: ref, Warnings: warnings}
}
