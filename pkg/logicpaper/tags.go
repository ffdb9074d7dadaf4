package logicpaper

import (
	"regexp"
	"strings"
)

// tagPattern matches {{ variable }} and {{ variable | filter('arg') }}.
// Group 1 is the variable name, group 2 the optional filter clause.
var tagPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)(\s*\|.*?)?\s*\}\}`)

// filterBinding maps a template filter name onto a strategy type key plus the
// synthetic leading ops that select its sub-mode.
type filterBinding struct {
	typeKey string
	leading []string
}

// filterBindings is the filter vocabulary the inline engine understands.
// format_image is deliberately absent: an image descriptor cannot be
// substituted into a text run.
var filterBindings = map[string]filterBinding{
	"format_string":   {typeKey: "string"},
	"format_number":   {typeKey: "number"},
	"format_int":      {typeKey: "number", leading: []string{"int"}},
	"format_currency": {typeKey: "number", leading: []string{"currency"}},
	"format_date":     {typeKey: "date"},
	"format_bool":     {typeKey: "bool", leading: []string{"bool"}},
	"format_mask":     {typeKey: "mask"},
	"format_logic":    {typeKey: "logic"},
}

// TagEngine substitutes inline {{ name | filter(args) }} tags in document
// text for formats that cannot evaluate a real template language natively.
// Each tag resolves independently; a malformed tag degrades to the raw value
// and never aborts substitution of the rest of the run.
type TagEngine struct {
	registry StrategyRegistry
}

func NewTagEngine(registry StrategyRegistry) *TagEngine {
	return &TagEngine{registry: registry}
}

// Substitute replaces every tag in text with the formatted value of the
// referenced row field. Unknown variables resolve to the empty string,
// unknown filters to the stringified raw value.
func (e *TagEngine) Substitute(text string, row map[string]interface{}) string {
	if !strings.Contains(text, "{{") {
		return text
	}

	return tagPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := tagPattern.FindStringSubmatch(match)
		if groups == nil {
			return match
		}
		value := row[groups[1]]

		filterClause := strings.TrimSpace(groups[2])
		if filterClause == "" {
			return Stringify(value)
		}

		name, args := parseFilterCall(strings.TrimSpace(strings.TrimPrefix(filterClause, "|")))
		binding, known := filterBindings[name]
		if !known {
			GetLogger().Warn("tags: unknown filter %q, passing value through", name)
			return Stringify(value)
		}

		ops := append(append([]string{}, binding.leading...), args...)
		return e.registry.Format(value, Directive{Type: binding.typeKey, Ops: ops}).Text()
	})
}

// parseFilterCall splits "format_date('long', 'pt')" into its name and
// unquoted arguments. Commas inside quoted arguments are a known limitation
// of the naive split.
func parseFilterCall(call string) (string, []string) {
	open := strings.Index(call, "(")
	if open < 0 || !strings.HasSuffix(call, ")") {
		return strings.TrimSpace(call), nil
	}

	name := strings.TrimSpace(call[:open])
	inner := call[open+1 : len(call)-1]
	if strings.TrimSpace(inner) == "" {
		return name, nil
	}

	parts := strings.Split(inner, ",")
	args := make([]string, 0, len(parts))
	for _, p := range parts {
		args = append(args, unquote(strings.TrimSpace(p)))
	}
	return name, args
}
