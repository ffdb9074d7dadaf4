package logicpaper

import "strings"

// DefaultType is the directive type used when no protocol string is given.
const DefaultType = "default"

// Directive is a parsed formatting protocol: a type key plus the ordered
// operation tokens consumed by the strategy registered for that type.
// Directives are immutable once parsed; bindings parse them once per field
// definition, not once per row.
type Directive struct {
	Type string
	Ops  []string
}

// ParseDirective parses a protocol string such as "currency;USD" or
// "string;trim;upper" into a Directive. The first non-empty segment,
// lower-cased, is the type; the remaining segments keep their original case
// because they may be literal text arguments.
//
// Parsing is total: blank or empty input yields the neutral "default" type
// and unknown types are resolved later by the registry's fallback.
func ParseDirective(raw string) Directive {
	segments := strings.Split(raw, ";")

	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		parts = append(parts, seg)
	}

	if len(parts) == 0 {
		return Directive{Type: DefaultType}
	}

	ops := parts[1:]
	if len(ops) == 0 {
		ops = nil
	}
	return Directive{
		Type: strings.ToLower(parts[0]),
		Ops:  ops,
	}
}
