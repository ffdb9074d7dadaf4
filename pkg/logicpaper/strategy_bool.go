package logicpaper

import (
	"strconv"
	"strings"
)

// truthyTokens are the text values normalized to true, case-insensitive.
var truthyTokens = map[string]bool{
	"true": true, "t": true, "yes": true, "y": true,
	"1": true, "s": true, "sim": true, "on": true,
}

// BooleanStrategy normalizes input to a boolean and maps it to text.
//
// Supported operations:
//   - bool;TrueText;FalseText: custom labels
//   - check: checkbox glyphs
type BooleanStrategy struct{}

func NewBooleanStrategy() *BooleanStrategy {
	return &BooleanStrategy{}
}

func (s *BooleanStrategy) Name() string {
	return "bool"
}

func (s *BooleanStrategy) Format(value interface{}, ops []string) Result {
	truth := normalizeBool(value)
	cur := newOpCursor(ops)

	for {
		tok, ok := cur.Next()
		if !ok {
			break
		}
		op := strings.ToLower(strings.TrimSpace(tok))

		switch op {
		case "bool":
			trueText, okTrue := cur.Next()
			falseText, okFalse := cur.Next()
			if !okTrue || !okFalse {
				return okResult(strconv.FormatBool(truth))
			}
			if truth {
				return okResult(trueText)
			}
			return okResult(falseText)

		case "check":
			if truth {
				return okResult("☑")
			}
			return okResult("☐")
		}
	}

	return okResult(strconv.FormatBool(truth))
}

func normalizeBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		return v == 1
	case string:
		return truthyTokens[strings.ToLower(strings.TrimSpace(v))]
	default:
		return false
	}
}
