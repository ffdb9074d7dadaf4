package logicpaper

import "strings"

// LogicStrategy handles conditional defaults and value mapping. Unlike every
// other strategy it must see empty input, so the registry never short-circuits
// nil values away from it.
//
// Supported operations, scanned left to right:
//   - default;X: return X immediately if the value is empty; otherwise
//     remember X as the "else" candidate
//   - empty_if;X: return "" if the value equals X
//   - key=output: return output if the value equals key (first match wins)
//   - any other token: remember it as the "else" candidate
//
// After the scan, a non-empty value that matched no rule resolves to the last
// recorded "else" candidate, or passes through unchanged.
type LogicStrategy struct{}

func NewLogicStrategy() *LogicStrategy {
	return &LogicStrategy{}
}

func (s *LogicStrategy) Name() string {
	return "logic"
}

func (s *LogicStrategy) Format(value interface{}, ops []string) Result {
	norm := strings.TrimSpace(Stringify(value))
	isEmpty := value == nil || norm == ""

	var warnings []Warning
	var elseCandidate *string
	cur := newOpCursor(ops)

	for {
		tok, ok := cur.Next()
		if !ok {
			break
		}
		keyword := strings.ToLower(strings.TrimSpace(tok))

		switch {
		case keyword == "default":
			arg, ok := cur.Next()
			if !ok {
				warnings = append(warnings, warnf(s.Name(), keyword, "missing argument"))
				continue
			}
			literal := unquote(arg)
			if isEmpty {
				return Result{Value: literal, Warnings: warnings}
			}
			elseCandidate = &literal

		case keyword == "empty_if":
			arg, ok := cur.Next()
			if !ok {
				warnings = append(warnings, warnf(s.Name(), keyword, "missing argument"))
				continue
			}
			if norm == strings.TrimSpace(arg) {
				return Result{Value: "", Warnings: warnings}
			}

		case strings.Contains(tok, "="):
			key, output, _ := strings.Cut(tok, "=")
			if norm == strings.TrimSpace(key) {
				return Result{Value: strings.TrimSpace(output), Warnings: warnings}
			}

		default:
			candidate := tok
			elseCandidate = &candidate
		}
	}

	if !isEmpty && elseCandidate != nil {
		return Result{Value: *elseCandidate, Warnings: warnings}
	}
	return Result{Value: value, Warnings: warnings}
}
