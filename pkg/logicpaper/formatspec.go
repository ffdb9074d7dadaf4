package logicpaper

import (
	"fmt"
	"strconv"
	"strings"
)

// formatSpec is a parsed printf-style padding spec as used by the number
// pipeline: [[fill]align][sign]['0'][width][','][.precision][type], e.g.
// "04d", ".2f", ">8" or "08,.2f".
type formatSpec struct {
	fill      rune
	align     rune // '<', '>', '^' or 0 for the numeric default (right)
	sign      rune // '+', '-', ' ' or 0
	width     int
	grouping  bool
	precision int  // -1 when unset
	verb      rune // 'd', 'f', 'e', 'E', '%', 's' or 0
}

// looksLikeFormatSpec reports whether a token should be consumed as a padding
// spec: it starts with a digit or a dot, or is a bare alignment character.
func looksLikeFormatSpec(token string) bool {
	if token == "" {
		return false
	}
	if token == ">" || token == "<" || token == "^" {
		return true
	}
	first := rune(token[0])
	return (first >= '0' && first <= '9') || first == '.'
}

func parseFormatSpec(raw string) (formatSpec, error) {
	spec := formatSpec{fill: ' ', precision: -1}
	runes := []rune(raw)
	i := 0

	isAlign := func(r rune) bool { return r == '<' || r == '>' || r == '^' }

	if len(runes) >= 2 && isAlign(runes[1]) {
		spec.fill = runes[0]
		spec.align = runes[1]
		i = 2
	} else if len(runes) >= 1 && isAlign(runes[0]) {
		spec.align = runes[0]
		i = 1
	}

	if i < len(runes) && (runes[i] == '+' || runes[i] == '-' || runes[i] == ' ') {
		spec.sign = runes[i]
		i++
	}

	if i < len(runes) && runes[i] == '0' {
		spec.fill = '0'
		i++
	}

	start := i
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}
	if i > start {
		spec.width, _ = strconv.Atoi(string(runes[start:i]))
	}

	if i < len(runes) && runes[i] == ',' {
		spec.grouping = true
		i++
	}

	if i < len(runes) && runes[i] == '.' {
		i++
		start = i
		for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
			i++
		}
		if i == start {
			return spec, fmt.Errorf("format spec %q: missing precision digits", raw)
		}
		spec.precision, _ = strconv.Atoi(string(runes[start:i]))
	}

	if i < len(runes) {
		spec.verb = runes[i]
		i++
	}
	if i != len(runes) {
		return spec, fmt.Errorf("invalid format spec %q", raw)
	}
	switch spec.verb {
	case 0, 'd', 'f', 'e', 'E', '%', 's':
	default:
		return spec, fmt.Errorf("format spec %q: unsupported type %q", raw, spec.verb)
	}
	return spec, nil
}

// applyFormatSpec formats v according to a printf-style spec string.
func applyFormatSpec(v float64, raw string) (string, error) {
	spec, err := parseFormatSpec(raw)
	if err != nil {
		return "", err
	}

	var body string
	switch spec.verb {
	case 'd':
		body = strconv.FormatInt(int64(v), 10)
	case 'f':
		prec := spec.precision
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(v, 'f', prec, 64)
	case 'e', 'E':
		prec := spec.precision
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(v, byte(spec.verb), prec, 64)
	case '%':
		prec := spec.precision
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(v*100, 'f', prec, 64) + "%"
	default:
		if spec.precision >= 0 {
			body = strconv.FormatFloat(v, 'f', spec.precision, 64)
		} else {
			body = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	negative := strings.HasPrefix(body, "-")
	if spec.grouping {
		sepBody := body
		if negative {
			sepBody = sepBody[1:]
		}
		sepBody = groupThousands(sepBody, ",")
		if negative {
			sepBody = "-" + sepBody
		}
		body = sepBody
	}

	if spec.sign == '+' && !negative {
		body = "+" + body
	} else if spec.sign == ' ' && !negative {
		body = " " + body
	}

	return padToWidth(body, spec), nil
}

func padToWidth(body string, spec formatSpec) string {
	pad := spec.width - len([]rune(body))
	if pad <= 0 {
		return body
	}
	fill := strings.Repeat(string(spec.fill), pad)

	switch spec.align {
	case '<':
		return body + fill
	case '^':
		left := pad / 2
		return strings.Repeat(string(spec.fill), left) + body +
			strings.Repeat(string(spec.fill), pad-left)
	default:
		// Numeric default: right-aligned. Zero fill goes after the sign.
		if spec.fill == '0' && (strings.HasPrefix(body, "-") || strings.HasPrefix(body, "+")) {
			return body[:1] + fill + body[1:]
		}
		return fill + body
	}
}

// groupThousands inserts a separator every three digits of an integer or
// fixed-point digit string (no sign).
func groupThousands(s, sep string) string {
	intPart := s
	rest := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, rest = s[:i], s[i:]
	}

	n := len(intPart)
	if n <= 3 {
		return intPart + rest
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(intPart[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + rest
}
