package logicpaper

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	snakeRunPattern  = regexp.MustCompile(`[\s\-]+`)
	kebabRunPattern  = regexp.MustCompile(`[\s_]+`)
	slugStripPattern = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	slugSpacePattern = regexp.MustCompile(`\s+`)
)

// StringStrategy chains text transformations left-to-right over the running
// value.
//
// Supported operations:
//   - Case: upper, lower, title, capitalize, swapcase
//   - Format: snake, kebab, slug
//   - Modification: trim, reverse
//   - Injection (takes arg): prefix, suffix
//   - Sizing (takes arg): truncate
type StringStrategy struct{}

func NewStringStrategy() *StringStrategy {
	return &StringStrategy{}
}

func (s *StringStrategy) Name() string {
	return "string"
}

func (s *StringStrategy) Format(value interface{}, ops []string) Result {
	if value == nil {
		return okResult("")
	}
	text := Stringify(value)

	var warnings []Warning
	cur := newOpCursor(ops)

	for {
		tok, ok := cur.Next()
		if !ok {
			break
		}
		op := strings.ToLower(strings.TrimSpace(tok))

		switch op {
		case "upper":
			text = strings.ToUpper(text)
		case "lower":
			text = strings.ToLower(text)
		case "title":
			text = cases.Title(language.Und).String(text)
		case "capitalize":
			text = capitalize(text)
		case "swapcase":
			text = swapCase(text)
		case "trim":
			text = strings.TrimSpace(text)
		case "reverse":
			text = reverseString(text)

		case "prefix":
			arg, ok := cur.Next()
			if !ok {
				warnings = append(warnings, warnf(s.Name(), op, "missing argument"))
				continue
			}
			text = unquote(arg) + text
		case "suffix":
			arg, ok := cur.Next()
			if !ok {
				warnings = append(warnings, warnf(s.Name(), op, "missing argument"))
				continue
			}
			text = text + unquote(arg)

		case "truncate":
			arg, ok := cur.Next()
			if !ok {
				warnings = append(warnings, warnf(s.Name(), op, "missing argument"))
				continue
			}
			limit, err := strconv.Atoi(strings.TrimSpace(arg))
			if err != nil {
				warnings = append(warnings, warnf(s.Name(), op, "invalid limit %q", arg))
				continue
			}
			if runes := []rune(text); len(runes) > limit {
				text = string(runes[:limit]) + "..."
			}

		case "snake":
			text = strings.ToLower(snakeRunPattern.ReplaceAllString(text, "_"))
		case "kebab":
			text = strings.ToLower(kebabRunPattern.ReplaceAllString(text, "-"))
		case "slug":
			text = strings.ToLower(slugStripPattern.ReplaceAllString(text, ""))
			text = slugSpacePattern.ReplaceAllString(text, "-")
		}
		// Unknown tokens are ignored; the pipeline is tolerant.
	}

	return Result{Value: text, Warnings: warnings}
}

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
