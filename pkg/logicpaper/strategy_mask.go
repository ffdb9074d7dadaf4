package logicpaper

import (
	"strings"
	"unicode"
)

// MaskStrategy obfuscates sensitive values for privacy (LGPD/GDPR) and
// applies positional format masks.
//
// Supported operations:
//   - mask;pattern: '#' consumes one alphanumeric character of the value,
//     other pattern characters are copied literally (mask;###.###.###-##)
//   - email: j***@domain.com
//   - credit_card: **** **** **** 1234
//   - name: J*** D**
type MaskStrategy struct{}

func NewMaskStrategy() *MaskStrategy {
	return &MaskStrategy{}
}

func (s *MaskStrategy) Name() string {
	return "mask"
}

func (s *MaskStrategy) Format(value interface{}, ops []string) Result {
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
		case "mask":
			pattern, ok := cur.Next()
			if !ok {
				warnings = append(warnings, warnf(s.Name(), op, "missing pattern argument"))
				continue
			}
			text = applyPatternMask(text, pattern)
		case "email":
			text = maskEmail(text)
		case "credit_card":
			text = maskCreditCard(text)
		case "name":
			text = maskName(text)
		}
	}

	return Result{Value: text, Warnings: warnings}
}

// applyPatternMask fills '#' placeholders with the value's alphanumeric
// characters left to right, stopping early when the value is exhausted.
func applyPatternMask(value, pattern string) string {
	var clean []rune
	for _, r := range value {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			clean = append(clean, r)
		}
	}

	var b strings.Builder
	idx := 0
	for _, ch := range pattern {
		if ch == '#' {
			if idx >= len(clean) {
				return b.String()
			}
			b.WriteRune(clean[idx])
			idx++
		} else {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func maskEmail(email string) string {
	user, domain, found := strings.Cut(email, "@")
	if !found {
		return email
	}
	if len([]rune(user)) > 1 {
		user = string([]rune(user)[0]) + "***"
	}
	return user + "@" + domain
}

func maskCreditCard(cc string) string {
	var digits []rune
	for _, r := range cc {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return cc
	}
	return "**** **** **** " + string(digits[len(digits)-4:])
}

func maskName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(w)
		if len(runes) > 1 {
			words[i] = string(runes[0]) + strings.Repeat("*", len(runes)-1)
		}
	}
	return strings.Join(words, " ")
}
