package logicpaper

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumberStrategy formats integers, floats, currency, percentages and
// scientific notation. The op pipeline is cursor-driven so keywords can
// consume an optional following token as their argument ("currency;USD",
// "int;04d").
type NumberStrategy struct {
	locale          LocaleProvider
	defaultCurrency string
}

func NewNumberStrategy(locale LocaleProvider, defaultCurrency string) *NumberStrategy {
	return &NumberStrategy{locale: locale, defaultCurrency: defaultCurrency}
}

func (s *NumberStrategy) Name() string {
	return "number"
}

func (s *NumberStrategy) Format(value interface{}, ops []string) Result {
	if value == nil || strings.TrimSpace(Stringify(value)) == "" {
		return okResult("")
	}

	num, err := s.normalize(value)
	if err != nil {
		return Result{
			Value:    Stringify(value),
			Warnings: []Warning{warnf(s.Name(), "", "invalid numeric input %q", Stringify(value))},
		}
	}

	var warnings []Warning
	warn := func(op, format string, args ...interface{}) {
		warnings = append(warnings, warnf(s.Name(), op, format, args...))
	}

	var out interface{} = num
	cur := newOpCursor(ops)

	for {
		tok, ok := cur.Next()
		if !ok {
			break
		}
		op := strings.ToLower(strings.TrimSpace(tok))

		switch op {
		case "int":
			out = strconv.FormatInt(int64(num), 10)
			if spec, ok := cur.TakeIf(looksLikeFormatSpec); ok {
				formatted, err := applyFormatSpec(float64(int64(num)), spec)
				if err != nil {
					warn(op, "%v", err)
					continue
				}
				out = formatted
			}

		case "fmt", "pad":
			spec, ok := cur.Next()
			if !ok {
				warn(op, "missing format spec")
				continue
			}
			formatted, err := applyFormatSpec(num, spec)
			if err != nil {
				warn(op, "%v", err)
				continue
			}
			out = formatted

		case "float":
			out = num
			if prec, ok := cur.TakeIf(isDigits); ok {
				out = formatPrecision(num, prec)
			}

		case "round", "precision":
			if prec, ok := cur.TakeIf(isDigits); ok {
				out = formatPrecision(num, prec)
			}

		case "currency":
			code := s.defaultCurrency
			if arg, ok := cur.TakeIf(isCurrencyCode); ok {
				code = strings.ToUpper(arg)
			}
			formatted, err := s.locale.FormatCurrency(num, code)
			if err != nil {
				warn(op, "%v", err)
				continue
			}
			out = formatted

		case "percent":
			formatted, err := s.locale.FormatPercent(num)
			if err != nil {
				out = fmt.Sprintf("%.0f%%", num*100)
				continue
			}
			out = formatted

		case "scientific":
			formatted, err := s.locale.FormatScientific(num)
			if err != nil {
				out = fmt.Sprintf("%E", num)
				continue
			}
			out = formatted

		case "humanize":
			out = humanizeNumber(num)

		case "ordinal":
			lang := s.locale.Locale()
			if arg, ok := cur.TakeIf(func(t string) bool { return len(t) <= 5 }); ok {
				lang = strings.ToLower(strings.TrimSpace(arg))
			}
			formatted, err := s.locale.Ordinal(int(num), lang)
			if err != nil {
				warn(op, "%v", err)
				out = fmt.Sprintf("%dth", int(num))
				continue
			}
			out = formatted

		case "spell_out":
			lang := s.locale.Locale()
			if arg, ok := cur.TakeIf(func(t string) bool { return len(t) == 2 }); ok {
				lang = strings.ToLower(arg)
			}
			formatted, err := s.locale.SpellOut(num, lang)
			if err != nil {
				warn(op, "%v", err)
				continue
			}
			out = formatted

		case "separator":
			style, ok := cur.Next()
			if !ok {
				warn(op, "missing separator style")
				continue
			}
			formatted, err := applySeparatorStyle(num, style)
			if err != nil {
				warn(op, "%v", err)
				continue
			}
			out = formatted
		}
		// Unrecognized ops are skipped.
	}

	return Result{Value: Stringify(out), Warnings: warnings}
}

func (s *NumberStrategy) normalize(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return s.locale.ParseDecimal(Stringify(value))
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

func formatPrecision(num float64, prec string) string {
	p, err := strconv.Atoi(prec)
	if err != nil {
		return Stringify(num)
	}
	return strconv.FormatFloat(num, 'f', p, 64)
}

// applySeparatorStyle forces two decimals with explicit separators:
// ".," gives dot thousands and comma decimal (1.234,56), ",." the reverse.
func applySeparatorStyle(num float64, style string) (string, error) {
	fixed := strconv.FormatFloat(num, 'f', 2, 64)
	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}
	parts := strings.SplitN(fixed, ".", 2)

	var out string
	switch style {
	case ".,":
		out = groupThousands(parts[0], ".") + "," + parts[1]
	case ",.":
		out = groupThousands(parts[0], ",") + "." + parts[1]
	default:
		return "", fmt.Errorf("unknown separator style %q", style)
	}
	if negative {
		out = "-" + out
	}
	return out, nil
}

// humanizeNumber scales by powers of 1000 into K/M/B/T suffixes with one
// decimal place, trimming a trailing ".0" (1200 -> 1.2K, 1000000 -> 1M).
func humanizeNumber(v float64) string {
	labels := []string{"", "K", "M", "B", "T"}
	idx := 0
	for math.Abs(v) >= 1000 && idx < len(labels)-1 {
		v /= 1000
		idx++
	}
	out := strconv.FormatFloat(v, 'f', 1, 64)
	out = strings.TrimSuffix(out, ".0")
	return out + labels[idx]
}
