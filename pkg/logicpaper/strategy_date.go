package logicpaper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// isoDateLayouts are the layouts tried when a date arrives as text.
// Spreadsheet extracts normally hand over ISO-8601 shaped strings.
var isoDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateStrategy handles date transformations including arithmetic. Arithmetic
// ops keep the running value as a time.Time so further ops can chain; if no
// formatting op ever fires, the terminal rule emits a date-only ISO string so
// arithmetic never leaks a time-of-day component into a document.
type DateStrategy struct {
	locale LocaleProvider
}

func NewDateStrategy(locale LocaleProvider) *DateStrategy {
	return &DateStrategy{locale: locale}
}

func (s *DateStrategy) Name() string {
	return "date"
}

func (s *DateStrategy) Format(value interface{}, ops []string) Result {
	if value == nil || strings.TrimSpace(Stringify(value)) == "" {
		return okResult("")
	}

	t, err := normalizeDate(value)
	if err != nil {
		return Result{
			Value:    Stringify(value),
			Warnings: []Warning{warnf(s.Name(), "", "could not parse %q as date", Stringify(value))},
		}
	}

	var warnings []Warning
	warn := func(op, format string, args ...interface{}) {
		warnings = append(warnings, warnf(s.Name(), op, format, args...))
	}

	var out interface{} = t
	formatApplied := false
	cur := newOpCursor(ops)

	for {
		tok, ok := cur.Next()
		if !ok {
			break
		}
		op := strings.ToLower(strings.TrimSpace(tok))

		switch op {
		case "iso":
			if dt, ok := out.(time.Time); ok {
				out = dt.Format("2006-01-02")
				formatApplied = true
			}

		case "short", "medium", "long", "full":
			arg, ok := cur.Next()
			if !ok {
				warn(op, "requires a locale argument (e.g. 'pt')")
				continue
			}
			dt, isDate := out.(time.Time)
			if !isDate {
				continue
			}
			locale := strings.TrimSpace(unquote(arg))
			formatted, err := s.locale.FormatDate(dt, op, locale)
			if err != nil {
				warn(op, "locale %q: %v", locale, err)
				continue
			}
			out = formatted
			formatApplied = true

		case "fmt":
			arg, ok := cur.Next()
			if !ok {
				warn(op, "missing pattern argument")
				continue
			}
			if dt, isDate := out.(time.Time); isDate {
				out = dt.Format(strftimeToLayout(unquote(arg)))
				formatApplied = true
			}

		case "year":
			if dt, ok := out.(time.Time); ok {
				out = strconv.Itoa(dt.Year())
				formatApplied = true
			}

		case "month_name":
			arg, ok := cur.Next()
			if !ok {
				warn(op, "requires a locale argument (e.g. 'pt')")
				continue
			}
			dt, isDate := out.(time.Time)
			if !isDate {
				continue
			}
			locale := strings.TrimSpace(unquote(arg))
			name, err := s.locale.MonthName(dt, locale)
			if err != nil {
				warn(op, "locale %q: %v", locale, err)
				continue
			}
			out = name
			formatApplied = true

		case "add_days":
			n, ok := takeInt(cur)
			if !ok {
				warn(op, "requires an integer argument")
				continue
			}
			if dt, isDate := out.(time.Time); isDate {
				out = dt.AddDate(0, 0, n)
			}

		case "add_years":
			n, ok := takeInt(cur)
			if !ok {
				warn(op, "requires an integer argument")
				continue
			}
			if dt, isDate := out.(time.Time); isDate {
				out = addYears(dt, n)
			}
		}
	}

	// Arithmetic-only pipelines emit the date part, never a timestamp.
	if dt, ok := out.(time.Time); ok && !formatApplied {
		return Result{Value: dt.Format("2006-01-02"), Warnings: warnings}
	}
	return Result{Value: Stringify(out), Warnings: warnings}
}

func normalizeDate(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("nil time pointer")
		}
		return *v, nil
	case string:
		return parseISODate(v)
	default:
		return parseISODate(Stringify(value))
	}
}

func parseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func takeInt(cur *opCursor) (int, bool) {
	arg, ok := cur.TakeIf(func(t string) bool {
		_, err := strconv.Atoi(strings.TrimSpace(t))
		return err == nil
	})
	if !ok {
		return 0, false
	}
	n, _ := strconv.Atoi(strings.TrimSpace(arg))
	return n, true
}

// addYears adds calendar years. When the target date does not exist
// (Feb 29 on a non-leap year) it falls back to adding 365*n days instead of
// letting the calendar normalize into March.
func addYears(t time.Time, n int) time.Time {
	candidate := time.Date(t.Year()+n, t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if candidate.Month() != t.Month() || candidate.Day() != t.Day() {
		return t.AddDate(0, 0, 365*n)
	}
	return candidate
}

// strftimeToLayout translates strftime-style patterns ("%d/%m/%Y") into Go
// reference-time layouts.
func strftimeToLayout(pattern string) string {
	replacer := strings.NewReplacer(
		"%Y", "2006",
		"%y", "06",
		"%m", "01",
		"%d", "02",
		"%H", "15",
		"%I", "03",
		"%M", "04",
		"%S", "05",
		"%B", "January",
		"%b", "Jan",
		"%A", "Monday",
		"%a", "Mon",
		"%p", "PM",
		"%j", "002",
		"%%", "%",
	)
	return replacer.Replace(pattern)
}
