package logicpaper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Warning records a non-fatal problem encountered while formatting one value.
// The pipeline never fails; it degrades and reports what it skipped here.
type Warning struct {
	Strategy string
	Op       string
	Message  string
}

func (w Warning) String() string {
	if w.Op != "" {
		return fmt.Sprintf("%s[%s]: %s", w.Strategy, w.Op, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Strategy, w.Message)
}

// Result is the outcome of one strategy invocation: the formatted value plus
// any warnings raised along the way. Value is usually a string but may be an
// ImageRef, or the untouched input for passthrough cases.
type Result struct {
	Value    interface{}
	Warnings []Warning
}

// Text returns the result value as document text.
func (r Result) Text() string {
	return Stringify(r.Value)
}

func okResult(v interface{}) Result {
	return Result{Value: v}
}

func warnf(strategy, op, format string, args ...interface{}) Warning {
	return Warning{Strategy: strategy, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Stringify converts any raw or formatted value into document text.
// nil becomes the empty string, dates render date-only, and floats keep
// their shortest exact representation.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		return v.Format("2006-01-02")
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// unquote strips one matching pair of surrounding single or double quotes.
// Spreadsheet cells and template arguments often arrive quoted.
func unquote(s string) string {
	if len(s) >= 2 {
		if (strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
			(strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'")) {
			return s[1 : len(s)-1]
		}
	}
	return s
}
