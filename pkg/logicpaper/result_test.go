package logicpaper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringify(t *testing.T) {
	when := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"float drops trailing zeros", 10.50, "10.5"},
		{"float keeps shortest form", 0.1, "0.1"},
		{"time renders date only", when, "2024-03-05"},
		{"time pointer", &when, "2024-03-05"},
		{"nil time pointer", (*time.Time)(nil), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stringify(tt.value))
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"quoted"`, "quoted"},
		{`'quoted'`, "quoted"},
		{`unquoted`, "unquoted"},
		{`"mismatched'`, `"mismatched'`},
		{`"`, `"`},
		{`''`, ""},
		{`'R$ '`, "R$ "},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, unquote(tt.in), "unquote(%q)", tt.in)
	}
}

func TestWarningString(t *testing.T) {
	assert.Equal(t, "number[currency]: bad code",
		Warning{Strategy: "number", Op: "currency", Message: "bad code"}.String())
	assert.Equal(t, "number: bad input",
		Warning{Strategy: "number", Message: "bad input"}.String())
}

func TestResultText(t *testing.T) {
	assert.Equal(t, "10.5", Result{Value: 10.5}.Text())
	assert.Equal(t, "", Result{}.Text())
}
