package logicpaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringStrategy(t *testing.T) {
	s := NewStringStrategy()

	tests := []struct {
		name  string
		value interface{}
		ops   []string
		want  string
	}{
		{"nil becomes empty", nil, []string{"upper"}, ""},
		{"no ops passthrough", "hello", nil, "hello"},
		{"upper", "hello", []string{"upper"}, "HELLO"},
		{"lower", "HeLLo", []string{"lower"}, "hello"},
		{"title", "hello world", []string{"title"}, "Hello World"},
		{"capitalize", "hELLO wORLD", []string{"capitalize"}, "Hello world"},
		{"swapcase", "HeLLo", []string{"swapcase"}, "hEllO"},
		{"trim", "  padded  ", []string{"trim"}, "padded"},
		{"reverse", "abc", []string{"reverse"}, "cba"},
		{"reverse multibyte", "maçã", []string{"reverse"}, "ãçam"},
		{"prefix quoted", "100", []string{"prefix", "'R$ '"}, "R$ 100"},
		{"suffix", "100", []string{"suffix", "%"}, "100%"},
		{"truncate long value", "Hello World", []string{"truncate", "5"}, "Hello..."},
		{"truncate short value untouched", "Hi", []string{"truncate", "5"}, "Hi"},
		{"snake", "Logic Paper", []string{"snake"}, "logic_paper"},
		{"snake collapses runs", "Logic  -  Paper", []string{"snake"}, "logic_paper"},
		{"kebab", "Logic_Paper", []string{"kebab"}, "logic-paper"},
		{"slug strips accents and punctuation", "Olá, Mundo!", []string{"slug"}, "ol-mundo"},
		{"chain runs left to right", "  hello world  ", []string{"trim", "upper", "truncate", "5"}, "HELLO..."},
		{"unknown op ignored", "hello", []string{"sparkle", "upper"}, "HELLO"},
		{"non-string input stringified", 10.5, []string{"suffix", "kg"}, "10.5kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.Format(tt.value, tt.ops)
			assert.Equal(t, tt.want, res.Value)
			assert.Empty(t, res.Warnings)
		})
	}
}

func TestStringStrategyWarnings(t *testing.T) {
	s := NewStringStrategy()

	t.Run("missing prefix argument", func(t *testing.T) {
		res := s.Format("x", []string{"prefix"})
		assert.Equal(t, "x", res.Value)
		assert.Len(t, res.Warnings, 1)
	})

	t.Run("invalid truncate limit", func(t *testing.T) {
		res := s.Format("hello", []string{"truncate", "many"})
		assert.Equal(t, "hello", res.Value)
		assert.Len(t, res.Warnings, 1)
	})
}
