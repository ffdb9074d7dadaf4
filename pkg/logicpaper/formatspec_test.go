package logicpaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeFormatSpec(t *testing.T) {
	yes := []string{"04d", ".2f", "8", ">", "<", "^", "08,.2f", "2"}
	for _, tok := range yes {
		assert.True(t, looksLikeFormatSpec(tok), "token %q", tok)
	}

	no := []string{"", "upper", "d", "f", "USD", "-5"}
	for _, tok := range no {
		assert.False(t, looksLikeFormatSpec(tok), "token %q", tok)
	}
}

func TestApplyFormatSpec(t *testing.T) {
	tests := []struct {
		spec string
		v    float64
		want string
	}{
		{"04d", 7, "0007"},
		{"d", 10.9, "10"},
		{".2f", 3.14159, "3.14"},
		{"f", 1.5, "1.500000"},
		{">8", 3.5, "     3.5"},
		{"<6.1f", 3.5, "3.5   "},
		{"*^7", 5, "***5***"},
		{"8,.2f", 1234567.891, "1,234,567.89"},
		{",d", 1234567, "1,234,567"},
		{"+.1f", 2.5, "+2.5"},
		{"08.2f", -3.5, "-0003.50"},
		{".1%", 0.255, "25.5%"},
		{".2e", 12345.0, "1.23e+04"},
		{".3", 2.0, "2.000"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := applyFormatSpec(tt.v, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyFormatSpecErrors(t *testing.T) {
	for _, spec := range []string{"4q", "4.f", "4dx"} {
		_, err := applyFormatSpec(1, spec)
		assert.Error(t, err, "spec %q", spec)
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   string
		sep  string
		want string
	}{
		{"1", ",", "1"},
		{"123", ",", "123"},
		{"1234", ",", "1,234"},
		{"1234567", ".", "1.234.567"},
		{"1234.56", ",", "1,234.56"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, groupThousands(tt.in, tt.sep))
	}
}
