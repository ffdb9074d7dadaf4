package logicpaper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	p := NewLocaleProvider("pt_BR")

	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"1200.50", 1200.50, false},
		{"1.200,50", 1200.50, false},
		{"1,200.50", 1200.50, false},
		{"1.234.567,89", 1234567.89, false},
		{"1,5", 1.5, false},
		{"-1.200,50", -1200.50, false},
		{"42", 42, false},
		{" 10.5 ", 10.5, false},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := p.ParseDecimal(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDate(t *testing.T) {
	p := NewLocaleProvider("pt_BR")
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC) // a Tuesday

	tests := []struct {
		style  string
		locale string
		want   string
	}{
		{"short", "en", "3/5/24"},
		{"medium", "en", "Mar 5, 2024"},
		{"long", "en", "March 5, 2024"},
		{"full", "en", "Tuesday, March 5, 2024"},
		{"short", "pt", "05/03/2024"},
		{"medium", "pt", "5 de mar. de 2024"},
		{"long", "pt", "5 de março de 2024"},
		{"full", "pt", "terça-feira, 5 de março de 2024"},
		{"long", "es", "5 de marzo de 2024"},
		{"long", "fr", "5 mars 2024"},
		{"short", "de", "05.03.24"},
		{"long", "de", "5. März 2024"},
		{"full", "de", "Dienstag, 5. März 2024"},
		{"long", "pt_BR", "5 de março de 2024"},
		{"long", "", "5 de março de 2024"}, // falls back to provider locale
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.style, func(t *testing.T) {
			got, err := p.FormatDate(date, tt.style, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unsupported language", func(t *testing.T) {
		_, err := p.FormatDate(date, "long", "ja")
		assert.Error(t, err)
	})

	t.Run("unknown style", func(t *testing.T) {
		_, err := p.FormatDate(date, "fancy", "en")
		assert.Error(t, err)
	})
}

func TestMonthName(t *testing.T) {
	p := NewLocaleProvider("en")
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		locale string
		want   string
	}{
		{"en", "March"},
		{"pt", "Março"},
		{"pt_BR", "Março"},
		{"es", "Marzo"},
		{"de", "März"},
	}

	for _, tt := range tests {
		got, err := p.MonthName(march, tt.locale)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "locale %s", tt.locale)
	}

	_, err := p.MonthName(march, "ja")
	assert.Error(t, err)
}

func TestOrdinal(t *testing.T) {
	p := NewLocaleProvider("en").(*cldrProvider)

	tests := []struct {
		n    int
		lang string
		want string
	}{
		{1, "en", "1st"},
		{2, "en", "2nd"},
		{3, "en", "3rd"},
		{4, "en", "4th"},
		{11, "en", "11th"},
		{12, "en", "12th"},
		{13, "en", "13th"},
		{21, "en", "21st"},
		{101, "en", "101st"},
		{111, "en", "111th"},
		{1, "pt", "1º"},
		{3, "es", "3º"},
		{1, "fr", "1er"},
		{2, "fr", "2e"},
		{5, "de", "5."},
	}

	for _, tt := range tests {
		got, err := p.Ordinal(tt.n, tt.lang)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%d in %s", tt.n, tt.lang)
	}

	_, err := p.Ordinal(1, "ja")
	assert.Error(t, err)
}

func TestSpellOut(t *testing.T) {
	p := NewLocaleProvider("en").(*cldrProvider)

	tests := []struct {
		v    float64
		lang string
		want string
	}{
		{0, "en", "zero"},
		{7, "en", "seven"},
		{15, "en", "fifteen"},
		{21, "en", "twenty-one"},
		{40, "en", "forty"},
		{100, "en", "one hundred"},
		{342, "en", "three hundred forty-two"},
		{1500, "en", "one thousand five hundred"},
		{1000000, "en", "one million"},
		{2000001, "en", "two million one"},
		{-8, "en", "minus eight"},
		{21.5, "en", "twenty-one point five"},
		{0, "pt", "zero"},
		{10, "pt", "dez"},
		{21, "pt", "vinte e um"},
		{100, "pt", "cem"},
		{101, "pt", "cento e um"},
		{500, "pt", "quinhentos"},
		{1500, "pt", "mil e quinhentos"},
		{1234, "pt", "mil duzentos e trinta e quatro"},
		{2000, "pt", "dois mil"},
		{1000000, "pt", "um milhão"},
		{3000000, "pt", "três milhões"},
		{-2.5, "pt", "menos dois vírgula cinco"},
	}

	for _, tt := range tests {
		got, err := p.SpellOut(tt.v, tt.lang)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v in %s", tt.v, tt.lang)
	}

	_, err := p.SpellOut(1, "ja")
	assert.Error(t, err)
}

func TestFormatScientific(t *testing.T) {
	p := NewLocaleProvider("en")

	tests := []struct {
		v        float64
		mantissa string
	}{
		{1234.5, "1.2345"},
		{0.00042, "4.2"},
		{-98765, "9.8765"},
		{2, "2"},
	}

	for _, tt := range tests {
		got, err := p.FormatScientific(tt.v)
		require.NoError(t, err)
		assert.Contains(t, got, tt.mantissa, "scientific(%v)", tt.v)
	}
}

func TestSigDigits(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{0, 1},
		{2, 1},
		{1234.5, 5},
		{0.00042, 2},
		{-98765, 5},
		{1.000001, 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sigDigits(tt.v), "sigDigits(%v)", tt.v)
	}
}

func TestNormalizeLocale(t *testing.T) {
	assert.Equal(t, "pt-BR", normalizeLocale("pt_BR"))
	assert.Equal(t, "en", normalizeLocale(" en "))
}

func TestBaseLang(t *testing.T) {
	p := NewLocaleProvider("pt_BR").(*cldrProvider)
	assert.Equal(t, "pt", p.baseLang("pt_BR"))
	assert.Equal(t, "en", p.baseLang("en-US"))
	assert.Equal(t, "pt", p.baseLang("")) // provider's own locale
}
