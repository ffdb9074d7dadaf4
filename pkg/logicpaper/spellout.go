package logicpaper

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Ordinal renders n as an ordinal number per language ("1st", "1º", "1er").
func (p *cldrProvider) Ordinal(n int, lang string) (string, error) {
	switch p.baseLang(lang) {
	case "en":
		return englishOrdinal(n), nil
	case "pt", "es":
		return fmt.Sprintf("%dº", n), nil
	case "fr":
		if n == 1 {
			return "1er", nil
		}
		return fmt.Sprintf("%de", n), nil
	case "de":
		return fmt.Sprintf("%d.", n), nil
	default:
		return "", fmt.Errorf("no ordinal rules for language %q", lang)
	}
}

func englishOrdinal(n int) string {
	suffix := "th"
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if abs%100 < 11 || abs%100 > 13 {
		switch abs % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// SpellOut renders a number in words. English and Portuguese are supported;
// fractional digits are spelled one by one after the decimal word.
func (p *cldrProvider) SpellOut(v float64, lang string) (string, error) {
	base := p.baseLang(lang)

	var words func(int64) string
	var minus, point string
	var digits [10]string

	switch base {
	case "en":
		words, minus, point, digits = englishWords, "minus", "point", englishDigits
	case "pt":
		words, minus, point, digits = portugueseWords, "menos", "vírgula", portugueseDigits
	default:
		return "", fmt.Errorf("no spell-out rules for language %q", lang)
	}

	neg := math.Signbit(v)
	abs := math.Abs(v)
	intPart := int64(abs)

	out := words(intPart)
	if frac := fracDigits(abs); frac != "" {
		spelled := make([]string, 0, len(frac))
		for _, d := range frac {
			spelled = append(spelled, digits[d-'0'])
		}
		out += " " + point + " " + strings.Join(spelled, " ")
	}
	if neg {
		out = minus + " " + out
	}
	return out, nil
}

// fracDigits returns the digits after the decimal point of the shortest
// exact representation of v, or "" for whole numbers.
func fracDigits(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return ""
}

var englishDigits = [10]string{"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine"}

var englishOnes = [20]string{"zero", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten", "eleven", "twelve", "thirteen",
	"fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}

var englishTens = [10]string{"", "", "twenty", "thirty", "forty", "fifty",
	"sixty", "seventy", "eighty", "ninety"}

var englishScales = []struct {
	value int64
	name  string
}{
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
}

func englishWords(n int64) string {
	if n < 20 {
		return englishOnes[n]
	}
	if n < 100 {
		out := englishTens[n/10]
		if n%10 != 0 {
			out += "-" + englishOnes[n%10]
		}
		return out
	}
	if n < 1000 {
		out := englishOnes[n/100] + " hundred"
		if n%100 != 0 {
			out += " " + englishWords(n%100)
		}
		return out
	}
	for _, scale := range englishScales {
		if n >= scale.value {
			out := englishWords(n/scale.value) + " " + scale.name
			if rem := n % scale.value; rem != 0 {
				out += " " + englishWords(rem)
			}
			return out
		}
	}
	return strconv.FormatInt(n, 10)
}

var portugueseDigits = [10]string{"zero", "um", "dois", "três", "quatro",
	"cinco", "seis", "sete", "oito", "nove"}

var portugueseOnes = [20]string{"zero", "um", "dois", "três", "quatro",
	"cinco", "seis", "sete", "oito", "nove", "dez", "onze", "doze", "treze",
	"catorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}

var portugueseTens = [10]string{"", "", "vinte", "trinta", "quarenta",
	"cinquenta", "sessenta", "setenta", "oitenta", "noventa"}

var portugueseHundreds = [10]string{"", "cento", "duzentos", "trezentos",
	"quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos",
	"novecentos"}

func portugueseWords(n int64) string {
	if n < 20 {
		return portugueseOnes[n]
	}
	if n < 100 {
		out := portugueseTens[n/10]
		if n%10 != 0 {
			out += " e " + portugueseOnes[n%10]
		}
		return out
	}
	if n == 100 {
		return "cem"
	}
	if n < 1000 {
		out := portugueseHundreds[n/100]
		if n%100 != 0 {
			out += " e " + portugueseWords(n%100)
		}
		return out
	}
	if n < 1_000_000 {
		thousands := n / 1000
		out := "mil"
		if thousands > 1 {
			out = portugueseWords(thousands) + " mil"
		}
		if rem := n % 1000; rem != 0 {
			out += portugueseRemainder(rem)
		}
		return out
	}
	if n < 1_000_000_000 {
		millions := n / 1_000_000
		out := "um milhão"
		if millions > 1 {
			out = portugueseWords(millions) + " milhões"
		}
		if rem := n % 1_000_000; rem != 0 {
			out += portugueseRemainder(rem)
		}
		return out
	}
	billions := n / 1_000_000_000
	out := "um bilhão"
	if billions > 1 {
		out = portugueseWords(billions) + " bilhões"
	}
	if rem := n % 1_000_000_000; rem != 0 {
		out += portugueseRemainder(rem)
	}
	return out
}

// portugueseRemainder joins a group remainder with "e" when the remainder is
// small or a round hundred, the usual written convention.
func portugueseRemainder(rem int64) string {
	if rem < 100 || rem%100 == 0 {
		return " e " + portugueseWords(rem)
	}
	return " " + portugueseWords(rem)
}
