package logicpaper

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LocaleProvider is the port behind which all locale-sensitive formatting
// lives. Strategies depend on this interface, never on a locale library, so
// the interpreter core stays swappable per target ecosystem.
type LocaleProvider interface {
	// Locale returns the identifier this provider was built with.
	Locale() string
	// ParseDecimal converts localized numeric text to a float.
	ParseDecimal(s string) (float64, error)
	// FormatCurrency renders an amount with the given ISO currency code.
	FormatCurrency(v float64, code string) (string, error)
	// FormatPercent renders a ratio as a localized percentage.
	FormatPercent(v float64) (string, error)
	// FormatScientific renders a number in localized scientific notation.
	FormatScientific(v float64) (string, error)
	// FormatDate renders a date in one of the CLDR styles
	// (short, medium, long, full) for the given locale code.
	FormatDate(t time.Time, style, locale string) (string, error)
	// MonthName returns the full month name for the given locale code.
	MonthName(t time.Time, locale string) (string, error)
	// Ordinal renders n in ordinal-number form ("1st", "1º") per language.
	Ordinal(n int, lang string) (string, error)
	// SpellOut renders a number in words per language.
	SpellOut(v float64, lang string) (string, error)
}

// cldrProvider implements LocaleProvider on top of golang.org/x/text for
// numbers and currencies, with built-in tables for date styles, month names,
// ordinals and spelled-out numbers (x/text ships no public CLDR date or
// spell-out formatting).
type cldrProvider struct {
	locale  string
	tag     language.Tag
	printer *message.Printer
}

// NewLocaleProvider builds the default provider for a locale identifier such
// as "pt_BR" or "en". Unknown identifiers degrade to the root language.
func NewLocaleProvider(locale string) LocaleProvider {
	tag := language.Make(normalizeLocale(locale))
	return &cldrProvider{
		locale:  locale,
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// baseLang reduces a locale identifier to its lower-cased base language
// ("pt_BR" -> "pt"). Empty input falls back to the provider's own locale.
func (p *cldrProvider) baseLang(locale string) string {
	if strings.TrimSpace(locale) == "" {
		locale = p.locale
	}
	tag := language.Make(normalizeLocale(locale))
	base, _ := tag.Base()
	return base.String()
}

func (p *cldrProvider) Locale() string {
	return p.locale
}

// ParseDecimal accepts both "1,200.50" and "1.200,50" shaped input. A lone
// comma is a decimal separator; when both separators appear, whichever comes
// first is the thousands separator.
func (p *cldrProvider) ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && !hasDot:
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma && hasDot:
		if strings.Index(s, ",") < strings.Index(s, ".") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		}
	}

	return strconv.ParseFloat(s, 64)
}

func (p *cldrProvider) FormatCurrency(v float64, code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("invalid currency code %q: %w", code, err)
	}
	return p.printer.Sprint(currency.Symbol(unit.Amount(v))), nil
}

func (p *cldrProvider) FormatPercent(v float64) (string, error) {
	return p.printer.Sprintf("%v", number.Percent(v)), nil
}

func (p *cldrProvider) FormatScientific(v float64) (string, error) {
	// Without an explicit precision x/text renders minimal digits and the
	// mantissa collapses (1234.5 -> "1 × 10³").
	return p.printer.Sprintf("%v", number.Scientific(v, number.Precision(sigDigits(v)))), nil
}

// sigDigits counts the significant digits of the shortest exact
// representation of v.
func sigDigits(v float64) int {
	s := strconv.FormatFloat(math.Abs(v), 'e', -1, 64)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, ".", "")
	if s == "" {
		return 1
	}
	return len(s)
}

func (p *cldrProvider) FormatDate(t time.Time, style, locale string) (string, error) {
	lang := p.baseLang(locale)
	names, ok := dateNames[lang]
	if !ok {
		return "", fmt.Errorf("no date patterns for language %q", lang)
	}

	day := t.Day()
	year := t.Year()
	month := names.months[t.Month()-1]
	abbrev := names.monthsAbbrev[t.Month()-1]
	weekday := names.weekdays[t.Weekday()]

	switch lang {
	case "en":
		switch style {
		case "short":
			return t.Format("1/2/06"), nil
		case "medium":
			return t.Format("Jan 2, 2006"), nil
		case "long":
			return t.Format("January 2, 2006"), nil
		case "full":
			return t.Format("Monday, January 2, 2006"), nil
		}
	case "pt":
		switch style {
		case "short":
			return t.Format("02/01/2006"), nil
		case "medium":
			return fmt.Sprintf("%d de %s de %d", day, abbrev, year), nil
		case "long":
			return fmt.Sprintf("%d de %s de %d", day, month, year), nil
		case "full":
			return fmt.Sprintf("%s, %d de %s de %d", weekday, day, month, year), nil
		}
	case "es":
		switch style {
		case "short":
			return t.Format("2/1/06"), nil
		case "medium":
			return fmt.Sprintf("%d %s %d", day, abbrev, year), nil
		case "long":
			return fmt.Sprintf("%d de %s de %d", day, month, year), nil
		case "full":
			return fmt.Sprintf("%s, %d de %s de %d", weekday, day, month, year), nil
		}
	case "fr":
		switch style {
		case "short":
			return t.Format("02/01/2006"), nil
		case "medium":
			return fmt.Sprintf("%d %s %d", day, abbrev, year), nil
		case "long":
			return fmt.Sprintf("%d %s %d", day, month, year), nil
		case "full":
			return fmt.Sprintf("%s %d %s %d", weekday, day, month, year), nil
		}
	case "de":
		switch style {
		case "short":
			return t.Format("02.01.06"), nil
		case "medium":
			return t.Format("02.01.2006"), nil
		case "long":
			return fmt.Sprintf("%d. %s %d", day, month, year), nil
		case "full":
			return fmt.Sprintf("%s, %d. %s %d", weekday, day, month, year), nil
		}
	}

	return "", fmt.Errorf("unknown date style %q", style)
}

func (p *cldrProvider) MonthName(t time.Time, locale string) (string, error) {
	lang := p.baseLang(locale)
	names, ok := dateNames[lang]
	if !ok {
		return "", fmt.Errorf("no month names for language %q", lang)
	}
	name := names.months[t.Month()-1]
	return cases.Title(language.Make(lang)).String(name), nil
}

// localeDateNames holds the name tables for one language.
type localeDateNames struct {
	months       [12]string
	monthsAbbrev [12]string
	weekdays     [7]string // indexed by time.Weekday (Sunday first)
}

var dateNames = map[string]localeDateNames{
	"en": {
		months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		monthsAbbrev: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday",
			"Thursday", "Friday", "Saturday"},
	},
	"pt": {
		months: [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		monthsAbbrev: [12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
			"jul.", "ago.", "set.", "out.", "nov.", "dez."},
		weekdays: [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira",
			"quinta-feira", "sexta-feira", "sábado"},
	},
	"es": {
		months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		monthsAbbrev: [12]string{"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sept", "oct", "nov", "dic"},
		weekdays: [7]string{"domingo", "lunes", "martes", "miércoles",
			"jueves", "viernes", "sábado"},
	},
	"fr": {
		months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		monthsAbbrev: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc."},
		weekdays: [7]string{"dimanche", "lundi", "mardi", "mercredi",
			"jeudi", "vendredi", "samedi"},
	},
	"de": {
		months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
		monthsAbbrev: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
			"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		weekdays: [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch",
			"Donnerstag", "Freitag", "Samstag"},
	},
}
