package datefmt

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// RenderOptions are the caller-supplied rendering switches.
type RenderOptions struct {
	// EraVariant selects an alternate era name form when the locale
	// defines one, e.g. CE instead of AD.
	EraVariant bool
	// PeriodVariant selects an alternate day-period name form, including
	// flexible period names such as "in the morning" where the locale
	// defines them.
	PeriodVariant bool
}

// Renderer produces localized text from a value and a resolved pattern. It
// tokenizes the pattern into literal runs and symbol runs, maps each symbol
// run to locale text selecting width by repetition count, and applies the
// pattern's numbering system to numeric fields.
type Renderer interface {
	Render(m *Moment, pattern ResolvedPattern, loc Locale, opts RenderOptions) (string, error)
}

// cldrRenderer is the built-in Renderer over the locale data tables.
type cldrRenderer struct{}

var defaultRenderer Renderer = cldrRenderer{}

func (cldrRenderer) Render(m *Moment, rp ResolvedPattern, loc Locale, opts RenderOptions) (string, error) {
	data, ok := localeData(loc, CalendarGregorian)
	if !ok {
		return "", fmt.Errorf("%w: no locale data for %s", ErrDataIntegrity, loc.Name())
	}
	digits := digitsFor(rp.NumberSystem, data.NumberSystem)
	t := m.Time()

	var b []byte
	pattern := rp.Pattern
	for i := 0; i < len(pattern); {
		r, n := utf8.DecodeRuneInString(pattern[i:])
		switch r {
		case '\'':
			j := i + 1
			for j < len(pattern) && pattern[j] != '\'' {
				j++
			}
			if j == len(pattern) {
				return "", fmt.Errorf("%w: unterminated quoted literal in %q", ErrRender, pattern)
			}
			if j == i+1 {
				b = append(b, '\'') // '' is an escaped apostrophe
			} else {
				b = append(b, pattern[i+1:j]...)
			}
			i = j + 1
		default:
			var sz int
			var err error
			if b, sz, err = appendDatetimeItem(b, pattern[i:], data, m, t, opts, digits); err != nil {
				return "", err
			} else if sz != 0 {
				i += sz
			} else {
				b = utf8.AppendRune(b, r)
				i += n
			}
		}
	}
	return string(b), nil
}

const patternSymbols = "GyYuUrQqMLlwWdDFgEecabBhHKkjJCmsSAzZOvVXx"

var int64Scales = [...]int{1, 10, 100, 1000, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

func appendDatetimeItem(b []byte, pattern string, data LocaleData, m *Moment, t time.Time, opts RenderOptions, digits []rune) ([]byte, int, error) {
	c := pattern[0]
	if c < 'A' || 'z' < c || 'Z' < c && c < 'a' || !strings.ContainsRune(patternSymbols, rune(c)) {
		return b, 0, nil
	}
	n := 1
	for n < len(pattern) && pattern[n] == c {
		n++
	}

	era := 1
	if m.Year <= 0 {
		era = 0
	}
	pm := 12 <= m.Hour

	symbol := pattern[:n]
TrySymbol:
	switch symbol {
	case "G", "GG", "GGG":
		sym := data.EraSymbol[era]
		if opts.EraVariant && sym.Variant != "" {
			b = append(b, sym.Variant...)
		} else if sym.Abbreviated == "" {
			b = append(b, sym.Wide...)
		} else {
			b = append(b, sym.Abbreviated...)
		}
	case "GGGG":
		sym := data.EraSymbol[era]
		if opts.EraVariant && sym.Variant != "" {
			b = append(b, sym.Variant...)
		} else {
			b = append(b, sym.Wide...)
		}
	case "GGGGG":
		b = append(b, data.EraSymbol[era].Narrow...)
	case "y":
		b = appendInt(b, digits, m.Year, 1)
	case "yy":
		year := m.Year % 100
		if year < 0 {
			year = -year
		}
		b = appendInt(b, digits, year, 2)
	default:
		switch c {
		case 'y':
			b = appendInt(b, digits, m.Year, n)
		case 'M', 'L':
			switch n {
			case 1:
				b = appendInt(b, digits, int(m.Month), 1)
			case 2:
				b = appendInt(b, digits, int(m.Month), 2)
			case 3:
				if data.MonthSymbol[m.Month-1].Abbreviated == "" {
					b = append(b, data.MonthSymbol[m.Month-1].Wide...)
				} else {
					b = append(b, data.MonthSymbol[m.Month-1].Abbreviated...)
				}
			case 4:
				b = append(b, data.MonthSymbol[m.Month-1].Wide...)
			default:
				b = append(b, data.MonthSymbol[m.Month-1].Narrow...)
			}
		case 'Q', 'q':
			// numeric widths only; named quarters are not in the data tables
			if 2 < n {
				return b, n, fmt.Errorf("%w: unsupported pattern symbol %q", ErrRender, symbol)
			}
			b = appendInt(b, digits, (int(m.Month)+2)/3, n)
		case 'd':
			b = appendInt(b, digits, m.Day, n)
		case 'E', 'e', 'c':
			switch {
			case n <= 3:
				b = append(b, data.DaySymbol[t.Weekday()].Abbreviated...)
			case n == 4:
				b = append(b, data.DaySymbol[t.Weekday()].Wide...)
			default:
				b = append(b, data.DaySymbol[t.Weekday()].Narrow...)
			}
		case 'a':
			key := "am"
			if pm {
				key = "pm"
			}
			if opts.PeriodVariant && data.DayPeriodVariant[key] != "" {
				b = append(b, data.DayPeriodVariant[key]...)
				break
			}
			b = appendDayPeriod(b, data.DayPeriodSymbol[key], n)
		case 'b':
			period := dayPeriod(data, m)
			if sym, ok := data.DayPeriodSymbol[period]; ok && (period == "midnight" || period == "noon") {
				b = appendDayPeriod(b, sym, n)
			} else if pm {
				b = appendDayPeriod(b, data.DayPeriodSymbol["pm"], n)
			} else {
				b = appendDayPeriod(b, data.DayPeriodSymbol["am"], n)
			}
		case 'B':
			period := dayPeriod(data, m)
			if sym, ok := data.DayPeriodSymbol[period]; ok {
				b = appendDayPeriod(b, sym, n)
			} else if pm {
				b = appendDayPeriod(b, data.DayPeriodSymbol["pm"], n)
			} else {
				b = appendDayPeriod(b, data.DayPeriodSymbol["am"], n)
			}
		case 'h':
			hour := m.Hour % 12
			if hour == 0 {
				hour = 12
			}
			b = appendInt(b, digits, hour, n)
		case 'H':
			b = appendInt(b, digits, m.Hour, n)
		case 'K':
			b = appendInt(b, digits, m.Hour%12, n)
		case 'k':
			hour := m.Hour
			if hour == 0 {
				hour = 24
			}
			b = appendInt(b, digits, hour, n)
		case 'm':
			b = appendInt(b, digits, m.Minute, n)
		case 's':
			b = appendInt(b, digits, m.Second, n)
		case 'S':
			frac := m.Nanosecond
			if n < 9 {
				frac /= int64Scales[9-n]
			} else {
				for i := 9; i < n; i++ {
					frac *= 10
				}
			}
			b = appendInt(b, digits, frac, n)
		case 'A':
			millis := ((m.Hour*60+m.Minute)*60+m.Second)*1000 + m.Nanosecond/1e6
			b = appendInt(b, digits, millis, n)
		case 'z', 'v', 'Z', 'O', 'V':
			switch symbol {
			case "z", "zz", "zzz", "v":
				if tz, ok := data.TimezoneName[timezoneKey(m)]; ok && tz.Short != "" {
					b = append(b, tz.Short...)
				} else {
					symbol = "O"
					goto TrySymbol
				}
			case "zzzz", "vvvv":
				if tz, ok := data.TimezoneName[timezoneKey(m)]; ok && tz.Long != "" {
					b = append(b, tz.Long...)
				} else {
					symbol = "OOOO"
					goto TrySymbol
				}
			case "Z", "ZZ", "ZZZ":
				b = appendOffset(b, digits, t, false)
			case "ZZZZ", "OOOO":
				b = append(b, "GMT"...)
				if _, offset := t.Zone(); offset != 0 {
					b = appendOffset(b, digits, t, true)
				}
			case "O":
				b = append(b, "GMT"...)
				if _, offset := t.Zone(); offset != 0 {
					b = appendShortOffset(b, digits, t)
				}
			case "ZZZZZ":
				if _, offset := t.Zone(); offset == 0 {
					b = append(b, 'Z')
				} else {
					b = appendOffset(b, digits, t, true)
				}
			case "V":
				zone, _ := t.Zone()
				b = append(b, zone...)
			case "VV":
				b = append(b, timezoneKey(m)...)
			default:
				return b, n, fmt.Errorf("%w: unsupported pattern symbol %q", ErrRender, symbol)
			}
		default:
			return b, n, fmt.Errorf("%w: unsupported pattern symbol %q", ErrRender, symbol)
		}
	}
	return b, n, nil
}

func appendDayPeriod(b []byte, sym CalendarSymbol, n int) []byte {
	switch {
	case n <= 3:
		if sym.Abbreviated == "" {
			return append(b, sym.Wide...)
		}
		return append(b, sym.Abbreviated...)
	case n == 4:
		return append(b, sym.Wide...)
	}
	return append(b, sym.Narrow...)
}

// dayPeriod returns the flexible day-period name for the moment's time of
// day, e.g. "morning1" or "noon". Point periods win over spans.
func dayPeriod(data LocaleData, m *Moment) string {
	d := m.Hour*60 + m.Minute
	for name, rule := range data.DayPeriodRules {
		if rule.To == -1 && rule.From == d {
			return name
		}
	}
	for name, rule := range data.DayPeriodRules {
		switch {
		case rule.To == -1:
		case rule.From <= rule.To:
			if rule.From <= d && d < rule.To {
				return name
			}
		default: // spans that wrap past midnight, e.g. night1 21:00-06:00
			if rule.From <= d || d < rule.To {
				return name
			}
		}
	}
	return ""
}

// appendOffset appends the UTC offset as "-0700", or "-07:00" when extended.
func appendOffset(b []byte, digits []rune, t time.Time, extended bool) []byte {
	_, offset := t.Zone()
	if offset < 0 {
		b = append(b, '-')
		offset = -offset
	} else {
		b = append(b, '+')
	}
	b = appendInt(b, digits, offset/3600, 2)
	if extended {
		b = append(b, ':')
	}
	return appendInt(b, digits, offset%3600/60, 2)
}

// appendShortOffset appends the offset as "-7" or "-7:30".
func appendShortOffset(b []byte, digits []rune, t time.Time) []byte {
	_, offset := t.Zone()
	if offset < 0 {
		b = append(b, '-')
		offset = -offset
	} else {
		b = append(b, '+')
	}
	b = appendInt(b, digits, offset/3600, 1)
	if minutes := offset % 3600 / 60; minutes != 0 {
		b = append(b, ':')
		b = appendInt(b, digits, minutes, 2)
	}
	return b
}

func timezoneKey(m *Moment) string {
	if m.Location == nil {
		return "Etc/UTC"
	}
	name := m.Location.String()
	if alias, ok := timezoneAliases[name]; ok {
		name = alias
	}
	return name
}

// Not in the tzdb and "deprecated", but some browsers send these; plus the
// UTC spellings time.Location reports.
var timezoneAliases = map[string]string{
	"CET": "Europe/Paris",
	"EET": "Europe/Sofia",
	"EST": "America/Cancun",
	"HST": "Pacific/Honolulu",
	"MET": "Europe/Paris",
	"MST": "America/Phoenix",
	"WET": "Europe/Lisbon",
	"PST": "America/Los_Angeles",

	"UTC":       "Etc/UTC",
	"GMT":       "Etc/GMT",
	"Universal": "Etc/UTC",
	"Zulu":      "Etc/UTC",
}

func (f CalendarFormat) style(s Style) string {
	switch s {
	case StyleFull:
		return f.Full
	case StyleLong:
		return f.Long
	case StyleMedium:
		return f.Medium
	case StyleShort:
		return f.Short
	}
	return ""
}
