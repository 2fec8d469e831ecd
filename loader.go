package datefmt

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// The locale data table is populated at startup and read-only afterwards.
// LoadLocaleData and RegisterLocale must run before any concurrent
// formatting begins; they are not synchronized with readers.

type yamlCalendarFormat struct {
	Full   string `yaml:"full"`
	Long   string `yaml:"long"`
	Medium string `yaml:"medium"`
	Short  string `yaml:"short"`
}

type yamlSymbol struct {
	Wide        string `yaml:"wide"`
	Abbreviated string `yaml:"abbreviated"`
	Narrow      string `yaml:"narrow"`
	Variant     string `yaml:"variant"`
}

type yamlTimezone struct {
	Short string `yaml:"short"`
	Long  string `yaml:"long"`
}

type yamlDayPeriodRule struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

type yamlLocale struct {
	NumberSystem     string                       `yaml:"number_system"`
	Date             yamlCalendarFormat           `yaml:"date"`
	Time             yamlCalendarFormat           `yaml:"time"`
	Datetime         yamlCalendarFormat           `yaml:"datetime"`
	AvailableFormats map[string]string            `yaml:"available_formats"`
	Months           []yamlSymbol                 `yaml:"months"`
	Days             []yamlSymbol                 `yaml:"days"`
	DayPeriods       map[string]yamlSymbol        `yaml:"day_periods"`
	DayPeriodRules   map[string]yamlDayPeriodRule `yaml:"day_period_rules"`
	Eras             []yamlSymbol                 `yaml:"eras"`
	Timezones        map[string]yamlTimezone      `yaml:"timezones"`
}

type yamlLocaleFile struct {
	Locales map[string]map[string]yamlLocale `yaml:"locales"` // locale name -> calendar -> data
}

// LoadLocaleFile reads locale definitions from a YAML file and merges them
// over the built-in table. Present fields replace, absent fields keep the
// built-in (or zero) value, so a file can override a single pattern of an
// existing locale or define a whole new one.
func LoadLocaleFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load locale data: %w", err)
	}
	defer f.Close()
	return LoadLocaleData(f)
}

// LoadLocaleData is LoadLocaleFile for an io.Reader.
func LoadLocaleData(r io.Reader) error {
	var file yamlLocaleFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return fmt.Errorf("parse locale data: %w", err)
	}
	for name, calendars := range file.Locales {
		if _, err := ValidateLocale(name); err != nil && name != "root" {
			return err
		}
		for calendar, src := range calendars {
			key := localeKey{name, CalendarKind(calendar)}
			data := locales[key]
			mergeLocaleData(&data, src)
			locales[key] = data
		}
	}
	return nil
}

// RegisterLocale binds a complete data table entry for a locale and
// calendar, replacing any built-in entry.
func RegisterLocale(name string, cal CalendarKind, data LocaleData) {
	locales[localeKey{name, cal}] = data
}

func mergeCalendarFormat(dst *CalendarFormat, src yamlCalendarFormat) {
	if src.Full != "" {
		dst.Full = src.Full
	}
	if src.Long != "" {
		dst.Long = src.Long
	}
	if src.Medium != "" {
		dst.Medium = src.Medium
	}
	if src.Short != "" {
		dst.Short = src.Short
	}
}

func mergeLocaleData(dst *LocaleData, src yamlLocale) {
	if src.NumberSystem != "" {
		dst.NumberSystem = src.NumberSystem
	}
	mergeCalendarFormat(&dst.DateFormat, src.Date)
	mergeCalendarFormat(&dst.TimeFormat, src.Time)
	mergeCalendarFormat(&dst.DatetimeFormat, src.Datetime)

	if len(src.AvailableFormats) != 0 {
		if dst.AvailableFormats == nil {
			dst.AvailableFormats = map[string]string{}
		}
		for skeleton, pattern := range src.AvailableFormats {
			dst.AvailableFormats[skeleton] = pattern
		}
	}
	for i, sym := range src.Months {
		if i == 12 {
			break
		}
		dst.MonthSymbol[i] = CalendarSymbol{sym.Wide, sym.Abbreviated, sym.Narrow}
	}
	for i, sym := range src.Days {
		if i == 7 {
			break
		}
		dst.DaySymbol[i] = CalendarSymbol{sym.Wide, sym.Abbreviated, sym.Narrow}
	}
	if len(src.DayPeriods) != 0 {
		if dst.DayPeriodSymbol == nil {
			dst.DayPeriodSymbol = map[string]CalendarSymbol{}
		}
		if dst.DayPeriodVariant == nil {
			dst.DayPeriodVariant = map[string]string{}
		}
		for name, sym := range src.DayPeriods {
			dst.DayPeriodSymbol[name] = CalendarSymbol{sym.Wide, sym.Abbreviated, sym.Narrow}
			if sym.Variant != "" {
				dst.DayPeriodVariant[name] = sym.Variant
			}
		}
	}
	if len(src.DayPeriodRules) != 0 {
		if dst.DayPeriodRules == nil {
			dst.DayPeriodRules = map[string]DayPeriodRule{}
		}
		for name, rule := range src.DayPeriodRules {
			dst.DayPeriodRules[name] = DayPeriodRule{rule.From, rule.To}
		}
	}
	for i, sym := range src.Eras {
		if i == 2 {
			break
		}
		dst.EraSymbol[i] = EraSymbol{sym.Wide, sym.Abbreviated, sym.Narrow, sym.Variant}
	}
	if len(src.Timezones) != 0 {
		if dst.TimezoneName == nil {
			dst.TimezoneName = map[string]TimezoneName{}
		}
		for zone, tz := range src.Timezones {
			dst.TimezoneName[zone] = TimezoneName{tz.Short, tz.Long}
		}
	}
}
