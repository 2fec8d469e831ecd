package datefmt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tdewolff/test"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		locale string
		opts   Options
		str    string
	}{
		{"en", Options{}, "Jan 1, 2000, 11:59:59 PM"},
		{"en", Options{Format: StyleLong}, "January 1, 2000 at 11:59:59 PM UTC"},
		{"en", Options{Format: StyleFull}, "Saturday, January 1, 2000 at 11:59:59 PM GMT"},
		{"en", Options{Format: StyleShort}, "1/1/00, 11:59 PM"},
		{"fr", Options{}, "1 janv. 2000, 23:59:59"},
		{"fr", Options{Format: StyleFull}, "samedi 1 janvier 2000 à 23:59:59 UTC"},
		{"en-GB", Options{}, "1 Jan 2000, 23:59:59"},
		{"ja", Options{}, "2000/01/01 23:59:59"},
		{"en", Options{Format: Skeleton("yMMMEd")}, "Sat, Jan 1, 2000"},
		{"en", Options{Format: Skeleton("Hm")}, "23:59"},
		{"en", Options{Format: Pattern("EEEE")}, "Saturday"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			f := New(tt.locale)
			s, err := f.Format(newYear, tt.opts)
			test.Error(t, err)
			test.T(t, s, tt.str)
		})
	}
}

func TestFormatLocaleOption(t *testing.T) {
	// Options.Locale overrides the Formatter's default locale per call; the
	// zero Formatter defaults to English.
	s, err := fr.Format(newYear, Options{Locale: "en", Format: StyleFull})
	test.Error(t, err)
	test.T(t, s, "Saturday, January 1, 2000 at 11:59:59 PM GMT")

	s, err = Format(newYear, Options{})
	test.Error(t, err)
	test.T(t, s, "Jan 1, 2000, 11:59:59 PM")
}

func TestFormatValues(t *testing.T) {
	want := "Jan 1, 2000, 11:59:59 PM"

	m := MomentOf(newYear)
	s, err := en.Format(m, Options{})
	test.Error(t, err)
	test.T(t, s, want)

	s, err = en.Format(&m, Options{})
	test.Error(t, err)
	test.T(t, s, want)

	s, err = en.Format("2000-01-01 23:59:59", Options{})
	test.Error(t, err)
	test.T(t, s, want)

	s, err = en.Format(map[string]any{
		"year": 2000, "month": 1, "day": 1,
		"hour": 23, "minute": 59, "second": 59,
		"calendar": "gregorian",
	}, Options{})
	test.Error(t, err)
	test.T(t, s, want)
}

func TestFormatInvalidInput(t *testing.T) {
	// a value missing a required field is rejected before any locale or
	// pattern work, naming every required field and echoing the input
	_, err := en.Format(map[string]any{
		"year": 2000, "month": 1, "day": 1,
		"hour": 23, "minute": 59,
		"calendar": "gregorian",
	}, Options{})
	test.That(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got", err)
	test.That(t, strings.Contains(err.Error(), "[second]"), "missing field not named in", err)
	test.That(t, strings.Contains(err.Error(), "[year month day hour minute second calendar]"), "required fields not listed in", err)
	test.That(t, strings.Contains(err.Error(), "2000"), "input not echoed in", err)

	_, err = en.Format(42, Options{})
	test.That(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got", err)

	_, err = en.Format(Moment{Year: 2000, Month: 13, Day: 1}, Options{})
	test.That(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got", err)
}

func TestFormatErrors(t *testing.T) {
	_, err := en.Format(newYear, Options{Locale: "no!pe"})
	test.That(t, errors.Is(err, ErrInvalidLocale), "expected ErrInvalidLocale, got", err)

	_, err = en.Format(Moment{Year: 2000, Month: 1, Day: 1, Calendar: "hebrew"}, Options{})
	test.That(t, errors.Is(err, ErrUnsupportedCalendar), "expected ErrUnsupportedCalendar, got", err)

	_, err = en.Format(newYear, Options{Format: Skeleton("zzz")})
	test.That(t, errors.Is(err, ErrInvalidFormatType), "expected ErrInvalidFormatType, got", err)
}

func TestMustFormat(t *testing.T) {
	// MustFormat returns the Ok payload of Format on well-formed input
	want, err := en.Format(newYear, Options{Format: StyleLong})
	test.Error(t, err)
	test.T(t, en.MustFormat(newYear, Options{Format: StyleLong}), want)

	defer func() {
		err, ok := recover().(error)
		test.That(t, ok, "expected an error panic")
		test.That(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got", err)
		test.That(t, strings.Contains(err.Error(), "[second]"), "missing field not named in", err)
	}()
	en.MustFormat(map[string]any{
		"year": 2000, "month": 1, "day": 1,
		"hour": 23, "minute": 59,
		"calendar": "gregorian",
	}, Options{})
	t.Fatal("expected panic")
}

func TestFormatConcurrent(t *testing.T) {
	// formatting shares only the read-only locale data table
	done := make(chan string)
	for i := 0; i < 8; i++ {
		go func() {
			done <- en.MustFormat(newYear, Options{Format: StyleFull})
		}()
	}
	for i := 0; i < 8; i++ {
		test.T(t, <-done, "Saturday, January 1, 2000 at 11:59:59 PM GMT")
	}
}

var benchTime = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

func BenchmarkFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		en.MustFormat(benchTime, Options{Format: StyleFull})
	}
}
