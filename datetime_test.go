package datefmt

import (
	"errors"
	"testing"
	"time"

	"github.com/tdewolff/test"
)

func TestRenderSymbols(t *testing.T) {
	morning := time.Date(2000, 1, 1, 9, 30, 5, 123000000, time.UTC)
	tests := []struct {
		pattern string
		t       time.Time
		str     string
	}{
		{"G y", newYear, "AD 2000"},
		{"GGGG", newYear, "Anno Domini"},
		{"GGGGG", newYear, "A"},
		{"y", newYear, "2000"},
		{"yy", newYear, "00"},
		{"yyyy", newYear, "2000"},
		{"M", newYear, "1"},
		{"MM", newYear, "01"},
		{"MMM", newYear, "Jan"},
		{"MMMM", newYear, "January"},
		{"MMMMM", newYear, "J"},
		{"Q", newYear, "1"},
		{"QQ", time.Date(2000, 10, 1, 0, 0, 0, 0, time.UTC), "04"},
		{"d", newYear, "1"},
		{"dd", newYear, "01"},
		{"E", newYear, "Sat"},
		{"EEEE", newYear, "Saturday"},
		{"EEEEE", newYear, "S"},
		{"a", newYear, "PM"},
		{"aaaaa", newYear, "p"},
		{"h:mm a", newYear, "11:59 PM"},
		{"hh", morning, "09"},
		{"H", morning, "9"},
		{"HH", newYear, "23"},
		{"K", newYear, "11"},
		{"kk", newYear, "23"},
		{"k", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), "24"},
		{"mm", morning, "30"},
		{"s", morning, "5"},
		{"ss.SSS", morning, "05.123"},
		{"S", morning, "1"},
		{"A", time.Date(2000, 1, 1, 0, 0, 1, 500000000, time.UTC), "1500"},
		{"B", morning, "in the morning"},
		{"B", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), "noon"},
		{"B", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), "midnight"},
		{"B", time.Date(2000, 1, 1, 22, 0, 0, 0, time.UTC), "at night"},
		{"b", morning, "AM"},
		{"b", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), "noon"},
		{"z", newYear, "UTC"},
		{"zzzz", newYear, "GMT"},
		{"V", newYear, "UTC"},
		{"VV", newYear, "Etc/UTC"},
		{"ZZZZZ", newYear, "Z"},
		{"OOOO", newYear, "GMT"},
		{"'at' h", newYear, "at 11"},
		{"y''", newYear, "2000'"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			s, err := en.Format(tt.t, Options{Format: Pattern(tt.pattern)})
			test.Error(t, err)
			test.T(t, s, tt.str)
		})
	}
}

func TestRenderOffsets(t *testing.T) {
	tzIST := time.FixedZone("IST", 5*3600+1800)
	tzCET := time.FixedZone("XX", 2*3600)
	moment := time.Date(2000, 1, 1, 12, 0, 0, 0, tzIST)
	tests := []struct {
		pattern string
		t       time.Time
		str     string
	}{
		{"Z", moment, "+0530"},
		{"ZZZZ", moment, "GMT+05:30"},
		{"ZZZZZ", moment, "+05:30"},
		{"O", moment, "GMT+5:30"},
		{"O", moment.In(tzCET), "GMT+2"},
		// zones without a localized name fall back to the GMT format
		{"z", moment.In(tzCET), "GMT+2"},
		{"zzzz", moment.In(tzCET), "GMT+02:00"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			s, err := en.Format(tt.t, Options{Format: Pattern(tt.pattern)})
			test.Error(t, err)
			test.T(t, s, tt.str)
		})
	}
}

func TestRenderVariants(t *testing.T) {
	s, err := en.Format(newYear, Options{Format: Pattern("G"), EraVariant: true})
	test.Error(t, err)
	test.T(t, s, "CE")

	s, err = en.Format(newYear, Options{Format: Pattern("a"), PeriodVariant: true})
	test.Error(t, err)
	test.T(t, s, "pm")

	// locales without a variant form keep the standard form
	s, err = fr.Format(newYear, Options{Format: Pattern("a"), PeriodVariant: true})
	test.Error(t, err)
	test.T(t, s, "PM")
}

func TestRenderDigits(t *testing.T) {
	// ar defaults to arab digits; an explicit override transliterates any
	// locale, and unknown systems fall back to the locale default
	ar := New("ar")
	s, err := ar.Format(newYear, Options{Format: Pattern("y")})
	test.Error(t, err)
	test.T(t, s, "٢٠٠٠")

	s, err = en.Format(newYear, Options{Format: Pattern("d/M/y"), NumberSystem: "arab"})
	test.Error(t, err)
	test.T(t, s, "١/١/٢٠٠٠")

	s, err = en.Format(newYear, Options{Format: Pattern("y"), NumberSystem: "thai"})
	test.Error(t, err)
	test.T(t, s, "๒๐๐๐")

	s, err = en.Format(newYear, Options{Format: Pattern("y"), NumberSystem: "roman"})
	test.Error(t, err)
	test.T(t, s, "2000")

	s, err = ar.Format(newYear, Options{Format: Pattern("y"), NumberSystem: "roman"})
	test.Error(t, err)
	test.T(t, s, "٢٠٠٠")
}

func TestRenderErrors(t *testing.T) {
	for _, pattern := range []string{"QQQ", "w", "X", "'unterminated"} {
		t.Run(pattern, func(t *testing.T) {
			_, err := en.Format(newYear, Options{Format: Pattern(pattern)})
			test.That(t, errors.Is(err, ErrRender), "expected ErrRender, got", err)
		})
	}
}
