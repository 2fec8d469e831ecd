package datefmt

import (
	"errors"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestResolveStyle(t *testing.T) {
	// Standard styles must resolve to a non-empty pattern for every locale,
	// including locales that fall back to a parent or to root.
	for _, localeName := range []string{"en", "en-GB", "en-AU", "fr", "es", "ar", "ja", "tlh"} {
		loc, err := ValidateLocale(localeName)
		test.Error(t, err)
		for _, style := range []Style{StyleShort, StyleMedium, StyleLong, StyleFull} {
			t.Run(localeName+"/"+style.String(), func(t *testing.T) {
				rp, err := Resolve(style, loc, CalendarGregorian)
				test.Error(t, err)
				test.That(t, rp.Pattern != "", "empty pattern")
				test.T(t, rp.NumberSystem, "")
			})
		}
	}
}

func TestResolveStylePattern(t *testing.T) {
	tests := []struct {
		locale  string
		style   Style
		pattern string
	}{
		{"en", StyleMedium, "MMM d, y, h:mm:ss a"},
		{"en", StyleLong, "MMMM d, y 'at' h:mm:ss a z"},
		{"en", StyleFull, "EEEE, MMMM d, y 'at' h:mm:ss a zzzz"},
		{"en", StyleShort, "M/d/yy, h:mm a"},
		{"fr", StyleFull, "EEEE d MMMM y 'à' HH:mm:ss zzzz"},
		{"fr", StyleShort, "dd/MM/y HH:mm"},
	}
	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.style.String(), func(t *testing.T) {
			loc, err := ValidateLocale(tt.locale)
			test.Error(t, err)
			rp, err := Resolve(tt.style, loc, CalendarGregorian)
			test.Error(t, err)
			test.T(t, rp.Pattern, tt.pattern)
		})
	}
}

func TestResolveSkeleton(t *testing.T) {
	loc, err := ValidateLocale("en")
	test.Error(t, err)

	rp, err := Resolve(Skeleton("yMMMEd"), loc, CalendarGregorian)
	test.Error(t, err)
	test.T(t, rp, ResolvedPattern{Pattern: "E, MMM d, y"})

	// unknown skeletons are a user error naming the valid styles
	_, err = Resolve(Skeleton("yQQQQ"), loc, CalendarGregorian)
	test.That(t, errors.Is(err, ErrInvalidFormatType), "expected ErrInvalidFormatType, got", err)
	test.That(t, strings.Contains(err.Error(), "[short, medium, long, full]"), "missing style hint in", err)
	test.That(t, strings.Contains(err.Error(), "yQQQQ"), "missing skeleton in", err)
}

func TestResolveLiteral(t *testing.T) {
	// literal patterns pass through verbatim without any locale lookup: a
	// calendar kind absent from the data table must not cause failure
	loc, err := ValidateLocale("en")
	test.Error(t, err)
	for _, pattern := range []string{"y-MM-dd", "'anything' h", ""} {
		rp, err := Resolve(Pattern(pattern), loc, CalendarKind("buddhist"))
		test.Error(t, err)
		test.T(t, rp, ResolvedPattern{Pattern: pattern})
	}
}

func TestResolveNumbered(t *testing.T) {
	loc, err := ValidateLocale("en")
	test.Error(t, err)

	// a numbered wrapper resolves its inner descriptor and rewraps it
	for _, inner := range []Descriptor{StyleMedium, StyleFull, Skeleton("yMd"), Pattern("y-MM-dd")} {
		base, err := Resolve(inner, loc, CalendarGregorian)
		test.Error(t, err)
		rp, err := Resolve(Numbered{NumberSystem: "arab", Format: inner}, loc, CalendarGregorian)
		test.Error(t, err)
		test.T(t, rp, ResolvedPattern{Pattern: base.Pattern, NumberSystem: "arab"})
	}

	// inner resolution failures propagate unchanged
	_, err = Resolve(Numbered{NumberSystem: "arab", Format: Skeleton("nope")}, loc, CalendarGregorian)
	test.That(t, errors.Is(err, ErrInvalidFormatType), "expected ErrInvalidFormatType, got", err)
}

func TestResolveNumberedNested(t *testing.T) {
	// on nested wrappers the outermost numbering system wins
	loc, err := ValidateLocale("en")
	test.Error(t, err)
	nested := Numbered{NumberSystem: "thai", Format: Numbered{NumberSystem: "arab", Format: StyleMedium}}
	rp, err := Resolve(nested, loc, CalendarGregorian)
	test.Error(t, err)
	test.T(t, rp.NumberSystem, "thai")
}

func TestResolveDataIntegrity(t *testing.T) {
	// a registered locale with incomplete style tables is malformed data,
	// surfaced distinctly from "format not found"
	RegisterLocale("xh", CalendarGregorian, LocaleData{
		DateFormat: CalendarFormat{Medium: "y-MM-dd"},
	})
	defer func() { delete(locales, localeKey{"xh", CalendarGregorian}) }()

	loc, err := ValidateLocale("xh")
	test.Error(t, err)
	_, err = Resolve(StyleMedium, loc, CalendarGregorian)
	test.That(t, errors.Is(err, ErrDataIntegrity), "expected ErrDataIntegrity, got", err)
	test.That(t, !errors.Is(err, ErrInvalidFormatType), "data integrity must not be a user error")
}

func TestResolveNilDescriptor(t *testing.T) {
	loc, err := ValidateLocale("en")
	test.Error(t, err)
	defer func() {
		test.That(t, recover() != nil, "expected panic on nil descriptor")
	}()
	Resolve(nil, loc, CalendarGregorian)
}
