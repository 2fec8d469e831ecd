package datefmt

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a validated locale identifier. Resolution only uses its
// canonical name to key into the locale data tables.
type Locale struct {
	tag  language.Tag
	name string
}

// Name returns the canonical locale name in underscore form, e.g. "en_GB".
func (l Locale) Name() string {
	return l.name
}

func (l Locale) Tag() language.Tag {
	return l.tag
}

// ValidateLocale parses a BCP 47 locale identifier.
func ValidateLocale(input string) (Locale, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Locale{}, fmt.Errorf("%w: empty locale", ErrInvalidLocale)
	}
	tag, err := language.Parse(input)
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, input, err)
	}
	return Locale{tag: tag, name: toLocaleName(tag)}, nil
}

func toLocaleName(tag language.Tag) string {
	if tag == language.Und || tag.IsRoot() {
		return "root"
	}
	return strings.ReplaceAll(tag.String(), "-", "_")
}

type localeKey struct {
	Name     string
	Calendar CalendarKind
}

// localeData finds the data table entry for a locale and calendar, walking
// up the locale's parent chain to root when no exact entry exists.
func localeData(loc Locale, cal CalendarKind) (LocaleData, bool) {
	name, tag := loc.name, loc.tag
	d, ok := locales[localeKey{name, cal}]
	for !ok && name != "root" {
		tag = tag.Parent()
		name = toLocaleName(tag)
		d, ok = locales[localeKey{name, cal}]
	}
	return d, ok
}
