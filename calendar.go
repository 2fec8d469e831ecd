package datefmt

import "fmt"

// CalendarKind is the canonical calendar identifier used to index the
// locale data tables.
type CalendarKind string

const CalendarGregorian CalendarKind = "gregorian"

// CalendarKindOf maps a value's calendar field to a canonical calendar
// identifier. Every value must map to exactly one kind or formatting fails.
func CalendarKindOf(m *Moment) (CalendarKind, error) {
	switch m.Calendar {
	case "", "gregorian", "iso8601", "iso_8601":
		return CalendarGregorian, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedCalendar, m.Calendar)
}
