package datefmt

import "errors"

// ErrInvalidInput indicates that the input value does not expose all fields
// required for formatting.
var ErrInvalidInput = errors.New("datefmt: invalid input value")

// ErrInvalidLocale indicates that the locale identifier could not be parsed.
var ErrInvalidLocale = errors.New("datefmt: invalid locale")

// ErrUnsupportedCalendar indicates that the value's calendar has no mapping.
var ErrUnsupportedCalendar = errors.New("datefmt: unsupported calendar")

// ErrInvalidFormatType indicates an unknown format identifier for the given
// locale and calendar.
var ErrInvalidFormatType = errors.New("datefmt: invalid format type")

// ErrDataIntegrity indicates malformed locale data: a standard style that is
// guaranteed present in locale data did not resolve. This is not a user error.
var ErrDataIntegrity = errors.New("datefmt: malformed locale data")

// ErrRender indicates that the renderer rejected a resolved pattern.
var ErrRender = errors.New("datefmt: render")
