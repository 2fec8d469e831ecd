package datefmt

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"time"

	parseStrconv "github.com/tdewolff/parse/v2/strconv"
)

// Moment is a calendar-aware datetime value: the read-only input to
// formatting. Location is optional and defaults to UTC.
type Moment struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
	Calendar   string
	Location   *time.Location
}

// MomentOf converts a time.Time to a gregorian Moment.
func MomentOf(t time.Time) Moment {
	return Moment{
		Year:       t.Year(),
		Month:      t.Month(),
		Day:        t.Day(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
		Calendar:   "gregorian",
		Location:   t.Location(),
	}
}

// Time returns the moment as a time.Time in its location.
func (m Moment) Time() time.Time {
	loc := m.Location
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(m.Year, m.Month, m.Day, m.Hour, m.Minute, m.Second, m.Nanosecond, loc)
}

func (m Moment) String() string {
	format := "2006-01-02 15:04"
	if m.Nanosecond != 0 {
		format = "2006-01-02 15:04:05.999999999"
	} else if m.Second != 0 {
		format = "2006-01-02 15:04:05"
	}
	return m.Time().Format(format)
}

// Scan parses a moment from a database value: a time.Time, Unix seconds, or
// a textual "[yyyy-mm-dd][ T]hh:mm[:ss[.fff]]" form.
func (m *Moment) Scan(isrc interface{}) error {
	var t time.Time
	if err := scanTime(&t, isrc); err != nil {
		return err
	}
	*m = MomentOf(t)
	return nil
}

func (m Moment) Value() (driver.Value, error) {
	return m.String(), nil
}

// momentFieldNames lists the fields a value must expose, in the order they
// are reported in errors.
var momentFieldNames = []string{"year", "month", "day", "hour", "minute", "second", "calendar"}

// newMoment converts a caller-supplied value into a validated Moment. Field
// validation happens here, before any locale or pattern work.
func newMoment(value any) (*Moment, error) {
	switch v := value.(type) {
	case time.Time:
		m := MomentOf(v)
		return &m, nil
	case Moment:
		return validMoment(v, value)
	case *Moment:
		if v == nil {
			return nil, fmt.Errorf("%w: nil moment", ErrInvalidInput)
		}
		return validMoment(*v, value)
	case map[string]any:
		return momentFromMap(v, value)
	case string:
		var m Moment
		if err := m.Scan(v); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidInput, v, err)
		}
		return &m, nil
	}
	return nil, fmt.Errorf("%w: unsupported value type %T (%v)", ErrInvalidInput, value, value)
}

func validMoment(m Moment, src any) (*Moment, error) {
	switch {
	case m.Month < 1 || 12 < m.Month:
		return nil, fmt.Errorf("%w: month out of range in %v", ErrInvalidInput, src)
	case m.Day < 1 || 31 < m.Day:
		return nil, fmt.Errorf("%w: day out of range in %v", ErrInvalidInput, src)
	case m.Hour < 0 || 23 < m.Hour:
		return nil, fmt.Errorf("%w: hour out of range in %v", ErrInvalidInput, src)
	case m.Minute < 0 || 59 < m.Minute:
		return nil, fmt.Errorf("%w: minute out of range in %v", ErrInvalidInput, src)
	case m.Second < 0 || 59 < m.Second:
		return nil, fmt.Errorf("%w: second out of range in %v", ErrInvalidInput, src)
	}
	return &m, nil
}

func momentFromMap(fields map[string]any, src any) (*Moment, error) {
	var missing []string
	for _, name := range momentFieldNames {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) != 0 {
		return nil, fmt.Errorf("%w: missing fields %v, required fields are %v in %v",
			ErrInvalidInput, missing, momentFieldNames, src)
	}

	m := Moment{}
	for _, field := range []struct {
		name string
		dst  *int
	}{
		{"year", &m.Year},
		{"day", &m.Day},
		{"hour", &m.Hour},
		{"minute", &m.Minute},
		{"second", &m.Second},
	} {
		n, ok := fieldInt(fields[field.name])
		if !ok {
			return nil, fmt.Errorf("%w: field %q must be an integer in %v", ErrInvalidInput, field.name, src)
		}
		*field.dst = n
	}

	switch month := fields["month"].(type) {
	case time.Month:
		m.Month = month
	default:
		n, ok := fieldInt(month)
		if !ok {
			return nil, fmt.Errorf("%w: field %q must be an integer in %v", ErrInvalidInput, "month", src)
		}
		m.Month = time.Month(n)
	}

	calendar, ok := fields["calendar"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: field %q must be a string in %v", ErrInvalidInput, "calendar", src)
	}
	m.Calendar = calendar

	if ns, ok := fields["nanosecond"]; ok {
		n, ok := fieldInt(ns)
		if !ok {
			return nil, fmt.Errorf("%w: field %q must be an integer in %v", ErrInvalidInput, "nanosecond", src)
		}
		m.Nanosecond = n
	}
	if loc, ok := fields["location"].(*time.Location); ok {
		m.Location = loc
	}
	return validMoment(m, src)
}

func fieldInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// scanTime from database
func scanTime(t *time.Time, isrc interface{}) error {
	var b []byte
	switch src := isrc.(type) {
	case time.Time:
		*t = src
		return nil
	case int64:
		*t = time.Unix(src, 0)
		return nil
	case string:
		b = []byte(src)
	case []byte:
		b = src
	default:
		return fmt.Errorf("incompatible type for time.Time: %T", isrc)
	}

	if bytes.Equal(b, []byte("now")) {
		*t = time.Now().UTC()
		return nil
	}

	var year, month, day, hours, minutes, seconds uint64
	var fseconds float64
	year, month, day = 1, 1, 1

	first, n := parseStrconv.ParseUint(b)
	if n == 0 {
		return fmt.Errorf("invalid time")
	}
	b = b[n:]

	if len(b) == 0 {
		return fmt.Errorf("invalid time")
	}

	if b[0] == '.' {
		seconds = first
		fseconds, n = parseStrconv.ParseFloat(b)
		if n != len(b) {
			return fmt.Errorf("invalid time")
		}
		*t = time.Unix(int64(seconds), int64(fseconds*1e9+0.5))
		return nil
	}

	if b[0] == '-' {
		year = first
		if n != 4 || year == 0 {
			return fmt.Errorf("invalid year")
		}

		b = b[1:]
		month, n = parseStrconv.ParseUint(b)
		if n != 2 || month == 0 || 12 < month {
			return fmt.Errorf("invalid month")
		}
		b = b[n:]

		if len(b) == 0 || b[0] != '-' {
			return fmt.Errorf("invalid time")
		}
		b = b[1:]
		day, n = parseStrconv.ParseUint(b)
		if n != 2 || day == 0 || 31 < day {
			return fmt.Errorf("invalid day")
		}
		b = b[n:]

		if len(b) == 0 {
			*t = time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
			return nil
		} else if b[0] != ' ' && b[0] != 'T' {
			return fmt.Errorf("invalid time")
		}
		b = b[1:]

		first, n = parseStrconv.ParseUint(b)
		b = b[n:]
	}

	hours = first
	if n != 2 || 23 < hours {
		return fmt.Errorf("invalid hours")
	}

	if len(b) == 0 || b[0] != ':' {
		return fmt.Errorf("invalid time")
	}
	b = b[1:]
	minutes, n = parseStrconv.ParseUint(b)
	if n != 2 || 59 < minutes {
		return fmt.Errorf("invalid minutes")
	}
	b = b[n:]

	if len(b) != 0 {
		if b[0] != ':' {
			return fmt.Errorf("invalid time")
		}
		b = b[1:]
		seconds, n = parseStrconv.ParseUint(b)
		if n != 2 || 59 < seconds {
			return fmt.Errorf("invalid seconds")
		}
		b = b[n:]

		if 0 < len(b) && b[0] == '.' {
			fseconds, n = parseStrconv.ParseFloat(b)
			b = b[n:]
		}
	}

	if len(b) != 0 {
		return fmt.Errorf("invalid time")
	}

	*t = time.Date(int(year), time.Month(month), int(day), int(hours), int(minutes), int(seconds), int(fseconds*1e9+0.5), time.UTC)
	return nil
}
