package datefmt

import (
	"testing"
	"time"

	"github.com/tdewolff/test"
)

func TestScanMoment(t *testing.T) {
	tests := []struct {
		s string
		t time.Time
	}{
		{"2012-10-20", time.Date(2012, 10, 20, 0, 0, 0, 0, time.UTC)},
		{"2012-10-20 12:30", time.Date(2012, 10, 20, 12, 30, 0, 0, time.UTC)},
		{"2012-10-20T12:30", time.Date(2012, 10, 20, 12, 30, 0, 0, time.UTC)},
		{"2012-10-20 12:30:05", time.Date(2012, 10, 20, 12, 30, 5, 0, time.UTC)},
		{"2012-10-20 12:30:05.1", time.Date(2012, 10, 20, 12, 30, 5, 1e8, time.UTC)},
		{"2012-10-20 12:30:05.001", time.Date(2012, 10, 20, 12, 30, 5, 1e6, time.UTC)},
		{"12:30", time.Date(1, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"12:30:05", time.Date(1, 1, 1, 12, 30, 5, 0, time.UTC)},
		{"12:30:05.1", time.Date(1, 1, 1, 12, 30, 5, 1e8, time.UTC)},
		{"5000.1", time.Unix(5000, 1e8)},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			var m Moment
			err := m.Scan(tt.s)
			test.Error(t, err)
			test.T(t, m, MomentOf(tt.t))
		})
	}
}

func TestScanMomentError(t *testing.T) {
	for _, s := range []string{"", "2012-13-01", "2012-10-32", "25:00", "12:61", "12:30:61", "abc"} {
		t.Run(s, func(t *testing.T) {
			var m Moment
			test.That(t, m.Scan(s) != nil, "expected scan error for", s)
		})
	}
}

func TestMomentTime(t *testing.T) {
	m := MomentOf(newYear)
	test.T(t, m.Time(), newYear)
	test.T(t, m.Calendar, "gregorian")

	// a moment without a location is in UTC
	m.Location = nil
	test.T(t, m.Time(), newYear)
}

func TestMomentValue(t *testing.T) {
	tests := []struct {
		m   Moment
		str string
	}{
		{MomentOf(time.Date(2012, 10, 20, 12, 30, 0, 0, time.UTC)), "2012-10-20 12:30"},
		{MomentOf(time.Date(2012, 10, 20, 12, 30, 5, 0, time.UTC)), "2012-10-20 12:30:05"},
		{MomentOf(time.Date(2012, 10, 20, 12, 30, 5, 1e8, time.UTC)), "2012-10-20 12:30:05.1"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			v, err := tt.m.Value()
			test.Error(t, err)
			test.T(t, v.(string), tt.str)
		})
	}
}
