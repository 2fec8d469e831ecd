package datefmt

import (
	"fmt"
	"strings"
)

// Resolve turns a format descriptor into the concrete pattern governing
// output for a locale and calendar. Dispatch precedence:
//
//  1. Style: the per-locale standard-format table. Standard styles are
//     guaranteed present in locale data, so a miss is a data-integrity
//     failure, not a user error.
//  2. Skeleton: the per-locale available-formats table. Skeletons are
//     open-ended, so a miss is a legitimate user error.
//  3. Numbered: resolve the wrapped descriptor, then attach the numbering
//     system. On nested wrappers the outermost numbering system wins.
//  4. Pattern: returned verbatim without locale lookup or validation.
//
// Resolve performs no I/O and is safe for concurrent use.
func Resolve(descriptor Descriptor, loc Locale, cal CalendarKind) (ResolvedPattern, error) {
	switch f := descriptor.(type) {
	case Style:
		data, ok := localeData(loc, cal)
		if !ok {
			return ResolvedPattern{}, fmt.Errorf("%w: no locale data for %s/%s", ErrDataIntegrity, loc.Name(), cal)
		}
		date := data.DateFormat.style(f)
		time := data.TimeFormat.style(f)
		combine := data.DatetimeFormat.style(f)
		if date == "" || time == "" || combine == "" {
			return ResolvedPattern{}, fmt.Errorf("%w: incomplete %v style for %s/%s", ErrDataIntegrity, f, loc.Name(), cal)
		}
		pattern := strings.ReplaceAll(combine, "{1}", date)
		pattern = strings.ReplaceAll(pattern, "{0}", time)
		return ResolvedPattern{Pattern: pattern}, nil
	case Skeleton:
		data, ok := localeData(loc, cal)
		if ok {
			if pattern, ok := data.AvailableFormats[string(f)]; ok {
				return ResolvedPattern{Pattern: pattern}, nil
			}
		}
		return ResolvedPattern{}, fmt.Errorf("%w: unknown format %q for %s/%s, valid styles are %s",
			ErrInvalidFormatType, string(f), loc.Name(), cal, styleNames)
	case Numbered:
		inner, err := Resolve(f.Format, loc, cal)
		if err != nil {
			return ResolvedPattern{}, err
		}
		return ResolvedPattern{Pattern: inner.Pattern, NumberSystem: f.NumberSystem}, nil
	case Pattern:
		return ResolvedPattern{Pattern: string(f)}, nil
	}
	// Descriptor is a closed interface; only a nil descriptor reaches here
	// and that is a programming error, not a recoverable failure.
	panic(fmt.Sprintf("datefmt: invalid descriptor %#v", descriptor))
}
