package datefmt

// Descriptor selects which pattern governs output. It is a closed set:
// Style, Skeleton, Pattern and Numbered are the only implementations.
type Descriptor interface {
	formatDescriptor()
}

// Style is one of the four standard format granularities defined by CLDR.
// Standard styles are guaranteed present in locale data.
type Style int

const (
	StyleShort Style = iota
	StyleMedium
	StyleLong
	StyleFull
)

// styleNames is the valid style set, quoted in error messages.
const styleNames = "[short, medium, long, full]"

func (s Style) String() string {
	switch s {
	case StyleShort:
		return "short"
	case StyleMedium:
		return "medium"
	case StyleLong:
		return "long"
	case StyleFull:
		return "full"
	}
	return "invalid"
}

// Skeleton names a registered "available format", a locale-defined mapping
// from a field skeleton such as "yMMMEd" to a pattern. Skeletons are
// open-ended and locale-dependent; an unknown skeleton is a user error.
type Skeleton string

// Pattern is a raw pattern string used verbatim, without locale lookup.
// Its symbol syntax is validated by the renderer, not the resolver.
type Pattern string

// Numbered pairs a descriptor with an alternate numbering system used to
// transliterate the digits of numeric fields.
type Numbered struct {
	NumberSystem string
	Format       Descriptor
}

func (Style) formatDescriptor()    {}
func (Skeleton) formatDescriptor() {}
func (Pattern) formatDescriptor()  {}
func (Numbered) formatDescriptor() {}

// ResolvedPattern is the sole output of resolution and, together with the
// value and locale, the sole input to rendering. It is self-contained: it
// carries no reference back to the locale or calendar it was resolved for.
type ResolvedPattern struct {
	Pattern      string
	NumberSystem string // empty selects the locale's default numbering system
}
