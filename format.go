package datefmt

// Options control a single Format call. The zero value formats with the
// medium style in the Formatter's locale and the locale's own digits.
type Options struct {
	// Format selects the governing pattern; nil means StyleMedium.
	Format Descriptor
	// Locale overrides the Formatter's default locale for this call.
	Locale string
	// NumberSystem overrides the digit system; shorthand for wrapping
	// Format in a Numbered descriptor.
	NumberSystem  string
	EraVariant    bool
	PeriodVariant bool
}

// Formatter formats datetime values for a default locale. The zero value
// formats for English. Formatter is stateless and safe for concurrent use;
// the default locale is explicit configuration, not ambient process state.
type Formatter struct {
	// Locale is the default locale for calls that do not set Options.Locale.
	Locale string
	// Renderer substitutes the rendering engine; nil selects the built-in
	// CLDR renderer.
	Renderer Renderer
}

func New(locale string) *Formatter {
	return &Formatter{Locale: locale}
}

// Format resolves the requested format against the value's locale and
// calendar and renders the value. Composition short-circuits on the first
// failure: input validation, locale validation, calendar mapping, pattern
// resolution, rendering. No partial output is ever returned.
func (f *Formatter) Format(value any, opts Options) (string, error) {
	m, err := newMoment(value)
	if err != nil {
		return "", err
	}

	name := opts.Locale
	if name == "" {
		name = f.Locale
	}
	if name == "" {
		name = "en"
	}
	loc, err := ValidateLocale(name)
	if err != nil {
		return "", err
	}

	cal, err := CalendarKindOf(m)
	if err != nil {
		return "", err
	}

	descriptor := opts.Format
	if descriptor == nil {
		descriptor = StyleMedium
	}
	if opts.NumberSystem != "" {
		descriptor = Numbered{NumberSystem: opts.NumberSystem, Format: descriptor}
	}
	pattern, err := Resolve(descriptor, loc, cal)
	if err != nil {
		return "", err
	}

	renderer := f.Renderer
	if renderer == nil {
		renderer = defaultRenderer
	}
	return renderer.Render(m, pattern, loc, RenderOptions{
		EraVariant:    opts.EraVariant,
		PeriodVariant: opts.PeriodVariant,
	})
}

// MustFormat is Format for callers that prefer not to handle the result
// explicitly: it panics with the original error on any failure.
func (f *Formatter) MustFormat(value any, opts Options) string {
	s, err := f.Format(value, opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Format formats with default configuration: English locale, medium style.
func Format(value any, opts Options) (string, error) {
	var f Formatter
	return f.Format(value, opts)
}

// MustFormat panics on any failure; see Formatter.MustFormat.
func MustFormat(value any, opts Options) string {
	var f Formatter
	return f.MustFormat(value, opts)
}
