package text

import (
	"fmt"
	"math"
)

// FontSystem is an ordered set of font sources plus the per-size Font
// instances built on them. Codepoints resolve to the first source that
// contains them, so sources are added in fallback order.
//
// FontSystem is not safe for concurrent use.
type FontSystem struct {
	config  systemConfig
	sources []FontSource
	fonts   map[float64]*Font
}

// NewFontSystem creates an empty font system.
func NewFontSystem(opts ...SystemOption) *FontSystem {
	config := defaultSystemConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &FontSystem{
		config: config,
		fonts:  make(map[float64]*Font),
	}
}

// AddSource appends a font source and returns its index.
// Fonts created before the call are dropped, since their cached
// resolutions may no longer be the first match.
func (s *FontSystem) AddSource(src FontSource) (SourceIndex, error) {
	if src == nil {
		return NoSource, ErrNilSource
	}
	if len(s.sources) >= MaxSources {
		return NoSource, ErrTooManySources
	}
	s.sources = append(s.sources, src)
	if len(s.fonts) > 0 {
		s.fonts = make(map[float64]*Font)
	}
	return SourceIndex(len(s.sources) - 1), nil
}

// NumSources returns the number of font sources.
func (s *FontSystem) NumSources() int {
	return len(s.sources)
}

// Source returns the source at index i, or nil if i is out of range.
func (s *FontSystem) Source(i SourceIndex) FontSource {
	if i < 0 || int(i) >= len(s.sources) {
		return nil
	}
	return s.sources[i]
}

// Resolve returns the glyph for r in the first source that contains it.
func (s *FontSystem) Resolve(r rune) (GlyphID, SourceIndex, bool) {
	for i, src := range s.sources {
		if id, ok := src.GlyphIndex(r); ok {
			return id, SourceIndex(i), true
		}
	}
	return 0, NoSource, false
}

// SourceFor returns the index of the first source containing r, or NoSource.
// It is the resolver used for font run segmentation.
func (s *FontSystem) SourceFor(r rune) SourceIndex {
	_, src, _ := s.Resolve(r)
	return src
}

// KerningEnabled reports whether the simple layout path applies kerning.
func (s *FontSystem) KerningEnabled() bool {
	return s.config.kerning
}

// ShapingEnabled reports whether layout uses the shaped path.
func (s *FontSystem) ShapingEnabled() bool {
	return s.config.shaper != nil
}

// Shaper returns the configured shaper, or nil.
func (s *FontSystem) Shaper() Shaper {
	return s.config.shaper
}

// DefaultRune returns the fallback codepoint, if one is configured.
func (s *FontSystem) DefaultRune() (rune, bool) {
	return s.config.defaultRune, s.config.hasDefault
}

// Font returns the Font for size, creating it on first use.
// Every call with the same size returns the same *Font and caches.
func (s *FontSystem) Font(size float64) (*Font, error) {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	if len(s.sources) == 0 {
		return nil, ErrNoSources
	}
	if f, ok := s.fonts[size]; ok {
		return f, nil
	}
	f := newFont(s, size)
	s.fonts[size] = f
	logger().Debug("text: font created",
		"size", size, "sources", len(s.sources), "line_height", f.LineHeight())
	return f, nil
}

// Reset drops every Font and its caches. Sources are kept.
func (s *FontSystem) Reset() {
	s.fonts = make(map[float64]*Font)
}
