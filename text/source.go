package text

// GlyphID is a unique identifier for a glyph within a font source.
// The glyph ID is assigned by the font file and is source-specific.
type GlyphID uint16

// SourceIndex is the position of a FontSource within its FontSystem.
type SourceIndex int

// NoSource is the SourceIndex reported for a codepoint no font source contains.
// Run segmentation treats it as an ordinary index.
const NoSource SourceIndex = -1

// MaxSources bounds the number of sources in a FontSystem so that every
// (source, glyph) pair packs into a GlyphKey without overlap.
const MaxSources = 1 << 16

// FontSource is one loaded font face capable of resolving codepoints to
// glyphs and reporting metrics. Sizes are in pixels per em.
//
// Implementations need not be safe for concurrent use; a FontSystem only
// calls them from the goroutine that drives layout.
type FontSource interface {
	// GlyphIndex returns the glyph for r and whether the source contains it.
	GlyphIndex(r rune) (GlyphID, bool)

	// GlyphMetrics returns the horizontal advance and the ink bounds of a glyph.
	// Bounds are relative to the pen on the baseline, Y growing downward.
	GlyphMetrics(id GlyphID, size float64) (advance float64, bounds Rect)

	// Kern returns the pairwise kerning adjustment applied between a and b.
	Kern(a, b GlyphID, size float64) float64

	// Metrics returns the vertical metrics at size.
	Metrics(size float64) Metrics
}
