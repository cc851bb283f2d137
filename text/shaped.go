package text

import "golang.org/x/image/math/fixed"

// ShapedGlyph is one glyph produced by a Shaper.
//
// Advances and offsets are in 1/64 pixel, Y growing downward.
type ShapedGlyph struct {
	// ID is the glyph index in the font source.
	ID GlyphID

	// Cluster is the rune index in the shaped text this glyph maps back to.
	Cluster int

	// Source is the font source the glyph belongs to.
	Source SourceIndex

	XAdvance, YAdvance fixed.Int26_6
	XOffset, YOffset   fixed.Int26_6
}

// ShapedText is the shaping result for one line of text at one size.
// It is shared by all readers of a ShapedTextCache and must not be modified.
type ShapedText struct {
	Glyphs []ShapedGlyph
	Text   string
	Size   float64
}
