package atlas

import "errors"

// Sentinel errors for atlas package.
var (
	// ErrAtlasFull is returned when every page is full and MaxPages is reached.
	ErrAtlasFull = errors.New("atlas: all pages are full")

	// ErrGlyphTooLarge is returned for glyphs that cannot fit on an empty page.
	ErrGlyphTooLarge = errors.New("atlas: glyph larger than page")

	// ErrInvalidGlyphSize is returned for glyph bitmaps with negative size.
	ErrInvalidGlyphSize = errors.New("atlas: negative glyph size")
)
