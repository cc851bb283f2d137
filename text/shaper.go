package text

// Shaper converts one run of text into positioned glyphs of a single font
// source. Implementations own their per-source shaping contexts.
//
// Cluster values in the result are rune indices into text. Advances and
// offsets are in 1/64 pixel with Y growing downward.
//
// A Shaper that has no context for src must return a *ShapingContextError.
type Shaper interface {
	Shape(text string, size float64, src SourceIndex) ([]ShapedGlyph, error)
}

// dataSource is implemented by font sources that expose their raw font file,
// such as SfntSource.
type dataSource interface {
	Data() []byte
}
