package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Effect is a visual modification of glyphs that needs extra padding
// around the glyph bitmap. Glyphs under different effects are cached
// separately.
type Effect int

const (
	// EffectNone draws glyphs as-is.
	EffectNone Effect = iota
	// EffectBlurry blurs the glyph bitmap.
	EffectBlurry
	// EffectStroked outlines the glyph bitmap.
	EffectStroked
)

// String returns the string representation of the effect.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "None"
	case EffectBlurry:
		return "Blurry"
	case EffectStroked:
		return "Stroked"
	default:
		return unknownStr
	}
}

// TextStyle selects the line decoration drawn under or through a line.
type TextStyle int

const (
	// StyleNone draws no decoration.
	StyleNone TextStyle = iota
	// StyleUnderline draws a line just below the baseline.
	StyleUnderline
	// StyleStrikethrough draws a line through the middle of the line box.
	StyleStrikethrough
)

// String returns the string representation of the style.
func (s TextStyle) String() string {
	switch s {
	case StyleNone:
		return "None"
	case StyleUnderline:
		return "Underline"
	case StyleStrikethrough:
		return "Strikethrough"
	default:
		return unknownStr
	}
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}
