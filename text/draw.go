package text

import (
	"image/color"

	"github.com/gogpu/glyphlayout"
)

// DecorationThickness is the height in pixels of underline and
// strikethrough quads, before scaling.
const DecorationThickness = 2

// CommandKind distinguishes glyph quads from decoration quads.
type CommandKind int

const (
	// CommandGlyph is a textured glyph quad.
	CommandGlyph CommandKind = iota
	// CommandDecoration is a solid underline or strikethrough quad.
	CommandDecoration
)

// String returns the string representation of the kind.
func (k CommandKind) String() string {
	switch k {
	case CommandGlyph:
		return "Glyph"
	case CommandDecoration:
		return "Decoration"
	default:
		return unknownStr
	}
}

// DrawCommand is one quad handed to a Renderer. Corners are in target space,
// already transformed by position, origin, scale and rotation.
type DrawCommand struct {
	Kind CommandKind

	// Texture is the atlas texture handle, nil for decorations.
	Texture any

	Color color.RGBA

	TopLeft, TopRight       glyphlayout.Point
	BottomLeft, BottomRight glyphlayout.Point

	// Source is the glyph's atlas region in texture pixels.
	Source Rect
}

// Renderer receives quads in draw order. DrawQuad must not retain cmd
// beyond the call unless it copies it.
type Renderer interface {
	DrawQuad(cmd DrawCommand)
}

// DrawOptions controls a single layout call.
type DrawOptions struct {
	// Color is the color of every glyph without an entry in Colors.
	Color color.RGBA

	// Colors optionally colors glyphs by rune index in the drawn string.
	Colors []color.RGBA

	// Scale multiplies the text around Origin. A zero component means 1.
	Scale glyphlayout.Point

	// Rotation in radians, around Origin.
	Rotation float64

	// Origin is the pivot of scale and rotation, in unscaled text space.
	Origin glyphlayout.Point

	// CharacterSpacing is added between consecutive glyphs of a line.
	CharacterSpacing float64

	// LineSpacing is added between lines. Only the shaped layout path
	// honors it.
	LineSpacing float64

	Style TextStyle

	Effect       Effect
	EffectAmount int
}

func (o *DrawOptions) colorAt(i int) color.RGBA {
	if i >= 0 && i < len(o.Colors) {
		return o.Colors[i]
	}
	return o.Color
}

func (o *DrawOptions) scale() glyphlayout.Point {
	s := o.Scale
	if s.X == 0 {
		s.X = 1
	}
	if s.Y == 0 {
		s.Y = 1
	}
	return s
}

// effectPadding is the horizontal extent an active effect adds to the bounds.
func (o *DrawOptions) effectPadding() float64 {
	k := newEffectKey(o.Effect, o.EffectAmount)
	return float64(2 * k.amount)
}
