package text

import (
	"github.com/gogpu/glyphlayout"
)

// CachedGlyph is the cached record of one glyph of one font source at one
// size and effect. It is immutable once created, except for Region, which
// is set the first time the glyph is placed in an atlas and never changes
// afterwards.
type CachedGlyph struct {
	// Rune is the codepoint the glyph was resolved from,
	// or 0 for glyphs looked up by glyph id.
	Rune rune

	// ID is the glyph index in its font source.
	ID GlyphID

	// Source is the font source owning the glyph.
	Source SourceIndex

	// Size is the font size the metrics were computed at.
	Size float64

	// RenderOffset is the top-left corner of the glyph quad relative to the
	// pen, with the pen at the top of the line box.
	RenderOffset glyphlayout.Point

	// Width and Height are the quad size, including effect padding.
	Width, Height float64

	// Advance is the horizontal advance reported by the font source.
	Advance float64

	// Effect and EffectAmount are the effect the glyph was cached under.
	Effect       Effect
	EffectAmount int

	// Region is the atlas placement, nil until the glyph is first drawn.
	Region *AtlasRegion

	empty bool
}

// IsEmpty reports whether the glyph has no ink (space, control characters).
// Empty glyphs advance the pen but are never drawn or placed in an atlas.
func (g *CachedGlyph) IsEmpty() bool {
	return g.empty
}

// Bitmap describes the glyph for atlas placement.
func (g *CachedGlyph) Bitmap() GlyphBitmap {
	return GlyphBitmap{
		Source:       g.Source,
		ID:           g.ID,
		Size:         g.Size,
		Width:        ceilPixels(g.Width),
		Height:       ceilPixels(g.Height),
		Effect:       g.Effect,
		EffectAmount: g.EffectAmount,
		Format:       GlyphFormat,
	}
}

// place assigns an atlas region once. A glyph that already has a region
// does not call the atlas again.
func (g *CachedGlyph) place(atlas Atlas) error {
	if atlas == nil || g.Region != nil || g.empty {
		return nil
	}
	region, err := atlas.PlaceGlyph(g.Bitmap())
	if err != nil {
		logger().Warn("text: atlas placement failed",
			"source", g.Source, "glyph", g.ID, "err", err)
		return err
	}
	g.Region = region
	logger().Debug("text: glyph placed",
		"source", g.Source, "glyph", g.ID, "x", region.X, "y", region.Y)
	return nil
}

func ceilPixels(v float64) int {
	n := int(v)
	if float64(n) < v {
		n++
	}
	return n
}

// GlyphKey identifies a glyph within one effect partition of a GlyphCache.
//
// Rune keys set the top bit and hold the codepoint in the low 32 bits.
// Glyph keys hold the font source index in bits 32..47 and the glyph id in
// bits 0..15, so distinct (source, glyph) pairs never collide as long as the
// source index is below MaxSources.
type GlyphKey uint64

const runeKeyFlag GlyphKey = 1 << 63

// RuneKey returns the key for a codepoint lookup.
func RuneKey(r rune) GlyphKey {
	return runeKeyFlag | GlyphKey(uint32(r))
}

// ShapedKey returns the key for a glyph id lookup in a given source.
func ShapedKey(src SourceIndex, id GlyphID) GlyphKey {
	return GlyphKey(uint64(uint32(src))<<32 | uint64(id))
}

// LookupState is the state of a key in a GlyphCache.
type LookupState uint8

const (
	// LookupUnresolved means the key was never looked up.
	LookupUnresolved LookupState = iota
	// LookupFound means the key resolved to a glyph.
	LookupFound
	// LookupMissing means the key was looked up and no source contains it.
	LookupMissing
)

// String returns the string representation of the state.
func (s LookupState) String() string {
	switch s {
	case LookupUnresolved:
		return "Unresolved"
	case LookupFound:
		return "Found"
	case LookupMissing:
		return "Missing"
	default:
		return unknownStr
	}
}

// GlyphLookup is the cached outcome of resolving a GlyphKey.
// Glyph is non-nil only when State is LookupFound.
type GlyphLookup struct {
	State LookupState
	Glyph *CachedGlyph
}

// effectKey selects an effect partition of a GlyphCache.
type effectKey struct {
	effect Effect
	amount int
}

func newEffectKey(effect Effect, amount int) effectKey {
	if effect == EffectNone || amount < 0 {
		return effectKey{effect: effect}
	}
	return effectKey{effect: effect, amount: amount}
}
