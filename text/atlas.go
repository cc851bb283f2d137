package text

import "github.com/gogpu/gputypes"

// GlyphFormat is the texture format of glyph bitmaps: one coverage byte per pixel.
const GlyphFormat = gputypes.TextureFormatR8Unorm

// GlyphBitmap describes a glyph bitmap the atlas must make room for.
// Rasterizing it is the atlas provider's business.
type GlyphBitmap struct {
	Source       SourceIndex
	ID           GlyphID
	Size         float64
	Width        int
	Height       int
	Effect       Effect
	EffectAmount int
	Format       gputypes.TextureFormat
}

// AtlasRegion is a glyph's placement in an atlas texture.
type AtlasRegion struct {
	// Texture is an opaque handle owned by the atlas provider.
	Texture any

	// X, Y, Width, Height are pixel coordinates in the texture.
	X, Y, Width, Height int
}

// Atlas assigns texture space to glyphs. PlaceGlyph is called at most once
// per CachedGlyph.
type Atlas interface {
	PlaceGlyph(bitmap GlyphBitmap) (*AtlasRegion, error)
}
