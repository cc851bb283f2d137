package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SfntSource implements FontSource on top of golang.org/x/image/font/sfnt.
// It reads TrueType and OpenType (CFF) fonts.
//
// SfntSource keeps a scratch sfnt.Buffer and is not safe for concurrent use.
type SfntSource struct {
	data    []byte
	font    *opentype.Font
	buf     sfnt.Buffer
	hinting font.Hinting
}

// NewSfntSource parses font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewSfntSource(data []byte) (*SfntSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	return &SfntSource{
		data:    dataCopy,
		font:    f,
		hinting: font.HintingNone,
	}, nil
}

// Data returns the raw font bytes, for preparing a shaping context.
func (s *SfntSource) Data() []byte {
	return s.data
}

// Name returns the font family name, or the full name if no family is recorded.
func (s *SfntSource) Name() string {
	if name, err := s.font.Name(&s.buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := s.font.Name(&s.buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return ""
}

// NumGlyphs returns the number of glyphs in the font.
func (s *SfntSource) NumGlyphs() int {
	return s.font.NumGlyphs()
}

// GlyphIndex implements FontSource.
func (s *SfntSource) GlyphIndex(r rune) (GlyphID, bool) {
	idx, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// GlyphMetrics implements FontSource.
func (s *SfntSource) GlyphMetrics(id GlyphID, size float64) (float64, Rect) {
	bounds, advance, err := s.font.GlyphBounds(&s.buf, sfnt.GlyphIndex(id), floatToFixed(size), s.hinting)
	if err != nil {
		return 0, Rect{}
	}
	return fixedToFloat(advance), Rect{
		MinX: fixedToFloat(bounds.Min.X),
		MinY: fixedToFloat(bounds.Min.Y),
		MaxX: fixedToFloat(bounds.Max.X),
		MaxY: fixedToFloat(bounds.Max.Y),
	}
}

// Kern implements FontSource. Fonts without a kern table report 0.
func (s *SfntSource) Kern(a, b GlyphID, size float64) float64 {
	k, err := s.font.Kern(&s.buf, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), floatToFixed(size), s.hinting)
	if err != nil {
		if !errors.Is(err, sfnt.ErrNotFound) {
			logger().Debug("text: kern lookup failed", "a", a, "b", b, "err", err)
		}
		return 0
	}
	return fixedToFloat(k)
}

// Metrics implements FontSource.
func (s *SfntSource) Metrics(size float64) Metrics {
	m, err := s.font.Metrics(&s.buf, floatToFixed(size), s.hinting)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	lineGap := fixedToFloat(m.Height) - ascent - descent
	if lineGap < 0 {
		lineGap = 0
	}
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: lineGap,
	}
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
