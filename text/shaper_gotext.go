package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper shapes text with the HarfBuzz port of go-text/typesetting.
// It supports ligatures, contextual forms, mark positioning, GPOS kerning
// and right-to-left scripts.
//
// Each font source must be prepared before it can be shaped:
//
//	shaper := text.NewGoTextShaper()
//	sys := text.NewFontSystem(text.WithShaper(shaper))
//	idx, _ := sys.AddSource(src)
//	_ = shaper.Prepare(idx, src.Data())
//
// GoTextShaper is safe for concurrent use. Parsed font.Font objects are
// shared; a lightweight font.Face is created per Shape call.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu    sync.RWMutex
	fonts map[SourceIndex]*font.Font
	lang  language.Language
}

// NewGoTextShaper creates a shaper with no prepared sources.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: make(map[SourceIndex]*font.Font),
		lang:  language.NewLanguage("en"),
	}
}

// Prepare parses font data and registers it as the shaping context for src.
// Preparing an index again replaces its context.
func (s *GoTextShaper) Prepare(src SourceIndex, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	s.mu.Lock()
	s.fonts[src] = face.Font
	s.mu.Unlock()
	return nil
}

// PrepareSystem prepares every source of sys that exposes its font data.
// Sources without data are skipped; shaping them reports a ShapingContextError.
func (s *GoTextShaper) PrepareSystem(sys *FontSystem) error {
	for i := 0; i < sys.NumSources(); i++ {
		ds, ok := sys.Source(SourceIndex(i)).(dataSource)
		if !ok {
			continue
		}
		if err := s.Prepare(SourceIndex(i), ds.Data()); err != nil {
			return err
		}
	}
	return nil
}

// Prepared reports whether src has a shaping context.
func (s *GoTextShaper) Prepared(src SourceIndex) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.fonts[src]
	return ok
}

// ClearCache removes all shaping contexts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fonts = make(map[SourceIndex]*font.Font)
}

// Shape implements Shaper.
func (s *GoTextShaper) Shape(text string, size float64, src SourceIndex) ([]ShapedGlyph, error) {
	s.mu.RLock()
	f, ok := s.fonts[src]
	s.mu.RUnlock()
	if !ok {
		return nil, &ShapingContextError{Source: src}
	}
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)
	dir := mapDirection(ParagraphDirection(text))
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(f),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  s.lang,
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs, src), nil
}

func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first rune that is not neutral.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if ClassifyRune(r) == ClassNeutral {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs maps go-text glyphs (Y up) to ShapedGlyph (Y down).
func convertGlyphs(glyphs []shaping.Glyph, src SourceIndex) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	result := make([]ShapedGlyph, len(glyphs))
	for i, g := range glyphs {
		result[i] = ShapedGlyph{
			ID:       GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph ids are 16-bit
			Cluster:  g.TextIndex(),
			Source:   src,
			XAdvance: g.Advance,
			XOffset:  g.XOffset,
			YOffset:  -g.YOffset,
		}
	}
	return result
}
