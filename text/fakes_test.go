package text

import (
	"errors"
	"testing"

	"golang.org/x/image/math/fixed"
)

// Test font geometry: every ink glyph is 8x7 pixels, sits on the baseline
// with a 1 pixel left bearing and advances 10 pixels. Ascent 8, descent 2,
// no line gap, so the line height is 10 and the quad top is 1 below the
// line top.
const (
	testSize       = 16
	testAscent     = 8
	testDescent    = 2
	testAdvance    = 10
	testSpaceWidth = 5
	testLineHeight = testAscent + testDescent
)

type kernPair struct{ a, b GlyphID }

// fakeSource is a FontSource over a fixed rune set.
type fakeSource struct {
	glyphs  map[rune]GlyphID
	kerns   map[kernPair]float64
	metrics int // GlyphMetrics calls
	kernN   int // Kern calls
}

func newFakeSource(runes string) *fakeSource {
	s := &fakeSource{
		glyphs: make(map[rune]GlyphID),
		kerns:  make(map[kernPair]float64),
	}
	for _, r := range runes {
		s.glyphs[r] = GlyphID(r)
	}
	return s
}

func (s *fakeSource) GlyphIndex(r rune) (GlyphID, bool) {
	id, ok := s.glyphs[r]
	return id, ok
}

func (s *fakeSource) GlyphMetrics(id GlyphID, _ float64) (float64, Rect) {
	s.metrics++
	if id == ' ' {
		return testSpaceWidth, Rect{}
	}
	return testAdvance, Rect{MinX: 1, MinY: -7, MaxX: 9, MaxY: 0}
}

func (s *fakeSource) Kern(a, b GlyphID, _ float64) float64 {
	s.kernN++
	return s.kerns[kernPair{a, b}]
}

func (s *fakeSource) Metrics(float64) Metrics {
	return Metrics{Ascent: testAscent, Descent: testDescent}
}

// fakeShaper maps each rune to its glyph with the source's advance.
type fakeShaper struct {
	sources map[SourceIndex]*fakeSource
	calls   int
	texts   []string
}

func (s *fakeShaper) Shape(text string, size float64, src SourceIndex) ([]ShapedGlyph, error) {
	s.calls++
	s.texts = append(s.texts, text)
	fs, ok := s.sources[src]
	if !ok {
		return nil, &ShapingContextError{Source: src}
	}
	var out []ShapedGlyph
	i := 0
	for _, r := range text {
		id, _ := fs.GlyphIndex(r)
		adv, _ := fs.GlyphMetrics(id, size)
		out = append(out, ShapedGlyph{
			ID:       id,
			Cluster:  i,
			XAdvance: fixed.Int26_6(adv * 64),
		})
		i++
	}
	return out, nil
}

// recordingRenderer keeps every command it is given.
type recordingRenderer struct {
	cmds []DrawCommand
}

func (r *recordingRenderer) DrawQuad(cmd DrawCommand) {
	r.cmds = append(r.cmds, cmd)
}

func (r *recordingRenderer) count(kind CommandKind) int {
	n := 0
	for _, c := range r.cmds {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// countingAtlas hands out 1-pixel spaced regions and counts placements.
type countingAtlas struct {
	placed int
	err    error
}

func (a *countingAtlas) PlaceGlyph(b GlyphBitmap) (*AtlasRegion, error) {
	if a.err != nil {
		return nil, a.err
	}
	a.placed++
	return &AtlasRegion{Texture: a, X: a.placed * 16, Width: b.Width, Height: b.Height}, nil
}

var errAtlasBroken = errors.New("atlas broken")

// newTestFont builds a font system with one source per rune set.
func newTestFont(t *testing.T, opts []SystemOption, sets ...string) (*Font, []*fakeSource) {
	t.Helper()

	sys := NewFontSystem(opts...)
	var sources []*fakeSource
	for _, set := range sets {
		src := newFakeSource(set)
		if _, err := sys.AddSource(src); err != nil {
			t.Fatalf("AddSource: %v", err)
		}
		sources = append(sources, src)
	}
	f, err := sys.Font(testSize)
	if err != nil {
		t.Fatalf("Font(%v): %v", testSize, err)
	}
	return f, sources
}

// newShapedTestFont is newTestFont with a fakeShaper prepared for every source.
func newShapedTestFont(t *testing.T, sets ...string) (*Font, *fakeShaper) {
	t.Helper()

	shaper := &fakeShaper{sources: make(map[SourceIndex]*fakeSource)}
	f, sources := newTestFont(t, []SystemOption{WithShaper(shaper)}, sets...)
	for i, s := range sources {
		shaper.sources[SourceIndex(i)] = s
	}
	return f, shaper
}

const latin = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 ?"
