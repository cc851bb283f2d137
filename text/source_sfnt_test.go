package text

import (
	"errors"
	"testing"

	"github.com/gogpu/glyphlayout"
	"golang.org/x/image/font/gofont/goregular"
)

func goRegular(t *testing.T) *SfntSource {
	t.Helper()
	src, err := NewSfntSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSfntSource(goregular): %v", err)
	}
	return src
}

func TestNewSfntSourceErrors(t *testing.T) {
	if _, err := NewSfntSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSfntSource(nil) = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewSfntSource([]byte("not a font")); err == nil {
		t.Error("NewSfntSource(garbage) returned nil error")
	}
}

func TestSfntSource(t *testing.T) {
	src := goRegular(t)

	if name := src.Name(); name != "Go" {
		t.Errorf("Name() = %q, want %q", name, "Go")
	}
	if src.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
	if len(src.Data()) != len(goregular.TTF) {
		t.Errorf("Data() length = %d, want %d", len(src.Data()), len(goregular.TTF))
	}

	a, ok := src.GlyphIndex('A')
	if !ok || a == 0 {
		t.Fatalf("GlyphIndex('A') = %d, %v", a, ok)
	}
	if _, ok := src.GlyphIndex('\u05D0'); ok {
		t.Error("Go Regular reports a Hebrew glyph")
	}

	adv, bounds := src.GlyphMetrics(a, 16)
	if adv <= 0 {
		t.Errorf("advance of 'A' = %v, want > 0", adv)
	}
	if bounds.Empty() || bounds.MaxY > 0.5 || bounds.MinY >= 0 {
		t.Errorf("bounds of 'A' = %+v, want ink above the baseline", bounds)
	}

	space, _ := src.GlyphIndex(' ')
	if adv, bounds := src.GlyphMetrics(space, 16); adv <= 0 || !bounds.Empty() {
		t.Errorf("space: advance=%v bounds=%+v, want positive advance and no ink", adv, bounds)
	}

	m := src.Metrics(16)
	if m.Ascent <= 0 || m.Descent <= 0 || m.LineGap < 0 {
		t.Errorf("Metrics(16) = %+v", m)
	}
	if m2 := src.Metrics(32); m2.Ascent <= m.Ascent {
		t.Errorf("ascent does not grow with size: %v at 32, %v at 16", m2.Ascent, m.Ascent)
	}

	v, _ := src.GlyphIndex('V')
	if k := src.Kern(a, v, 16); k > 0 {
		t.Errorf("Kern(A, V) = %v, want <= 0", k)
	}
}

func TestSfntSourceLayout(t *testing.T) {
	sys := NewFontSystem()
	if _, err := sys.AddSource(goRegular(t)); err != nil {
		t.Fatal(err)
	}
	f, err := sys.Font(16)
	if err != nil {
		t.Fatal(err)
	}

	r := &recordingRenderer{}
	if _, err := f.DrawText(r, &countingAtlas{}, "Hi there", glyphlayout.Point{}, DrawOptions{}); err != nil {
		t.Fatal(err)
	}
	if got := r.count(CommandGlyph); got != 7 {
		t.Errorf("glyph commands = %d, want 7", got)
	}

	size, err := f.MeasureString("Hi there", DrawOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if size.X <= 0 || size.Y < f.LineHeight() {
		t.Errorf("MeasureString = %v, want positive width and at least one line", size)
	}
}
