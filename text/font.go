package text

import "fmt"

// Font is a FontSystem at one size. It owns the glyph, kerning and shaped
// text caches for that size and performs layout.
//
// Font is not safe for concurrent use.
type Font struct {
	system  *FontSystem
	size    float64
	metrics Metrics

	glyphs  *GlyphCache
	kerning *KerningCache
	shaped  *ShapedTextCache
}

func newFont(system *FontSystem, size float64) *Font {
	metrics := system.Source(0).Metrics(size)
	return &Font{
		system:  system,
		size:    size,
		metrics: metrics,
		glyphs:  newGlyphCache(system, size, metrics.Ascent),
		kerning: newKerningCache(system, size),
		shaped:  NewShapedTextCache(system.config.shapedCacheN),
	}
}

// System returns the owning font system.
func (f *Font) System() *FontSystem { return f.system }

// Size returns the font size in pixels per em.
func (f *Font) Size() float64 { return f.size }

// Metrics returns the vertical metrics of the primary source.
func (f *Font) Metrics() Metrics { return f.metrics }

// LineHeight returns the distance between consecutive baselines.
func (f *Font) LineHeight() float64 { return f.metrics.LineHeight() }

// Ascent returns the distance from the top of the line box to the baseline.
func (f *Font) Ascent() float64 { return f.metrics.Ascent }

// GlyphCache returns the glyph cache.
func (f *Font) GlyphCache() *GlyphCache { return f.glyphs }

// KerningCache returns the kerning cache.
func (f *Font) KerningCache() *KerningCache { return f.kerning }

// ShapedTextCache returns the shaped text cache.
func (f *Font) ShapedTextCache() *ShapedTextCache { return f.shaped }

// ClearCaches empties all three caches. Atlas regions held by cached glyphs
// are forgotten, so glyphs are placed again on next draw.
func (f *Font) ClearCaches() {
	f.glyphs.Clear()
	f.kerning.Clear()
	f.shaped.Clear()
}

// shape returns the shaping result for one line, from cache if possible.
// On a miss the line is split into font runs, and those again at direction
// boundaries. Each run with a source is shaped separately; runs no source
// covers produce no glyphs.
func (f *Font) shape(line string) (*ShapedText, error) {
	if st, ok := f.shaped.TryGet(line, f.size); ok {
		return st, nil
	}

	st := &ShapedText{Text: line, Size: f.size}
	if line != "" {
		logger().Debug("text: shaping cache miss", "size", f.size, "len", len(line))

		runes := []rune(line)
		shaper := f.system.Shaper()
		for _, run := range shapingRuns(line, f.system.SourceFor) {
			if run.Source == NoSource {
				continue
			}
			glyphs, err := shaper.Shape(runText(runes, run.Start, run.Length), f.size, run.Source)
			if err != nil {
				return nil, fmt.Errorf("text: shaping run at %d: %w", run.Start, err)
			}
			for i := range glyphs {
				glyphs[i].Source = run.Source
				glyphs[i].Cluster += run.Start
			}
			st.Glyphs = append(st.Glyphs, glyphs...)
		}
	}
	f.shaped.Put(line, f.size, st)
	return st, nil
}
