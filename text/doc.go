// Package text is the layout and glyph caching engine of glyphlayout.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: one loaded font face (see SfntSource for the x/image backend)
//   - FontSystem: an ordered list of sources with fallback resolution and
//     engine-wide settings (kerning, shaping, default rune)
//   - Font: a FontSystem at one size; owns the glyph, kerning and shaped-text caches
//   - Shaper: optional external shaping engine (see GoTextShaper)
//   - Atlas and Renderer: the rendering backend, consumed through narrow interfaces
//
// # Example usage
//
//	sys := text.NewFontSystem(text.WithDefaultRune('?'))
//	src, err := text.NewSfntSource(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sys.AddSource(src)
//
//	font, _ := sys.Font(24)
//	font.DrawText(renderer, atlas, "Hello, GoGPU!", glyphlayout.Pt(100, 100), text.DrawOptions{
//	    Color: color.RGBA{R: 255, A: 255},
//	})
//
// # Layout paths
//
// A draw or measure call walks the text one of two ways, picked by
// FontSystem.ShapingEnabled. The simple path walks codepoints and applies
// kerning itself. The shaped path splits the text into lines, shapes each line
// run by run (one run per font source, see SegmentFontRuns) and walks the
// shaped glyphs. Shaped positioning offsets come from the shaper while
// horizontal advances come from the font source, so both paths produce the
// same pen positions for text without ligatures or kerning.
//
// Only the shaped path adds DrawOptions.LineSpacing between lines; the simple
// path advances by the line height alone.
//
// # Concurrency
//
// Fonts and their caches are not safe for concurrent use. Serialize all calls
// on one FontSystem, as a single-threaded frame loop does.
package text
