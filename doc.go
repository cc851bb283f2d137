// Package glyphlayout is a backend-agnostic text layout and glyph caching engine.
//
// # Overview
//
// glyphlayout turns a string (optionally multi-font, multi-script and
// bidirectional) into positioned, cached glyph quads. A rendering loop supplies
// a texture atlas and a renderer sink; glyphlayout decides which glyph of which
// font goes where.
//
// The root package holds the pieces shared by all sub-packages: geometry
// ([Point], [Matrix]) and the package-wide logger ([SetLogger], [Logger]).
// The engine itself lives in the text sub-package.
//
// # Quick Start
//
//	sys := text.NewFontSystem()
//	src, err := text.NewSfntSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := sys.AddSource(src); err != nil {
//	    log.Fatal(err)
//	}
//
//	font, err := sys.Font(18)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	a := atlas.NewDefault()
//	pen, err := font.DrawText(renderer, a, "Hello\nWorld", glyphlayout.Pt(10, 10), text.DrawOptions{
//	    Color: color.RGBA{A: 255},
//	    Style: text.StyleUnderline,
//	})
//
// # Packages
//
//   - text: font system, caches, run segmentation and layout
//   - atlas: in-memory shelf-packed atlas implementing text.Atlas
//   - internal/cache: strict LRU used by the shaped-text cache
//
// # Thread Safety
//
// Font instances and their caches are not safe for concurrent use. Callers
// serialize access per font, which is what a single-threaded frame loop does.
// [SetLogger] and [Logger] are safe for concurrent use.
package glyphlayout
