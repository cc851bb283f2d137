// Command glyphdemo lays out a string with the Go Regular font and prints
// the quads a renderer would receive.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/glyphlayout"
	"github.com/gogpu/glyphlayout/atlas"
	"github.com/gogpu/glyphlayout/text"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	var (
		str      = flag.String("text", "Hello, glyphlayout!\nSecond line", "text to lay out")
		size     = flag.Float64("size", 24, "font size in pixels")
		x        = flag.Float64("x", 10, "x position")
		y        = flag.Float64("y", 10, "y position")
		scale    = flag.Float64("scale", 1, "uniform scale")
		rotation = flag.Float64("rotation", 0, "rotation in radians")
		spacing  = flag.Float64("spacing", 0, "extra space between characters")
		lineGap  = flag.Float64("linespacing", 0, "extra space between lines (shaped layout only)")
		style    = flag.String("style", "none", "decoration: none, underline or strikethrough")
		shape    = flag.Bool("shape", false, "shape text with go-text/typesetting")
		kerning  = flag.Bool("kerning", true, "apply kerning on the simple layout path")
		verbose  = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		glyphlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	textStyle, err := parseStyle(*style)
	if err != nil {
		log.Fatal(err)
	}

	font, err := newFont(*size, *shape, *kerning)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	a := atlas.NewDefault()
	opts := text.DrawOptions{
		Color:            color.RGBA{A: 255},
		Scale:            glyphlayout.Pt(*scale, *scale),
		Rotation:         *rotation,
		CharacterSpacing: *spacing,
		LineSpacing:      *lineGap,
		Style:            textStyle,
	}
	pos := glyphlayout.Pt(*x, *y)

	r := &printRenderer{w: os.Stdout}
	pen, err := font.DrawText(r, a, *str, pos, opts)
	if err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}
	bounds, err := font.TextBounds(*str, pos, opts)
	if err != nil {
		log.Fatalf("Failed to measure: %v", err)
	}

	fmt.Printf("quads: %d, pen: (%.2f, %.2f)\n", r.n, pen.X, pen.Y)
	fmt.Printf("bounds: (%.2f, %.2f)-(%.2f, %.2f)\n", bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY)
	fmt.Printf("atlas: %d glyphs on %d page(s)\n", a.GlyphCount(), a.PageCount())
	for i := 0; i < a.PageCount(); i++ {
		p := a.Page(i)
		fmt.Printf("  page %d: %d glyphs, %.1f%% used\n", p.Index(), p.GlyphCount(), p.Utilization()*100)
	}
}

func newFont(size float64, shape, kerning bool) (*text.Font, error) {
	src, err := text.NewSfntSource(goregular.TTF)
	if err != nil {
		return nil, err
	}

	opts := []text.SystemOption{text.WithKerning(kerning), text.WithDefaultRune('?')}
	var shaper *text.GoTextShaper
	if shape {
		shaper = text.NewGoTextShaper()
		opts = append(opts, text.WithShaper(shaper))
	}

	sys := text.NewFontSystem(opts...)
	if _, err := sys.AddSource(src); err != nil {
		return nil, err
	}
	if shaper != nil {
		if err := shaper.PrepareSystem(sys); err != nil {
			return nil, err
		}
	}
	return sys.Font(size)
}

func parseStyle(s string) (text.TextStyle, error) {
	switch s {
	case "none", "":
		return text.StyleNone, nil
	case "underline":
		return text.StyleUnderline, nil
	case "strikethrough":
		return text.StyleStrikethrough, nil
	default:
		return text.StyleNone, fmt.Errorf("unknown style %q", s)
	}
}

// printRenderer writes one line per quad.
type printRenderer struct {
	w io.Writer
	n int
}

func (p *printRenderer) DrawQuad(cmd text.DrawCommand) {
	p.n++
	fmt.Fprintf(p.w, "%-10s tl=(%7.2f,%7.2f) br=(%7.2f,%7.2f) src=(%4.0f,%4.0f %3.0fx%-3.0f)\n",
		cmd.Kind, cmd.TopLeft.X, cmd.TopLeft.Y, cmd.BottomRight.X, cmd.BottomRight.Y,
		cmd.Source.MinX, cmd.Source.MinY, cmd.Source.Width(), cmd.Source.Height())
}
