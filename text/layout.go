package text

import (
	"strings"
	"unicode/utf8"

	"github.com/gogpu/glyphlayout"
)

// placedGlyph is a glyph positioned in text space: the pen starts at (0, 0),
// the top of the first line, with Y growing downward.
type placedGlyph struct {
	glyph *CachedGlyph

	// index is the rune index of the glyph's codepoint or cluster.
	index int

	// quad is the top-left corner of the glyph quad.
	quad glyphlayout.Point

	// cell is the pen box of the glyph: its advance by the line height.
	cell Rect
}

type lineEnd struct {
	top   float64
	width float64

	// first is the rune index of the first glyph drawn on the line, or -1.
	first int
}

// layoutVisitor receives the glyphs and line ends of one layout pass.
type layoutVisitor interface {
	visitGlyph(p placedGlyph)
	endLine(l lineEnd)
}

type layout struct {
	font  *Font
	opts  *DrawOptions
	atlas Atlas
	v     layoutVisitor
}

// run lays out s and returns the final pen position.
func (l *layout) run(s string) (glyphlayout.Point, error) {
	if l.font.system.ShapingEnabled() {
		return l.shaped(s)
	}
	return l.simple(s)
}

// simple walks codepoints, resolving each through the glyph cache and
// applying pairwise kerning between glyphs of a line.
func (l *layout) simple(s string) (glyphlayout.Point, error) {
	f := l.font
	lineHeight := f.LineHeight()

	var pen glyphlayout.Point
	var prev *CachedGlyph
	line := lineEnd{first: -1}

	index := 0
	for _, r := range s {
		i := index
		index++

		if r == '\n' {
			line.top, line.width = pen.Y, pen.X
			l.v.endLine(line)
			pen.X = 0
			pen.Y += lineHeight
			prev = nil
			line = lineEnd{first: -1}
			continue
		}

		g, err := f.glyphs.GetOrCreate(r, l.opts.Effect, l.opts.EffectAmount, l.atlas)
		if err != nil {
			return pen, err
		}
		if g == nil {
			continue
		}
		if prev != nil {
			pen.X += l.opts.CharacterSpacing + f.kerning.Kerning(prev, g)
		}

		if !g.IsEmpty() && line.first < 0 {
			line.first = i
		}
		l.v.visitGlyph(placedGlyph{
			glyph: g,
			index: i,
			quad:  pen.Add(g.RenderOffset),
			cell:  Rect{MinX: pen.X, MinY: pen.Y, MaxX: pen.X + g.Advance, MaxY: pen.Y + lineHeight},
		})
		pen.X += g.Advance
		prev = g
	}

	line.top, line.width = pen.Y, pen.X
	l.v.endLine(line)
	return pen, nil
}

// shaped lays out each line from its cached shaping result. Glyph positions
// take the shaper's offsets; horizontal advances come from the cached glyph
// so both paths agree on widths. Glyphs the cache cannot produce fall back
// to the shaper's advances.
func (l *layout) shaped(s string) (glyphlayout.Point, error) {
	f := l.font
	lineHeight := f.LineHeight()

	var pen glyphlayout.Point
	lineTop := 0.0
	base := 0
	for li, text := range strings.Split(s, "\n") {
		if li > 0 {
			lineTop += lineHeight + l.opts.LineSpacing
		}
		pen = glyphlayout.Pt(0, lineTop)
		line := lineEnd{top: lineTop, first: -1}

		st, err := f.shape(text)
		if err != nil {
			return pen, err
		}
		for j := range st.Glyphs {
			sg := &st.Glyphs[j]
			if j > 0 {
				pen.X += l.opts.CharacterSpacing
			}

			g, err := f.glyphs.GetOrCreateShaped(sg.ID, sg.Source, l.opts.Effect, l.opts.EffectAmount, l.atlas)
			if err != nil {
				return pen, err
			}
			if g == nil {
				pen.X += fixedToFloat(sg.XAdvance)
				pen.Y += fixedToFloat(sg.YAdvance)
				continue
			}

			i := base + sg.Cluster
			if !g.IsEmpty() && line.first < 0 {
				line.first = i
			}
			offset := glyphlayout.Pt(fixedToFloat(sg.XOffset), fixedToFloat(sg.YOffset))
			l.v.visitGlyph(placedGlyph{
				glyph: g,
				index: i,
				quad:  pen.Add(g.RenderOffset).Add(offset),
				cell:  Rect{MinX: pen.X, MinY: lineTop, MaxX: pen.X + g.Advance, MaxY: lineTop + lineHeight},
			})
			pen.X += g.Advance
			pen.Y += fixedToFloat(sg.YAdvance)
		}

		line.width = pen.X
		l.v.endLine(line)
		base += utf8.RuneCountInString(text) + 1
	}
	return pen, nil
}

// drawVisitor turns laid out glyphs into transformed quads.
type drawVisitor struct {
	r      Renderer
	opts   *DrawOptions
	m      glyphlayout.Matrix
	ascent float64
	height float64
}

func (d *drawVisitor) visitGlyph(p placedGlyph) {
	g := p.glyph
	if g.IsEmpty() {
		return
	}
	cmd := d.quad(p.quad.X, p.quad.Y, g.Width, g.Height)
	cmd.Kind = CommandGlyph
	cmd.Color = d.opts.colorAt(p.index)
	if g.Region != nil {
		cmd.Texture = g.Region.Texture
		cmd.Source = Rect{
			MinX: float64(g.Region.X),
			MinY: float64(g.Region.Y),
			MaxX: float64(g.Region.X + g.Region.Width),
			MaxY: float64(g.Region.Y + g.Region.Height),
		}
	}
	d.r.DrawQuad(cmd)
}

func (d *drawVisitor) endLine(l lineEnd) {
	if d.opts.Style == StyleNone || l.first < 0 || l.width == 0 {
		return
	}
	var y float64
	switch d.opts.Style {
	case StyleUnderline:
		y = l.top + d.ascent + 1
	case StyleStrikethrough:
		y = l.top + d.height/2 - DecorationThickness/2
	default:
		return
	}
	cmd := d.quad(0, y, l.width, DecorationThickness)
	cmd.Kind = CommandDecoration
	cmd.Color = d.opts.colorAt(l.first)
	d.r.DrawQuad(cmd)
}

func (d *drawVisitor) quad(x, y, w, h float64) DrawCommand {
	return DrawCommand{
		TopLeft:     d.m.TransformPoint(glyphlayout.Pt(x, y)),
		TopRight:    d.m.TransformPoint(glyphlayout.Pt(x+w, y)),
		BottomLeft:  d.m.TransformPoint(glyphlayout.Pt(x, y+h)),
		BottomRight: d.m.TransformPoint(glyphlayout.Pt(x+w, y+h)),
	}
}

// DrawText lays out s at pos and sends one quad per visible glyph, plus
// decoration quads, to r. Glyphs are placed in atlas on first use.
//
// It returns the final pen position in text space, relative to pos and
// before scale and rotation.
func (f *Font) DrawText(r Renderer, atlas Atlas, s string, pos glyphlayout.Point, opts DrawOptions) (glyphlayout.Point, error) {
	if r == nil {
		return glyphlayout.Point{}, ErrNilRenderer
	}
	if atlas == nil {
		return glyphlayout.Point{}, ErrNilAtlas
	}
	d := &drawVisitor{
		r:      r,
		opts:   &opts,
		m:      glyphlayout.TextTransform(pos, opts.Origin, opts.scale(), opts.Rotation),
		ascent: f.Ascent(),
		height: f.LineHeight(),
	}
	l := layout{font: f, opts: &opts, atlas: atlas, v: d}
	return l.run(s)
}
