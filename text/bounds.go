package text

import "github.com/gogpu/glyphlayout"

// boundsVisitor accumulates the text-space extent of a layout.
type boundsVisitor struct {
	rect    Rect
	hasRect bool
	infos   *[]GlyphInfo
}

func (b *boundsVisitor) add(r Rect) {
	if !b.hasRect {
		b.rect, b.hasRect = r, true
		return
	}
	b.rect = b.rect.Union(r)
}

func (b *boundsVisitor) visitGlyph(p placedGlyph) {
	g := p.glyph
	b.add(p.cell)
	quad := p.cell
	if !g.IsEmpty() {
		quad = Rect{MinX: p.quad.X, MinY: p.quad.Y, MaxX: p.quad.X + g.Width, MaxY: p.quad.Y + g.Height}
		b.add(quad)
	}
	if b.infos != nil {
		*b.infos = append(*b.infos, GlyphInfo{Index: p.index, Glyph: g, Bounds: quad})
	}
}

func (b *boundsVisitor) endLine(lineEnd) {}

// GlyphInfo is the placement of one laid out glyph.
type GlyphInfo struct {
	// Index is the rune index in the laid out string of the glyph's
	// codepoint, or of the first codepoint of its shaping cluster.
	Index int

	Glyph *CachedGlyph

	// Bounds is the glyph quad, or its pen cell for glyphs without ink,
	// scaled and positioned like TextBounds.
	Bounds Rect
}

// TextBounds returns the axis-aligned box covering every glyph quad and
// glyph pen cell of s laid out at pos. Scale and origin are applied;
// rotation is not. An active effect widens the box by twice its amount.
// Text that produces no glyphs yields an empty Rect at pos.
func (f *Font) TextBounds(s string, pos glyphlayout.Point, opts DrawOptions) (Rect, error) {
	b := &boundsVisitor{}
	l := layout{font: f, opts: &opts, v: b}
	if _, err := l.run(s); err != nil {
		return Rect{}, err
	}
	if !b.hasRect {
		return Rect{MinX: pos.X, MinY: pos.Y, MaxX: pos.X, MaxY: pos.Y}, nil
	}
	r := b.rect
	r.MaxX += opts.effectPadding()
	return place(r, pos, &opts), nil
}

// MeasureString returns the width and height of TextBounds.
func (f *Font) MeasureString(s string, opts DrawOptions) (glyphlayout.Point, error) {
	r, err := f.TextBounds(s, glyphlayout.Point{}, opts)
	if err != nil {
		return glyphlayout.Point{}, err
	}
	return glyphlayout.Pt(r.Width(), r.Height()), nil
}

// Glyphs lays out s at pos and reports every glyph in layout order,
// including glyphs without ink. It does not touch any atlas.
func (f *Font) Glyphs(s string, pos glyphlayout.Point, opts DrawOptions) ([]GlyphInfo, error) {
	var infos []GlyphInfo
	b := &boundsVisitor{infos: &infos}
	l := layout{font: f, opts: &opts, v: b}
	if _, err := l.run(s); err != nil {
		return nil, err
	}
	for i := range infos {
		infos[i].Bounds = place(infos[i].Bounds, pos, &opts)
	}
	return infos, nil
}

// place maps a text-space rectangle to target space without rotation.
func place(r Rect, pos glyphlayout.Point, opts *DrawOptions) Rect {
	s := opts.scale()
	x0 := pos.X + (r.MinX-opts.Origin.X)*s.X
	x1 := pos.X + (r.MaxX-opts.Origin.X)*s.X
	y0 := pos.Y + (r.MinY-opts.Origin.Y)*s.Y
	y1 := pos.Y + (r.MaxY-opts.Origin.Y)*s.Y
	return Rect{MinX: min(x0, x1), MinY: min(y0, y1), MaxX: max(x0, x1), MaxY: max(y0, y1)}
}
