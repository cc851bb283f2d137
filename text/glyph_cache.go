package text

import "github.com/gogpu/glyphlayout"

// glyphTable is one effect partition of a GlyphCache.
type glyphTable map[GlyphKey]GlyphLookup

// GlyphCache maps glyph keys to CachedGlyph records for one Font.
//
// Storage is partitioned by (effect, amount) because an effect changes glyph
// metrics. Within a partition a key always maps to the same *CachedGlyph, and
// failed resolutions are remembered as LookupMissing so unsupported codepoints
// cost one map lookup after the first miss.
//
// GlyphCache is not safe for concurrent use.
type GlyphCache struct {
	system *FontSystem
	size   float64
	ascent float64
	tables map[effectKey]glyphTable
}

func newGlyphCache(system *FontSystem, size, ascent float64) *GlyphCache {
	return &GlyphCache{
		system: system,
		size:   size,
		ascent: ascent,
		tables: make(map[effectKey]glyphTable),
	}
}

func (c *GlyphCache) table(effect Effect, amount int) glyphTable {
	key := newEffectKey(effect, amount)
	t, ok := c.tables[key]
	if !ok {
		t = make(glyphTable)
		c.tables[key] = t
	}
	return t
}

// Lookup returns the cached state of key without resolving anything.
func (c *GlyphCache) Lookup(key GlyphKey, effect Effect, amount int) GlyphLookup {
	t, ok := c.tables[newEffectKey(effect, amount)]
	if !ok {
		return GlyphLookup{}
	}
	return t[key]
}

// GetOrCreate returns the glyph for codepoint r under the given effect,
// or nil if no font source contains r (nor the default rune, if configured).
//
// If atlas is non-nil and the glyph has ink, the glyph is placed in the atlas
// the first time it is requested. A nil atlas is valid for measuring.
func (c *GlyphCache) GetOrCreate(r rune, effect Effect, amount int, atlas Atlas) (*CachedGlyph, error) {
	t := c.table(effect, amount)
	key := RuneKey(r)

	lookup, ok := t[key]
	if !ok {
		lookup = c.resolveRune(r, effect, amount)
		t[key] = lookup
	}
	if lookup.State != LookupFound {
		return nil, nil
	}
	if err := lookup.Glyph.place(atlas); err != nil {
		return nil, err
	}
	return lookup.Glyph, nil
}

// GetOrCreateShaped returns the glyph with the given id in font source src,
// as chosen by a shaper. Codepoint resolution is skipped entirely.
func (c *GlyphCache) GetOrCreateShaped(id GlyphID, src SourceIndex, effect Effect, amount int, atlas Atlas) (*CachedGlyph, error) {
	if src < 0 || int(src) >= c.system.NumSources() {
		return nil, nil
	}

	t := c.table(effect, amount)
	key := ShapedKey(src, id)

	lookup, ok := t[key]
	if !ok {
		lookup = GlyphLookup{
			State: LookupFound,
			Glyph: c.newGlyph(0, id, src, effect, amount),
		}
		t[key] = lookup
	}
	if err := lookup.Glyph.place(atlas); err != nil {
		return nil, err
	}
	return lookup.Glyph, nil
}

func (c *GlyphCache) resolveRune(r rune, effect Effect, amount int) GlyphLookup {
	id, src, ok := c.system.Resolve(r)
	if !ok {
		def, hasDefault := c.system.DefaultRune()
		if !hasDefault || def == r {
			return GlyphLookup{State: LookupMissing}
		}
		if id, src, ok = c.system.Resolve(def); !ok {
			return GlyphLookup{State: LookupMissing}
		}
		r = def
	}
	return GlyphLookup{
		State: LookupFound,
		Glyph: c.newGlyph(r, id, src, effect, amount),
	}
}

func (c *GlyphCache) newGlyph(r rune, id GlyphID, src SourceIndex, effect Effect, amount int) *CachedGlyph {
	ek := newEffectKey(effect, amount)
	pad := float64(ek.amount)

	advance, bounds := c.system.Source(src).GlyphMetrics(id, c.size)
	return &CachedGlyph{
		Rune:   r,
		ID:     id,
		Source: src,
		Size:   c.size,
		RenderOffset: glyphlayout.Pt(
			bounds.MinX-pad,
			c.ascent+bounds.MinY-pad,
		),
		Width:        bounds.Width() + pad*2,
		Height:       bounds.Height() + pad*2,
		Advance:      advance,
		Effect:       ek.effect,
		EffectAmount: ek.amount,
		empty:        bounds.Empty(),
	}
}

// Len returns the number of cached keys across all effect partitions,
// including remembered misses.
func (c *GlyphCache) Len() int {
	n := 0
	for _, t := range c.tables {
		n += len(t)
	}
	return n
}

// Clear drops all cached glyphs and misses.
func (c *GlyphCache) Clear() {
	c.tables = make(map[effectKey]glyphTable)
}
