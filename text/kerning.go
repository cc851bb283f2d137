package text

// kernKey packs a directional glyph pair of one source: (a, b) and (b, a)
// are different keys.
type kernKey uint64

func newKernKey(src SourceIndex, a, b GlyphID) kernKey {
	return kernKey(uint64(uint32(src))<<32 | uint64(a)<<16 | uint64(b))
}

// KerningCache memoizes pairwise kerning for one Font.
//
// KerningCache is not safe for concurrent use.
type KerningCache struct {
	system *FontSystem
	size   float64
	pairs  map[kernKey]float64
}

func newKerningCache(system *FontSystem, size float64) *KerningCache {
	return &KerningCache{
		system: system,
		size:   size,
		pairs:  make(map[kernKey]float64),
	}
}

// Kerning returns the advance adjustment between prev and g.
//
// It is 0 when kerning is disabled on the font system, when either glyph is
// nil, and when the glyphs come from different font sources.
func (k *KerningCache) Kerning(prev, g *CachedGlyph) float64 {
	if !k.system.KerningEnabled() || prev == nil || g == nil {
		return 0
	}
	if prev.Source != g.Source || g.Source < 0 {
		return 0
	}

	key := newKernKey(g.Source, prev.ID, g.ID)
	if v, ok := k.pairs[key]; ok {
		return v
	}
	v := k.system.Source(g.Source).Kern(prev.ID, g.ID, k.size)
	k.pairs[key] = v
	return v
}

// Len returns the number of memoized pairs.
func (k *KerningCache) Len() int {
	return len(k.pairs)
}

// Clear drops all memoized pairs.
func (k *KerningCache) Clear() {
	k.pairs = make(map[kernKey]float64)
}
