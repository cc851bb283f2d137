package text

import "testing"

func TestKerningCache(t *testing.T) {
	f, srcs := newTestFont(t, nil, latin)
	srcs[0].kerns[kernPair{'A', 'V'}] = -1.5

	a, _ := f.GlyphCache().GetOrCreate('A', EffectNone, 0, nil)
	v, _ := f.GlyphCache().GetOrCreate('V', EffectNone, 0, nil)
	k := f.KerningCache()

	if got := k.Kerning(a, v); got != -1.5 {
		t.Errorf("Kerning(A, V) = %v, want -1.5", got)
	}
	if got := k.Kerning(v, a); got != 0 {
		t.Errorf("Kerning(V, A) = %v, want 0", got)
	}
	k.Kerning(a, v)
	if srcs[0].kernN != 2 {
		t.Errorf("Kern called %d times, want 2", srcs[0].kernN)
	}
	if k.Len() != 2 {
		t.Errorf("Len() = %d, want 2", k.Len())
	}

	k.Clear()
	if k.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", k.Len())
	}
}

func TestKerningCacheZeroCases(t *testing.T) {
	f, srcs := newTestFont(t, nil, "AV", "W")
	srcs[0].kerns[kernPair{'A', 'V'}] = -2
	srcs[1].kerns[kernPair{'A', 'W'}] = -2

	c := f.GlyphCache()
	a, _ := c.GetOrCreate('A', EffectNone, 0, nil)
	w, _ := c.GetOrCreate('W', EffectNone, 0, nil)
	k := f.KerningCache()

	tests := []struct {
		name      string
		prev, cur *CachedGlyph
	}{
		{"nil previous", nil, a},
		{"nil current", a, nil},
		{"cross source", a, w},
	}
	for _, tt := range tests {
		if got := k.Kerning(tt.prev, tt.cur); got != 0 {
			t.Errorf("%s: Kerning = %v, want 0", tt.name, got)
		}
	}
	if srcs[0].kernN+srcs[1].kernN != 0 {
		t.Error("Kern was called for a pair that cannot kern")
	}
}

func TestKerningDisabled(t *testing.T) {
	f, srcs := newTestFont(t, []SystemOption{WithKerning(false)}, "AV")
	srcs[0].kerns[kernPair{'A', 'V'}] = -2

	a, _ := f.GlyphCache().GetOrCreate('A', EffectNone, 0, nil)
	v, _ := f.GlyphCache().GetOrCreate('V', EffectNone, 0, nil)
	if got := f.KerningCache().Kerning(a, v); got != 0 {
		t.Errorf("Kerning with kerning disabled = %v, want 0", got)
	}
}
