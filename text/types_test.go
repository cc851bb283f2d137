package text

import (
	"errors"
	"testing"
)

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"LTR", DirectionLTR.String(), "LTR"},
		{"RTL", DirectionRTL.String(), "RTL"},
		{"bad direction", Direction(99).String(), "Unknown"},
		{"EffectNone", EffectNone.String(), "None"},
		{"EffectBlurry", EffectBlurry.String(), "Blurry"},
		{"EffectStroked", EffectStroked.String(), "Stroked"},
		{"bad effect", Effect(7).String(), "Unknown"},
		{"StyleNone", StyleNone.String(), "None"},
		{"StyleUnderline", StyleUnderline.String(), "Underline"},
		{"StyleStrikethrough", StyleStrikethrough.String(), "Strikethrough"},
		{"bad style", TextStyle(-1).String(), "Unknown"},
		{"LookupUnresolved", LookupUnresolved.String(), "Unresolved"},
		{"LookupFound", LookupFound.String(), "Found"},
		{"LookupMissing", LookupMissing.String(), "Missing"},
		{"bad lookup", LookupState(9).String(), "Unknown"},
		{"ClassNeutral", ClassNeutral.String(), "Neutral"},
		{"ClassLTR", ClassLTR.String(), "LTR"},
		{"ClassRTL", ClassRTL.String(), "RTL"},
		{"CommandGlyph", CommandGlyph.String(), "Glyph"},
		{"CommandDecoration", CommandDecoration.String(), "Decoration"},
		{"bad command", CommandKind(5).String(), "Unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: String() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{MinX: 1, MinY: 2, MaxX: 4, MaxY: 8}
	if r.Width() != 3 || r.Height() != 6 {
		t.Errorf("size = %vx%v, want 3x6", r.Width(), r.Height())
	}
	if r.Empty() {
		t.Error("non-degenerate rect reported empty")
	}
	if !(Rect{MinX: 1, MaxX: 1, MaxY: 5}).Empty() {
		t.Error("zero-width rect not empty")
	}

	u := r.Union(Rect{MinX: -1, MinY: 3, MaxX: 2, MaxY: 10})
	want := Rect{MinX: -1, MinY: 2, MaxX: 4, MaxY: 10}
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}
}

func TestMetricsLineHeight(t *testing.T) {
	m := Metrics{Ascent: 12, Descent: 3, LineGap: 1.5}
	if got := m.LineHeight(); got != 16.5 {
		t.Errorf("LineHeight() = %v, want 16.5", got)
	}
}

func TestShapingContextError(t *testing.T) {
	var err error = &ShapingContextError{Source: 3}
	if !errors.Is(err, ErrNoShapingContext) {
		t.Error("ShapingContextError does not unwrap to ErrNoShapingContext")
	}
	if got, want := err.Error(), "text: no shaping context for font source 3"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
