package text

import (
	"reflect"
	"testing"
)

func TestClassifyRune(t *testing.T) {
	tests := []struct {
		r    rune
		want RuneClass
	}{
		{'a', ClassLTR},
		{'Z', ClassLTR},
		{'7', ClassLTR},
		{'Ж', ClassLTR},
		{'中', ClassLTR},
		{' ', ClassNeutral},
		{'\t', ClassNeutral},
		{',', ClassNeutral},
		{'!', ClassNeutral},
		{'+', ClassNeutral},
		{'\u20AC', ClassNeutral}, // euro sign
		{'\u2003', ClassNeutral}, // em space
		{'\u05D0', ClassRTL},     // Hebrew
		{'\u0628', ClassRTL},     // Arabic
		{'\u0710', ClassRTL},     // Syriac
		{'\u0780', ClassRTL},     // Thaana
		{'\u07CA', ClassRTL},     // NKo
		{'\u0800', ClassRTL},     // Samaritan
		{'\u0840', ClassRTL},     // Mandaic
		{'\u08A0', ClassRTL},     // Arabic Extended-A
		{'\uFB1D', ClassRTL},     // Hebrew presentation forms
		{'\uFB50', ClassRTL},     // Arabic presentation forms A
		{'\uFE80', ClassRTL},     // Arabic presentation forms B
	}
	for _, tt := range tests {
		if got := ClassifyRune(tt.r); got != tt.want {
			t.Errorf("ClassifyRune(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestAnalyzeDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []DirectionalRun
	}{
		{"empty", "", nil},
		{"latin", "hello", []DirectionalRun{{0, 5, DirectionLTR}}},
		{"all neutral", " ,. ", []DirectionalRun{{0, 4, DirectionLTR}}},
		{"arabic", "أبت", []DirectionalRun{{0, 3, DirectionRTL}}},
		{"mixed", "abcأبت", []DirectionalRun{
			{0, 3, DirectionLTR},
			{3, 3, DirectionRTL},
		}},
		{"neutral joins open run", "ab אב cd", []DirectionalRun{
			{0, 3, DirectionLTR},
			{3, 3, DirectionRTL},
			{6, 2, DirectionLTR},
		}},
		{"leading neutrals join first run", "  שלום", []DirectionalRun{{0, 6, DirectionRTL}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeDirection(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AnalyzeDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyzeDirectionCoversText(t *testing.T) {
	texts := []string{"a", "abc def", "שלום world", "1, 2, 3 أبت!", "x\ny\nא"}
	for _, text := range texts {
		runs := AnalyzeDirection(text)
		next := 0
		for i, run := range runs {
			if run.Start != next {
				t.Errorf("%q: run %d starts at %d, want %d", text, i, run.Start, next)
			}
			if run.Length <= 0 {
				t.Errorf("%q: run %d has length %d", text, i, run.Length)
			}
			if i > 0 && runs[i-1].Direction == run.Direction {
				t.Errorf("%q: runs %d and %d share direction %v", text, i-1, i, run.Direction)
			}
			next = run.End()
		}
		if n := len([]rune(text)); next != n {
			t.Errorf("%q: runs end at %d, want %d", text, next, n)
		}
	}
}

func TestParagraphDirection(t *testing.T) {
	tests := []struct {
		text string
		want Direction
	}{
		{"", DirectionLTR},
		{"...", DirectionLTR},
		{"hello", DirectionLTR},
		{" שלום hello", DirectionRTL},
		{"42 أبت", DirectionLTR},
	}
	for _, tt := range tests {
		if got := ParagraphDirection(tt.text); got != tt.want {
			t.Errorf("ParagraphDirection(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
