package text

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// DirectionalRun is a span of text sharing one direction.
// Start and Length count runes, not bytes.
type DirectionalRun struct {
	Start     int
	Length    int
	Direction Direction
}

// End returns the rune index one past the run.
func (r DirectionalRun) End() int {
	return r.Start + r.Length
}

// RuneClass is the directional strength of a single rune.
type RuneClass int

const (
	// ClassNeutral runes (space, punctuation, symbols, separators) take the
	// direction of the run they appear in.
	ClassNeutral RuneClass = iota
	// ClassLTR runes open or continue a left-to-right run.
	ClassLTR
	// ClassRTL runes open or continue a right-to-left run.
	ClassRTL
)

// String returns the string representation of the class.
func (c RuneClass) String() string {
	switch c {
	case ClassNeutral:
		return "Neutral"
	case ClassLTR:
		return "LTR"
	case ClassRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Unicode blocks whose letters are classified right-to-left.
var (
	hebrewBlock             = blockTable(0x0590, 0x05FF)
	arabicBlock             = blockTable(0x0600, 0x06FF)
	syriacBlock             = blockTable(0x0700, 0x074F)
	thaanaBlock             = blockTable(0x0780, 0x07BF)
	nkoBlock                = blockTable(0x07C0, 0x07FF)
	samaritanBlock          = blockTable(0x0800, 0x083F)
	mandaicBlock            = blockTable(0x0840, 0x085F)
	arabicExtendedABlock    = blockTable(0x08A0, 0x08FF)
	hebrewPresentationForms = blockTable(0xFB1D, 0xFB4F)
	arabicPresentationFormA = blockTable(0xFB50, 0xFDFF)
	arabicPresentationFormB = blockTable(0xFE70, 0xFEFF)

	rtlTable = rangetable.Merge(
		hebrewBlock,
		arabicBlock,
		syriacBlock,
		thaanaBlock,
		nkoBlock,
		samaritanBlock,
		mandaicBlock,
		arabicExtendedABlock,
		hebrewPresentationForms,
		arabicPresentationFormA,
		arabicPresentationFormB,
	)
)

func blockTable(lo, hi uint16) *unicode.RangeTable {
	return &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: lo, Hi: hi, Stride: 1}},
	}
}

// ClassifyRune returns the directional class of r.
// Neutral is checked first, so punctuation inside an RTL block (such as the
// Arabic comma) stays neutral.
func ClassifyRune(r rune) RuneClass {
	switch {
	case unicode.IsSpace(r), unicode.IsPunct(r), unicode.IsSymbol(r), unicode.In(r, unicode.Z):
		return ClassNeutral
	case unicode.Is(rtlTable, r):
		return ClassRTL
	default:
		return ClassLTR
	}
}

// direction maps a strong class to its direction.
func (c RuneClass) direction() Direction {
	if c == ClassRTL {
		return DirectionRTL
	}
	return DirectionLTR
}

// AnalyzeDirection splits text into direction-uniform runs.
//
// The first strong rune fixes the direction of the open run; neutral runes
// join whichever run is open, and neutrals before the first strong rune join
// the first run. A new run starts only when a strong rune of the other
// direction appears. Runs are returned in logical order, which is also the
// visual order: nothing is reversed.
//
// Empty text yields nil. Text without strong runes yields one LTR run.
func AnalyzeDirection(text string) []DirectionalRun {
	if text == "" {
		return nil
	}

	runs := make([]DirectionalRun, 0, 2)
	current := DirectionalRun{Direction: DirectionLTR}
	resolved := false

	n := 0
	for _, r := range text {
		i := n
		n++

		class := ClassifyRune(r)
		if class == ClassNeutral {
			continue
		}

		dir := class.direction()
		if !resolved {
			current.Direction = dir
			resolved = true
			continue
		}
		if dir == current.Direction {
			continue
		}

		current.Length = i - current.Start
		runs = append(runs, current)
		current = DirectionalRun{Start: i, Direction: dir}
	}

	current.Length = n - current.Start
	return append(runs, current)
}

// ParagraphDirection returns the direction of the first strong rune in text,
// or DirectionLTR when there is none.
func ParagraphDirection(text string) Direction {
	for _, r := range text {
		if class := ClassifyRune(r); class != ClassNeutral {
			return class.direction()
		}
	}
	return DirectionLTR
}
