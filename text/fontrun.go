package text

// FontRun is a span of text whose codepoints all resolve to the same font
// source. Start and Length count runes, not bytes.
type FontRun struct {
	Start  int
	Length int
	Source SourceIndex
}

// End returns the rune index one past the run.
func (r FontRun) End() int {
	return r.Start + r.Length
}

// SegmentFontRuns partitions text into maximal runs resolving to the same
// font source. resolve is called once per codepoint; NoSource is an ordinary
// value, so unresolvable codepoints form runs of their own.
//
// The runs cover the whole text without gaps. Empty text yields nil.
func SegmentFontRuns(text string, resolve func(rune) SourceIndex) []FontRun {
	if text == "" {
		return nil
	}

	var runs []FontRun
	current := FontRun{Source: NoSource}

	n := 0
	for _, r := range text {
		src := resolve(r)
		switch {
		case n == 0:
			current.Source = src
		case src != current.Source:
			current.Length = n - current.Start
			runs = append(runs, current)
			current = FontRun{Start: n, Source: src}
		}
		n++
	}

	current.Length = n - current.Start
	return append(runs, current)
}

// shapingRuns splits the font runs of text again at direction boundaries,
// so every run passed to a shaper has one source and one direction.
func shapingRuns(text string, resolve func(rune) SourceIndex) []FontRun {
	fonts := SegmentFontRuns(text, resolve)
	dirs := AnalyzeDirection(text)
	if len(dirs) <= 1 {
		return fonts
	}

	runs := make([]FontRun, 0, len(fonts)+len(dirs))
	d := 0
	for _, fr := range fonts {
		for start := fr.Start; start < fr.End(); {
			for dirs[d].End() <= start {
				d++
			}
			end := min(fr.End(), dirs[d].End())
			runs = append(runs, FontRun{Start: start, Length: end - start, Source: fr.Source})
			start = end
		}
	}
	return runs
}

// runText returns the substring of text covered by a rune span.
func runText(runes []rune, start, length int) string {
	return string(runes[start : start+length])
}
