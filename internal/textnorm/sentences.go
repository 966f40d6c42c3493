package textnorm

import "sort"

// Span is a half-open [Start, End) character range identifying one
// sentence within normalized text.
type Span struct {
	Start int
	End   int
}

// Sentences splits text into sentence spans. A sentence ends at a run of
// '.', '!' or '?'; any trailing unterminated text becomes a final span.
// The returned spans are sorted ascending, never overlap, and partition
// [0, len(text)): whitespace after a terminator belongs to the next span.
// Sentence boundaries are a heuristic, not a parser: abbreviations and
// decimal points split sentences too.
func Sentences(text string) []Span {
	var spans []Span
	start := 0
	for i := 0; i < len(text); i++ {
		if !isTerminator(text[i]) {
			continue
		}
		// Absorb a terminator run ("...", "?!").
		j := i
		for j+1 < len(text) && isTerminator(text[j+1]) {
			j++
		}
		spans = append(spans, Span{Start: start, End: j + 1})
		start = j + 1
		i = j
	}
	if start < len(text) {
		spans = append(spans, Span{Start: start, End: len(text)})
	}
	return spans
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// SpanRange finds the range of sentence spans overlapped by the character
// range [rawStart, rawEnd). It returns the first and last overlapping
// span indices, or ok=false when the range falls entirely outside the
// spans (or in a gap between them).
func SpanRange(spans []Span, rawStart, rawEnd int) (lo, hi int, ok bool) {
	if len(spans) == 0 || rawStart >= rawEnd {
		return 0, 0, false
	}
	// First span whose end exceeds the range start.
	lo = sort.Search(len(spans), func(i int) bool {
		return spans[i].End > rawStart
	})
	// Last span whose start is below the range end.
	hi = sort.Search(len(spans), func(i int) bool {
		return spans[i].Start >= rawEnd
	}) - 1
	if lo >= len(spans) || hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}
