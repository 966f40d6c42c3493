package contrast

import (
	"sort"
	"strings"

	"github.com/CyranoB/slop-detector/internal/textnorm"
)

// mergeCandidates collapses candidates into non-overlapping sentence
// ranges. Candidates are sorted by sentence range then raw start; a
// candidate whose starting sentence index falls inside the current
// accumulator's range extends it, so one rhetorical flourish spanning
// several regex hits across adjacent sentences counts once. Each merged
// group keeps the pattern and matched substring of its seeding candidate
// and reports the full text of its covered sentence range.
func mergeCandidates(cands []candidate, text string, spans []textnorm.Span) []Match {
	if len(cands) == 0 {
		return nil
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].sentLo != cands[j].sentLo {
			return cands[i].sentLo < cands[j].sentLo
		}
		if cands[i].sentHi != cands[j].sentHi {
			return cands[i].sentHi < cands[j].sentHi
		}
		return cands[i].rawStart < cands[j].rawStart
	})

	var out []Match
	cur := cands[0]
	for _, c := range cands[1:] {
		if c.sentLo <= cur.sentHi {
			if c.sentHi > cur.sentHi {
				cur.sentHi = c.sentHi
			}
			if c.rawEnd > cur.rawEnd {
				cur.rawEnd = c.rawEnd
			}
			continue
		}
		out = append(out, finish(cur, text, spans))
		cur = c
	}
	out = append(out, finish(cur, text, spans))
	return out
}

func finish(c candidate, text string, spans []textnorm.Span) Match {
	excerpt := text[spans[c.sentLo].Start:spans[c.sentHi].End]
	return Match{
		Pattern:    c.pattern,
		Matched:    c.matched,
		Text:       strings.TrimSpace(excerpt),
		SentenceLo: c.sentLo,
		SentenceHi: c.sentHi,
		RawStart:   c.rawStart,
		RawEnd:     c.rawEnd,
		Sentences:  c.sentHi - c.sentLo + 1,
	}
}
