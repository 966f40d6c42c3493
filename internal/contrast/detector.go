// Package contrast detects rhetorical "not X, but Y" constructions in
// normalized text. Detection runs in two stages: surface regexes over the
// text itself, then structural regexes over a part-of-speech placeholder
// stream whose matches are mapped back to text offsets through a piece
// table. Candidates from both stages merge into sentence-aligned matches.
package contrast

import (
	"github.com/CyranoB/slop-detector/internal/log"
	"github.com/CyranoB/slop-detector/internal/postag"
	"github.com/CyranoB/slop-detector/internal/textnorm"
)

// Match is a merged contrast finding. Text is the full sentence-aligned
// excerpt covering the match, not the raw regex substring; Pattern and
// Matched come from the candidate that seeded the merge.
type Match struct {
	Pattern    string
	Matched    string
	Text       string
	SentenceLo int
	SentenceHi int
	RawStart   int
	RawEnd     int
	Sentences  int
}

// candidate is a single regex hit before merging.
type candidate struct {
	sentLo   int
	sentHi   int
	rawStart int
	rawEnd   int
	pattern  string
	matched  string
}

// Detector runs the two-stage contrast pass. A nil tagger disables
// Stage 2: the detector then runs surface patterns only, which is a valid
// configuration, not a failure.
type Detector struct {
	tagger  postag.Tagger
	log     *log.Logger
	surface []Pattern
	stream  []Pattern
}

// NewDetector builds a detector with the built-in pattern tables.
func NewDetector(tagger postag.Tagger, logger *log.Logger) *Detector {
	return &Detector{
		tagger:  tagger,
		log:     logger,
		surface: surfacePatterns,
		stream:  streamPatterns,
	}
}

// Detect returns the merged contrast matches for normalized text. Empty
// text or text without sentence spans yields no matches and no error; a
// tagger fault is the only error path.
func (d *Detector) Detect(nt *textnorm.NormalizedText) ([]Match, error) {
	if nt == nil || nt.Text == "" {
		return nil, nil
	}
	spans := textnorm.Sentences(nt.Text)
	if len(spans) == 0 {
		return nil, nil
	}

	var cands []candidate

	// Stage 1: surface regexes over the normalized text.
	for _, p := range d.surface {
		for _, m := range p.Re.FindAllStringIndex(nt.Text, -1) {
			lo, hi, ok := textnorm.SpanRange(spans, m[0], m[1])
			if !ok {
				d.log.Printf("contrast: %s match at %d-%d outside sentence spans", p.Name, m[0], m[1])
				continue
			}
			cands = append(cands, candidate{
				sentLo:   lo,
				sentHi:   hi,
				rawStart: m[0],
				rawEnd:   m[1],
				pattern:  p.Name,
				matched:  nt.Text[m[0]:m[1]],
			})
		}
	}

	// Stage 2: structural regexes over the POS-placeholder stream.
	if d.tagger != nil && len(d.stream) > 0 {
		stream, pieces, err := buildStream(nt.Text, spans, d.tagger, d.log)
		if err != nil {
			return nil, err
		}
		for _, p := range d.stream {
			for _, m := range p.Re.FindAllStringIndex(stream, -1) {
				rawStart, rawEnd, ok := rawSpan(pieces, m[0], m[1])
				if !ok {
					d.log.Printf("contrast: dropping unmappable %s match at stream %d-%d", p.Name, m[0], m[1])
					continue
				}
				lo, hi, ok := textnorm.SpanRange(spans, rawStart, rawEnd)
				if !ok {
					d.log.Printf("contrast: %s match at %d-%d outside sentence spans", p.Name, rawStart, rawEnd)
					continue
				}
				cands = append(cands, candidate{
					sentLo:   lo,
					sentHi:   hi,
					rawStart: rawStart,
					rawEnd:   rawEnd,
					pattern:  p.Name,
					matched:  nt.Text[rawStart:rawEnd],
				})
			}
		}
	}

	return mergeCandidates(cands, nt.Text, spans), nil
}
