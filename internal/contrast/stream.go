package contrast

import (
	"sort"
	"strings"

	"github.com/CyranoB/slop-detector/internal/log"
	"github.com/CyranoB/slop-detector/internal/postag"
	"github.com/CyranoB/slop-detector/internal/textnorm"
)

// StreamPiece correlates a range of the derived token stream with a byte
// range of the normalized text. Pieces are emitted in order, never
// overlap in either space, and together cover every character of the
// text the builder saw.
type StreamPiece struct {
	StreamStart int
	StreamEnd   int
	RawStart    int
	RawEnd      int
}

// literalWords are structural words the stream patterns match verbatim.
// They stay literal even when the tagger classes them ("not" and "just"
// tag as adverbs, which would otherwise turn into ADV and erase the very
// scaffolding the rules key on).
var literalWords = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"just":    {},
	"only":    {},
	"merely":  {},
	"simply":  {},
	"but":     {},
	"also":    {},
	"about":   {},
	"more":    {},
	"less":    {},
	"rather":  {},
	"than":    {},
	"instead": {},
	"now":     {},
	"longer":  {},
	"still":   {},
	"anymore": {},
}

type streamBuilder struct {
	sb     strings.Builder
	pieces []StreamPiece
}

func (b *streamBuilder) emit(unit string, rawStart, rawEnd int) {
	if unit == "" {
		return
	}
	start := b.sb.Len()
	b.sb.WriteString(unit)
	b.pieces = append(b.pieces, StreamPiece{
		StreamStart: start,
		StreamEnd:   start + len(unit),
		RawStart:    rawStart,
		RawEnd:      rawEnd,
	})
}

// buildStream tags every sentence and assembles the placeholder stream.
// Each tagged token is re-located in its sentence by forward scan from
// the last matched position; the text between located tokens passes
// through unchanged (lowercased). Tokens the scan cannot locate are
// dropped with a diagnostic.
func buildStream(
	text string,
	spans []textnorm.Span,
	tagger postag.Tagger,
	logger *log.Logger,
) (string, []StreamPiece, error) {
	var b streamBuilder
	for _, span := range spans {
		sent := text[span.Start:span.End]
		toks, err := tagger.TagSentence(sent)
		if err != nil {
			return "", nil, err
		}
		cursor := 0
		for _, tk := range toks {
			if tk.Text == "" {
				continue
			}
			idx := strings.Index(sent[cursor:], tk.Text)
			if idx < 0 {
				logger.Printf("contrast: tagger token %q not found in sentence, dropping", tk.Text)
				continue
			}
			start := cursor + idx
			if start > cursor {
				b.emit(strings.ToLower(sent[cursor:start]), span.Start+cursor, span.Start+start)
			}
			end := start + len(tk.Text)
			b.emit(unitFor(tk), span.Start+start, span.Start+end)
			cursor = end
		}
		if cursor < len(sent) {
			b.emit(strings.ToLower(sent[cursor:]), span.Start+cursor, span.End)
		}
	}
	return b.sb.String(), b.pieces, nil
}

func unitFor(tk postag.TaggedToken) string {
	lower := strings.ToLower(tk.Text)
	if _, ok := literalWords[lower]; ok {
		return lower
	}
	if class, ok := postag.ClassOf(tk.Tag); ok {
		return class
	}
	return lower
}

// rawSpan inverts the piece mapping for a stream-space match: it binary
// searches the covering pieces and returns the min/max of their raw
// offsets. A match whose boundaries fall outside any recorded piece is
// rejected; partial evidence is not scored.
func rawSpan(pieces []StreamPiece, streamStart, streamEnd int) (int, int, bool) {
	if len(pieces) == 0 || streamStart >= streamEnd {
		return 0, 0, false
	}
	i := sort.Search(len(pieces), func(k int) bool {
		return pieces[k].StreamEnd > streamStart
	})
	if i == len(pieces) || pieces[i].StreamStart > streamStart {
		return 0, 0, false
	}
	j := sort.Search(len(pieces), func(k int) bool {
		return pieces[k].StreamStart >= streamEnd
	}) - 1
	if j < i || pieces[j].StreamEnd < streamEnd {
		return 0, 0, false
	}
	return pieces[i].RawStart, pieces[j].RawEnd, true
}
