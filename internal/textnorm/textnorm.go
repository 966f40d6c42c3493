// Package textnorm prepares raw plain text for scoring: it canonicalizes
// Unicode quote and dash variants, tokenizes words, and extracts sentence
// spans. All downstream offsets refer to the normalized text.
package textnorm

import (
	"regexp"
	"strings"
)

// NormalizedText is the canonical form of one input document. It is built
// once per scoring call and never mutated afterwards.
type NormalizedText struct {
	Text string
	// CharCount is the byte length of Text, not a rune count. Sentence
	// spans and match offsets are byte offsets into Text, so they share
	// this unit; multi-byte runes the replacer leaves alone count as
	// their UTF-8 width.
	CharCount int
	WordCount int
	Tokens    []string
}

// quoteDashReplacer maps curly quotes to straight quotes and em/en dashes
// to hyphens so scoring regexes only need to match canonical forms.
var quoteDashReplacer = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"‚", "'", // single low quote
	"‛", "'", // single reversed quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"„", `"`, // double low quote
	"‟", `"`, // double reversed quote
	"–", "-", // en dash
	"—", "-", // em dash
	"―", "-", // horizontal bar
	"−", "-", // minus sign
)

// Normalize canonicalizes text and derives token and sentence views.
func Normalize(text string) *NormalizedText {
	canonical := quoteDashReplacer.Replace(text)
	tokens := Tokenize(canonical)
	return &NormalizedText{
		Text:      canonical,
		CharCount: len(canonical),
		WordCount: len(tokens),
		Tokens:    tokens,
	}
}

var (
	// tokenPattern is the permissive first pass: runs of letters and
	// apostrophes in lowercased text.
	tokenPattern = regexp.MustCompile(`[a-z']+`)
	// wordPattern is the strict second pass: plain words or a single
	// interior contraction (rejects stray apostrophe runs).
	wordPattern = regexp.MustCompile(`^[a-z]+(?:'[a-z]+)?$`)
)

// Tokenize lowercases text and extracts word tokens. Leading and trailing
// apostrophes are stripped; tokens that are not letters or letters'letters
// are discarded.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	raw := tokenPattern.FindAllString(lower, -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.Trim(tok, "'")
		if tok == "" {
			continue
		}
		if !wordPattern.MatchString(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
