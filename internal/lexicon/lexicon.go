// Package lexicon scores token sequences against fixed word and trigram
// sets. Rates are expressed as hits per 1000 units and are pure functions
// of their inputs.
package lexicon

import "strings"

// perThousand scales raw ratios into hits-per-1000 rates.
const perThousand = 1000.0

// WordRate returns the overused-word rate for tokens and the matched
// tokens in order of appearance. The rate is hits per 1000 tokens; an
// empty token sequence scores 0.
func WordRate(tokens []string, words map[string]struct{}) (float64, []string) {
	var hits []string
	for _, tok := range tokens {
		if _, ok := words[tok]; ok {
			hits = append(hits, tok)
		}
	}
	denom := len(tokens)
	if denom < 1 {
		denom = 1
	}
	return float64(len(hits)) / float64(denom) * perThousand, hits
}

// TrigramRate slides a 3-token window (joined by single spaces) across
// tokens and returns the overused-trigram rate and the matched trigrams
// in order of appearance. The rate is hits per 1000 windows; sequences
// shorter than 3 tokens score 0.
func TrigramRate(tokens []string, trigrams map[string]struct{}) (float64, []string) {
	windows := len(tokens) - 2
	var hits []string
	for i := 0; i < windows; i++ {
		gram := strings.Join(tokens[i:i+3], " ")
		if _, ok := trigrams[gram]; ok {
			hits = append(hits, gram)
		}
	}
	denom := windows
	if denom < 1 {
		denom = 1
	}
	return float64(len(hits)) / float64(denom) * perThousand, hits
}
