// Package postag defines the part-of-speech tagging contract the contrast
// detector consumes, plus the production adapter. The detector depends
// only on the (Text, Tag) output sequence; it re-locates every token in
// the source sentence itself, so adapters make no offset guarantees.
package postag

import "strings"

// TaggedToken is one token of a tagged sentence. Tag is a Penn Treebank
// part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Tagger tags a single sentence. The returned tokens must appear in the
// same order as their surface forms occur in the sentence.
type Tagger interface {
	TagSentence(sentence string) ([]TaggedToken, error)
}

// ClassOf maps a Penn Treebank tag to the word-class placeholder used in
// the derived token stream. Tokens outside the four classes pass through
// the stream as literals.
func ClassOf(tag string) (string, bool) {
	switch {
	case strings.HasPrefix(tag, "VB"):
		return "VERB", true
	case strings.HasPrefix(tag, "NN"):
		return "NOUN", true
	case strings.HasPrefix(tag, "JJ"):
		return "ADJ", true
	case strings.HasPrefix(tag, "RB"):
		return "ADV", true
	}
	return "", false
}
