package postag

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

// ProseTagger tags sentences with the prose NLP library. It is stateless
// and safe for concurrent use.
type ProseTagger struct{}

// TagSentence implements Tagger. Segmentation is disabled since the
// caller already hands over a single sentence.
func (ProseTagger) TagSentence(sentence string) ([]TaggedToken, error) {
	doc, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tagging sentence: %w", err)
	}
	toks := doc.Tokens()
	out := make([]TaggedToken, 0, len(toks))
	for _, tk := range toks {
		out = append(out, TaggedToken{Text: tk.Text, Tag: tk.Tag})
	}
	return out, nil
}
