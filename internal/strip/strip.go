// Package strip reduces Markdown and simple markup to plain text so the
// scoring pipeline only ever sees prose. Code blocks, raw HTML and URLs
// are dropped; link labels, emphasis contents and image alt text are
// kept.
package strip

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// Markdown extracts the prose content of Markdown source. Block
// boundaries become blank lines so sentence segmentation does not glue
// adjacent paragraphs together.
func Markdown(source []byte) string {
	doc := goldmark.DefaultParser().Parse(gtext.NewReader(source))
	var sb strings.Builder

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			switch n.(type) {
			case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.Blockquote:
				blockBreak(&sb)
			}
			return ast.WalkContinue, nil
		}

		switch v := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML, *ast.AutoLink:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			sb.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				sb.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(sb.String())
}

// blockBreak separates completed blocks with a blank line.
func blockBreak(sb *strings.Builder) {
	s := sb.String()
	if s == "" || strings.HasSuffix(s, "\n\n") {
		return
	}
	sb.WriteString("\n\n")
}
