package strip

import (
	"strings"
	"testing"
)

func TestMarkdown_PlainParagraph(t *testing.T) {
	got := Markdown([]byte("Hello world.\n"))
	if got != "Hello world." {
		t.Errorf("got %q", got)
	}
}

func TestMarkdown_Link(t *testing.T) {
	got := Markdown([]byte("Click [here](https://example.com) now.\n"))
	if got != "Click here now." {
		t.Errorf("got %q", got)
	}
}

func TestMarkdown_Emphasis(t *testing.T) {
	got := Markdown([]byte("This is *important* and **bold** text.\n"))
	if got != "This is important and bold text." {
		t.Errorf("got %q", got)
	}
}

func TestMarkdown_Image(t *testing.T) {
	got := Markdown([]byte("See ![alt text](image.png) here.\n"))
	if got != "See alt text here." {
		t.Errorf("got %q", got)
	}
}

func TestMarkdown_SkipsCodeBlocks(t *testing.T) {
	src := "Before.\n\n```\nfmt.Println(\"hi\")\n```\n\nAfter.\n"
	got := Markdown([]byte(src))
	if strings.Contains(got, "Println") {
		t.Errorf("code leaked into plain text: %q", got)
	}
	if !strings.Contains(got, "Before.") || !strings.Contains(got, "After.") {
		t.Errorf("prose missing: %q", got)
	}
}

func TestMarkdown_BlockSeparation(t *testing.T) {
	src := "# Title\n\nFirst paragraph\n\nSecond paragraph\n"
	got := Markdown([]byte(src))
	want := "Title\n\nFirst paragraph\n\nSecond paragraph"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarkdown_SoftLineBreak(t *testing.T) {
	got := Markdown([]byte("Hello\nworld.\n"))
	if got != "Hello world." {
		t.Errorf("got %q", got)
	}
}

func TestFrontMatter_Present(t *testing.T) {
	src := []byte("---\ntitle: Doc\n---\nBody text.\n")
	meta, body := FrontMatter(src)
	if string(meta) != "---\ntitle: Doc\n---\n" {
		t.Errorf("meta: got %q", meta)
	}
	if string(body) != "Body text.\n" {
		t.Errorf("body: got %q", body)
	}
}

func TestFrontMatter_Absent(t *testing.T) {
	src := []byte("Just text.\n")
	meta, body := FrontMatter(src)
	if meta != nil {
		t.Errorf("meta: got %q, want nil", meta)
	}
	if string(body) != "Just text.\n" {
		t.Errorf("body: got %q", body)
	}
}

func TestFrontMatter_Unclosed(t *testing.T) {
	src := []byte("---\ntitle: Doc\nno closing delimiter\n")
	meta, body := FrontMatter(src)
	if meta != nil || string(body) != string(src) {
		t.Errorf("unclosed front matter should pass through, got %q / %q", meta, body)
	}
}
