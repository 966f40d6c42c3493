package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".slopdetect.yml")
	doc := `format: json
min-words: 50
ignore:
  - "vendor/**"
contrast:
  disable-tagging: true
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "json" {
		t.Errorf("format: got %q", cfg.Format)
	}
	if cfg.MinWords != 50 {
		t.Errorf("min-words: got %d", cfg.MinWords)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "vendor/**" {
		t.Errorf("ignore: got %v", cfg.Ignore)
	}
	if !cfg.Contrast.DisableTagging {
		t.Error("contrast.disable-tagging not set")
	}
}

func TestLoad_BadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".slopdetect.yml")
	if err := os.WriteFile(path, []byte("format: xml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Format != "text" {
		t.Errorf("format: got %q", cfg.Format)
	}
	if !cfg.StripFrontMatter() {
		t.Error("front matter stripping should default on")
	}
}

func TestStripFrontMatter_Override(t *testing.T) {
	off := false
	cfg := &Config{FrontMatter: &off}
	if cfg.StripFrontMatter() {
		t.Error("explicit false should disable stripping")
	}
}

func TestDiscover_FindsFile(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(root, configFileName)
	if err := os.WriteFile(cfgPath, []byte("format: text\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Discover(sub)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfgPath {
		t.Errorf("got %q, want %q", got, cfgPath)
	}
}

func TestDiscover_StopsAtGitRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "docs")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	// Config above the git root must not be found.
	got, err := Discover(sub)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("got %q, want none", got)
	}
}
