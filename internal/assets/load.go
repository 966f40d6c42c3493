package assets

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/words.yml data/trigrams.yml data/benchmarks.yml
var dataFS embed.FS

// assetDoc is the YAML shape shared by the embedded files and external
// asset files. An external file may carry any subset of the keys.
type assetDoc struct {
	Words    []string         `yaml:"words"`
	Trigrams []string         `yaml:"trigrams"`
	Ranges   map[string]Range `yaml:"ranges"`
}

func loadEmbedded() (*Assets, error) {
	merged := &Assets{
		Words:    map[string]struct{}{},
		Trigrams: map[string]struct{}{},
		Ranges:   map[string]Range{},
	}
	for _, name := range []string{
		"data/words.yml",
		"data/trigrams.yml",
		"data/benchmarks.yml",
	} {
		data, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading embedded %s: %w", name, err)
		}
		if err := mergeDoc(merged, data); err != nil {
			return nil, fmt.Errorf("parsing embedded %s: %w", name, err)
		}
	}
	return merged, validate(merged)
}

// LoadFile reads a complete asset snapshot from a single YAML file with
// words, trigrams and ranges keys. The result replaces (not extends) the
// embedded defaults.
func LoadFile(path string) (*Assets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading asset file: %w", err)
	}
	a := &Assets{
		Words:    map[string]struct{}{},
		Trigrams: map[string]struct{}{},
		Ranges:   map[string]Range{},
	}
	if err := mergeDoc(a, data); err != nil {
		return nil, fmt.Errorf("parsing asset file %q: %w", path, err)
	}
	return a, validate(a)
}

func mergeDoc(a *Assets, data []byte) error {
	var doc assetDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	for _, w := range doc.Words {
		a.Words[w] = struct{}{}
	}
	for _, g := range doc.Trigrams {
		a.Trigrams[g] = struct{}{}
	}
	for name, r := range doc.Ranges {
		a.Ranges[name] = r
	}
	return nil
}

func validate(a *Assets) error {
	for _, metric := range []string{MetricWords, MetricTrigrams, MetricContrast} {
		if _, ok := a.Ranges[metric]; !ok {
			return fmt.Errorf("missing benchmark range %q", metric)
		}
	}
	if len(a.Words) == 0 {
		return fmt.Errorf("empty word lexicon")
	}
	if len(a.Trigrams) == 0 {
		return fmt.Errorf("empty trigram lexicon")
	}
	return nil
}
