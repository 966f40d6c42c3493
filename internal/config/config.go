// Package config loads the optional .slopdetect.yml configuration file
// that tunes the CLI front end. The scoring core itself takes no
// configuration beyond its asset snapshot.
package config

import "fmt"

// Config is the top-level configuration.
type Config struct {
	// Ignore lists glob patterns for files to skip when walking paths.
	Ignore []string `yaml:"ignore"`
	// Format selects the default output format: text or json.
	Format string `yaml:"format"`
	// MinWords skips files with fewer words than this. Scores on tiny
	// inputs are noise, so the service layer gates them here.
	MinWords int `yaml:"min-words"`
	// Assets points at an external asset file replacing the embedded
	// lexicons and benchmark ranges.
	Assets string `yaml:"assets"`
	// FrontMatter controls YAML front matter stripping (default on).
	FrontMatter *bool `yaml:"front-matter"`
	// Contrast tunes the contrast detector.
	Contrast ContrastCfg `yaml:"contrast"`
}

// ContrastCfg tunes contrast detection. Disabling Stage 2 is a valid
// configuration: surface patterns still run and the contrast metric
// stays meaningful.
type ContrastCfg struct {
	// DisableTagging turns off the part-of-speech (Stage 2) pass.
	DisableTagging bool `yaml:"disable-tagging"`
	// ContinueOnError reports a broken tagger as an unavailable
	// contrast metric instead of failing the run.
	ContinueOnError bool `yaml:"continue-on-error"`
}

// StripFrontMatter reports whether front matter stripping is enabled.
func (c *Config) StripFrontMatter() bool {
	if c.FrontMatter == nil {
		return true
	}
	return *c.FrontMatter
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown format %q (supported: text, json)", c.Format)
	}
	if c.MinWords < 0 {
		return fmt.Errorf("min-words must not be negative")
	}
	return nil
}

// Defaults returns the configuration used when no file is found.
func Defaults() *Config {
	return &Config{
		Format:   "text",
		MinWords: 0,
	}
}
