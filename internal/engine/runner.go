// Package engine drives the scoring pipeline over files: it reads each
// file, strips markup, applies the configured gates, scores the plain
// text, and collects per-file reports.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"github.com/CyranoB/slop-detector/internal/config"
	"github.com/CyranoB/slop-detector/internal/log"
	"github.com/CyranoB/slop-detector/internal/score"
	"github.com/CyranoB/slop-detector/internal/strip"
)

// Runner scores a set of files with one shared Scorer.
type Runner struct {
	Config *config.Config
	Scorer *score.Scorer
	Log    *log.Logger
}

// Report is the outcome for a single file. Skipped reports carry no
// result: the file fell under the min-words gate.
type Report struct {
	File    string
	Result  *score.Result
	Skipped bool
}

// Result holds the output of a run.
type Result struct {
	Reports []Report
	Errors  []error
}

// Run scores the files at the given paths and returns all reports sorted
// by file name plus any per-file errors encountered.
func (r *Runner) Run(paths []string) *Result {
	res := &Result{}

	for _, path := range paths {
		if r.isIgnored(path) {
			r.Log.Printf("engine: ignoring %s", path)
			continue
		}

		source, err := os.ReadFile(path)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("reading %q: %w", path, err))
			continue
		}

		report, err := r.scoreSource(path, source)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("scoring %q: %w", path, err))
			continue
		}
		res.Reports = append(res.Reports, report)
	}

	sort.Slice(res.Reports, func(i, j int) bool {
		return res.Reports[i].File < res.Reports[j].File
	})
	return res
}

// ScoreText scores already-plain text under the same gates as Run.
func (r *Runner) ScoreText(name, text string) (Report, error) {
	return r.scoreSource(name, []byte(text))
}

func (r *Runner) scoreSource(name string, source []byte) (Report, error) {
	if r.Config.StripFrontMatter() {
		_, source = strip.FrontMatter(source)
	}
	plain := strip.Markdown(source)

	result, err := r.Scorer.Score(plain)
	if err != nil {
		return Report{}, err
	}
	if result.WordCount < r.Config.MinWords {
		r.Log.Printf("engine: %s below min-words (%d < %d)", name, result.WordCount, r.Config.MinWords)
		return Report{File: name, Skipped: true}, nil
	}
	return Report{File: name, Result: result}, nil
}

// isIgnored returns true if the file path matches any of the configured
// ignore patterns.
func (r *Runner) isIgnored(path string) bool {
	cleanPath := filepath.Clean(path)

	for _, pattern := range r.Config.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}
