package output

import (
	"fmt"
	"io"

	"github.com/CyranoB/slop-detector/internal/engine"
)

// TextFormatter renders reports in human-readable text. When Color is
// true, file names print in cyan and scores in yellow. With Verbose set,
// each report also lists the lexicon hits and contrast evidence.
type TextFormatter struct {
	Color   bool
	Verbose bool
}

// Format writes one line per file in the pattern:
// file score (words w/1k, trigrams t/1k, contrast c/1k)
func (f *TextFormatter) Format(w io.Writer, reports []engine.Report) error {
	for _, rep := range reports {
		if rep.Skipped {
			if _, err := fmt.Fprintf(w, "%s skipped (below min-words)\n", rep.File); err != nil {
				return err
			}
			continue
		}

		m := rep.Result.Metrics
		contrastRate := "n/a"
		if m.ContrastPer1K.Available {
			contrastRate = fmt.Sprintf("%.1f", m.ContrastPer1K.Number)
		}

		var err error
		if f.Color {
			_, err = fmt.Fprintf(w, "\033[36m%s\033[0m \033[33m%.1f\033[0m (words %.1f/1k, trigrams %.1f/1k, contrast %s/1k)\n",
				rep.File, rep.Result.SlopScore, m.WordsPer1K, m.TrigramsPer1K, contrastRate)
		} else {
			_, err = fmt.Fprintf(w, "%s %.1f (words %.1f/1k, trigrams %.1f/1k, contrast %s/1k)\n",
				rep.File, rep.Result.SlopScore, m.WordsPer1K, m.TrigramsPer1K, contrastRate)
		}
		if err != nil {
			return err
		}

		if !f.Verbose {
			continue
		}
		if err := f.formatDetails(w, rep); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatDetails(w io.Writer, rep engine.Report) error {
	d := rep.Result.Details
	if len(d.WordHits) > 0 {
		if _, err := fmt.Fprintf(w, "  words: %v\n", d.WordHits); err != nil {
			return err
		}
	}
	if len(d.TrigramHits) > 0 {
		if _, err := fmt.Fprintf(w, "  trigrams: %v\n", d.TrigramHits); err != nil {
			return err
		}
	}
	for _, m := range d.Contrast {
		if _, err := fmt.Fprintf(w, "  contrast [%s]: %q\n", m.Pattern, m.Text); err != nil {
			return err
		}
	}
	return nil
}
