package output

import (
	"encoding/json"
	"io"

	"github.com/CyranoB/slop-detector/internal/engine"
)

// JSONFormatter outputs reports as a JSON array.
type JSONFormatter struct{}

type jsonReport struct {
	File      string       `json:"file"`
	Skipped   bool         `json:"skipped,omitempty"`
	SlopScore float64      `json:"slopScore"`
	WordCount int          `json:"wordCount"`
	CharCount int          `json:"charCount"`
	Metrics   *jsonMetrics `json:"metrics,omitempty"`
	Details   *jsonDetails `json:"details,omitempty"`
}

type jsonMetrics struct {
	WordRatePer1K     float64  `json:"wordRatePer1k"`
	TrigramRatePer1K  float64  `json:"trigramRatePer1k"`
	ContrastRatePer1K *float64 `json:"contrastRatePer1k"` // null when unavailable
}

type jsonDetails struct {
	WordHits        []string       `json:"wordHits"`
	TrigramHits     []string       `json:"trigramHits"`
	ContrastMatches []jsonContrast `json:"contrastMatches"`
}

type jsonContrast struct {
	Pattern   string `json:"pattern"`
	Matched   string `json:"matched"`
	Text      string `json:"text"`
	Sentences int    `json:"sentences"`
}

// Format writes reports as a pretty-printed JSON array. An empty slice
// of reports produces [].
func (f *JSONFormatter) Format(w io.Writer, reports []engine.Report) error {
	items := make([]jsonReport, 0, len(reports))
	for _, rep := range reports {
		item := jsonReport{File: rep.File, Skipped: rep.Skipped}
		if rep.Result != nil {
			res := rep.Result
			item.SlopScore = res.SlopScore
			item.WordCount = res.WordCount
			item.CharCount = res.CharCount

			metrics := &jsonMetrics{
				WordRatePer1K:    res.Metrics.WordsPer1K,
				TrigramRatePer1K: res.Metrics.TrigramsPer1K,
			}
			if res.Metrics.ContrastPer1K.Available {
				rate := res.Metrics.ContrastPer1K.Number
				metrics.ContrastRatePer1K = &rate
			}
			item.Metrics = metrics

			details := &jsonDetails{
				WordHits:        append([]string{}, res.Details.WordHits...),
				TrigramHits:     append([]string{}, res.Details.TrigramHits...),
				ContrastMatches: []jsonContrast{},
			}
			for _, m := range res.Details.Contrast {
				details.ContrastMatches = append(details.ContrastMatches, jsonContrast{
					Pattern:   m.Pattern,
					Matched:   m.Matched,
					Text:      m.Text,
					Sentences: m.Sentences,
				})
			}
			item.Details = details
		}
		items = append(items, item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
