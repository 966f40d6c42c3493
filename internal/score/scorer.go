// Package score combines the lexicon and contrast sub-scores into the
// composite 0-100 slop score, normalized against calibrated benchmark
// ranges.
package score

import (
	"errors"
	"fmt"
	"math"

	"github.com/CyranoB/slop-detector/internal/assets"
	"github.com/CyranoB/slop-detector/internal/contrast"
	"github.com/CyranoB/slop-detector/internal/lexicon"
	"github.com/CyranoB/slop-detector/internal/log"
	"github.com/CyranoB/slop-detector/internal/postag"
	"github.com/CyranoB/slop-detector/internal/textnorm"
)

// Composite weights. They sum to 1.0 exactly; changing them changes
// every score, so they are pinned here rather than configurable.
const (
	weightWords    = 0.60
	weightContrast = 0.25
	weightTrigrams = 0.15
)

// Errors surfaced to callers. Per-candidate anomalies inside the
// detector are absorbed locally and never reach this level.
var (
	// ErrTaggingUnavailable reports that the part-of-speech adapter
	// could not process the input.
	ErrTaggingUnavailable = errors.New("pos tagging unavailable")
	// ErrAssetsUnavailable reports that no lexicon/benchmark snapshot
	// is available; scoring cannot proceed until assets load.
	ErrAssetsUnavailable = errors.New("scoring assets unavailable")
)

// Scorer runs the full pipeline against one immutable asset snapshot.
// It is safe for concurrent use.
type Scorer struct {
	// ContinueOnTaggerFailure degrades a tagger fault into an
	// unavailable contrast metric instead of failing the call. The
	// contrast term then contributes zero to the composite.
	ContinueOnTaggerFailure bool

	assets   *assets.Assets
	detector *contrast.Detector
	log      *log.Logger
}

// NewScorer builds a scorer. A nil tagger disables structural (Stage 2)
// contrast detection, which is a valid configuration.
func NewScorer(a *assets.Assets, tagger postag.Tagger, logger *log.Logger) *Scorer {
	return &Scorer{
		assets:   a,
		detector: contrast.NewDetector(tagger, logger),
		log:      logger,
	}
}

// ComputeScore scores text with the given assets and the production
// tagger. It is the package-level convenience entry point.
func ComputeScore(text string, a *assets.Assets) (*Result, error) {
	return NewScorer(a, postag.ProseTagger{}, nil).Score(text)
}

// Score runs the pipeline: normalize, lexicon sub-scores, contrast
// detection, benchmark normalization, weighted composite. It never fails
// for well-formed string input except for unavailable assets or a
// tagging fault.
func (s *Scorer) Score(text string) (*Result, error) {
	if s.assets == nil {
		return nil, ErrAssetsUnavailable
	}

	nt := textnorm.Normalize(text)

	wordRate, wordHits := lexicon.WordRate(nt.Tokens, s.assets.Words)
	trigramRate, trigramHits := lexicon.TrigramRate(nt.Tokens, s.assets.Trigrams)

	contrastVal := UnavailableValue()
	matches, err := s.detector.Detect(nt)
	if err != nil {
		if !s.ContinueOnTaggerFailure {
			return nil, fmt.Errorf("%w: %v", ErrTaggingUnavailable, err)
		}
		s.log.Printf("score: continuing without contrast detection: %v", err)
		matches = nil
	} else {
		denom := nt.WordCount
		if denom < 1 {
			denom = 1
		}
		contrastVal = AvailableValue(float64(len(matches)) / float64(denom) * 1000.0)
	}

	normWords := normalizeRate(wordRate, s.assets.Ranges[assets.MetricWords])
	normTrigrams := normalizeRate(trigramRate, s.assets.Ranges[assets.MetricTrigrams])
	normContrast := 0.0
	if contrastVal.Available {
		normContrast = normalizeRate(contrastVal.Number, s.assets.Ranges[assets.MetricContrast])
	}

	composite := weightWords*normWords + weightContrast*normContrast + weightTrigrams*normTrigrams

	return &Result{
		SlopScore: round1(composite * 100),
		WordCount: nt.WordCount,
		CharCount: nt.CharCount,
		Metrics: Metrics{
			WordsPer1K:    wordRate,
			TrigramsPer1K: trigramRate,
			ContrastPer1K: contrastVal,
		},
		Details: Details{
			WordHits:    wordHits,
			TrigramHits: trigramHits,
			Contrast:    matches,
		},
	}, nil
}

// normalizeRate maps a raw rate into [0,1] against a calibrated range.
// A zero-span range normalizes everything to 0.
func normalizeRate(rate float64, r assets.Range) float64 {
	span := r.Max - r.Min
	if span == 0 {
		return 0
	}
	return clamp((rate-r.Min)/span, 0, 1)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// round1 rounds to one decimal, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
