// Package assets provides the lexicon and benchmark data the scoring
// pipeline depends on: the overused word set, the overused trigram set,
// and the benchmark normalization ranges. The default set is loaded once
// from embedded data and is immutable afterwards.
package assets

import "sync"

// Metric names keying Assets.Ranges.
const (
	MetricWords    = "words_per_1k"
	MetricTrigrams = "trigrams_per_1k"
	MetricContrast = "contrast_per_1k"
)

// Range is a calibrated benchmark normalization range. Raw rates are
// mapped linearly into [0,1] against it. Min may sit below zero: the
// calibration pads the observed span so real-world inputs do not pin
// sub-scores to the scale ends.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Assets is one immutable lexicon/benchmark snapshot. After construction
// it must not be mutated; concurrent readers need no synchronization.
type Assets struct {
	Words    map[string]struct{}
	Trigrams map[string]struct{}
	Ranges   map[string]Range
}

var (
	defaultMu     sync.Mutex
	defaultAssets *Assets
	defaultErr    error
	defaultLoaded bool
)

// Default returns the process-wide asset snapshot, loading the embedded
// data on first use. Concurrent first calls perform exactly one load.
func Default() (*Assets, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if !defaultLoaded {
		defaultAssets, defaultErr = loadEmbedded()
		defaultLoaded = true
	}
	return defaultAssets, defaultErr
}

// SetDefault replaces the process-wide snapshot. Tests use it to inject a
// fixture; passing nil forces the next Default call to reload the
// embedded data.
func SetDefault(a *Assets) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultAssets = a
	defaultErr = nil
	defaultLoaded = a != nil
}
