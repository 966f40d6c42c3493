package score

import "github.com/CyranoB/slop-detector/internal/contrast"

// Value is a computed sub-metric rate that may be unavailable. An
// unavailable contrast rate means pattern detection was broken for this
// call, which is distinct from a genuine zero.
type Value struct {
	Number    float64
	Available bool
}

// AvailableValue constructs an available rate.
func AvailableValue(n float64) Value {
	return Value{Number: n, Available: true}
}

// UnavailableValue constructs an unavailable rate.
func UnavailableValue() Value {
	return Value{}
}

// Metrics holds the raw per-1000 rates behind a score.
type Metrics struct {
	WordsPer1K    float64
	TrigramsPer1K float64
	ContrastPer1K Value
}

// Details carries the evidence behind each sub-score.
type Details struct {
	WordHits    []string
	TrigramHits []string
	Contrast    []contrast.Match
}

// Result is one scoring outcome. It is created fresh per call and never
// mutated after return.
type Result struct {
	SlopScore float64
	WordCount int
	CharCount int
	Metrics   Metrics
	Details   Details
}
