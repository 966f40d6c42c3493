package score

import (
	"errors"
	"reflect"
	"testing"

	"github.com/CyranoB/slop-detector/internal/assets"
	"github.com/CyranoB/slop-detector/internal/postag"
)

func shippedAssets(t *testing.T) *assets.Assets {
	t.Helper()
	a, err := assets.Default()
	if err != nil {
		t.Fatal(err)
	}
	return a
}

// failTagger always fails, standing in for a broken POS adapter.
type failTagger struct{}

func (failTagger) TagSentence(string) ([]postag.TaggedToken, error) {
	return nil, errors.New("tagger crashed")
}

func TestWeightsSumToOne(t *testing.T) {
	if sum := weightWords + weightContrast + weightTrigrams; sum != 1.0 {
		t.Errorf("weights sum to %v, want 1.0", sum)
	}
}

func TestRound1(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{12.34, 12.3},
		{12.35, 12.4}, // half away from zero
		{12.36, 12.4},
		{99.95, 100},
		{-0.05, -0.1},
	}
	for _, c := range cases {
		if got := round1(c.in); got != c.want {
			t.Errorf("round1(%v): got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeRate(t *testing.T) {
	r := assets.Range{Min: -20, Max: 60}
	cases := []struct{ rate, want float64 }{
		{-20, 0},
		{60, 1},
		{20, 0.5},
		{-100, 0}, // clamped
		{500, 1},  // clamped
	}
	for _, c := range cases {
		if got := normalizeRate(c.rate, r); got != c.want {
			t.Errorf("normalizeRate(%v): got %v, want %v", c.rate, got, c.want)
		}
	}
}

func TestNormalizeRate_ZeroSpan(t *testing.T) {
	if got := normalizeRate(5, assets.Range{Min: 3, Max: 3}); got != 0 {
		t.Errorf("got %v, want 0 for a zero-span range", got)
	}
}

func TestScore_NilAssets(t *testing.T) {
	s := NewScorer(nil, nil, nil)
	if _, err := s.Score("some text"); !errors.Is(err, ErrAssetsUnavailable) {
		t.Errorf("got err %v, want ErrAssetsUnavailable", err)
	}
}

func TestScore_EmptyText(t *testing.T) {
	s := NewScorer(shippedAssets(t), nil, nil)
	res, err := s.Score("")
	if err != nil {
		t.Fatal(err)
	}
	if res.WordCount != 0 || res.CharCount != 0 {
		t.Errorf("counts: got %d words, %d chars", res.WordCount, res.CharCount)
	}
	if res.Metrics.WordsPer1K != 0 || res.Metrics.TrigramsPer1K != 0 {
		t.Errorf("rates: got %+v, want zeros", res.Metrics)
	}
	if !res.Metrics.ContrastPer1K.Available {
		t.Error("contrast metric should be available (a genuine zero)")
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := NewScorer(shippedAssets(t), nil, nil)
	text := "We delve into a vibrant tapestry. It is not just a report but a story."
	r1, err := s.Score(text)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := s.Score(text)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("results differ:\n%+v\n%+v", r1, r2)
	}
}

func TestScore_TaggerFailureSurfaces(t *testing.T) {
	s := NewScorer(shippedAssets(t), failTagger{}, nil)
	_, err := s.Score("One sentence. Another one.")
	if !errors.Is(err, ErrTaggingUnavailable) {
		t.Errorf("got err %v, want ErrTaggingUnavailable", err)
	}
}

func TestScore_TaggerFailureDegrades(t *testing.T) {
	s := NewScorer(shippedAssets(t), failTagger{}, nil)
	s.ContinueOnTaggerFailure = true
	res, err := s.Score("It is not just a tool but a habit.")
	if err != nil {
		t.Fatal(err)
	}
	if res.Metrics.ContrastPer1K.Available {
		t.Error("contrast metric should be unavailable after a tagger fault")
	}
	if len(res.Details.Contrast) != 0 {
		t.Errorf("contrast details: got %v, want none", res.Details.Contrast)
	}
}

// The four calibration scenarios below pin the shipped benchmark ranges.
// They run without a tagger: every construction they rely on is caught by
// the surface stage.

const businessReport = "The finance team closed the quarter with revenue slightly ahead " +
	"of the plan we shared in April. Most of the increase came from renewals in the " +
	"mid-market segment, while new business stayed flat. Operating costs rose by three " +
	"percent, driven mainly by travel and contractor fees. We expect those costs to " +
	"level off once the two open analyst roles are filled. Hiring remains slow because " +
	"the local market for experienced accountants is tight. The warehouse upgrade " +
	"finished two weeks late, but the delay did not affect shipping volumes. Customer " +
	"support handled roughly nine hundred tickets this month, about the same as last " +
	"month. Average response time improved from six hours to four after we changed the " +
	"rota. The sales group added twelve new accounts, including two regional grocery " +
	"chains. Churn stayed under two percent for the third month in a row. Marketing " +
	"spent less than budgeted because the autumn campaign slipped to October. Early " +
	"signups from the webinar series look steady rather than spectacular. The product " +
	"group shipped the invoicing update and fixed the export defect reported in June. " +
	"Two smaller releases are planned before the end of the quarter. Legal finished " +
	"the review of the new supplier contracts without major changes. The board asked " +
	"for a deeper breakdown of logistics costs, which we will prepare next week. Cash " +
	"on hand covers about seven months of spending at the current pace. We renewed the " +
	"office lease on similar terms through the end of next year. The audit preparation " +
	"started on schedule and the external firm arrives in November. Staff turnover " +
	"stayed low, with one departure in engineering and none elsewhere. Procurement " +
	"signed two framework agreements with regional carriers to keep freight rates " +
	"predictable into the spring. Overall the company remains on the path we described " +
	"at the start of the year, and no changes to guidance are needed this quarter."

func TestScore_CleanBusinessReport(t *testing.T) {
	s := NewScorer(shippedAssets(t), nil, nil)
	res, err := s.Score(businessReport)
	if err != nil {
		t.Fatal(err)
	}
	if res.WordCount < 300 {
		t.Fatalf("fixture too short: %d words", res.WordCount)
	}
	if len(res.Details.WordHits) != 0 || len(res.Details.TrigramHits) != 0 {
		t.Fatalf("fixture hits lexicon: %v %v", res.Details.WordHits, res.Details.TrigramHits)
	}
	if res.SlopScore < 0 || res.SlopScore > 20 {
		t.Errorf("score %v outside [0, 20]", res.SlopScore)
	}
}

func TestScore_SlopVocabularyAndContrast(t *testing.T) {
	s := NewScorer(shippedAssets(t), nil, nil)
	text := "In this report we delve into the vibrant tapestry of the modern " +
		"workplace, where a new paradigm of synergy shapes every decision. Our " +
		"platform is not just a tool, but a partner in daily work. The results are " +
		"not only encouraging but genuinely exciting for the whole team. Together " +
		"these findings underscore a transformative shift in how distributed teams " +
		"collaborate."
	res, err := s.Score(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Details.WordHits) < 5 {
		t.Errorf("word hits: got %v, want at least 5", res.Details.WordHits)
	}
	if len(res.Details.Contrast) != 2 {
		t.Errorf("contrast matches: got %d, want 2", len(res.Details.Contrast))
	}
	if res.SlopScore < 50 || res.SlopScore > 100 {
		t.Errorf("score %v outside [50, 100]", res.SlopScore)
	}
}

func TestScore_ContrastOnlySentences(t *testing.T) {
	s := NewScorer(shippedAssets(t), nil, nil)
	text := "It is not just a tool but a habit. She was not only early but " +
		"prepared. This is not merely noise but signal. They are not simply " +
		"guessing but measuring."
	res, err := s.Score(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Details.WordHits) != 0 {
		t.Errorf("word hits: got %v, want none", res.Details.WordHits)
	}
	if len(res.Details.Contrast) != 4 {
		t.Fatalf("contrast matches: got %d, want 4", len(res.Details.Contrast))
	}
	if res.SlopScore < 15 || res.SlopScore > 80 {
		t.Errorf("score %v outside [15, 80]", res.SlopScore)
	}
}

func TestScore_CanonicalTrigrams(t *testing.T) {
	s := NewScorer(shippedAssets(t), nil, nil)
	text := "It is important to note that the rollout starts in March. In order " +
		"to finish on time, we must plan ahead. It is worth mentioning that " +
		"budgets vary by region."
	res, err := s.Score(text)
	if err != nil {
		t.Fatal(err)
	}
	hits := map[string]bool{}
	for _, h := range res.Details.TrigramHits {
		hits[h] = true
	}
	for _, want := range []string{"important to note", "in order to", "worth mentioning that"} {
		if !hits[want] {
			t.Errorf("trigram %q not hit; hits: %v", want, res.Details.TrigramHits)
		}
	}
	if res.Metrics.TrigramsPer1K <= 0 {
		t.Error("trigram rate should be positive")
	}
	if res.SlopScore < 30 || res.SlopScore > 60 {
		t.Errorf("score %v outside [30, 60]", res.SlopScore)
	}
}

func TestScore_ConcurrentCalls(t *testing.T) {
	s := NewScorer(shippedAssets(t), nil, nil)
	text := "We delve into a vibrant tapestry. It is not just a report but a story."
	base, err := s.Score(text)
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan *Result, 8)
	for i := 0; i < 8; i++ {
		go func() {
			res, err := s.Score(text)
			if err != nil {
				t.Error(err)
				done <- nil
				return
			}
			done <- res
		}()
	}
	for i := 0; i < 8; i++ {
		res := <-done
		if res == nil {
			continue
		}
		if !reflect.DeepEqual(res, base) {
			t.Errorf("concurrent result differs: %+v", res)
		}
	}
}
