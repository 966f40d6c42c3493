package contrast

import "regexp"

// Pattern is a named, compiled contrast rule. Pattern tables are ordered
// slices so diagnostic output is stable; iteration order does not affect
// scores since candidates are sorted before merging.
type Pattern struct {
	Name string
	Re   *regexp.Regexp
}

// surfacePatterns run directly against the normalized text (Stage 1).
// They catch exact phrasings of the rhetorical "not X, but Y" contrast.
// The [^.!?;] gaps keep a match inside one clause run.
var surfacePatterns = []Pattern{
	{
		Name: "not-just-but",
		Re:   regexp.MustCompile(`(?i)\bnot\s+(?:just|only|merely|simply)\s+[^.!?;]{0,80}?\bbut\b`),
	},
	{
		// Contracted copulas only: the uncontracted "is not just ... but"
		// spellings already match not-just-but, and listing them here too
		// would make this pattern seed the merge and win the name.
		Name: "isnt-just",
		Re:   regexp.MustCompile(`(?i)\b(?:isn't|aren't|wasn't|weren't)\s+(?:just|only|merely|simply)\s+[^.!?;]{0,80}?\b(?:but|it's|it\s+is)\b`),
	},
	{
		Name: "not-about",
		Re:   regexp.MustCompile(`(?i)\b(?:it's|it\s+is|this\s+is)\s+not\s+(?:just\s+)?about\s+[^.!?;]{0,80}?\b(?:it's|it\s+is|but)\b`),
	},
	{
		Name: "more-than-just",
		Re:   regexp.MustCompile(`(?i)\bmore\s+than\s+(?:just|merely|simply)\s+(?:a|an|the)\b`),
	},
	{
		Name: "less-about-more-about",
		Re:   regexp.MustCompile(`(?i)\bless\s+about\s+[^.!?;]{0,60}?\bmore\s+about\b`),
	},
}

// streamPatterns run against the POS-placeholder stream (Stage 2). The
// stream lowercases literal tokens and substitutes uppercase VERB, NOUN,
// ADJ and ADV placeholders, so these are case sensitive and catch
// structural variants regardless of the specific word used.
var streamPatterns = []Pattern{
	{
		Name: "not-just-verb-but-verb",
		Re:   regexp.MustCompile(`\bnot\s+(?:just|only|merely|simply)\s+VERB\b[^.!?;]{0,100}?\b(?:but|it|this|they)\b[^.!?;]{0,50}?\bVERB\b`),
	},
	{
		Name: "not-adj-but-adj",
		Re:   regexp.MustCompile(`\bnot\s+(?:ADV\s+)?(?:a\s+|an\s+|the\s+)?ADJ\b[^.!?;]{0,80}?\bbut\s+(?:ADV\s+)?(?:a\s+|an\s+|the\s+)?ADJ\b`),
	},
	{
		Name: "not-noun-but-noun",
		Re:   regexp.MustCompile(`\bnot\s+(?:a|an|the)\s+NOUN\b[^.!?;]{0,40}?\bbut\s+(?:a|an|the)\s+NOUN\b`),
	},
	{
		Name: "no-longer-verb-now-verb",
		Re:   regexp.MustCompile(`\bno\s+longer\s+VERB\b[^.!?;]{0,80}?\b(?:now|instead)\b[^.!?;]{0,30}?\bVERB\b`),
	},
}
