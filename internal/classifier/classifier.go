// Package classifier maps a correction triple (original text, corrected
// text, optional description) to the best-matching catalog rule with a
// confidence score. Classification is a total function: "no match" is a
// first-class result, never an error.
package classifier

import "strings"

// Result is the output of classifying a correction pair.
// An empty RuleID means no rule matched.
type Result struct {
	RuleID     string  `json:"ruleId"`
	Confidence float64 `json:"confidence"` // 0.0–1.0
	Evidence   string  `json:"evidence"`   // which pattern or keyword matched
}

// Input holds the normalized context detectors work on.
type Input struct {
	Original    string
	Corrected   string
	Description string
	OrigTokens  []string
	CorrTokens  []string
}

// Detector is a rule-based detector for one grammar phenomenon.
// Detect returns a zero Result if the phenomenon doesn't apply.
type Detector interface {
	Name() string
	// Priority breaks confidence ties: lower wins. Each detector carries
	// an explicit rank so tie-breaking does not depend on registration order.
	Priority() int
	Detect(in Input) Result
}

// DefaultDetectors returns the detector battery in priority order.
func DefaultDetectors() []Detector {
	return []Detector{
		&ContractionDetector{},
		&ArticleDetector{},
		&ConjugationDetector{},
		&AgreementDetector{},
		&PrepositionDetector{},
		&NegationDetector{},
		&PartitiveDetector{},
		&PronounDetector{},
	}
}

// Classify runs the detector battery over a correction pair and keeps the
// single highest-confidence result. Equal confidence is resolved by
// detector priority. Empty original or corrected text short-circuits to a
// zero Result without invoking any detector.
func Classify(original, corrected, description string) Result {
	original = normalize(original)
	corrected = normalize(corrected)
	if original == "" || corrected == "" {
		return Result{}
	}

	in := Input{
		Original:    original,
		Corrected:   corrected,
		Description: strings.ToLower(strings.TrimSpace(description)),
		OrigTokens:  Tokenize(original),
		CorrTokens:  Tokenize(corrected),
	}

	var best Result
	bestPriority := 0
	for _, d := range DefaultDetectors() {
		r := d.Detect(in)
		if r.RuleID == "" {
			continue
		}
		if r.Confidence > best.Confidence ||
			(r.Confidence == best.Confidence && d.Priority() < bestPriority) {
			best = r
			bestPriority = d.Priority()
		}
	}
	return best
}

// normalize lower-cases, trims, and unifies typographic apostrophes.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "’", "'")
}

// Tokenize splits normalized text into tokens. Elided forms like "j'y" or
// "n'aime" split after the apostrophe so pronouns and negation particles
// surface as their own tokens. Edge punctuation is stripped.
func Tokenize(s string) []string {
	fields := strings.Fields(s)
	var tokens []string
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:«»()\"")
		if f == "" {
			continue
		}
		for {
			i := strings.Index(f, "'")
			if i < 0 || i == len(f)-1 {
				break
			}
			tokens = append(tokens, f[:i+1])
			f = f[i+1:]
		}
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// diff returns the tokens removed from orig and added in corr, as multisets.
func diff(orig, corr []string) (removed, added []string) {
	origCount := make(map[string]int, len(orig))
	for _, t := range orig {
		origCount[t]++
	}
	corrCount := make(map[string]int, len(corr))
	for _, t := range corr {
		corrCount[t]++
	}
	for _, t := range orig {
		if corrCount[t] > 0 {
			corrCount[t]--
		} else {
			removed = append(removed, t)
		}
	}
	for _, t := range corr {
		if origCount[t] > 0 {
			origCount[t]--
		} else {
			added = append(added, t)
		}
	}
	return removed, added
}

// hasBigram reports whether tokens contains the pair (a, b) adjacently.
func hasBigram(tokens []string, a, b string) bool {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i] == a && tokens[i+1] == b {
			return true
		}
	}
	return false
}

func contains(tokens []string, t string) bool {
	for _, tok := range tokens {
		if tok == t {
			return true
		}
	}
	return false
}

// keywordResult builds a description-only result. Description evidence is
// weaker than structural evidence and only consulted when the structural
// channel found nothing.
func keywordResult(description, ruleID string, confidence float64, keywords ...string) Result {
	for _, kw := range keywords {
		if strings.Contains(description, kw) {
			return Result{
				RuleID:     ruleID,
				Confidence: confidence,
				Evidence:   "description keyword: " + kw,
			}
		}
	}
	return Result{}
}
