package classifier

import (
	"fmt"
	"strings"
)

// contractionPatterns maps an uncontracted bigram in the original to the
// fused form expected in the correction.
var contractionPatterns = []struct {
	first, second string
	fused         string
	ruleID        string
}{
	{"à", "le", "au", "contraction-au"},
	{"à", "les", "aux", "contraction-aux"},
	{"de", "le", "du", "contraction-du"},
	{"de", "les", "des", "contraction-des"},
}

// ContractionDetector matches uncontracted preposition+article bigrams
// that the correction fuses ("à le" → "au").
type ContractionDetector struct{}

func (d *ContractionDetector) Name() string  { return "contraction" }
func (d *ContractionDetector) Priority() int { return 1 }

func (d *ContractionDetector) Detect(in Input) Result {
	for _, p := range contractionPatterns {
		if hasBigram(in.OrigTokens, p.first, p.second) && contains(in.CorrTokens, p.fused) &&
			!hasBigram(in.CorrTokens, p.first, p.second) {
			return Result{
				RuleID:     p.ruleID,
				Confidence: 0.95,
				Evidence:   fmt.Sprintf("structural: %q → %q", p.first+" "+p.second, p.fused),
			}
		}
	}
	return keywordResult(in.Description, "contraction-au", 0.6, "contraction", "contracted")
}

// ArticleDetector matches definite or indefinite article swaps (le↔la,
// un↔une), the classic gender mistakes.
type ArticleDetector struct{}

func (d *ArticleDetector) Name() string  { return "article" }
func (d *ArticleDetector) Priority() int { return 2 }

var articleSwaps = []struct {
	from, to string
	ruleID   string
}{
	{"le", "la", "article-gender"},
	{"la", "le", "article-gender"},
	{"le", "l'", "article-gender"},
	{"la", "l'", "article-gender"},
	{"un", "une", "article-indefinite"},
	{"une", "un", "article-indefinite"},
}

func (d *ArticleDetector) Detect(in Input) Result {
	removed, added := diff(in.OrigTokens, in.CorrTokens)
	for _, sw := range articleSwaps {
		if contains(removed, sw.from) && contains(added, sw.to) {
			return Result{
				RuleID:     sw.ruleID,
				Confidence: 0.9,
				Evidence:   fmt.Sprintf("structural: article %q → %q", sw.from, sw.to),
			}
		}
	}
	return keywordResult(in.Description, "article-gender", 0.6,
		"gender", "genre", "masculine", "feminine", "masculin", "féminin", "article")
}

var (
	avoirPresent = []string{"ai", "as", "a", "avons", "avez", "ont"}
	etrePresent  = []string{"suis", "es", "est", "sommes", "êtes", "sont"}
	allerForms   = []string{"vais", "vas", "va", "allons", "allez", "vont"}
	// presentEndings are checked longest-first so "ons" wins over nothing.
	presentEndings = []string{"eons", "ons", "ent", "es", "ez", "e"}
)

// ConjugationDetector matches auxiliary swaps in the passé composé,
// irregular "aller" fixes, and shared-stem ending changes on -er verbs.
type ConjugationDetector struct{}

func (d *ConjugationDetector) Name() string  { return "conjugation" }
func (d *ConjugationDetector) Priority() int { return 3 }

func (d *ConjugationDetector) Detect(in Input) Result {
	removed, added := diff(in.OrigTokens, in.CorrTokens)

	// avoir → être auxiliary swap.
	for _, av := range avoirPresent {
		if !contains(removed, av) {
			continue
		}
		for _, et := range etrePresent {
			if contains(added, et) {
				return Result{
					RuleID:     "conjugation-passe-compose",
					Confidence: 0.9,
					Evidence:   fmt.Sprintf("structural: auxiliary %q → %q", av, et),
				}
			}
		}
	}

	// A correct "aller" form replacing a regularized one (alle, allent…).
	for _, form := range allerForms {
		if !contains(added, form) {
			continue
		}
		for _, r := range removed {
			if strings.HasPrefix(r, "all") && !contains(allerForms, r) {
				return Result{
					RuleID:     "conjugation-aller",
					Confidence: 0.9,
					Evidence:   fmt.Sprintf("structural: %q → %q", r, form),
				}
			}
		}
	}

	// Shared stem, corrected ending from the present -er paradigm.
	for _, r := range removed {
		for _, a := range added {
			stem := commonPrefix(r, a)
			if len(stem) < 3 || r == a {
				continue
			}
			for _, end := range presentEndings {
				if strings.HasSuffix(a, end) && len(a) > len(end) && strings.HasPrefix(a, stem) {
					return Result{
						RuleID:     "conjugation-present-er",
						Confidence: 0.85,
						Evidence:   fmt.Sprintf("structural: %q → %q (ending -%s)", r, a, end),
					}
				}
			}
		}
	}

	return keywordResult(in.Description, "conjugation-present-er", 0.65,
		"conjugat", "verb", "verbe", "tense", "temps")
}

// AgreementDetector matches adjective agreement fixes. To avoid colliding
// with verb endings, the structural channel requires a feminine article in
// the sentence for gender fixes and a plural determiner for number fixes.
type AgreementDetector struct{}

func (d *AgreementDetector) Name() string  { return "agreement" }
func (d *AgreementDetector) Priority() int { return 4 }

func (d *AgreementDetector) Detect(in Input) Result {
	removed, added := diff(in.OrigTokens, in.CorrTokens)

	hasFeminine := contains(in.CorrTokens, "la") || contains(in.CorrTokens, "une") || contains(in.CorrTokens, "elle")
	hasPlural := contains(in.CorrTokens, "les") || contains(in.CorrTokens, "des") ||
		contains(in.CorrTokens, "ces") || contains(in.CorrTokens, "ils") || contains(in.CorrTokens, "elles")

	for _, r := range removed {
		for _, a := range added {
			if hasPlural && (a == r+"s" || replacedSuffix(r, a, "al", "aux")) {
				return Result{
					RuleID:     "agreement-adjective-plural",
					Confidence: 0.9,
					Evidence:   fmt.Sprintf("structural: plural agreement %q → %q", r, a),
				}
			}
			if hasFeminine && (a == r+"e" ||
				replacedSuffix(r, a, "eux", "euse") ||
				replacedSuffix(r, a, "if", "ive") ||
				replacedSuffix(r, a, "er", "ère")) {
				return Result{
					RuleID:     "agreement-adjective-gender",
					Confidence: 0.9,
					Evidence:   fmt.Sprintf("structural: gender agreement %q → %q", r, a),
				}
			}
		}
	}

	return keywordResult(in.Description, "agreement-adjective-gender", 0.6,
		"agreement", "accord", "adjective", "adjectif")
}

// prepositionSwaps lists the known wrong→right preposition substitutions.
// à↔le fusions belong to the contraction detector, not here.
var prepositionSwaps = []struct {
	from, to string
	ruleID   string
}{
	{"de", "à", "preposition-a-vs-de"},
	{"à", "de", "preposition-a-vs-de"},
	{"de", "au", "preposition-a-vs-de"},
	{"à", "du", "preposition-a-vs-de"},
	{"en", "dans", "preposition-en-vs-dans"},
	{"dans", "en", "preposition-en-vs-dans"},
}

// PrepositionDetector matches substitutions within the closed set of
// commonly confused prepositions.
type PrepositionDetector struct{}

func (d *PrepositionDetector) Name() string  { return "preposition" }
func (d *PrepositionDetector) Priority() int { return 5 }

func (d *PrepositionDetector) Detect(in Input) Result {
	removed, added := diff(in.OrigTokens, in.CorrTokens)
	for _, sw := range prepositionSwaps {
		if contains(removed, sw.from) && contains(added, sw.to) {
			return Result{
				RuleID:     sw.ruleID,
				Confidence: 0.9,
				Evidence:   fmt.Sprintf("structural: preposition %q → %q", sw.from, sw.to),
			}
		}
	}
	return keywordResult(in.Description, "preposition-a-vs-de", 0.6, "preposition", "préposition")
}

// NegationDetector matches insertion of the missing "ne/n'" half and
// removal of a redundant "pas" next to jamais/rien/plus/personne.
type NegationDetector struct{}

func (d *NegationDetector) Name() string  { return "negation" }
func (d *NegationDetector) Priority() int { return 6 }

func (d *NegationDetector) Detect(in Input) Result {
	removed, added := diff(in.OrigTokens, in.CorrTokens)

	if contains(removed, "pas") {
		for _, alt := range []string{"jamais", "rien", "plus", "personne"} {
			if contains(in.CorrTokens, alt) {
				return Result{
					RuleID:     "negation-ne-jamais",
					Confidence: 0.9,
					Evidence:   fmt.Sprintf("structural: dropped \"pas\" beside %q", alt),
				}
			}
		}
	}

	if contains(added, "ne") || contains(added, "n'") {
		return Result{
			RuleID:     "negation-ne-pas",
			Confidence: 0.9,
			Evidence:   "structural: inserted \"ne\"",
		}
	}

	return keywordResult(in.Description, "negation-ne-pas", 0.65, "negation", "négation")
}

// PartitiveDetector matches partitive reduction under negation
// ("pas du" → "pas de") and insertion of a missing partitive article.
type PartitiveDetector struct{}

func (d *PartitiveDetector) Name() string  { return "partitive" }
func (d *PartitiveDetector) Priority() int { return 7 }

func (d *PartitiveDetector) Detect(in Input) Result {
	removed, added := diff(in.OrigTokens, in.CorrTokens)

	// pas du/de la/des/un/une → pas de.
	for _, neg := range []string{"pas", "plus", "jamais"} {
		if (hasBigram(in.CorrTokens, neg, "de") || hasBigram(in.CorrTokens, neg, "d'")) &&
			!hasBigram(in.OrigTokens, neg, "de") && !hasBigram(in.OrigTokens, neg, "d'") {
			for _, art := range []string{"du", "des", "la", "un", "une"} {
				if contains(removed, art) {
					return Result{
						RuleID:     "partitive-negation",
						Confidence: 0.9,
						Evidence:   fmt.Sprintf("structural: %q %q → %q de", neg, art, neg),
					}
				}
			}
		}
	}

	// Inserted partitive where the original had a bare noun.
	if len(removed) == 0 {
		for _, art := range []string{"du", "de", "d'", "des"} {
			if contains(added, art) {
				return Result{
					RuleID:     "partitive-du-de-la",
					Confidence: 0.85,
					Evidence:   fmt.Sprintf("structural: inserted partitive %q", art),
				}
			}
		}
	}

	return keywordResult(in.Description, "partitive-du-de-la", 0.6, "partitive", "partitif")
}

// PronounDetector matches "à + noun" → y and "de + noun" → en replacements.
type PronounDetector struct{}

func (d *PronounDetector) Name() string  { return "pronoun" }
func (d *PronounDetector) Priority() int { return 8 }

func (d *PronounDetector) Detect(in Input) Result {
	removed, added := diff(in.OrigTokens, in.CorrTokens)

	if contains(added, "y") && (contains(removed, "à") || contains(removed, "au") || contains(removed, "aux")) {
		return Result{
			RuleID:     "pronoun-y",
			Confidence: 0.85,
			Evidence:   "structural: \"à + noun\" replaced by \"y\"",
		}
	}
	if contains(added, "en") {
		for _, de := range []string{"de", "du", "des", "d'"} {
			if contains(removed, de) {
				return Result{
					RuleID:     "pronoun-en",
					Confidence: 0.85,
					Evidence:   fmt.Sprintf("structural: %q + noun replaced by \"en\"", de),
				}
			}
		}
	}

	return keywordResult(in.Description, "pronoun-y", 0.6, "pronoun", "pronom")
}

// commonPrefix returns the longest shared prefix of a and b.
func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// replacedSuffix reports whether b equals a with oldSuf swapped for newSuf.
func replacedSuffix(a, b, oldSuf, newSuf string) bool {
	if !strings.HasSuffix(a, oldSuf) || !strings.HasSuffix(b, newSuf) {
		return false
	}
	return a[:len(a)-len(oldSuf)] == b[:len(b)-len(newSuf)]
}
