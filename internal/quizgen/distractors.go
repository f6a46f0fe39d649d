package quizgen

import (
	"strings"

	"github.com/mpelletier/liaison/internal/catalog"
)

// strategy bundles the category-specific distractor machinery: a pool of
// plausible wrong rule statements, the token set used for blanking in
// construction items, and a synthesizer for wrong answers to application
// prompts. Categories without an entry fall back to genericStrategy.
type strategy struct {
	wrongStatements []string
	blankTokens     []string
	wrongAnswers    func(correct string) []string
}

var strategies = map[catalog.Category]strategy{
	catalog.CategoryContraction: {
		wrongStatements: []string{
			"The preposition \"à\" stays separate from \"le\" in careful writing.",
			"Contractions are optional in formal French.",
			"\"à\" contracts with \"la\" to form \"au\".",
		},
		blankTokens:  []string{"au", "du", "aux", "des"},
		wrongAnswers: contractionWrongAnswers,
	},
	catalog.CategoryArticle: {
		wrongStatements: []string{
			"The article is chosen by the meaning of the noun, not its grammatical gender.",
			"\"le\" is used for all singular nouns in spoken French.",
			"Nouns ending in -e always take \"la\".",
		},
		blankTokens:  []string{"le", "la", "un", "une", "les", "des"},
		wrongAnswers: substitutionWrongAnswers([]string{"le", "la", "un", "une", "les", "des", "l'"}),
	},
	catalog.CategoryConjugation: {
		wrongStatements: []string{
			"French verbs keep the same form for every subject, like English.",
			"The \"tu\" form never takes a final -s.",
			"All -er verbs use \"être\" in the passé composé.",
		},
		wrongAnswers: endingWrongAnswers,
	},
	catalog.CategoryAgreement: {
		wrongStatements: []string{
			"Adjectives are invariable in French.",
			"Adjectives agree only in number, never in gender.",
			"The feminine form always drops the final consonant.",
		},
		wrongAnswers: endingWrongAnswers,
	},
	catalog.CategoryPreposition: {
		wrongStatements: []string{
			"French prepositions translate one-to-one from English.",
			"\"à\" and \"de\" are interchangeable after any verb.",
			"\"dans\" is used for durations, \"en\" for delays.",
		},
		blankTokens:  []string{"à", "de", "en", "dans", "sur", "pour"},
		wrongAnswers: substitutionWrongAnswers([]string{"à", "de", "en", "dans", "sur", "pour"}),
	},
	catalog.CategoryNegation: {
		wrongStatements: []string{
			"A single \"pas\" after the verb is enough in written French.",
			"\"ne\" follows the verb, \"pas\" precedes it.",
			"\"jamais\" always appears together with \"pas\".",
		},
		blankTokens:  []string{"ne", "pas", "jamais", "rien", "plus"},
		wrongAnswers: negationWrongAnswers,
	},
	catalog.CategoryPartitive: {
		wrongStatements: []string{
			"Unspecified quantities take no article at all, as in English.",
			"The partitive keeps its full form after a negation.",
			"\"du\" is used for feminine nouns, \"de la\" for masculine ones.",
		},
		blankTokens:  []string{"du", "de", "des", "d'"},
		wrongAnswers: substitutionWrongAnswers([]string{"du", "de la", "de l'", "des", "de"}),
	},
	catalog.CategoryPronoun: {
		wrongStatements: []string{
			"Object pronouns follow the conjugated verb.",
			"\"y\" replaces people, \"en\" replaces places.",
			"\"en\" can be dropped when a number is kept.",
		},
		blankTokens:  []string{"y", "en"},
		wrongAnswers: substitutionWrongAnswers([]string{"y", "en", "le", "lui"}),
	},
}

// genericStrategy serves categories with no dedicated pool.
var genericStrategy = strategy{
	wrongStatements: []string{
		"This construction follows English word order exactly.",
		"This form is only found in literary French and can be ignored.",
		"Spoken and written French never differ on this point.",
	},
	wrongAnswers: endingWrongAnswers,
}

// strategyFor returns the distractor strategy for a category.
func strategyFor(c catalog.Category) strategy {
	if s, ok := strategies[c]; ok {
		return s
	}
	return genericStrategy
}

// contractionExpansions maps each fused form to its plausible wrong
// re-expansions, the exact mistake the contraction rules correct.
var contractionExpansions = map[string][]string{
	"au":  {"à le", "à la", "aux"},
	"du":  {"de le", "de la", "des"},
	"aux": {"à les", "au", "à la"},
	"des": {"de les", "du", "de la"},
}

// contractionWrongAnswers re-expands the contracted token inside the
// correct answer ("au parc" → "à le parc", "à la parc", "aux parc").
func contractionWrongAnswers(correct string) []string {
	words := strings.Fields(correct)
	for i, w := range words {
		trimmed := strings.Trim(w, ".,!?;")
		expansions, ok := contractionExpansions[trimmed]
		if !ok {
			continue
		}
		var out []string
		for _, exp := range expansions {
			mutated := make([]string, len(words))
			copy(mutated, words)
			mutated[i] = strings.Replace(w, trimmed, exp, 1)
			out = append(out, strings.Join(mutated, " "))
		}
		return out
	}
	return endingWrongAnswers(correct)
}

// substitutionWrongAnswers swaps the first pool token found in the correct
// answer for each of the other pool tokens.
func substitutionWrongAnswers(pool []string) func(string) []string {
	return func(correct string) []string {
		words := strings.Fields(correct)
		for i, w := range words {
			trimmed := strings.Trim(strings.ToLower(w), ".,!?;")
			if !inPool(pool, trimmed) {
				continue
			}
			var out []string
			for _, alt := range pool {
				if alt == trimmed {
					continue
				}
				mutated := make([]string, len(words))
				copy(mutated, words)
				mutated[i] = alt
				out = append(out, strings.Join(mutated, " "))
			}
			return out
		}
		// Single-token answers drawn straight from the pool.
		trimmed := strings.Trim(strings.ToLower(correct), ".,!?; ")
		if inPool(pool, trimmed) {
			var out []string
			for _, alt := range pool {
				if alt != trimmed {
					out = append(out, alt)
				}
			}
			return out
		}
		return endingWrongAnswers(correct)
	}
}

// negationWrongAnswers drops one half of the negation frame.
func negationWrongAnswers(correct string) []string {
	var out []string
	if strings.Contains(correct, "ne ") {
		out = append(out, strings.Replace(correct, "ne ", "", 1))
	}
	if strings.Contains(correct, "n'") {
		out = append(out, strings.Replace(correct, "n'", "", 1))
	}
	if strings.Contains(correct, " pas") {
		out = append(out, strings.Replace(correct, " pas", "", 1))
	}
	if len(out) == 0 {
		return endingWrongAnswers(correct)
	}
	return out
}

// endingWrongAnswers mutates word endings, the generic fallback for
// French answers: toggle a final -s, toggle a final -e.
func endingWrongAnswers(correct string) []string {
	trimmed := strings.TrimRight(correct, ".,!?; ")
	suffix := correct[len(trimmed):]
	var out []string
	switch {
	case strings.HasSuffix(trimmed, "s"):
		out = append(out, trimmed[:len(trimmed)-1]+suffix)
	default:
		out = append(out, trimmed+"s"+suffix)
	}
	switch {
	case strings.HasSuffix(trimmed, "e"):
		out = append(out, trimmed[:len(trimmed)-1]+suffix)
	default:
		out = append(out, trimmed+"e"+suffix)
	}
	return out
}

func inPool(pool []string, t string) bool {
	for _, p := range pool {
		if p == t {
			return true
		}
	}
	return false
}

// blankTarget picks the index of the token to blank in a construction item:
// the first token found in the category's token set, or the middle token.
func blankTarget(tokens []string, c catalog.Category) int {
	set := strategyFor(c).blankTokens
	for i, t := range tokens {
		trimmed := strings.Trim(strings.ToLower(t), ".,!?;")
		if inPool(set, trimmed) {
			return i
		}
	}
	return len(tokens) / 2
}
