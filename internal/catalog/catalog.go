package catalog

import "sort"

// Category groups grammar rules by the phenomenon they describe.
type Category string

const (
	CategoryContraction Category = "contraction"
	CategoryArticle     Category = "article"
	CategoryConjugation Category = "conjugation"
	CategoryAgreement   Category = "agreement"
	CategoryPreposition Category = "preposition"
	CategoryNegation    Category = "negation"
	CategoryPartitive   Category = "partitive"
	CategoryPronoun     Category = "pronoun"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryContraction,
		CategoryArticle,
		CategoryConjugation,
		CategoryAgreement,
		CategoryPreposition,
		CategoryNegation,
		CategoryPartitive,
		CategoryPronoun,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryContraction:
		return "Contractions"
	case CategoryArticle:
		return "Articles & Gender"
	case CategoryConjugation:
		return "Verb Conjugation"
	case CategoryAgreement:
		return "Adjective Agreement"
	case CategoryPreposition:
		return "Prepositions"
	case CategoryNegation:
		return "Negation"
	case CategoryPartitive:
		return "Partitive Articles"
	case CategoryPronoun:
		return "Pronouns"
	default:
		return string(c)
	}
}

// Example is a correct/incorrect sentence pair illustrating a rule.
// Incorrect and Translation may be empty.
type Example struct {
	Incorrect   string `json:"incorrect,omitempty"`
	Correct     string `json:"correct"`
	Translation string `json:"translation,omitempty"`
}

// PracticeItem is a ready-made exercise attached to a rule.
type PracticeItem struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
	Hint   string `json:"hint,omitempty"`
}

// GrammarRule describes one grammar phenomenon and its surface forms.
// Rules are immutable, process-wide, read-only reference data.
type GrammarRule struct {
	ID             string
	Category       Category
	Statement      string
	Explanation    string
	Examples       []Example
	Exceptions     []string
	CommonMistakes []string
	RelatedRules   []string
	Difficulty     int // 1 (basic) .. 4 (advanced)
	PracticeItems  []PracticeItem
}

// IncorrectExamples returns the examples that carry an incorrect form.
func (r *GrammarRule) IncorrectExamples() []Example {
	var out []Example
	for _, ex := range r.Examples {
		if ex.Incorrect != "" {
			out = append(out, ex)
		}
	}
	return out
}

// registry holds the rule catalog with precomputed indices.
type registry struct {
	rules      []GrammarRule
	byID       map[string]*GrammarRule
	byCategory map[Category][]*GrammarRule
}

// reg is the package-level registry singleton, built from seedRules.
var reg *registry

func init() {
	reg = buildRegistry(seedRules)
}

func buildRegistry(rules []GrammarRule) *registry {
	r := &registry{
		rules:      rules,
		byID:       make(map[string]*GrammarRule, len(rules)),
		byCategory: make(map[Category][]*GrammarRule),
	}
	for i := range r.rules {
		rule := &r.rules[i]
		r.byID[rule.ID] = rule
		r.byCategory[rule.Category] = append(r.byCategory[rule.Category], rule)
	}
	return r
}

// Get returns the rule with the given ID.
func Get(id string) (*GrammarRule, bool) {
	rule, ok := reg.byID[id]
	return rule, ok
}

// ByCategory returns all rules in a category.
func ByCategory(c Category) []*GrammarRule {
	return reg.byCategory[c]
}

// All returns every rule in the catalog, sorted by ID.
func All() []*GrammarRule {
	out := make([]*GrammarRule, 0, len(reg.rules))
	for i := range reg.rules {
		out = append(out, &reg.rules[i])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Related returns the resolved related rules for a rule ID.
// Unknown related IDs are skipped.
func Related(id string) []*GrammarRule {
	rule, ok := Get(id)
	if !ok {
		return nil
	}
	var out []*GrammarRule
	for _, rid := range rule.RelatedRules {
		if rel, ok := Get(rid); ok {
			out = append(out, rel)
		}
	}
	return out
}
