// Package quizgen synthesizes quiz items from catalog rules. Distractors
// are constructed to test understanding rather than memory: wrong options
// are the surface forms of the mistakes the rule corrects, never fabricated
// "incorrect" sentences presented as real ones.
package quizgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mpelletier/liaison/internal/catalog"
)

// maxDistractors caps the wrong options attached to a multiple-choice item.
const maxDistractors = 3

// Generator produces quiz items for catalog rules. The randomness source
// is injected so tests can fix a seed; production uses a time-seeded PCG.
type Generator struct {
	rnd *rand.Rand
}

// New creates a Generator with entropy-based seeding.
func New() *Generator {
	now := uint64(time.Now().UnixNano())
	return &Generator{rnd: rand.New(rand.NewPCG(now, now>>32))}
}

// NewSeeded creates a Generator with a fixed seed for deterministic output.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed))}
}

// typesForLevel gates question types by mastery level: recognition first,
// construction only once the rule is close to mastered.
func typesForLevel(level int) []Type {
	switch {
	case level <= 1:
		return []Type{TypeErrorIdentification}
	case level == 2:
		return []Type{TypeErrorIdentification, TypeRuleExplanation}
	case level == 3:
		return []Type{TypeRuleExplanation, TypeApplication}
	default:
		return []Type{TypeApplication, TypeFillBlank}
	}
}

// ForRule generates the quiz for one rule at the given mastery level.
// Generators that cannot produce an item (e.g. too few examples) are
// skipped; an unknown or empty rule ID yields the default quiz, so the
// result for a null classification is never empty.
func (g *Generator) ForRule(ruleID string, level int) []Item {
	rule, ok := catalog.Get(ruleID)
	if !ok {
		return g.Default()
	}

	var items []Item
	for _, t := range typesForLevel(level) {
		if it := g.build(rule, t, level); it != nil {
			items = append(items, *it)
		}
	}
	if len(items) == 0 {
		return g.Default()
	}
	return items
}

// Mixed generates up to max items for a rule, one per generator type,
// ignoring level gating. Generators that yield nothing are skipped.
func (g *Generator) Mixed(ruleID string, level, max int) []Item {
	rule, ok := catalog.Get(ruleID)
	if !ok {
		return g.Default()
	}

	var items []Item
	for _, t := range []Type{TypeErrorIdentification, TypeRuleExplanation, TypeApplication, TypeFillBlank} {
		if max >= 0 && len(items) >= max {
			break
		}
		if it := g.build(rule, t, level); it != nil {
			items = append(items, *it)
		}
	}
	return items
}

// Default returns a generic quiz over the easiest catalog rules, used when
// classification found no rule. Always non-empty: rule-explanation items
// can be built for any rule.
func (g *Generator) Default() []Item {
	var items []Item
	for _, rule := range catalog.All() {
		if rule.Difficulty > 1 {
			continue
		}
		it := g.build(rule, TypeErrorIdentification, 1)
		if it == nil {
			it = g.build(rule, TypeRuleExplanation, 1)
		}
		if it != nil {
			items = append(items, *it)
		}
		if len(items) >= 3 {
			break
		}
	}
	if len(items) == 0 {
		// No difficulty-1 rules seeded; fall back to the first rule.
		if all := catalog.All(); len(all) > 0 {
			if it := g.build(all[0], TypeRuleExplanation, 1); it != nil {
				items = append(items, *it)
			}
		}
	}
	return items
}

// build dispatches to the per-type constructor and validates the result.
// Invalid items are dropped rather than emitted.
func (g *Generator) build(rule *catalog.GrammarRule, t Type, level int) *Item {
	var it *Item
	switch t {
	case TypeErrorIdentification:
		it = g.identificationItem(rule, level)
	case TypeRuleExplanation:
		it = g.explanationItem(rule, level)
	case TypeApplication:
		it = g.applicationItem(rule, level)
	case TypeFillBlank:
		it = g.constructionItem(rule, level)
	}
	if it == nil {
		return nil
	}
	if err := RunValidators(DefaultValidators(), it); err != nil {
		return nil
	}
	return it
}

// identificationItem presents one true incorrect sentence among true
// correct ones. Requires at least two catalog examples; the wrong sentence
// is always taken from the catalog, never fabricated.
func (g *Generator) identificationItem(rule *catalog.GrammarRule, level int) *Item {
	if len(rule.Examples) < 2 {
		return nil
	}
	incorrect := rule.IncorrectExamples()
	if len(incorrect) == 0 {
		return nil
	}
	target := incorrect[g.rnd.IntN(len(incorrect))]

	var corrects []string
	for _, ex := range rule.Examples {
		if ex.Correct != "" && ex.Correct != target.Correct {
			corrects = append(corrects, ex.Correct)
		}
	}
	if len(corrects) == 0 {
		corrects = []string{target.Correct}
	}
	g.rnd.Shuffle(len(corrects), func(i, j int) { corrects[i], corrects[j] = corrects[j], corrects[i] })
	if len(corrects) > 2 {
		corrects = corrects[:2]
	}

	options := append([]string{target.Incorrect}, corrects...)
	g.rnd.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return &Item{
		ID:              uuid.NewString(),
		Type:            TypeErrorIdentification,
		DifficultyLevel: level,
		Prompt:          "Which of these sentences is incorrect?",
		Options:         options,
		CorrectAnswer:   target.Incorrect,
		Explanation:     fmt.Sprintf("The corrected form is %q. Rule: %s", target.Correct, rule.Statement),
		Points:          PointsRecognition,
		RuleID:          rule.ID,
	}
}

// explanationItem asks for the rule's own statement among plausible wrong
// statements from the category pool, optionally joined by a related rule's
// statement.
func (g *Generator) explanationItem(rule *catalog.GrammarRule, level int) *Item {
	pool := append([]string(nil), strategyFor(rule.Category).wrongStatements...)
	if related := catalog.Related(rule.ID); len(related) > 0 {
		pool = append(pool, related[g.rnd.IntN(len(related))].Statement)
	}
	options := g.mixOptions(rule.Statement, pool)
	if len(options) < 2 {
		return nil
	}

	return &Item{
		ID:              uuid.NewString(),
		Type:            TypeRuleExplanation,
		DifficultyLevel: level,
		Prompt:          fmt.Sprintf("Which statement is the correct rule for %s?", catalog.CategoryDisplayName(rule.Category)),
		Options:         options,
		CorrectAnswer:   rule.Statement,
		Explanation:     fmt.Sprintf("Rule: %s %s", rule.Statement, rule.Explanation),
		Points:          PointsRecognition,
		RuleID:          rule.ID,
	}
}

// applicationItem prefers a catalog practice item and falls back to a
// synthesized fix-the-sentence exercise. Transform/Fix prompts render as
// multiple choice with category-aware wrong answers; everything else is
// free-text fill-in.
func (g *Generator) applicationItem(rule *catalog.GrammarRule, level int) *Item {
	var prompt, answer, hint string
	if len(rule.PracticeItems) > 0 {
		p := rule.PracticeItems[g.rnd.IntN(len(rule.PracticeItems))]
		prompt, answer, hint = p.Prompt, p.Answer, p.Hint
	} else if incorrect := rule.IncorrectExamples(); len(incorrect) > 0 {
		ex := incorrect[g.rnd.IntN(len(incorrect))]
		prompt = "Fix: " + ex.Incorrect
		answer = ex.Correct
	} else {
		return nil
	}

	it := &Item{
		ID:              uuid.NewString(),
		Type:            TypeApplication,
		DifficultyLevel: level,
		Prompt:          prompt,
		CorrectAnswer:   answer,
		Explanation:     fmt.Sprintf("Rule: %s", rule.Statement),
		Points:          PointsApplication,
		Hint:            hint,
		RuleID:          rule.ID,
	}

	if strings.Contains(prompt, "Transform:") || strings.Contains(prompt, "Fix:") {
		wrong := strategyFor(rule.Category).wrongAnswers(answer)
		options := g.mixOptions(answer, wrong)
		if len(options) >= 2 {
			it.Options = options
		}
	}
	return it
}

// constructionItem blanks the category-relevant token of a correct example
// sentence and offers category-aware distractor tokens.
func (g *Generator) constructionItem(rule *catalog.GrammarRule, level int) *Item {
	var sentences []string
	for _, ex := range rule.Examples {
		if ex.Correct != "" {
			sentences = append(sentences, ex.Correct)
		}
	}
	if len(sentences) == 0 {
		return nil
	}
	sentence := sentences[g.rnd.IntN(len(sentences))]
	tokens := strings.Fields(sentence)
	if len(tokens) < 3 {
		return nil
	}

	idx := blankTarget(tokens, rule.Category)
	raw := tokens[idx]
	answer := strings.Trim(raw, ".,!?;")
	suffix := raw[len(answer):]

	blanked := make([]string, len(tokens))
	copy(blanked, tokens)
	blanked[idx] = "___" + suffix

	var wrong []string
	for _, t := range strategyFor(rule.Category).blankTokens {
		if !strings.EqualFold(t, answer) {
			wrong = append(wrong, t)
		}
	}
	if len(wrong) < 2 {
		wrong = append(wrong, endingWrongAnswers(answer)...)
	}
	options := g.mixOptions(answer, wrong)
	if len(options) < 2 {
		return nil
	}

	return &Item{
		ID:              uuid.NewString(),
		Type:            TypeFillBlank,
		DifficultyLevel: level,
		Prompt:          "Complete the sentence: " + strings.Join(blanked, " "),
		Options:         options,
		CorrectAnswer:   answer,
		Explanation:     fmt.Sprintf("The full sentence is %q. Rule: %s", sentence, rule.Statement),
		Points:          PointsApplication,
		RuleID:          rule.ID,
	}
}

// mixOptions dedupes the distractor pool, drops anything equal to the
// correct answer, caps the pool, appends the correct answer exactly once,
// and shuffles.
func (g *Generator) mixOptions(correct string, distractors []string) []string {
	seen := map[string]bool{correct: true}
	var pool []string
	for _, d := range distractors {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		pool = append(pool, d)
	}
	g.rnd.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > maxDistractors {
		pool = pool[:maxDistractors]
	}
	options := append(pool, correct)
	g.rnd.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options
}
