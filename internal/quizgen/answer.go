package quizgen

import "strings"

// ValidateAnswer compares the learner's input against the item's correct
// answer. Both sides are normalized (lower-cased, trimmed, terminal
// punctuation stripped) and compared with strict equality — accent or
// word-order slips are counted wrong. Fuzzy matching is deliberately not
// attempted.
func ValidateAnswer(it *Item, userAnswer string) Verdict {
	v := Verdict{CorrectAnswer: it.CorrectAnswer}

	if NormalizeAnswer(userAnswer) == NormalizeAnswer(it.CorrectAnswer) {
		v.Correct = true
		v.Points = it.Points
		v.Feedback = "Correct! " + it.Explanation
		return v
	}

	v.Feedback = "Not quite. The correct answer is: " + it.CorrectAnswer + ". " + it.Explanation
	return v
}

// NormalizeAnswer lower-cases, trims, and strips the punctuation characters
// `.,!?;` from an answer string.
func NormalizeAnswer(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', '!', '?', ';':
			return -1
		}
		return r
	}, s)
}
