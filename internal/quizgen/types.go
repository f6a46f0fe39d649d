package quizgen

// Type identifies how a quiz item tests the learner.
type Type string

const (
	// TypeErrorIdentification asks the learner to spot the wrong sentence.
	TypeErrorIdentification Type = "errorIdentification"

	// TypeRuleExplanation asks the learner to pick the rule's statement.
	TypeRuleExplanation Type = "ruleExplanation"

	// TypeApplication asks the learner to apply the rule to a sentence.
	TypeApplication Type = "application"

	// TypeFillBlank asks the learner to rebuild a sentence around a blank.
	TypeFillBlank Type = "fillBlank"
)

// Points awarded per item class: recognition and explanation score lower
// than active application and construction.
const (
	PointsRecognition = 10
	PointsApplication = 15
)

// Item is a single generated quiz question, regenerated per request.
type Item struct {
	ID              string   `json:"id"`
	Type            Type     `json:"type"`
	DifficultyLevel int      `json:"difficultyLevel"` // 1..4
	Prompt          string   `json:"prompt"`
	Options         []string `json:"options,omitempty"` // nil for free-text items
	CorrectAnswer   string   `json:"correctAnswer"`
	Explanation     string   `json:"explanation"`
	Points          int      `json:"points"`
	Hint            string   `json:"hint,omitempty"`
	RuleID          string   `json:"ruleId"`
}

// Verdict is the result of checking a learner's answer against an item.
type Verdict struct {
	Correct       bool   `json:"correct"`
	Feedback      string `json:"feedback"`
	Points        int    `json:"points"`
	CorrectAnswer string `json:"correctAnswer"`
}
