package quizgen

import "fmt"

// ItemValidator checks a generated item for invariant compliance.
// Implementations are stateless and safe for concurrent use.
type ItemValidator interface {
	// Name returns a short identifier for error messages.
	Name() string

	// Validate returns nil if the item passes the check.
	Validate(it *Item) *ValidationError
}

// ValidationError describes why an item failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the standard validator chain.
func DefaultValidators() []ItemValidator {
	return []ItemValidator{
		&StructuralValidator{},
		&OptionsValidator{},
	}
}

// RunValidators executes validators in order, stopping at the first failure.
func RunValidators(validators []ItemValidator, it *Item) error {
	for _, v := range validators {
		if err := v.Validate(it); err != nil {
			return err
		}
	}
	return nil
}

// StructuralValidator checks that required fields are present and in range.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(it *Item) *ValidationError {
	if it.Prompt == "" {
		return &ValidationError{Validator: v.Name(), Message: "prompt is empty"}
	}
	if it.CorrectAnswer == "" {
		return &ValidationError{Validator: v.Name(), Message: "correct answer is empty"}
	}
	if it.Explanation == "" {
		return &ValidationError{Validator: v.Name(), Message: "explanation is empty"}
	}
	if it.Points <= 0 {
		return &ValidationError{Validator: v.Name(), Message: "points must be positive"}
	}
	if it.DifficultyLevel < 1 || it.DifficultyLevel > 4 {
		return &ValidationError{Validator: v.Name(), Message: "difficulty level must be between 1 and 4"}
	}
	switch it.Type {
	case TypeErrorIdentification, TypeRuleExplanation, TypeApplication, TypeFillBlank:
	default:
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("unknown type %q", it.Type)}
	}
	return nil
}

// OptionsValidator checks multiple-choice invariants: no duplicate options
// and the correct answer present exactly once.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(it *Item) *ValidationError {
	if it.Options == nil {
		return nil
	}
	if len(it.Options) < 2 {
		return &ValidationError{Validator: v.Name(), Message: "fewer than two options"}
	}
	seen := make(map[string]bool, len(it.Options))
	correctCount := 0
	for _, opt := range it.Options {
		if seen[opt] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("duplicate option %q", opt)}
		}
		seen[opt] = true
		if opt == it.CorrectAnswer {
			correctCount++
		}
	}
	if correctCount != 1 {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("correct answer appears %d times", correctCount)}
	}
	return nil
}
