package progress

import (
	"math"
	"time"
)

// Status is the derived health of one rule's mastery record.
type Status string

const (
	StatusNew         Status = "new"         // no attempts yet
	StatusStruggling  Status = "struggling"  // accuracy < 0.5
	StatusProgressing Status = "progressing" // 0.5 ≤ accuracy < 0.9, or fewer than 5 attempts
	StatusMastered    Status = "mastered"    // accuracy ≥ 0.9 with 5+ attempts
)

// RuleMasteryRecord tracks one learner's history on one rule.
// Created lazily on first attempt; mutated only by Tracker.RecordAttempt.
type RuleMasteryRecord struct {
	RuleID          string    `json:"ruleId"`
	Attempts        int       `json:"attempts"`
	Correct         int       `json:"correct"`
	Level           int       `json:"level"` // 1..4
	LastPracticedAt time.Time `json:"lastPracticedAt"`
	TotalPoints     int       `json:"totalPoints"`
}

// Accuracy returns the trailing accuracy ratio.
func (r *RuleMasteryRecord) Accuracy() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempts)
}

// Status derives the record's health from its counters.
func (r *RuleMasteryRecord) Status() Status {
	switch {
	case r.Attempts == 0:
		return StatusNew
	case r.Accuracy() < 0.5:
		return StatusStruggling
	case r.Accuracy() >= masteryAccuracy && r.Attempts >= promoteMinAttempts:
		return StatusMastered
	default:
		return StatusProgressing
	}
}

// UserProgress is the whole persisted state for one learner. It is an
// explicit value threaded through every Tracker call, loaded at session
// start and saved after every mutation.
type UserProgress struct {
	RulesMastery     map[string]*RuleMasteryRecord `json:"rulesMastery"`
	TotalQuizzes     int                           `json:"totalQuizzes"`
	TotalCorrect     int                           `json:"totalCorrect"`
	StreakDays       int                           `json:"streakDays"`
	LastPracticeDate time.Time                     `json:"lastPracticeDate"`
	Level            int                           `json:"level"`
	Experience       int                           `json:"experience"`
}

// NewUserProgress returns a freshly initialized progress value.
func NewUserProgress() *UserProgress {
	return &UserProgress{
		RulesMastery: make(map[string]*RuleMasteryRecord),
		Level:        1,
	}
}

// Accuracy returns the account-wide accuracy ratio.
func (p *UserProgress) Accuracy() float64 {
	if p.TotalQuizzes == 0 {
		return 0
	}
	return float64(p.TotalCorrect) / float64(p.TotalQuizzes)
}

// ExperienceRequired returns the XP threshold for advancing past level.
func ExperienceRequired(level int) int {
	return int(math.Floor(100 * math.Pow(float64(level), 1.5)))
}
