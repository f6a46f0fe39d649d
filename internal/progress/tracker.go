// Package progress implements longitudinal mastery tracking: per-rule
// level state machines, account-wide experience and streaks, and on-demand
// study recommendations.
package progress

import (
	"fmt"
	"sort"
	"time"
)

// Per-rule level thresholds. The level is a lagging indicator: a single
// answer can never flip it until enough attempts accumulate.
const (
	masteryAccuracy    = 0.9
	demoteAccuracy     = 0.5
	promoteMinAttempts = 5
	demoteMinAttempts  = 3

	minLevel = 1
	maxLevel = 4
)

// weakAccuracy is the accuracy ceiling for a rule to count as weak.
const weakAccuracy = 0.7

// Tracker mutates and queries one learner's UserProgress. The progress
// value is explicit, not a hidden singleton; callers own loading and
// saving it. Tracker is not safe for concurrent use — concurrent attempts
// for the same learner must be serialized by the caller.
type Tracker struct {
	progress *UserProgress
	clock    Clock
}

// NewTracker wraps a progress value. A nil progress starts fresh; a nil
// clock uses the system clock.
func NewTracker(p *UserProgress, clock Clock) *Tracker {
	if p == nil {
		p = NewUserProgress()
	}
	if p.RulesMastery == nil {
		p.RulesMastery = make(map[string]*RuleMasteryRecord)
	}
	if p.Level < minLevel {
		p.Level = minLevel
	}
	if clock == nil {
		clock = SystemClock()
	}
	return &Tracker{progress: p, clock: clock}
}

// Progress returns the underlying progress value for persistence.
func (t *Tracker) Progress() *UserProgress { return t.progress }

// Reset reinitializes all progress.
func (t *Tracker) Reset() {
	t.progress = NewUserProgress()
}

// AttemptOutcome reports the effects of one recorded attempt.
type AttemptOutcome struct {
	PointsEarned int  `json:"pointsEarned"`
	Streak       int  `json:"streak"`
	RuleLevel    int  `json:"ruleLevel"`
	LevelUp      bool `json:"levelUp"`  // account level increased this call
	NewLevel     int  `json:"newLevel"` // account level after this call
}

// RecordAttempt registers one answered quiz item for a rule. It updates
// the rule's counters and level, the calendar-day streak, and account
// experience. Experience accrues only on correct answers; the account
// level advances by at most one per call even if the earned points cross
// several thresholds — the surplus carries and the next call advances
// again.
func (t *Tracker) RecordAttempt(ruleID string, correct bool, points int) AttemptOutcome {
	now := t.clock.Now()
	rec := t.record(ruleID)

	rec.Attempts++
	if correct {
		rec.Correct++
		rec.TotalPoints += points
	}
	rec.LastPracticedAt = now
	t.updateRuleLevel(rec)

	t.progress.TotalQuizzes++
	if correct {
		t.progress.TotalCorrect++
	}

	t.updateStreak(now)

	outcome := AttemptOutcome{
		Streak:    t.progress.StreakDays,
		RuleLevel: rec.Level,
	}
	if correct {
		outcome.PointsEarned = points
		t.progress.Experience += points
		if t.progress.Experience >= ExperienceRequired(t.progress.Level) {
			t.progress.Level++
			outcome.LevelUp = true
		}
	}
	outcome.NewLevel = t.progress.Level
	return outcome
}

// updateRuleLevel applies the lagging-indicator state machine: promote on
// sustained high accuracy, demote on sustained low accuracy, both capped
// to one step per attempt.
func (t *Tracker) updateRuleLevel(rec *RuleMasteryRecord) {
	acc := rec.Accuracy()
	switch {
	case acc >= masteryAccuracy && rec.Attempts >= promoteMinAttempts:
		if rec.Level < maxLevel {
			rec.Level++
		}
	case acc < demoteAccuracy && rec.Attempts >= demoteMinAttempts:
		if rec.Level > minLevel {
			rec.Level--
		}
	}
}

// updateStreak applies the calendar-day rule: same day keeps the streak,
// practicing exactly one day after the last practice extends it, any other
// gap (or a first-ever attempt) resets it to 1.
func (t *Tracker) updateStreak(now time.Time) {
	last := t.progress.LastPracticeDate
	switch {
	case last.IsZero():
		t.progress.StreakDays = 1
	case sameDay(last, now):
		// unchanged
	case daysBetween(last, now) == 1:
		t.progress.StreakDays++
	default:
		t.progress.StreakDays = 1
	}
	t.progress.LastPracticeDate = now
}

// record returns the mastery record for a rule, creating it lazily.
func (t *Tracker) record(ruleID string) *RuleMasteryRecord {
	if rec, ok := t.progress.RulesMastery[ruleID]; ok {
		return rec
	}
	rec := &RuleMasteryRecord{RuleID: ruleID, Level: minLevel}
	t.progress.RulesMastery[ruleID] = rec
	return rec
}

// RuleMastery returns the current level (1..4) for a rule; rules never
// practiced report level 1 without creating a record.
func (t *Tracker) RuleMastery(ruleID string) int {
	if rec, ok := t.progress.RulesMastery[ruleID]; ok {
		return rec.Level
	}
	return minLevel
}

// WeakRules returns up to limit rule IDs with accuracy below 0.7 over at
// least 2 attempts, weakest first. Rules within the same 10% accuracy band
// are ordered by attempts descending, so a rule failed many times outranks
// one failed twice.
func (t *Tracker) WeakRules(limit int) []string {
	type weak struct {
		id       string
		accuracy float64
		attempts int
	}
	var weaks []weak
	for id, rec := range t.progress.RulesMastery {
		if rec.Attempts >= 2 && rec.Accuracy() < weakAccuracy {
			weaks = append(weaks, weak{id: id, accuracy: rec.Accuracy(), attempts: rec.Attempts})
		}
	}
	sort.Slice(weaks, func(i, j int) bool {
		bi, bj := int(weaks[i].accuracy*10), int(weaks[j].accuracy*10)
		if bi != bj {
			return bi < bj
		}
		if weaks[i].attempts != weaks[j].attempts {
			return weaks[i].attempts > weaks[j].attempts
		}
		if weaks[i].accuracy != weaks[j].accuracy {
			return weaks[i].accuracy < weaks[j].accuracy
		}
		return weaks[i].id < weaks[j].id
	})
	if limit >= 0 && len(weaks) > limit {
		weaks = weaks[:limit]
	}
	out := make([]string, len(weaks))
	for i, w := range weaks {
		out[i] = w.id
	}
	return out
}

// MasteredRules returns the IDs of rules whose status is mastered, sorted.
func (t *Tracker) MasteredRules() []string {
	var out []string
	for id, rec := range t.progress.RulesMastery {
		if rec.Status() == StatusMastered {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// RulePerformance is the stats-plus-status view of one rule.
type RulePerformance struct {
	RuleID          string    `json:"ruleId"`
	Attempts        int       `json:"attempts"`
	Correct         int       `json:"correct"`
	Accuracy        float64   `json:"accuracy"`
	Level           int       `json:"level"`
	Status          Status    `json:"status"`
	TotalPoints     int       `json:"totalPoints"`
	LastPracticedAt time.Time `json:"lastPracticedAt"`
}

// RulePerformance returns stats and status for a rule. Unknown rules
// report a zeroed "new" performance rather than an error.
func (t *Tracker) RulePerformance(ruleID string) RulePerformance {
	rec, ok := t.progress.RulesMastery[ruleID]
	if !ok {
		return RulePerformance{RuleID: ruleID, Level: minLevel, Status: StatusNew}
	}
	return RulePerformance{
		RuleID:          ruleID,
		Attempts:        rec.Attempts,
		Correct:         rec.Correct,
		Accuracy:        rec.Accuracy(),
		Level:           rec.Level,
		Status:          rec.Status(),
		TotalPoints:     rec.TotalPoints,
		LastPracticedAt: rec.LastPracticedAt,
	}
}

// UserStats is the account-wide statistics view.
type UserStats struct {
	TotalQuizzes   int     `json:"totalQuizzes"`
	TotalCorrect   int     `json:"totalCorrect"`
	Accuracy       float64 `json:"accuracy"`
	StreakDays     int     `json:"streakDays"`
	Level          int     `json:"level"`
	Experience     int     `json:"experience"`
	NextLevelAt    int     `json:"nextLevelAt"`
	RulesPracticed int     `json:"rulesPracticed"`
}

// UserStats returns the account-wide statistics.
func (t *Tracker) UserStats() UserStats {
	return UserStats{
		TotalQuizzes:   t.progress.TotalQuizzes,
		TotalCorrect:   t.progress.TotalCorrect,
		Accuracy:       t.progress.Accuracy(),
		StreakDays:     t.progress.StreakDays,
		Level:          t.progress.Level,
		Experience:     t.progress.Experience,
		NextLevelAt:    ExperienceRequired(t.progress.Level),
		RulesPracticed: len(t.progress.RulesMastery),
	}
}

// Recommendation is one piece of on-demand study advice. Recommendations
// are computed fresh on every call and never stored.
type Recommendation struct {
	Priority string `json:"priority"` // "high" or "normal"
	Kind     string `json:"kind"`     // "focus", "motivation", "progression", "fundamentals"
	Message  string `json:"message"`
}

// Summary bundles stats, weak/mastered rules, and recommendations.
type Summary struct {
	Stats           UserStats        `json:"stats"`
	WeakRules       []string         `json:"weakRules"`
	MasteredRules   []string         `json:"masteredRules"`
	Recommendations []Recommendation `json:"recommendations"`
}

// ProgressSummary computes the full on-demand summary.
func (t *Tracker) ProgressSummary() Summary {
	stats := t.UserStats()
	weak := t.WeakRules(5)
	mastered := t.MasteredRules()

	var recs []Recommendation
	if len(weak) > 0 {
		recs = append(recs, Recommendation{
			Priority: "high",
			Kind:     "focus",
			Message:  fmt.Sprintf("Focus on your weakest rules first: %s.", weak[0]),
		})
	}
	recs = append(recs, streakRecommendation(stats.StreakDays))
	if len(mastered) >= 5 {
		recs = append(recs, Recommendation{
			Priority: "normal",
			Kind:     "progression",
			Message:  fmt.Sprintf("You've mastered %d rules — time to tackle harder material.", len(mastered)),
		})
	}
	if stats.TotalQuizzes >= 20 && stats.Accuracy < 0.6 {
		recs = append(recs, Recommendation{
			Priority: "high",
			Kind:     "fundamentals",
			Message:  "Overall accuracy is below 60% — review the fundamentals before moving on.",
		})
	}

	return Summary{
		Stats:           stats,
		WeakRules:       weak,
		MasteredRules:   mastered,
		Recommendations: recs,
	}
}

func streakRecommendation(streak int) Recommendation {
	rec := Recommendation{Priority: "normal", Kind: "motivation"}
	switch {
	case streak >= 7:
		rec.Message = fmt.Sprintf("%d days in a row — remarkable consistency!", streak)
	case streak >= 3:
		rec.Message = fmt.Sprintf("A %d-day streak. Keep it going!", streak)
	default:
		rec.Message = "Practice a little every day to build a streak."
	}
	return rec
}
