package progress

import "time"

// Clock abstracts wall-clock access so day-boundary logic is testable.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock returns the production clock.
func SystemClock() Clock { return realClock{} }

// sameDay reports whether a and b fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// daysBetween returns the number of calendar days from a to b, ignoring
// the time of day.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	astart := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bstart := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bstart.Sub(astart).Hours() / 24)
}
