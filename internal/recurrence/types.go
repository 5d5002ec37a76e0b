package recurrence

import (
	"time"

	"github.com/teambition/rrule-go"
)

// Input is a recurring event template plus its textual repeat rule.
type Input struct {
	Name    string
	Start   time.Time
	End     time.Time
	Rule    string
	FullDay bool
}

// Rule is the parsed form of "<days> for <N> times" or "<days> until <bound>".
// Exactly one of Count and Until is set.
type Rule struct {
	Days  []time.Weekday
	Count int
	Until time.Time
}

// HasUntil reports whether the rule is bounded by an instant rather than a count.
func (r Rule) HasUntil() bool {
	return r.Count == 0
}

const dayCodes = "MTWRFSU"

var dayCodeWeekdays = map[rune]time.Weekday{
	'M': time.Monday,
	'T': time.Tuesday,
	'W': time.Wednesday,
	'R': time.Thursday,
	'F': time.Friday,
	'S': time.Saturday,
	'U': time.Sunday,
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}
