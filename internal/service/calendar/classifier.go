package calendar

import (
	"time"
)

const dateKeyLayout = "2006-01-02"

// Classifier decides whether a calendar date counts as a workday. The
// organization's rest days are derived by remapping the natural weekday index
// by a fixed shift before the usual "index 0 or 6 is weekend" test. The shift
// is deliberate configuration, not an accident: the reference deployment runs
// with shift 3, which designates Wednesday and Thursday as rest days. Shift 0
// restores the natural Saturday/Sunday weekend.
//
// A holiday always wins over the shifted-weekday computation.
type Classifier struct {
	weekendShiftDays int
	holidays         map[string]struct{}
}

func NewClassifier(weekendShiftDays int, holidays []time.Time) *Classifier {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h.Format(dateKeyLayout)] = struct{}{}
	}
	return &Classifier{
		weekendShiftDays: weekendShiftDays,
		holidays:         set,
	}
}

// IsWorkday reports whether attendance is expected on the date.
func (c *Classifier) IsWorkday(date time.Time) bool {
	if c.IsHoliday(date) {
		return false
	}
	return !c.isDesignatedWeekend(date)
}

// IsHoliday reports whether the date is in the supplied holiday set.
func (c *Classifier) IsHoliday(date time.Time) bool {
	_, ok := c.holidays[date.Format(dateKeyLayout)]
	return ok
}

func (c *Classifier) isDesignatedWeekend(date time.Time) bool {
	// time.Weekday numbers Sunday as 0 and Saturday as 6.
	shifted := (int(date.Weekday()) + c.weekendShiftDays) % 7
	return shifted == 0 || shifted == 6
}
