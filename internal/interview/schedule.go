package interview

import (
	"fmt"
	"time"
)

// Workday constants. A slot is one hour; the lunch window holds no slots, so
// a full day carries eight interviews.
const (
	slotDuration = time.Hour
	dayStartHour = 9
	dayEndHour   = 18
	lunchStart   = 13
	lunchEnd     = 14
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// slot is an assigned position in the rolling schedule.
type slot struct {
	date string
	tm   string
}

// planSlots lays out n consecutive slots starting at 09:00 on startDate.
// The cursor skips the lunch window and rolls over to 09:00 of the next
// calendar day when the workday is full; overflow is never dropped.
func planSlots(startDate time.Time, n int) []slot {
	out := make([]slot, 0, n)
	cur := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), dayStartHour, 0, 0, 0, startDate.Location())

	for len(out) < n {
		if cur.Hour() >= lunchStart && cur.Hour() < lunchEnd {
			cur = time.Date(cur.Year(), cur.Month(), cur.Day(), lunchEnd, 0, 0, 0, cur.Location())
		}
		if cur.Hour() >= dayEndHour {
			next := cur.AddDate(0, 0, 1)
			cur = time.Date(next.Year(), next.Month(), next.Day(), dayStartHour, 0, 0, 0, next.Location())
		}
		out = append(out, slot{date: cur.Format(dateLayout), tm: cur.Format(timeLayout)})
		cur = cur.Add(slotDuration)
	}
	return out
}

// overlaps reports whether two one-hour windows starting at a and b collide.
// Times are HH:mm on the same date; equal starts overlap too.
func overlaps(a, b string) (bool, error) {
	ta, err := time.Parse(timeLayout, a)
	if err != nil {
		return false, fmt.Errorf("parse time %q: %w", a, err)
	}
	tb, err := time.Parse(timeLayout, b)
	if err != nil {
		return false, fmt.Errorf("parse time %q: %w", b, err)
	}
	diff := ta.Sub(tb)
	if diff < 0 {
		diff = -diff
	}
	return diff < slotDuration, nil
}

// freeHours are the assignable start hours of a workday; 13 is lunch.
var freeHours = []int{9, 10, 11, 12, 14, 15, 16, 17}
