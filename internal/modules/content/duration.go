package content

import (
	"fmt"
	"time"
)

const (
	day          = 24 * time.Hour
	daysPerMonth = 30
)

// Duration renders the span between two dates with 30-day months, e.g.
// "9 days", "3 months 1 day". A partial day counts as a whole one and the
// order of the arguments does not matter.
func Duration(from, to time.Time) string {
	diff := to.Sub(from)
	if diff < 0 {
		diff = -diff
	}
	days := int((diff + day - 1) / day)

	months, rest := days/daysPerMonth, days%daysPerMonth
	if months == 0 {
		return unit(days, "day")
	}
	out := unit(months, "month")
	if rest > 0 {
		out += " " + unit(rest, "day")
	}
	return out
}

func unit(n int, name string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss", n, name)
	}
	return fmt.Sprintf("%d %s", n, name)
}
