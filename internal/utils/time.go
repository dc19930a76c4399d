package utils

import (
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form. The layout must
// match exactly; time.Parse alone accepts single-digit components.
func ParseDate(value string) (time.Time, bool) {
	if len(value) != len(DateLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
