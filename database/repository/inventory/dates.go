package inventory

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// overlaps reports whether the half-open stays [aIn, aOut) and [bIn, bOut)
// share at least one night.
func overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// covers reports whether day falls within the half-open stay [in, out).
func covers(in, out, day time.Time) bool {
	return !day.Before(in) && day.Before(out)
}

// startOfDay truncates a timestamp to its calendar date in UTC.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
