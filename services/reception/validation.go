package reception

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// validateStay checks both dates parse as YYYY-MM-DD and the checkout falls
// strictly after the check-in. Returns a guest-presentable message on failure.
func validateStay(checkIn, checkOut string) error {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return fmt.Errorf("invalid check-in date %q, expected YYYY-MM-DD", checkIn)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return fmt.Errorf("invalid check-out date %q, expected YYYY-MM-DD", checkOut)
	}
	if !out.After(in) {
		return fmt.Errorf("check-out date %s must be after check-in date %s", checkOut, checkIn)
	}
	return nil
}
