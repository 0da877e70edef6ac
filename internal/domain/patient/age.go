package patient

import (
	"fmt"
	"time"
)

// AgeString renders a pediatric age as "2y 3m", "4m 12d" or "21d"
// depending on how old the patient is. The year/month/day components are
// computed by calendar borrowing: a negative day count borrows the length
// of the month preceding now, a negative month count borrows a year.
func AgeString(dob, now time.Time) string {
	years := now.Year() - dob.Year()
	months := int(now.Month()) - int(dob.Month())
	days := now.Day() - dob.Day()

	if days < 0 {
		months--
		// day 0 of the current month is the last day of the previous one
		days += time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, time.UTC).Day()
	}
	if months < 0 {
		years--
		months += 12
	}

	switch {
	case years > 0:
		return fmt.Sprintf("%dy %dm", years, months)
	case months > 0:
		return fmt.Sprintf("%dm %dd", months, days)
	default:
		return fmt.Sprintf("%dd", days)
	}
}
