package patient

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeString(t *testing.T) {
	cases := []struct {
		name string
		dob  time.Time
		now  time.Time
		want string
	}{
		{"years and months", date(2022, time.March, 10), date(2025, time.January, 15), "2y 10m"},
		{"exact years", date(2020, time.June, 1), date(2025, time.June, 1), "5y 0m"},
		{"months and days", date(2024, time.October, 20), date(2025, time.January, 15), "2m 26d"},
		{"days only", date(2025, time.January, 1), date(2025, time.January, 15), "14d"},
		{"newborn today", date(2025, time.January, 15), date(2025, time.January, 15), "0d"},
		{"day borrow from previous month", date(2024, time.November, 30), date(2025, time.January, 5), "1m 6d"},
		{"month borrow from year", date(2024, time.November, 10), date(2025, time.January, 10), "2m 0d"},
		{"birthday not yet reached", date(2022, time.June, 20), date(2025, time.June, 10), "2y 11m"},
	}
	for _, tc := range cases {
		if got := AgeString(tc.dob, tc.now); got != tc.want {
			t.Errorf("%s: AgeString = %q, want %q", tc.name, got, tc.want)
		}
	}
}
