package util

import "time"

// AddHours returns t shifted by h hours. Fractional hours are honoured.
func AddHours(t time.Time, h float64) time.Time {
	return t.Add(time.Duration(h * float64(time.Hour)))
}

// AddMonth returns t shifted by m calendar months. When the day of month does not
// exist in the target month, the result is the last day of that month
// (31 Jan + 1 month = 28/29 Feb).
func AddMonth(t time.Time, m int) time.Time {
	shifted := t.AddDate(0, m, 0)
	if shifted.Day() != t.Day() {
		// AddDate normalised into the following month; step back to its day 0.
		shifted = shifted.AddDate(0, 0, -shifted.Day())
	}
	return shifted
}
