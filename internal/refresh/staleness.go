package refresh

import "time"

// refreshedToday reports whether the college's last refresh falls on the
// current calendar day. The comparison includes year and month, so a
// college last refreshed on the final day of a month is due again on the
// first of the next.
func refreshedToday(lastUpdate *time.Time, now time.Time) bool {
	if lastUpdate == nil {
		return false
	}
	y1, m1, d1 := lastUpdate.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
