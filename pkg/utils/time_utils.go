package utils

import "time"

// PeriodStart resolves a leaderboard/stats period ("7d", "30d", "90d",
// "all") to the inclusive lower bound of the window. "all" returns the
// zero time.
func PeriodStart(period string, now time.Time) time.Time {
	switch period {
	case "7d":
		return now.AddDate(0, 0, -7)
	case "30d":
		return now.AddDate(0, 0, -30)
	case "90d":
		return now.AddDate(0, 0, -90)
	case "all":
		return time.Time{}
	default:
		return now.AddDate(0, 0, -30)
	}
}

func ValidPeriod(period string) bool {
	switch period {
	case "", "7d", "30d", "90d", "all":
		return true
	}
	return false
}

// DayKey buckets a unix timestamp into a YYYY-MM-DD key in UTC.
func DayKey(unix int64) string {
	return time.Unix(unix, 0).UTC().Format("2006-01-02")
}
