package service

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseDate 接受 YYYY-MM-DD 或 RFC3339；取輸入時區下的日曆日，存為該日 UTC 零時
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// inclusiveDays 以日曆日計算，起訖同一天為 1
func inclusiveDays(from, to time.Time) int {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
