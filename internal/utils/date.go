package utils

import "time"

func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameOrAfterDay сравнивает только календарные даты, время суток игнорируется
func SameOrAfterDay(date, day time.Time) bool {
	day = day.In(date.Location())
	return !StartCurrentDay(date).Before(StartCurrentDay(day))
}
