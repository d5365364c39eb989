package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay время на циферблате в минутах от полуночи, 00:00-23:59.
type TimeOfDay int

const minutesInDay = 24 * 60

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay принимает только формат HH:MM с двузначным часом
func ParseTimeOfDay(str string) (TimeOfDay, error) {
	if len(str) != 5 || str[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, str)
	}

	hour, err := strconv.Atoi(str[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, str)
	}
	minute, err := strconv.Atoi(str[3:])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, str)
	}

	return NewTimeOfDay(hour, minute), nil
}

// ParseTimeOfDayOr возвращает def, если строка пустая или битая
func ParseTimeOfDayOr(str string, def TimeOfDay) (TimeOfDay, bool) {
	t, err := ParseTimeOfDay(strings.TrimSpace(str))
	if err != nil {
		return def, false
	}
	return t, true
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesInDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
