package json_types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
)

const DateFormat = "2006-01-02"

// Location таймзона магазина, в которой трактуются календарные даты.
// Выставляется из конфига при старте.
var Location = time.Local

// ParseDate парсит дату в формате 2006-01-02, если не удается, то пробует RFC3339
// и отбрасывает время
func ParseDate(str string) (time.Time, error) {
	parsedDate, err := time.ParseInLocation(DateFormat, str, Location)
	if err != nil {
		parsedDate, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, str)
		}
		parsedDate = parsedDate.In(Location)
		parsedDate = time.Date(parsedDate.Year(), parsedDate.Month(), parsedDate.Day(), 0, 0, 0, 0, Location)
	}

	return parsedDate, nil
}

type Date struct {
	Date time.Time
}

func (t *Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	parsedDate, err := ParseDate(str)
	if err != nil {
		return err
	}

	*t = Date{Date: parsedDate}
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format(DateFormat))
}

// UnmarshalText нужен для биндинга query-параметров
func (t *Date) UnmarshalText(data []byte) error {
	parsedDate, err := ParseDate(string(data))
	if err != nil {
		return err
	}

	*t = Date{Date: parsedDate}
	return nil
}
