package settings

import (
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Документ настроек в том виде, в каком его сохраняет админка магазина.
// Значения приходят как попало (числа строками, флаги "1"), поэтому скаляры разбираются вручную.

type settingsDocument struct {
	Methods []methodDocument `yaml:"methods"`
	Pickup  pickupDocument   `yaml:"pickup"`
}

type intervalDocument struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type methodDocument struct {
	ID               string             `yaml:"id"`
	Name             string             `yaml:"name"`
	Description      string             `yaml:"description"`
	Note             string             `yaml:"note"`
	Cost             money              `yaml:"cost"`
	FreeAbove        money              `yaml:"free_above"`
	RequiresDatetime flag               `yaml:"requires_datetime"`
	AllowExactTime   flag               `yaml:"allow_exact_time"`
	AllowIntervals   flag               `yaml:"allow_intervals"`
	WeekdayTimeStart string             `yaml:"weekday_time_start"`
	WeekdayTimeEnd   string             `yaml:"weekday_time_end"`
	WeekendTimeStart string             `yaml:"weekend_time_start"`
	WeekendTimeEnd   string             `yaml:"weekend_time_end"`
	WeekdayIntervals []intervalDocument `yaml:"weekday_intervals"`
	WeekendIntervals []intervalDocument `yaml:"weekend_intervals"`
	ServiceIDPaid    string             `yaml:"moysklad_service_id_paid"`
	ServiceIDFree    string             `yaml:"moysklad_service_id_free"`
}

type pickupDocument struct {
	Enabled     flag   `yaml:"enabled"`
	TimeStart   string `yaml:"time_start"`
	TimeEnd     string `yaml:"time_end"`
	Description string `yaml:"description"`
	ServiceID   string `yaml:"moysklad_service_id"`
}

// money денежное значение; Set=false если поле не задано, Valid=false если не разобралось
type money struct {
	Value decimal.Decimal
	Set   bool
	Valid bool
	Raw   string
}

func (m *money) UnmarshalYAML(node *yaml.Node) error {
	m.Set = true
	m.Raw = strings.TrimSpace(node.Value)
	if m.Raw == "" {
		m.Set = false
		return nil
	}

	value, err := decimal.NewFromString(strings.ReplaceAll(m.Raw, ",", "."))
	if err != nil {
		m.Valid = false
		return nil
	}
	m.Value = value
	m.Valid = true
	return nil
}

// flag булево значение, которое может прийти как true/false, 1/0, yes/no, on/off
type flag struct {
	Value bool
	Set   bool
}

func (f *flag) UnmarshalYAML(node *yaml.Node) error {
	raw := strings.ToLower(strings.TrimSpace(node.Value))
	switch raw {
	case "":
		return nil
	case "1", "true", "yes", "on", "y":
		f.Value = true
	default:
		f.Value = false
	}
	f.Set = true
	return nil
}
