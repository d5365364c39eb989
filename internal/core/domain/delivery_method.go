package domain

import "github.com/shopspring/decimal"

// TimeRange диапазон для генерации почасовых слотов
type TimeRange struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// TimeInterval интервал доставки, который показывается как есть
type TimeInterval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

var (
	DefaultDeliveryRange = TimeRange{Start: NewTimeOfDay(9, 0), End: NewTimeOfDay(21, 0)}
	DefaultPickupRange   = TimeRange{Start: NewTimeOfDay(11, 0), End: NewTimeOfDay(21, 0)}
)

// DeliveryMethod настроенный способ доставки. Порядок методов в списке значим:
// индекс метода используется как его идентификатор при выборе слота и оформлении заказа.
type DeliveryMethod struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	Note             string          `json:"note,omitempty"`
	Cost             decimal.Decimal `json:"cost"`
	FreeAbove        decimal.Decimal `json:"freeAbove"`
	RequiresDatetime bool            `json:"requiresDatetime"`
	AllowExactTime   bool            `json:"allowExactTime"`

	// nil означает "не задано", тогда используется DefaultDeliveryRange
	WeekdayRange *TimeRange `json:"weekdayRange,omitempty"`
	WeekendRange *TimeRange `json:"weekendRange,omitempty"`

	WeekdayIntervals []TimeInterval `json:"weekdayIntervals,omitempty"`
	WeekendIntervals []TimeInterval `json:"weekendIntervals,omitempty"`

	ExternalServiceIDPaid string `json:"externalServiceIdPaid,omitempty"`
	ExternalServiceIDFree string `json:"externalServiceIdFree,omitempty"`
}

// PickupConfig настройки самовывоза: один диапазон без деления на будни и выходные
type PickupConfig struct {
	Enabled           bool       `json:"enabled"`
	Description       string     `json:"description,omitempty"`
	Range             *TimeRange `json:"range,omitempty"`
	ExternalServiceID string     `json:"externalServiceId,omitempty"`
}

// Settings снимок конфигурации, декодированный на границе системы
type Settings struct {
	Methods []DeliveryMethod `json:"methods"`
	Pickup  PickupConfig     `json:"pickup"`
}

func (s *Settings) Method(index int) (*DeliveryMethod, error) {
	if s == nil || index < 0 || index >= len(s.Methods) {
		return nil, ErrMethodNotFound
	}
	return &s.Methods[index], nil
}
