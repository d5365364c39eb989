package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	RateKindCustomDelivery = "custom_delivery"
	RateKindLocalPickup    = "local_pickup"
)

// CartContext единственный сигнал корзины, который нужен расчету
type CartContext struct {
	Total decimal.Decimal `json:"total"`
}

type RateQuote struct {
	MethodIndex               int             `json:"methodIndex"`
	MethodID                  string          `json:"methodId"`
	RateID                    string          `json:"rateId"`
	Label                     string          `json:"label"`
	Description               string          `json:"description,omitempty"`
	Note                      string          `json:"note,omitempty"`
	EffectiveCost             decimal.Decimal `json:"effectiveCost"`
	Waived                    bool            `json:"waived"`
	RequiresDatetime          bool            `json:"requiresDatetime"`
	AllowExactTime            bool            `json:"allowExactTime"`
	ExternalServiceIDResolved string          `json:"externalServiceIdResolved"`

	// Копия настроек метода, чтобы запрос слотов не ходил за конфигурацией повторно
	Method DeliveryMethod `json:"-"`
}

func RateID(methodIndex int) string {
	return fmt.Sprintf("%s_%d", RateKindCustomDelivery, methodIndex)
}

// ParseRateID разбирает идентификатор тарифа обратно в индекс метода или самовывоз
func ParseRateID(rateID string) (methodIndex int, pickup bool, err error) {
	if rateID == RateKindLocalPickup {
		return 0, true, nil
	}

	raw, found := strings.CutPrefix(rateID, RateKindCustomDelivery+"_")
	if !found {
		return 0, false, fmt.Errorf("%w: unknown rate id %q", ErrMethodNotFound, rateID)
	}

	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, false, fmt.Errorf("%w: unknown rate id %q", ErrMethodNotFound, rateID)
	}

	return index, false, nil
}
