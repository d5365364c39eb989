package delivery_service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
)

// IsWaived доставка бесплатна, если порог задан и сумма корзины его достигла (граница включительно)
func IsWaived(method domain.DeliveryMethod, total decimal.Decimal) bool {
	return method.FreeAbove.IsPositive() && total.GreaterThanOrEqual(method.FreeAbove)
}

func EffectiveCost(method domain.DeliveryMethod, total decimal.Decimal) decimal.Decimal {
	if IsWaived(method, total) {
		return decimal.Zero
	}
	return method.Cost
}

// ResolveExternalServiceID вызывается и при расчете, и при оформлении заказа
// с итоговой суммой корзины: результат нельзя брать из старого расчета
func ResolveExternalServiceID(method domain.DeliveryMethod, total decimal.Decimal) string {
	if IsWaived(method, total) {
		return method.ExternalServiceIDFree
	}
	return method.ExternalServiceIDPaid
}

func MethodLabel(method domain.DeliveryMethod, index int) string {
	if name := strings.TrimSpace(method.Name); name != "" {
		return name
	}
	return fmt.Sprintf("Delivery #%d", index+1)
}

// QuoteRates считает стоимость каждого метода, порядок методов сохраняется
func QuoteRates(methods []domain.DeliveryMethod, cart domain.CartContext) []domain.RateQuote {
	quotes := make([]domain.RateQuote, 0, len(methods))
	for index, method := range methods {
		quotes = append(quotes, QuoteRate(method, index, cart))
	}
	return quotes
}

func QuoteRate(method domain.DeliveryMethod, index int, cart domain.CartContext) domain.RateQuote {
	return domain.RateQuote{
		MethodIndex:               index,
		MethodID:                  method.ID,
		RateID:                    domain.RateID(index),
		Label:                     MethodLabel(method, index),
		Description:               method.Description,
		Note:                      method.Note,
		EffectiveCost:             EffectiveCost(method, cart.Total),
		Waived:                    IsWaived(method, cart.Total),
		RequiresDatetime:          method.RequiresDatetime,
		AllowExactTime:            method.AllowExactTime,
		ExternalServiceIDResolved: ResolveExternalServiceID(method, cart.Total),
		Method:                    method,
	}
}
