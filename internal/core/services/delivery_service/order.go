package delivery_service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/json_types"
)

const (
	pickupMethodName       = "Pickup"
	costFreeLabel          = "Free"
	deliveryDateTimeLabel  = "Delivery date and time"
	pickupDateTimeLabel    = "Pickup date and time"
	accountingServiceType  = "service"
	accountingMinorInUnits = 100
)

// FinalizeDelivery пересчитывает стоимость и идентификатор услуги по итоговой сумме корзины
// и собирает данные для учетной системы. serviceHref строит ссылку на услугу по идентификатору.
func FinalizeDelivery(settings *domain.Settings, selection domain.Selection, cart domain.CartContext, serviceHref func(string) string) (*domain.FinalizedDelivery, error) {
	if selection.Pickup {
		return finalizePickup(settings, selection, serviceHref)
	}

	method, err := settings.Method(selection.MethodIndex)
	if err != nil {
		return nil, err
	}

	quote := QuoteRate(*method, selection.MethodIndex, cart)

	result := &domain.FinalizedDelivery{
		RateID:            quote.RateID,
		MethodName:        quote.Label,
		EffectiveCost:     quote.EffectiveCost,
		Waived:            quote.Waived,
		ExternalServiceID: quote.ExternalServiceIDResolved,
		DateTime:          selectionDateTime(selection),
		Attributes:        []domain.OrderAttribute{},
		Positions:         []domain.AccountingPosition{},
	}

	result.Description = []string{
		"Delivery method: " + quote.Label,
		"Delivery cost: " + costLabel(quote.EffectiveCost),
	}
	if result.DateTime != "" {
		result.Description = append(result.Description, deliveryDateTimeLabel+": "+result.DateTime)
		result.Attributes = append(result.Attributes, domain.OrderAttribute{
			Name:  deliveryDateTimeLabel,
			Value: result.DateTime,
		})
	}

	if result.ExternalServiceID != "" {
		result.Positions = append(result.Positions, accountingPosition(serviceHref(result.ExternalServiceID), quote.EffectiveCost))
	}

	return result, nil
}

func finalizePickup(settings *domain.Settings, selection domain.Selection, serviceHref func(string) string) (*domain.FinalizedDelivery, error) {
	if settings == nil || !settings.Pickup.Enabled {
		return nil, domain.ErrPickupDisabled
	}

	result := &domain.FinalizedDelivery{
		RateID:            domain.RateKindLocalPickup,
		MethodName:        pickupMethodName,
		EffectiveCost:     decimal.Zero,
		Waived:            true,
		ExternalServiceID: settings.Pickup.ExternalServiceID,
		DateTime:          selectionDateTime(selection),
		Attributes:        []domain.OrderAttribute{},
		Positions:         []domain.AccountingPosition{},
	}

	result.Description = []string{
		"Delivery method: " + pickupMethodName,
		"Delivery cost: " + costFreeLabel,
	}
	if result.DateTime != "" {
		result.Description = append(result.Description, pickupDateTimeLabel+": "+result.DateTime)
		result.Attributes = append(result.Attributes, domain.OrderAttribute{
			Name:  pickupDateTimeLabel,
			Value: result.DateTime,
		})
	}

	// Самовывоз всегда бесплатный, позиция нужна только для учета
	if result.ExternalServiceID != "" {
		result.Positions = append(result.Positions, accountingPosition(serviceHref(result.ExternalServiceID), decimal.Zero))
	}

	return result, nil
}

func selectionDateTime(selection domain.Selection) string {
	if selection.Date.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %s", selection.Date.Format(json_types.DateFormat), selection.Time)
}

func costLabel(cost decimal.Decimal) string {
	if cost.IsZero() {
		return costFreeLabel
	}
	return cost.StringFixed(2)
}

func accountingPosition(href string, cost decimal.Decimal) domain.AccountingPosition {
	return domain.AccountingPosition{
		Quantity: 1,
		Price:    cost.Mul(decimal.NewFromInt(accountingMinorInUnits)).Round(0).IntPart(),
		Assortment: domain.AccountingAssortment{
			Meta: domain.AccountingMeta{
				Href: href,
				Type: accountingServiceType,
			},
		},
	}
}
