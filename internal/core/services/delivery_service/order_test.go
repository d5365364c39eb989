package delivery_service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
)

func testHref(id string) string {
	return "https://accounting.test/entity/service/" + id
}

func TestFinalizeDelivery(t *testing.T) {
	settings := &domain.Settings{
		Methods: []domain.DeliveryMethod{courierMethod()},
		Pickup: domain.PickupConfig{
			Enabled:           true,
			ExternalServiceID: "pickup-id",
		},
	}
	date := time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)

	t.Run("Paid delivery", func(t *testing.T) {
		selection := domain.Selection{MethodIndex: 0, Date: date, Time: tod(t, "10:00")}

		result, err := FinalizeDelivery(settings, selection, cart(1000), testHref)

		require.NoError(t, err)
		assert.Equal(t, "custom_delivery_0", result.RateID)
		assert.Equal(t, "paid-id", result.ExternalServiceID)
		assert.Equal(t, "2026-10-20 10:00", result.DateTime)
		assert.Equal(t, []string{
			"Delivery method: Courier",
			"Delivery cost: 500.00",
			"Delivery date and time: 2026-10-20 10:00",
		}, result.Description)
		assert.Equal(t, []domain.OrderAttribute{{Name: "Delivery date and time", Value: "2026-10-20 10:00"}}, result.Attributes)
		require.Len(t, result.Positions, 1)
		assert.Equal(t, int64(50000), result.Positions[0].Price)
		assert.Equal(t, testHref("paid-id"), result.Positions[0].Assortment.Meta.Href)
		assert.Equal(t, "service", result.Positions[0].Assortment.Meta.Type)
	})

	t.Run("Final total crosses threshold", func(t *testing.T) {
		selection := domain.Selection{MethodIndex: 0, Date: date, Time: tod(t, "10:00")}

		result, err := FinalizeDelivery(settings, selection, cart(5000), testHref)

		require.NoError(t, err)
		assert.Equal(t, "free-id", result.ExternalServiceID)
		assert.True(t, result.EffectiveCost.IsZero())
		assert.Contains(t, result.Description, "Delivery cost: Free")
		assert.Equal(t, int64(0), result.Positions[0].Price)
	})

	t.Run("Fractional cost", func(t *testing.T) {
		fractional := &domain.Settings{Methods: []domain.DeliveryMethod{{
			Name:                  "Express",
			Cost:                  decimal.RequireFromString("249.99"),
			ExternalServiceIDPaid: "express",
		}}}

		result, err := FinalizeDelivery(fractional, domain.Selection{}, cart(10), testHref)

		require.NoError(t, err)
		assert.Equal(t, int64(24999), result.Positions[0].Price)
		assert.Empty(t, result.DateTime)
		assert.Empty(t, result.Attributes)
	})

	t.Run("Pickup", func(t *testing.T) {
		selection := domain.Selection{Pickup: true, Date: date, Time: tod(t, "12:00")}

		result, err := FinalizeDelivery(settings, selection, cart(100), testHref)

		require.NoError(t, err)
		assert.Equal(t, "local_pickup", result.RateID)
		assert.Equal(t, "pickup-id", result.ExternalServiceID)
		assert.Contains(t, result.Description, "Pickup date and time: 2026-10-20 12:00")
		require.Len(t, result.Positions, 1)
		assert.Equal(t, int64(0), result.Positions[0].Price)
	})

	t.Run("Unknown method", func(t *testing.T) {
		_, err := FinalizeDelivery(settings, domain.Selection{MethodIndex: 7}, cart(100), testHref)

		assert.ErrorIs(t, err, domain.ErrMethodNotFound)
	})

	t.Run("Pickup disabled", func(t *testing.T) {
		disabled := &domain.Settings{}

		_, err := FinalizeDelivery(disabled, domain.Selection{Pickup: true}, cart(100), testHref)

		assert.ErrorIs(t, err, domain.ErrPickupDisabled)
	})
}
