package delivery_service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
)

func courierMethod() domain.DeliveryMethod {
	return domain.DeliveryMethod{
		Name:                  "Courier",
		Cost:                  decimal.NewFromInt(500),
		FreeAbove:             decimal.NewFromInt(3000),
		RequiresDatetime:      true,
		AllowExactTime:        true,
		ExternalServiceIDPaid: "paid-id",
		ExternalServiceIDFree: "free-id",
	}
}

func cart(total int64) domain.CartContext {
	return domain.CartContext{Total: decimal.NewFromInt(total)}
}

func TestQuoteRates(t *testing.T) {
	t.Run("Threshold is inclusive", func(t *testing.T) {
		method := courierMethod()

		below := QuoteRate(method, 0, cart(2999))
		atThreshold := QuoteRate(method, 0, cart(3000))

		assert.True(t, decimal.NewFromInt(500).Equal(below.EffectiveCost))
		assert.False(t, below.Waived)
		assert.Equal(t, "paid-id", below.ExternalServiceIDResolved)

		assert.True(t, atThreshold.EffectiveCost.IsZero())
		assert.True(t, atThreshold.Waived)
		assert.Equal(t, "free-id", atThreshold.ExternalServiceIDResolved)
	})

	t.Run("Zero threshold never waives", func(t *testing.T) {
		method := courierMethod()
		method.FreeAbove = decimal.Zero

		quote := QuoteRate(method, 0, cart(1_000_000))

		assert.True(t, decimal.NewFromInt(500).Equal(quote.EffectiveCost))
		assert.Equal(t, "paid-id", quote.ExternalServiceIDResolved)
	})

	t.Run("Preserves order and index", func(t *testing.T) {
		second := courierMethod()
		second.Name = "  "
		second.ID = "courier-evening"

		quotes := QuoteRates([]domain.DeliveryMethod{courierMethod(), second}, cart(100))

		require.Len(t, quotes, 2)
		assert.Equal(t, 0, quotes[0].MethodIndex)
		assert.Equal(t, "custom_delivery_0", quotes[0].RateID)
		assert.Equal(t, "Courier", quotes[0].Label)
		assert.Equal(t, 1, quotes[1].MethodIndex)
		assert.Equal(t, "Delivery #2", quotes[1].Label)
		assert.Equal(t, "courier-evening", quotes[1].MethodID)
		assert.True(t, quotes[1].RequiresDatetime)
	})

	t.Run("Empty method list", func(t *testing.T) {
		quotes := QuoteRates(nil, cart(100))

		assert.NotNil(t, quotes)
		assert.Empty(t, quotes)
	})

	t.Run("Missing optional fields", func(t *testing.T) {
		quote := QuoteRate(domain.DeliveryMethod{}, 3, cart(100))

		assert.Equal(t, "Delivery #4", quote.Label)
		assert.True(t, quote.EffectiveCost.IsZero())
		assert.Equal(t, "", quote.ExternalServiceIDResolved)
	})
}

func TestResolveExternalServiceIDTracksFinalTotal(t *testing.T) {
	method := courierMethod()

	atQuote := QuoteRate(method, 0, cart(1000))
	atFinalization := ResolveExternalServiceID(method, decimal.NewFromInt(5000))

	assert.Equal(t, "paid-id", atQuote.ExternalServiceIDResolved)
	assert.Equal(t, "free-id", atFinalization)
}
