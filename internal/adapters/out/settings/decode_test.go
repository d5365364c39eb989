package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/checkout-delivery-slots/internal/adapters/out/logger"
	"github.com/suchimauz/checkout-delivery-slots/internal/config"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
)

const fullDocument = `
methods:
  - name: Courier
    description: Delivery across the city
    note: Call before arrival
    cost: "500"
    free_above: 3000,50
    requires_datetime: "1"
    allow_exact_time: yes
    weekday_time_start: "10:00"
    weekday_time_end: "18:00"
    moysklad_service_id_paid: paid-id
    moysklad_service_id_free: free-id
  - id: express
    name: Express
    cost: 900
    allow_intervals: true
    weekday_intervals:
      - start: "09:00"
        end: "12:00"
      - start: "18:00"
        end: "21:00"
      - start: "25:00"
        end: "26:00"
    weekend_intervals:
      - start: "12:00"
        end: "12:00"
pickup:
  enabled: "0"
  time_start: "10:00"
  time_end: "20:00"
  moysklad_service_id: pickup-id
`

func tod(h, m int) domain.TimeOfDay {
	return domain.NewTimeOfDay(h, m)
}

func TestDecodeSettings_Full(t *testing.T) {
	settings, err := DecodeSettings([]byte(fullDocument), logger.NewNopLogger())
	require.NoError(t, err)
	require.Len(t, settings.Methods, 2)

	courier := settings.Methods[0]
	assert.Equal(t, "custom_delivery_0", courier.ID)
	assert.Equal(t, "Courier", courier.Name)
	assert.Equal(t, "Delivery across the city", courier.Description)
	assert.Equal(t, "Call before arrival", courier.Note)
	assert.True(t, courier.Cost.Equal(decimal.NewFromInt(500)))
	assert.True(t, courier.FreeAbove.Equal(decimal.RequireFromString("3000.50")))
	assert.True(t, courier.RequiresDatetime)
	assert.True(t, courier.AllowExactTime)
	require.NotNil(t, courier.WeekdayRange)
	assert.Equal(t, domain.TimeRange{Start: tod(10, 0), End: tod(18, 0)}, *courier.WeekdayRange)
	assert.Nil(t, courier.WeekendRange)
	assert.Equal(t, "paid-id", courier.ExternalServiceIDPaid)
	assert.Equal(t, "free-id", courier.ExternalServiceIDFree)

	express := settings.Methods[1]
	assert.Equal(t, "express", express.ID)
	assert.False(t, express.AllowExactTime)
	assert.Equal(t, []domain.TimeInterval{
		{Start: tod(9, 0), End: tod(12, 0)},
		{Start: tod(18, 0), End: tod(21, 0)},
	}, express.WeekdayIntervals, "invalid interval is dropped, order is kept")
	assert.Equal(t, []domain.TimeInterval{{Start: tod(12, 0), End: tod(12, 0)}}, express.WeekendIntervals)

	assert.False(t, settings.Pickup.Enabled)
	require.NotNil(t, settings.Pickup.Range)
	assert.Equal(t, domain.TimeRange{Start: tod(10, 0), End: tod(20, 0)}, *settings.Pickup.Range)
	assert.Equal(t, "pickup-id", settings.Pickup.ExternalServiceID)
}

func TestDecodeSettings_Defaults(t *testing.T) {
	doc := `
methods:
  - name: ""
    cost: abc
    free_above: "-100"
    weekday_time_start: "7pm"
    weekday_time_end: "20:00"
`
	settings, err := DecodeSettings([]byte(doc), logger.NewNopLogger())
	require.NoError(t, err)
	require.Len(t, settings.Methods, 1)

	method := settings.Methods[0]
	assert.True(t, method.Cost.IsZero(), "unparsable cost becomes zero")
	assert.True(t, method.FreeAbove.IsZero(), "negative threshold becomes zero")
	assert.False(t, method.RequiresDatetime)
	assert.False(t, method.AllowExactTime)
	require.NotNil(t, method.WeekdayRange)
	assert.Equal(t, domain.DefaultDeliveryRange.Start, method.WeekdayRange.Start, "invalid bound falls back to default")
	assert.Equal(t, tod(20, 0), method.WeekdayRange.End)

	assert.True(t, settings.Pickup.Enabled, "pickup is enabled unless switched off")
	assert.Nil(t, settings.Pickup.Range)
}

func TestDecodeSettings_IntervalsDisabled(t *testing.T) {
	doc := `
methods:
  - name: Courier
    allow_exact_time: true
    allow_intervals: "0"
    weekday_intervals:
      - start: "09:00"
        end: "12:00"
`
	settings, err := DecodeSettings([]byte(doc), logger.NewNopLogger())
	require.NoError(t, err)

	method := settings.Methods[0]
	assert.Empty(t, method.WeekdayIntervals)
	assert.True(t, method.AllowExactTime)
}

func TestDecodeSettings_Empty(t *testing.T) {
	settings, err := DecodeSettings([]byte(""), logger.NewNopLogger())
	require.NoError(t, err)
	assert.Empty(t, settings.Methods)
	assert.True(t, settings.Pickup.Enabled)
}

func TestDecodeSettings_InvalidYaml(t *testing.T) {
	_, err := DecodeSettings([]byte("methods: [\n"), logger.NewNopLogger())
	assert.Error(t, err)
}

func TestYamlSettingsAdapter_GetSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullDocument), 0o600))

	cfg := &config.Config{}
	cfg.Settings.Path = path

	adapter := NewYamlSettingsAdapter(cfg, logger.NewNopLogger())
	settings, err := adapter.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Len(t, settings.Methods, 2)
}

func TestYamlSettingsAdapter_MissingFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.Settings.Path = filepath.Join(t.TempDir(), "missing.yaml")

	adapter := NewYamlSettingsAdapter(cfg, logger.NewNopLogger())
	_, err := adapter.GetSettings(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeSettings_UniqueMethodIDs(t *testing.T) {
	doc := `
methods:
  - id: courier
    name: Courier
  - id: courier
    name: Courier evening
  - id: custom_delivery_2
    name: Express
  - name: Pickup point
  - id: custom_delivery_3
    name: Clash with derived id
`
	settings, err := DecodeSettings([]byte(doc), logger.NewNopLogger())
	require.NoError(t, err)

	ids := make([]string, 0, len(settings.Methods))
	for _, method := range settings.Methods {
		ids = append(ids, method.ID)
	}
	assert.Equal(t, []string{"courier", "custom_delivery_1", "custom_delivery_2", "custom_delivery_3", "custom_delivery_4"}, ids)
}
