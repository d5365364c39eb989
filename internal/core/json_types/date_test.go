package json_types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-10-20")
	require.NoError(t, err)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, time.October, date.Month())
	assert.Equal(t, 20, date.Day())
	assert.Equal(t, 0, date.Hour())

	date, err = ParseDate("2026-10-20T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 0, date.Hour(), "time part is dropped")
	assert.Equal(t, Location, date.Location())

	for _, raw := range []string{"", "20.10.2026", "2026-13-01", "2026-02-30"} {
		_, err := ParseDate(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidDate, raw)
	}
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-10-24"}`), &payload))
	assert.Equal(t, time.Saturday, payload.Date.Date.Weekday())

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-10-24"}`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`{"date":"tomorrow"}`), &payload))
}
