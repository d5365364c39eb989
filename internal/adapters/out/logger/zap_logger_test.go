package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &ZapLogger{
		base:          zap.New(core),
		defaultFields: make(out.LogFields),
	}, logs
}

func TestZapLogger_Fields(t *testing.T) {
	base, logs := newObservedLogger()

	l := base.WithModule("DeliveryService").WithFields(out.LogFields{
		"methodIndex": 1,
		"dayType":     "WEEKDAY",
	})
	l.Warn("slots.generate.empty", out.LogFields{
		"dayType": "WEEKEND",
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "slots.generate.empty", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "DeliveryService", fields["module"])
	assert.EqualValues(t, 1, fields["methodIndex"])
	assert.Equal(t, "WEEKEND", fields["dayType"], "call fields override default fields")
}

func TestZapLogger_DefaultModule(t *testing.T) {
	base, logs := newObservedLogger()

	base.Info("app.starting", out.LogFields{})

	require.Len(t, logs.All(), 1)
	assert.Equal(t, "unknown", logs.All()[0].ContextMap()["module"])
}

func TestZapLogger_WithFieldsDoesNotLeak(t *testing.T) {
	base, logs := newObservedLogger()

	_ = base.WithFields(out.LogFields{"orderId": "a"})
	base.Debug("delivery.finalize.completed", out.LogFields{})

	_, exists := logs.All()[0].ContextMap()["orderId"]
	assert.False(t, exists)
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger(false, "Europe/Moscow")
	require.NoError(t, err)
	require.NotNil(t, l)

	l, err = NewZapLogger(true, "not/a-zone")
	require.NoError(t, err)
	require.NotNil(t, l)
}
