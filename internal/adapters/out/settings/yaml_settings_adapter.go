package settings

import (
	"context"
	"fmt"
	"os"

	"github.com/suchimauz/checkout-delivery-slots/internal/config"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
)

type YamlSettingsAdapter struct {
	path   string
	logger out.LoggerPort
}

func NewYamlSettingsAdapter(cfg *config.Config, logger out.LoggerPort) *YamlSettingsAdapter {
	return &YamlSettingsAdapter{
		path:   cfg.Settings.Path,
		logger: logger,
	}
}

func (a *YamlSettingsAdapter) GetSettings(ctx context.Context) (*domain.Settings, error) {
	a.logger.Debug("settings.fetch", out.LogFields{
		"path": a.path,
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		a.logger.Error("settings.read_failed", out.LogFields{
			"path":  a.path,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("settings.read_failed: %w", err)
	}

	settings, err := DecodeSettings(data, a.logger)
	if err != nil {
		a.logger.Error("settings.decode_failed", out.LogFields{
			"path":  a.path,
			"error": err.Error(),
		})
		return nil, err
	}

	a.logger.Debug("settings.fetch_success", out.LogFields{
		"path":          a.path,
		"methodsCount":  len(settings.Methods),
		"pickupEnabled": settings.Pickup.Enabled,
	})

	return settings, nil
}
