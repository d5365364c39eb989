package delivery_service

import (
	"context"
	"fmt"

	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
)

// Кэширование настроек и слотов. cachePort может быть nil, если кэш выключен.

func (s *DeliveryService) getSettings(ctx context.Context) (*domain.Settings, error) {
	if s.cachePort != nil {
		if settings, exists := s.cachePort.GetSettings(ctx); exists {
			return settings, nil
		}
		s.logger.Debug("settings.cache.miss", out.LogFields{})
	}

	settings, err := s.settingsPort.GetSettings(ctx)
	if err != nil {
		s.logger.Error("settings.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("settings.fetch_failed: %w", err)
	}

	if s.cachePort != nil {
		// Слоты в кэше построены по предыдущему снимку настроек
		s.cachePort.InvalidateAllSlotsCache(ctx)
		s.cachePort.StoreSettings(ctx, *settings)
	}

	return settings, nil
}

func (s *DeliveryService) getSlotsCache(ctx context.Context, key out.SlotsCacheKey) ([]domain.Slot, bool) {
	if s.cachePort == nil {
		return nil, false
	}
	return s.cachePort.GetSlots(ctx, key)
}

func (s *DeliveryService) storeSlotsCache(ctx context.Context, key out.SlotsCacheKey, slots []domain.Slot) {
	if s.cachePort == nil {
		return
	}
	s.cachePort.StoreSlots(ctx, key, slots)
}

func (s *DeliveryService) InvalidateSettingsCache(ctx context.Context) error {
	if s.cachePort == nil {
		return nil
	}
	s.cachePort.InvalidateSettingsCache(ctx)
	// Слоты построены по старым настройкам
	s.cachePort.InvalidateAllSlotsCache(ctx)

	return nil
}

func (s *DeliveryService) InvalidateAllSlotsCache(ctx context.Context) error {
	if s.cachePort == nil {
		return nil
	}
	s.cachePort.InvalidateAllSlotsCache(ctx)

	return nil
}
