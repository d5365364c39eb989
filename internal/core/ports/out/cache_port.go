package out

import (
	"context"

	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
)

// SlotsCacheKey слоты зависят только от метода и типа дня, поэтому дата в ключ не входит
type SlotsCacheKey struct {
	Pickup      bool
	MethodIndex int
	DayType     domain.DayType
}

type CachePort interface {
	// Кэширование настроек
	GetSettings(ctx context.Context) (*domain.Settings, bool)
	StoreSettings(ctx context.Context, settings domain.Settings)
	InvalidateSettingsCache(ctx context.Context)

	// Кэширование слотов
	GetSlots(ctx context.Context, key SlotsCacheKey) ([]domain.Slot, bool)
	StoreSlots(ctx context.Context, key SlotsCacheKey, slots []domain.Slot)
	InvalidateAllSlotsCache(ctx context.Context)
}
