package out

import (
	"context"

	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
)

type SettingsPort interface {
	// Загрузка способов доставки и настроек самовывоза, уже декодированных в доменные типы
	GetSettings(ctx context.Context) (*domain.Settings, error)
}
