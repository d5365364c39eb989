package out

import (
	"context"

	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
)

type AccountingPort interface {
	GetServices(ctx context.Context) ([]domain.AccountingService, error)
	// Ссылка на услугу для позиции заказа
	ServiceHref(serviceID string) string
}
