package in

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
)

type SlotRequest struct {
	MethodIndex int
	Date        time.Time
	// Клиент может сам решить, выходной ли день; по умолчанию определяется по дате
	DayTypeOverride *domain.DayType
	Debug           bool
}

type FinalizeRequest struct {
	OrderID   uuid.UUID
	Selection domain.Selection
	Cart      domain.CartContext
}

type DeliveryUseCase interface {
	// Расчет стоимости всех способов доставки для корзины
	QuoteRates(ctx context.Context, cart domain.CartContext) ([]domain.RateQuote, error)

	// Слоты для способа доставки или самовывоза на дату
	GetSlots(ctx context.Context, req SlotRequest) ([]domain.Slot, []domain.DebugInfo, error)
	GetPickupSlots(ctx context.Context, date time.Time) (*domain.PickupSlots, error)

	// Проверка выбора покупателя перед сохранением заказа
	ValidateSelection(ctx context.Context, selection domain.Selection) (domain.Verdict, error)

	// Пересчет по итоговой сумме корзины при оформлении заказа
	FinalizeDelivery(ctx context.Context, req FinalizeRequest) (*domain.FinalizedDelivery, error)

	GetAccountingServices(ctx context.Context) ([]domain.AccountingService, error)

	InvalidateSettingsCache(ctx context.Context) error
	InvalidateAllSlotsCache(ctx context.Context) error
}
