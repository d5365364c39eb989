package delivery_service

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/in"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
)

type DeliveryService struct {
	settingsPort   out.SettingsPort
	cachePort      out.CachePort
	accountingPort out.AccountingPort
	metricsPort    out.MetricsPort
	logger         out.LoggerPort
	now            func() time.Time
}

func NewDeliveryService(
	settingsPort out.SettingsPort,
	cachePort out.CachePort,
	accountingPort out.AccountingPort,
	metricsPort out.MetricsPort,
	logger out.LoggerPort,
) *DeliveryService {
	return &DeliveryService{
		settingsPort:   settingsPort,
		cachePort:      cachePort,
		accountingPort: accountingPort,
		metricsPort:    metricsPort,
		logger:         logger.WithModule("DeliveryService"),
		now:            time.Now,
	}
}

var _ in.DeliveryUseCase = (*DeliveryService)(nil)

func (s *DeliveryService) QuoteRates(ctx context.Context, cart domain.CartContext) ([]domain.RateQuote, error) {
	settings, err := s.getSettings(ctx)
	if err != nil {
		return nil, err
	}

	quotes := QuoteRates(settings.Methods, cart)

	s.logger.Debug("rates.quote.completed", out.LogFields{
		"cartTotal":   cart.Total.String(),
		"ratesCount":  len(quotes),
		"methodCount": len(settings.Methods),
	})
	if s.metricsPort != nil {
		s.metricsPort.RatesQuoted(len(quotes))
	}

	return quotes, nil
}

func (s *DeliveryService) GetSlots(ctx context.Context, req in.SlotRequest) ([]domain.Slot, []domain.DebugInfo, error) {
	debugInfo := newDebug(req.Debug)

	s.logger.Info("slots.generate.started", out.LogFields{
		"methodIndex": req.MethodIndex,
		"date":        req.Date.Format("2006-01-02"),
	})

	get_settings_debug := domain.DebugInfo{
		Event: "slots.generate.settings.fetch",
	}
	get_settings_debug.Start()

	settings, err := s.getSettings(ctx)
	if err != nil {
		return nil, nil, err
	}
	get_settings_debug.Elapse()
	debugInfo.AddDebugInfo(get_settings_debug)

	method, err := settings.Method(req.MethodIndex)
	if err != nil {
		s.logger.Warn("slots.generate.method_not_found", out.LogFields{
			"methodIndex": req.MethodIndex,
			"methodCount": len(settings.Methods),
		})
		return nil, nil, fmt.Errorf("slots.generate.method_not_found: %w", err)
	}

	dayType := DayTypeOf(req.Date)
	if req.DayTypeOverride != nil {
		dayType = *req.DayTypeOverride
	}

	key := out.SlotsCacheKey{MethodIndex: req.MethodIndex, DayType: dayType}
	if slots, exists := s.getSlotsCache(ctx, key); exists {
		s.logger.Debug("slots.generate.cache.hit", out.LogFields{
			"methodIndex": req.MethodIndex,
			"slotsCount":  len(slots),
		})
		s.observeSlots(domain.RateKindCustomDelivery, len(slots), true)
		return slots, debugInfo.Data(), nil
	}

	generate_slots_debug := domain.DebugInfo{
		Event: "slots.generate.generate",
	}
	generate_slots_debug.Start()

	schedule := ResolveScheduleForDayType(*method, dayType)
	slots := GenerateSlots(schedule)

	generate_slots_debug.Elapse()
	generate_slots_debug.AddOption("dayType", string(dayType))
	generate_slots_debug.AddOption("mode", string(schedule.Mode))
	debugInfo.AddDebugInfo(generate_slots_debug)

	if len(slots) == 0 {
		// Пустой список это нормальное состояние "нет доступного времени"
		s.logger.Info("slots.generate.empty", out.LogFields{
			"methodIndex":      req.MethodIndex,
			"dayType":          dayType,
			"allowExactTime":   method.AllowExactTime,
			"requiresDatetime": method.RequiresDatetime,
		})
	}

	s.storeSlotsCache(ctx, key, slots)
	s.observeSlots(domain.RateKindCustomDelivery, len(slots), false)

	return slots, debugInfo.Data(), nil
}

func (s *DeliveryService) GetPickupSlots(ctx context.Context, date time.Time) (*domain.PickupSlots, error) {
	settings, err := s.getSettings(ctx)
	if err != nil {
		return nil, err
	}

	if !settings.Pickup.Enabled {
		return nil, fmt.Errorf("slots.pickup.disabled: %w", domain.ErrPickupDisabled)
	}

	key := out.SlotsCacheKey{Pickup: true}
	if slots, exists := s.getSlotsCache(ctx, key); exists {
		s.observeSlots(domain.RateKindLocalPickup, len(slots), true)
		return &domain.PickupSlots{Description: settings.Pickup.Description, Slots: slots}, nil
	}

	slots := GenerateSlots(ResolvePickupSchedule(settings.Pickup, date))

	s.storeSlotsCache(ctx, key, slots)
	s.observeSlots(domain.RateKindLocalPickup, len(slots), false)

	return &domain.PickupSlots{Description: settings.Pickup.Description, Slots: slots}, nil
}

func (s *DeliveryService) ValidateSelection(ctx context.Context, selection domain.Selection) (domain.Verdict, error) {
	settings, err := s.getSettings(ctx)
	if err != nil {
		return domain.Verdict{}, err
	}

	var verdict domain.Verdict
	if selection.Pickup {
		if !settings.Pickup.Enabled {
			return domain.Verdict{}, fmt.Errorf("selection.validate.pickup_disabled: %w", domain.ErrPickupDisabled)
		}
		verdict = ValidatePickupSelection(selection, settings.Pickup, s.now())
	} else {
		method, err := settings.Method(selection.MethodIndex)
		if err != nil {
			return domain.Verdict{}, fmt.Errorf("selection.validate.method_not_found: %w", err)
		}
		verdict = ValidateDeliverySelection(selection, *method, s.now())
	}

	fields := out.LogFields{
		"methodIndex": selection.MethodIndex,
		"pickup":      selection.Pickup,
		"date":        selection.Date.Format("2006-01-02"),
		"time":        selection.Time.String(),
	}
	if verdict.OK {
		s.logger.Info("selection.validate.accepted", fields)
	} else {
		fields["reason"] = verdict.Reason
		s.logger.Warn("selection.validate.rejected", fields)
	}
	if s.metricsPort != nil {
		s.metricsPort.SelectionValidated(verdict)
	}

	return verdict, nil
}

func (s *DeliveryService) FinalizeDelivery(ctx context.Context, req in.FinalizeRequest) (*domain.FinalizedDelivery, error) {
	settings, err := s.getSettings(ctx)
	if err != nil {
		return nil, err
	}

	result, err := FinalizeDelivery(settings, req.Selection, req.Cart, s.serviceHref)
	if err != nil {
		s.logger.Warn("delivery.finalize.failed", out.LogFields{
			"orderId": req.OrderID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("delivery.finalize.failed: %w", err)
	}
	result.OrderID = req.OrderID

	s.logger.Info("delivery.finalize.completed", out.LogFields{
		"orderId":           req.OrderID,
		"rateId":            result.RateID,
		"cartTotal":         req.Cart.Total.String(),
		"effectiveCost":     result.EffectiveCost.String(),
		"externalServiceId": result.ExternalServiceID,
	})

	return result, nil
}

func (s *DeliveryService) GetAccountingServices(ctx context.Context) ([]domain.AccountingService, error) {
	services, err := s.accountingPort.GetServices(ctx)
	if err != nil {
		s.logger.Error("accounting.services.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("accounting.services.fetch_failed: %w", err)
	}
	return services, nil
}

func (s *DeliveryService) serviceHref(serviceID string) string {
	if s.accountingPort == nil {
		return serviceID
	}
	return s.accountingPort.ServiceHref(serviceID)
}

func (s *DeliveryService) observeSlots(kind string, count int, cached bool) {
	if s.metricsPort != nil {
		s.metricsPort.SlotsServed(kind, count, cached)
	}
}
