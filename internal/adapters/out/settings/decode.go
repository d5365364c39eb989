package settings

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
	"gopkg.in/yaml.v3"
)

// DecodeSettings разбирает документ и приводит его к доменным типам.
// Битые необязательные поля заменяются значениями по умолчанию с предупреждением в лог,
// ошибкой считается только невалидный YAML.
func DecodeSettings(data []byte, logger out.LoggerPort) (*domain.Settings, error) {
	var doc settingsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("settings.decode_failed: %w", err)
	}

	settings := &domain.Settings{
		Methods: make([]domain.DeliveryMethod, 0, len(doc.Methods)),
		Pickup:  decodePickup(doc.Pickup, logger),
	}
	seenIDs := make(map[string]struct{}, len(doc.Methods))
	for index, methodDoc := range doc.Methods {
		methodLogger := logger.WithFields(out.LogFields{
			"methodIndex": index,
		})
		method := decodeMethod(index, methodDoc, methodLogger)
		method.ID = uniqueMethodID(index, method.ID, seenIDs, methodLogger)
		settings.Methods = append(settings.Methods, method)
	}

	return settings, nil
}

func decodeMethod(index int, doc methodDocument, logger out.LoggerPort) domain.DeliveryMethod {
	method := domain.DeliveryMethod{
		ID:                    doc.ID,
		Name:                  doc.Name,
		Description:           doc.Description,
		Note:                  doc.Note,
		Cost:                  decodeMoney("cost", doc.Cost, logger),
		FreeAbove:             decodeMoney("free_above", doc.FreeAbove, logger),
		RequiresDatetime:      doc.RequiresDatetime.Value,
		AllowExactTime:        doc.AllowExactTime.Value,
		WeekdayRange:          decodeRange("weekday", doc.WeekdayTimeStart, doc.WeekdayTimeEnd, domain.DefaultDeliveryRange, logger),
		WeekendRange:          decodeRange("weekend", doc.WeekendTimeStart, doc.WeekendTimeEnd, domain.DefaultDeliveryRange, logger),
		WeekdayIntervals:      decodeIntervals("weekday", doc.WeekdayIntervals, logger),
		WeekendIntervals:      decodeIntervals("weekend", doc.WeekendIntervals, logger),
		ExternalServiceIDPaid: doc.ServiceIDPaid,
		ExternalServiceIDFree: doc.ServiceIDFree,
	}
	if method.ID == "" {
		method.ID = domain.RateID(index)
	}

	hasIntervals := len(method.WeekdayIntervals) > 0 || len(method.WeekendIntervals) > 0

	// Режим интервалов явно выключен: списки игнорируем, чтобы активным был ровно один режим
	if doc.AllowIntervals.Set && !doc.AllowIntervals.Value && hasIntervals {
		logger.Warn("settings.method.intervals_disabled", out.LogFields{
			"weekdayIntervals": len(method.WeekdayIntervals),
			"weekendIntervals": len(method.WeekendIntervals),
		})
		method.WeekdayIntervals = nil
		method.WeekendIntervals = nil
		hasIntervals = false
	}

	if method.AllowExactTime && hasIntervals {
		logger.Warn("settings.method.mode_conflict", out.LogFields{
			"message": "both exact time and intervals are configured, intervals take precedence for a day type when not empty",
		})
	}

	return method
}

// uniqueMethodID повторяющийся идентификатор заменяется на производный от индекса метода
func uniqueMethodID(index int, id string, seen map[string]struct{}, logger out.LoggerPort) string {
	if _, duplicate := seen[id]; duplicate {
		replacement := domain.RateID(index)
		for suffix := 2; ; suffix++ {
			if _, taken := seen[replacement]; !taken {
				break
			}
			replacement = fmt.Sprintf("%s_%d", domain.RateID(index), suffix)
		}
		logger.Warn("settings.method.id_defaulted", out.LogFields{
			"id":     id,
			"result": replacement,
		})
		id = replacement
	}

	seen[id] = struct{}{}
	return id
}

func decodePickup(doc pickupDocument, logger out.LoggerPort) domain.PickupConfig {
	enabled := true
	if doc.Enabled.Set {
		enabled = doc.Enabled.Value
	}

	return domain.PickupConfig{
		Enabled:           enabled,
		Description:       doc.Description,
		Range:             decodeRange("pickup", doc.TimeStart, doc.TimeEnd, domain.DefaultPickupRange, logger.WithFields(out.LogFields{"pickup": true})),
		ExternalServiceID: doc.ServiceID,
	}
}

func decodeMoney(field string, value money, logger out.LoggerPort) decimal.Decimal {
	if !value.Set {
		return decimal.Zero
	}
	if !value.Valid {
		logger.Warn("settings.method.money_defaulted", out.LogFields{
			"field": field,
			"raw":   value.Raw,
		})
		return decimal.Zero
	}
	if value.Value.IsNegative() {
		logger.Warn("settings.method.money_defaulted", out.LogFields{
			"field": field,
			"raw":   value.Raw,
		})
		return decimal.Zero
	}
	return value.Value
}

// decodeRange nil если диапазон не задан совсем, тогда значение по умолчанию подставит расчет слотов
func decodeRange(dayType, start, end string, def domain.TimeRange, logger out.LoggerPort) *domain.TimeRange {
	if start == "" && end == "" {
		return nil
	}

	startTime, startOk := domain.ParseTimeOfDayOr(start, def.Start)
	endTime, endOk := domain.ParseTimeOfDayOr(end, def.End)
	if !startOk || !endOk {
		logger.Warn("settings.method.range_defaulted", out.LogFields{
			"dayType": dayType,
			"start":   start,
			"end":     end,
			"result":  startTime.String() + "-" + endTime.String(),
		})
	}

	return &domain.TimeRange{Start: startTime, End: endTime}
}

func decodeIntervals(dayType string, docs []intervalDocument, logger out.LoggerPort) []domain.TimeInterval {
	if len(docs) == 0 {
		return nil
	}

	intervals := make([]domain.TimeInterval, 0, len(docs))
	for position, doc := range docs {
		start, startErr := domain.ParseTimeOfDay(doc.Start)
		end, endErr := domain.ParseTimeOfDay(doc.End)
		if startErr != nil || endErr != nil {
			logger.Warn("settings.method.interval_dropped", out.LogFields{
				"dayType":  dayType,
				"position": position,
				"start":    doc.Start,
				"end":      doc.End,
			})
			continue
		}
		intervals = append(intervals, domain.TimeInterval{Start: start, End: end})
	}

	return intervals
}
