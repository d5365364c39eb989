package delivery_service

import "github.com/suchimauz/checkout-delivery-slots/internal/core/domain"

const intervalLabelSeparator = " - "

// GenerateSlots строит упорядоченный список слотов. Для одного и того же расписания
// результат всегда одинаковый, на этом держится проверка выбора.
func GenerateSlots(schedule domain.Schedule) []domain.Slot {
	switch schedule.Mode {
	case domain.ScheduleModeHourly:
		if schedule.Range == nil {
			return []domain.Slot{}
		}
		return generateHourlySlots(*schedule.Range)
	case domain.ScheduleModeIntervals:
		return generateIntervalSlots(schedule.Intervals)
	default:
		return []domain.Slot{}
	}
}

// Каждый целый час от начала до конца включительно, через полночь не переходим
func generateHourlySlots(r domain.TimeRange) []domain.Slot {
	startHour := r.Start.Hour()
	endHour := r.End.Hour()
	if endHour < startHour {
		return []domain.Slot{}
	}

	slots := make([]domain.Slot, 0, endHour-startHour+1)
	for hour := startHour; hour <= endHour; hour++ {
		value := domain.NewTimeOfDay(hour, 0)
		slots = append(slots, domain.Slot{
			Value: value,
			Label: value.String(),
		})
	}
	return slots
}

// Интервалы отдаются в порядке из настроек, без сортировки
func generateIntervalSlots(intervals []domain.TimeInterval) []domain.Slot {
	slots := make([]domain.Slot, 0, len(intervals))
	for _, interval := range intervals {
		label := interval.Start.String()
		if interval.Start != interval.End {
			label += intervalLabelSeparator + interval.End.String()
		}
		slots = append(slots, domain.Slot{
			Value: interval.Start,
			Label: label,
		})
	}
	return slots
}
