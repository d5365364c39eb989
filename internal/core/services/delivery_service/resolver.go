package delivery_service

import (
	"time"

	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
)

// DayTypeOf суббота и воскресенье выходные, остальные дни будние.
// Праздничного календаря нет.
func DayTypeOf(date time.Time) domain.DayType {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return domain.DayTypeWeekend
	default:
		return domain.DayTypeWeekday
	}
}

// ResolveSchedule выбирает расписание метода на дату
func ResolveSchedule(method domain.DeliveryMethod, date time.Time) domain.Schedule {
	return ResolveScheduleForDayType(method, DayTypeOf(date))
}

// ResolveScheduleForDayType приоритет: непустой список интервалов, затем почасовой диапазон
// (если разрешено точное время), иначе слотов нет
func ResolveScheduleForDayType(method domain.DeliveryMethod, dayType domain.DayType) domain.Schedule {
	intervals := method.WeekdayIntervals
	timeRange := method.WeekdayRange
	if dayType == domain.DayTypeWeekend {
		intervals = method.WeekendIntervals
		timeRange = method.WeekendRange
	}

	if len(intervals) > 0 {
		return domain.Schedule{
			DayType:   dayType,
			Mode:      domain.ScheduleModeIntervals,
			Intervals: intervals,
		}
	}

	if method.AllowExactTime {
		return domain.Schedule{
			DayType: dayType,
			Mode:    domain.ScheduleModeHourly,
			Range:   rangeOrDefault(timeRange, domain.DefaultDeliveryRange),
		}
	}

	return domain.Schedule{
		DayType: dayType,
		Mode:    domain.ScheduleModeNone,
	}
}

// ResolvePickupSchedule у самовывоза одно расписание на любой день
func ResolvePickupSchedule(pickup domain.PickupConfig, date time.Time) domain.Schedule {
	return domain.Schedule{
		DayType: DayTypeOf(date),
		Mode:    domain.ScheduleModeHourly,
		Range:   rangeOrDefault(pickup.Range, domain.DefaultPickupRange),
	}
}

func rangeOrDefault(r *domain.TimeRange, def domain.TimeRange) *domain.TimeRange {
	if r == nil || !r.Start.Valid() || !r.End.Valid() {
		return &def
	}
	res := *r
	return &res
}
