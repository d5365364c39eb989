package delivery_service

import (
	"time"

	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
	"github.com/suchimauz/checkout-delivery-slots/internal/utils"
)

// ValidateDeliverySelection заново строит слоты на дату выбора и проверяет, что выбранное время среди них.
// now передается явно, "сегодня" считается в таймзоне даты выбора.
func ValidateDeliverySelection(selection domain.Selection, method domain.DeliveryMethod, now time.Time) domain.Verdict {
	return validateAgainst(selection, ResolveSchedule(method, selection.Date), now)
}

func ValidatePickupSelection(selection domain.Selection, pickup domain.PickupConfig, now time.Time) domain.Verdict {
	return validateAgainst(selection, ResolvePickupSchedule(pickup, selection.Date), now)
}

func validateAgainst(selection domain.Selection, schedule domain.Schedule, now time.Time) domain.Verdict {
	if !utils.SameOrAfterDay(selection.Date, now) {
		return domain.Rejected(domain.RejectionDateInPast)
	}

	for _, slot := range GenerateSlots(schedule) {
		if slot.Value == selection.Time {
			return domain.Accepted()
		}
	}

	return domain.Rejected(domain.RejectionSlotNotOffered)
}
