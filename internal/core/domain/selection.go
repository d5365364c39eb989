package domain

import "time"

type RejectionReason string

const (
	RejectionSlotNotOffered RejectionReason = "SLOT_NOT_OFFERED"
	RejectionDateInPast     RejectionReason = "DATE_IN_PAST"
)

// Selection выбор покупателя на момент оформления заказа.
// Pickup=true означает самовывоз, тогда MethodIndex не используется.
type Selection struct {
	MethodIndex int       `json:"methodIndex"`
	Pickup      bool      `json:"pickup"`
	Date        time.Time `json:"date"`
	Time        TimeOfDay `json:"time"`
}

type Verdict struct {
	OK     bool            `json:"ok"`
	Reason RejectionReason `json:"reason,omitempty"`
}

func Accepted() Verdict {
	return Verdict{OK: true}
}

func Rejected(reason RejectionReason) Verdict {
	return Verdict{OK: false, Reason: reason}
}
