package domain

type DayType string

const (
	DayTypeWeekday DayType = "WEEKDAY"
	DayTypeWeekend DayType = "WEEKEND"
)

type ScheduleMode string

const (
	ScheduleModeNone      ScheduleMode = "none"
	ScheduleModeHourly    ScheduleMode = "hourly"
	ScheduleModeIntervals ScheduleMode = "intervals"
)

// Schedule расписание, выбранное для конкретной даты
type Schedule struct {
	DayType   DayType        `json:"dayType"`
	Mode      ScheduleMode   `json:"mode"`
	Range     *TimeRange     `json:"range,omitempty"`
	Intervals []TimeInterval `json:"intervals,omitempty"`
}

type Slot struct {
	Value TimeOfDay `json:"value"`
	Label string    `json:"label"`
}

// PickupSlots слоты самовывоза вместе с описанием пункта, которое показывается покупателю
type PickupSlots struct {
	Description string
	Slots       []Slot
}
