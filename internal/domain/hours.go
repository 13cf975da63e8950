package domain

import (
	"time"

	"github.com/periodictables/PT-ReservationService/pkg/types"
)

// OperatingHours describes when the restaurant accepts reservations
type OperatingHours struct {
	Opening       types.TimeString
	Closing       types.TimeString
	ClosedWeekday time.Weekday
}

// DefaultOperatingHours returns the standard restaurant schedule:
// open 10:30-21:30, closed on Tuesdays.
func DefaultOperatingHours() OperatingHours {
	return OperatingHours{
		Opening:       types.TimeString(DefaultOpeningTime),
		Closing:       types.TimeString(DefaultClosingTime),
		ClosedWeekday: DefaultClosedWeekday,
	}
}

// IsClosedOn returns true if the restaurant is closed on the given date
func (h OperatingHours) IsClosedOn(date time.Time) bool {
	return date.Weekday() == h.ClosedWeekday
}

// BeforeOpening returns true if t is earlier than opening time
func (h OperatingHours) BeforeOpening(t types.TimeString) bool {
	return t.IsBefore(h.Opening)
}

// AfterClosing returns true if t is later than closing time.
// Both bounds are inclusive: a reservation exactly at opening or closing
// time is accepted.
func (h OperatingHours) AfterClosing(t types.TimeString) bool {
	return t.IsAfter(h.Closing)
}
