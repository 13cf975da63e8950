package domain

import (
	"time"

	"github.com/periodictables/PT-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusBooked    ReservationStatus = "booked"
	StatusSeated    ReservationStatus = "seated"
	StatusFinished  ReservationStatus = "finished"
	StatusCancelled ReservationStatus = "cancelled"
)

// ValidStatuses lists every status a reservation may hold
var ValidStatuses = []ReservationStatus{
	StatusBooked,
	StatusSeated,
	StatusFinished,
	StatusCancelled,
}

// IsValidReservationStatus reports whether s is a known reservation status
func IsValidReservationStatus(s string) bool {
	for _, status := range ValidStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// Reservation represents a party booking for a date and time
type Reservation struct {
	ID           int64
	FirstName    string
	LastName     string
	MobileNumber string
	Date         time.Time
	Time         types.TimeString
	People       int
	Status       ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFinished returns true if the reservation has been finished.
// A finished reservation is immutable.
func (r *Reservation) IsFinished() bool {
	return r.Status == StatusFinished
}

// CanBeSeated returns true if the reservation may be seated at a table
func (r *Reservation) CanBeSeated() bool {
	return r.Status == StatusBooked
}

// CanBeEdited returns true if the reservation fields may still be changed
func (r *Reservation) CanBeEdited() bool {
	return r.Status == StatusBooked
}

// CanChangeStatus returns true if the reservation status may still be updated
func (r *Reservation) CanChangeStatus() bool {
	return r.Status != StatusFinished
}

// ReservationFilter фильтр для получения списка бронирований
type ReservationFilter struct {
	Date         *time.Time // Фильтр по дате (опционально)
	MobileNumber *string    // Поиск по номеру телефона (опционально)
	ExactMatch   bool       // Точное совпадение номера вместо частичного
}
