package domain

import "time"

// Table represents a dining table with fixed capacity.
// A table references at most one active reservation; a nil ReservationID
// means the table is free.
type Table struct {
	ID            int64
	Name          string
	Capacity      int
	ReservationID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupied returns true if a reservation is currently seated at the table
func (t *Table) IsOccupied() bool {
	return t.ReservationID != nil
}

// Fits returns true if a party of the given size fits at the table
func (t *Table) Fits(people int) bool {
	return people <= t.Capacity
}
