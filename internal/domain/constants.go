package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04:05"   // HH:MM:SS
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default restaurant policy
const (
	DefaultOpeningTime = "10:30:00"
	DefaultClosingTime = "21:30:00"
)

// DefaultClosedWeekday день недели, в который ресторан закрыт
var DefaultClosedWeekday = time.Tuesday

// Business validation constants
const (
	MinTableNameLength = 2
	MinPartySize       = 1
)
