package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periodictables/PT-ReservationService/internal/domain"
)

// Четверг, 1 января 2026, полдень
var testNow = time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

func validReservationPayload() map[string]interface{} {
	return map[string]interface{}{
		"first_name":       "Rick",
		"last_name":        "Sanchez",
		"mobile_number":    "202-555-0164",
		"reservation_date": "2026-01-02",
		"reservation_time": "17:30",
		"people":           float64(4),
	}
}

func TestValidateReservation(t *testing.T) {
	hours := domain.DefaultOperatingHours()

	tests := []struct {
		name    string
		mutate  func(data map[string]interface{})
		wantMsg string
	}{
		{
			name:   "valid payload",
			mutate: func(data map[string]interface{}) {},
		},
		{
			name:   "short time form accepted",
			mutate: func(data map[string]interface{}) { data["reservation_time"] = "17:30" },
		},
		{
			name:   "opening boundary accepted",
			mutate: func(data map[string]interface{}) { data["reservation_time"] = "10:30" },
		},
		{
			name:   "closing boundary accepted",
			mutate: func(data map[string]interface{}) { data["reservation_time"] = "21:30:00" },
		},
		{
			name: "same day future time accepted",
			mutate: func(data map[string]interface{}) {
				data["reservation_date"] = "2026-01-01"
				data["reservation_time"] = "18:00"
			},
		},
		{
			name:   "status booked accepted",
			mutate: func(data map[string]interface{}) { data["status"] = "booked" },
		},
		{
			name: "unknown fields listed sorted",
			mutate: func(data map[string]interface{}) {
				data["shape"] = "round"
				data["color"] = "red"
			},
			wantMsg: "Invalid field(s): color, shape",
		},
		{
			name:    "missing first_name",
			mutate:  func(data map[string]interface{}) { delete(data, "first_name") },
			wantMsg: "Order must include a first_name",
		},
		{
			name:    "empty last_name",
			mutate:  func(data map[string]interface{}) { data["last_name"] = "" },
			wantMsg: "Order must include a last_name",
		},
		{
			name:    "missing mobile_number",
			mutate:  func(data map[string]interface{}) { delete(data, "mobile_number") },
			wantMsg: "Order must include a mobile_number",
		},
		{
			name:    "zero people treated as missing",
			mutate:  func(data map[string]interface{}) { data["people"] = float64(0) },
			wantMsg: "Order must include a people",
		},
		{
			name:    "people as string",
			mutate:  func(data map[string]interface{}) { data["people"] = "4" },
			wantMsg: "Number of people in a party must be a number greater than zero.",
		},
		{
			name:    "fractional people",
			mutate:  func(data map[string]interface{}) { data["people"] = 2.5 },
			wantMsg: "Number of people in a party must be a number greater than zero.",
		},
		{
			name:    "negative people",
			mutate:  func(data map[string]interface{}) { data["people"] = float64(-3) },
			wantMsg: "Number of people in a party must be a number greater than zero.",
		},
		{
			name:    "malformed date",
			mutate:  func(data map[string]interface{}) { data["reservation_date"] = "02-01-2026" },
			wantMsg: "The reservation_date must be in the YYYY-MM-DD format.",
		},
		{
			name:    "date is not a string",
			mutate:  func(data map[string]interface{}) { data["reservation_date"] = float64(20260102) },
			wantMsg: "The reservation_date must be in the YYYY-MM-DD format.",
		},
		{
			name:   "timestamp style date accepted",
			mutate: func(data map[string]interface{}) { data["reservation_date"] = "2026-01-02T17:30:00" },
		},
		{
			name:    "closed weekday",
			mutate:  func(data map[string]interface{}) { data["reservation_date"] = "2026-01-06" },
			wantMsg: "Reservation must be at a future date. Restaurant is closed on Tuesdays.",
		},
		{
			name:    "past date",
			mutate:  func(data map[string]interface{}) { data["reservation_date"] = "2025-12-31" },
			wantMsg: "Reservation must be at a future date. Restaurant is closed on Tuesdays.",
		},
		{
			name:    "malformed time",
			mutate:  func(data map[string]interface{}) { data["reservation_time"] = "1730" },
			wantMsg: "The reservation_time must be in the HH:MM format.",
		},
		{
			name:    "hour out of range",
			mutate:  func(data map[string]interface{}) { data["reservation_time"] = "25:00" },
			wantMsg: "The reservation_time must be in the HH:MM format.",
		},
		{
			name:    "before opening",
			mutate:  func(data map[string]interface{}) { data["reservation_time"] = "10:29:59" },
			wantMsg: "The reservation_time selected must be at or after 10:30AM.",
		},
		{
			name:    "after closing",
			mutate:  func(data map[string]interface{}) { data["reservation_time"] = "21:30:01" },
			wantMsg: "The reservation_time selected must be at or before 09:30PM.",
		},
		{
			name: "same day past time",
			mutate: func(data map[string]interface{}) {
				data["reservation_date"] = "2026-01-01"
				data["reservation_time"] = "11:00"
			},
			wantMsg: "Reservation time must be in the future.",
		},
		{
			name:    "status seated rejected",
			mutate:  func(data map[string]interface{}) { data["status"] = "seated" },
			wantMsg: "Selected reservation status should not be seated.",
		},
		{
			name:    "status finished rejected",
			mutate:  func(data map[string]interface{}) { data["status"] = "finished" },
			wantMsg: "Selected reservation status should not be finished.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validReservationPayload()
			tt.mutate(data)

			err := ValidateReservation(data, hours, testNow)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPayload)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateReservationNilPayload(t *testing.T) {
	err := ValidateReservation(nil, domain.DefaultOperatingHours(), testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Equal(t, "Please fill in required fields. Can not submit empty form.", err.Error())
}

func TestValidateReservationGuardOrder(t *testing.T) {
	// Whitelist проверяется раньше обязательных полей
	data := map[string]interface{}{"color": "red"}
	err := ValidateReservation(data, domain.DefaultOperatingHours(), testNow)
	require.Error(t, err)
	assert.Equal(t, "Invalid field(s): color", err.Error())

	// Дата проверяется раньше времени
	data = validReservationPayload()
	data["reservation_date"] = "bad"
	data["reservation_time"] = "bad"
	err = ValidateReservation(data, domain.DefaultOperatingHours(), testNow)
	require.Error(t, err)
	assert.Equal(t, "The reservation_date must be in the YYYY-MM-DD format.", err.Error())
}

func TestReservationFromPayload(t *testing.T) {
	data := validReservationPayload()
	data["reservation_time"] = "17:30"

	reservation, err := ReservationFromPayload(data)
	require.NoError(t, err)

	assert.Equal(t, "Rick", reservation.FirstName)
	assert.Equal(t, "Sanchez", reservation.LastName)
	assert.Equal(t, "202-555-0164", reservation.MobileNumber)
	assert.Equal(t, "2026-01-02", reservation.Date.Format(domain.DateFormat))
	assert.Equal(t, "17:30:00", reservation.Time.String())
	assert.Equal(t, 4, reservation.People)
	assert.Equal(t, domain.StatusBooked, reservation.Status)
}
