package validation

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/periodictables/PT-ReservationService/internal/domain"
	"github.com/periodictables/PT-ReservationService/pkg/types"
)

const (
	msgEmptyReservation = "Please fill in required fields. Can not submit empty form."
	msgMissingField     = "Order must include a %s"
	msgInvalidPeople    = "Number of people in a party must be a number greater than zero."
	msgInvalidDate      = "The reservation_date must be in the YYYY-MM-DD format."
	msgClosedDay        = "Reservation must be at a future date. Restaurant is closed on Tuesdays."
	msgInvalidTime      = "The reservation_time must be in the HH:MM format."
	msgBeforeOpening    = "The reservation_time selected must be at or after 10:30AM."
	msgAfterClosing     = "The reservation_time selected must be at or before 09:30PM."
	msgNotFuture        = "Reservation time must be in the future."
	msgBadCreateStatus  = "Selected reservation status should not be %s."
	msgInvalidFields    = "Invalid field(s): %s"
)

var reservationRequiredFields = []string{
	"first_name",
	"last_name",
	"mobile_number",
	"reservation_date",
	"reservation_time",
	"people",
}

// Поля, которые клиент может прислать. PUT присылает всю запись целиком,
// поэтому служебные поля тоже допустимы.
var reservationKnownFields = map[string]struct{}{
	"first_name":       {},
	"last_name":        {},
	"mobile_number":    {},
	"reservation_date": {},
	"reservation_time": {},
	"people":           {},
	"status":           {},
	"reservation_id":   {},
	"created_at":       {},
	"updated_at":       {},
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateReservation прогоняет payload бронирования через полную цепочку
// проверок. Порядок фиксирован, первая ошибка прерывает остальные проверки.
func ValidateReservation(data map[string]interface{}, hours domain.OperatingHours, now time.Time) error {
	if data == nil {
		return newPayloadError(msgEmptyReservation)
	}

	if err := checkKnownFields(data, reservationKnownFields); err != nil {
		return err
	}

	if err := checkRequiredFields(data, reservationRequiredFields, msgMissingField); err != nil {
		return err
	}

	if err := checkPartySize(data["people"]); err != nil {
		return err
	}

	date, err := checkDateFormat(data["reservation_date"])
	if err != nil {
		return err
	}

	if hours.IsClosedOn(date) {
		return newPayloadError(msgClosedDay)
	}

	if dateBefore(date, now) {
		return newPayloadError(msgClosedDay)
	}

	reservationTime, err := checkTimeFormat(data["reservation_time"])
	if err != nil {
		return err
	}

	if hours.BeforeOpening(reservationTime) {
		return newPayloadError(msgBeforeOpening)
	}
	if hours.AfterClosing(reservationTime) {
		return newPayloadError(msgAfterClosing)
	}

	if err := checkFutureInstant(date, reservationTime, now); err != nil {
		return err
	}

	return checkCreationStatus(data["status"])
}

// ReservationFromPayload собирает сущность из проверенного payload.
// Вызывается только после успешного ValidateReservation.
func ReservationFromPayload(data map[string]interface{}) (*domain.Reservation, error) {
	dateStr, _ := data["reservation_date"].(string)
	date, err := time.Parse(domain.DateFormat, dateStr[:10])
	if err != nil {
		return nil, newPayloadError(msgInvalidDate)
	}

	timeStr, _ := data["reservation_time"].(string)
	reservationTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, newPayloadError(msgInvalidTime)
	}

	people, _ := data["people"].(float64)

	status := domain.StatusBooked
	if s, ok := data["status"].(string); ok && s != "" {
		status = domain.ReservationStatus(s)
	}

	return &domain.Reservation{
		FirstName:    data["first_name"].(string),
		LastName:     data["last_name"].(string),
		MobileNumber: data["mobile_number"].(string),
		Date:         date,
		Time:         reservationTime,
		People:       int(people),
		Status:       status,
	}, nil
}

func checkKnownFields(data map[string]interface{}, known map[string]struct{}) error {
	var invalid []string
	for field := range data {
		if _, ok := known[field]; !ok {
			invalid = append(invalid, field)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return newPayloadError(msgInvalidFields, strings.Join(invalid, ", "))
	}
	return nil
}

func checkRequiredFields(data map[string]interface{}, required []string, format string) error {
	for _, field := range required {
		if isEmpty(data[field]) {
			return newPayloadError(format, field)
		}
	}
	return nil
}

func checkPartySize(v interface{}) error {
	people, ok := v.(float64)
	if !ok {
		return newPayloadError(msgInvalidPeople)
	}
	if people <= 0 || people != math.Trunc(people) {
		return newPayloadError(msgInvalidPeople)
	}
	return nil
}

func checkDateFormat(v interface{}) (time.Time, error) {
	s, ok := v.(string)
	if !ok || len(s) < 10 || !datePattern.MatchString(s[:10]) {
		return time.Time{}, newPayloadError(msgInvalidDate)
	}

	date, err := time.Parse(domain.DateFormat, s[:10])
	if err != nil {
		return time.Time{}, newPayloadError(msgInvalidDate)
	}
	return date, nil
}

func checkTimeFormat(v interface{}) (types.TimeString, error) {
	s, ok := v.(string)
	if !ok {
		return "", newPayloadError(msgInvalidTime)
	}

	reservationTime, err := types.NewTimeStringFromString(s)
	if err != nil {
		return "", newPayloadError(msgInvalidTime)
	}
	return reservationTime, nil
}

func checkFutureInstant(date time.Time, t types.TimeString, now time.Time) error {
	instant, err := t.At(time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location()))
	if err != nil {
		return newPayloadError(msgInvalidTime)
	}
	if !instant.After(now) {
		return newPayloadError(msgNotFuture)
	}
	return nil
}

// checkCreationStatus новые бронирования создаются только в статусе "booked"
func checkCreationStatus(v interface{}) error {
	s, ok := v.(string)
	if !ok || s == "" || s == string(domain.StatusBooked) {
		return nil
	}
	return newPayloadError(msgBadCreateStatus, s)
}

// isEmpty повторяет семантику "пустого" значения исходного API:
// отсутствующее поле, nil, пустая строка, ноль и false считаются пустыми
func isEmpty(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case float64:
		return value == 0
	case bool:
		return !value
	default:
		return false
	}
}

func dateBefore(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(today)
}
