package models

import (
	"errors"
	"time"

	"github.com/periodictables/PT-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest запрос на получение списка бронирований
type ListReservationsRequest struct {
	Date         *string `json:"date,omitempty"`
	MobileNumber *string `json:"mobile_number,omitempty"`
}

// Response модели

// ReservationResponse бронирование в том виде, в котором оно уходит клиенту
type ReservationResponse struct {
	ID           int64  `json:"reservation_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MobileNumber string `json:"mobile_number"`
	Date         string `json:"reservation_date"`
	Time         string `json:"reservation_time"`
	People       int    `json:"people"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// FromDomainReservation конвертирует доменную сущность в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		MobileNumber: r.MobileNumber,
		Date:         r.Date.Format(domain.DateFormat),
		Time:         r.Time.String(),
		People:       r.People,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список доменных сущностей
func FromDomainReservationList(reservations []*domain.Reservation) []*ReservationResponse {
	result := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, FromDomainReservation(r))
	}
	return result
}

// ToDomainReservationStatus валидирует и конвертирует статус из строки
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	if !domain.IsValidReservationStatus(s) {
		return "", ErrInvalidStatus
	}
	return domain.ReservationStatus(s), nil
}
