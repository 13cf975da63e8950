package update_reservation

import (
	"time"

	"github.com/periodictables/PT-ReservationService/internal/domain"
)

// Request модель запроса на редактирование бронирования
type Request struct {
	ID   int64
	Data map[string]interface{}
}

// Response модель ответа с обновленным бронированием
type Response struct {
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
func FromDomainReservation(r *domain.Reservation) *Response {
	return &Response{
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
