package seat_table

import (
	"time"

	"github.com/periodictables/PT-ReservationService/internal/domain"
)

// Request модель запроса на посадку бронирования за столик
type Request struct {
	TableID int64
	Data    map[string]interface{}
}

// ReservationID извлекает reservation_id из payload
func (r *Request) ReservationID() (int64, error) {
	if r.Data == nil {
		return 0, ErrMissingReservationID
	}
	id, ok := r.Data["reservation_id"].(float64)
	if !ok || id <= 0 {
		return 0, ErrMissingReservationID
	}
	return int64(id), nil
}

// Response модель ответа с занятым столиком
type Response struct {
	ID            int64  `json:"table_id"`
	Name          string `json:"table_name"`
	Capacity      int    `json:"capacity"`
	ReservationID *int64 `json:"reservation_id"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// FromDomainTable конвертирует доменную сущность в response
func FromDomainTable(t *domain.Table) *Response {
	return &Response{
		ID:            t.ID,
		Name:          t.Name,
		Capacity:      t.Capacity,
		ReservationID: t.ReservationID,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     t.UpdatedAt.Format(time.RFC3339),
	}
}
