package finish_table

import (
	"time"

	"github.com/periodictables/PT-ReservationService/internal/domain"
)

// Request модель запроса на завершение обслуживания столика
type Request struct {
	TableID int64
}

// Response модель ответа с освобожденным столиком
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
