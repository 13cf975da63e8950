package models

import (
	"time"

	"github.com/periodictables/PT-ReservationService/internal/domain"
)

// TableResponse столик в том виде, в котором он уходит клиенту.
// reservation_id равен null для свободного столика.
type TableResponse struct {
	ID            int64  `json:"table_id"`
	Name          string `json:"table_name"`
	Capacity      int    `json:"capacity"`
	ReservationID *int64 `json:"reservation_id"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// FromDomainTable конвертирует доменную сущность в response
func FromDomainTable(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:            t.ID,
		Name:          t.Name,
		Capacity:      t.Capacity,
		ReservationID: t.ReservationID,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     t.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainTableList конвертирует список доменных сущностей
func FromDomainTableList(tables []*domain.Table) []*TableResponse {
	result := make([]*TableResponse, 0, len(tables))
	for _, t := range tables {
		result = append(result, FromDomainTable(t))
	}
	return result
}
