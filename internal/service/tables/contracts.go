package tables

import (
	"context"

	"github.com/periodictables/PT-ReservationService/internal/domain"
)

// TableRepository интерфейс репозитория столиков
type TableRepository interface {
	Create(ctx context.Context, t *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	List(ctx context.Context) ([]*domain.Table, error)
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository интерфейс репозитория бронирований.
// Нужен для завершения обслуживания при удалении занятого столика.
type ReservationRepository interface {
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
