package finish_table

import (
	"context"

	"github.com/periodictables/PT-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// TableRepository интерфейс репозитория столиков
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	ClearReservation(ctx context.Context, tableID int64) error
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
