package list_tables

import (
	"context"

	"github.com/periodictables/PT-ReservationService/internal/service/tables/models"
)

type TableService interface {
	List(ctx context.Context) ([]*models.TableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
