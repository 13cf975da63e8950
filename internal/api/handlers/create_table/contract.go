package create_table

import (
	"context"

	"github.com/periodictables/PT-ReservationService/internal/service/tables/models"
)

type TableService interface {
	Create(ctx context.Context, data map[string]interface{}) (*models.TableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
