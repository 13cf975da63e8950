package finish_table

import (
	"context"

	finishTable "github.com/periodictables/PT-ReservationService/internal/usecase/finish_table"
)

type FinishTableUseCase interface {
	Execute(ctx context.Context, req *finishTable.Request) (*finishTable.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
