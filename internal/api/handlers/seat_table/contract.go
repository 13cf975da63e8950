package seat_table

import (
	"context"

	seatTable "github.com/periodictables/PT-ReservationService/internal/usecase/seat_table"
)

type SeatTableUseCase interface {
	Execute(ctx context.Context, req *seatTable.Request) (*seatTable.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
