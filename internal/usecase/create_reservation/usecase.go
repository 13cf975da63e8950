package create_reservation

import (
	"context"
	"fmt"

	"github.com/periodictables/PT-ReservationService/internal/domain"
	"github.com/periodictables/PT-ReservationService/internal/validation"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	hours           domain.OperatingHours
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	hours domain.OperatingHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Payload проходит полную цепочку проверок; новое бронирование всегда
// создается в статусе "booked".
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	if err := validation.ValidateReservation(req.Data, uc.hours, now); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	reservation, err := validation.ReservationFromPayload(req.Data)
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to build reservation: %v", err)
		return nil, err
	}
	reservation.Status = domain.StatusBooked

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d for %s %s on %s %s",
		created.ID, created.FirstName, created.LastName,
		created.Date.Format(domain.DateFormat), created.Time)

	return FromDomainReservation(created), nil
}
