package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/periodictables/PT-ReservationService/internal/domain"
	reservationRepo "github.com/periodictables/PT-ReservationService/internal/infra/storage/reservation"
	"github.com/periodictables/PT-ReservationService/internal/validation"
)

// UseCase use case для редактирования бронирования
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

// Execute выполняет use case редактирования бронирования.
// Новые значения полей проходят ту же цепочку проверок, что и при создании.
// Редактировать можно только бронирование в статусе "booked":
// завершенное бронирование неизменяемо, посаженное и отмененное -
// тоже не редактируются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: updating reservation id=%d", req.ID)

	current, err := uc.reservationRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: repository error for reservation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if err := validation.ValidateReservation(req.Data, uc.hours, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed for reservation id=%d: %v", req.ID, err)
		return nil, err
	}

	if current.IsFinished() {
		uc.logger.Warn("UpdateReservation: reservation id=%d is already finished", req.ID)
		return nil, ErrAlreadyFinished
	}
	if !current.CanBeEdited() {
		uc.logger.Warn("UpdateReservation: reservation id=%d is not editable, status=%s", req.ID, current.Status)
		return nil, ErrNotEditable
	}

	updated, err := validation.ReservationFromPayload(req.Data)
	if err != nil {
		return nil, err
	}
	updated.ID = current.ID
	updated.Status = current.Status
	updated.CreatedAt = current.CreatedAt

	if err := uc.reservationRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", req.ID)
	return FromDomainReservation(updated), nil
}
