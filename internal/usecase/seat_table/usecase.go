package seat_table

import (
	"context"
	"errors"
	"fmt"

	"github.com/periodictables/PT-ReservationService/internal/domain"
	reservationRepo "github.com/periodictables/PT-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/periodictables/PT-ReservationService/internal/infra/storage/table"
)

// UseCase use case посадки бронирования за столик
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет посадку бронирования за столик.
// Предусловия: столик свободен, бронирование в статусе "booked",
// компания помещается за столик. Оба изменения (статус бронирования и
// занятость столика) выполняются в одной сериализуемой транзакции -
// частичный эффект невозможен.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	reservationID, err := req.ReservationID()
	if err != nil {
		uc.logger.Warn("SeatTable: missing reservation_id for table id=%d", req.TableID)
		return nil, err
	}

	uc.logger.Info("SeatTable: seating reservation id=%d at table id=%d", reservationID, req.TableID)

	var result *domain.Table

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		t, err := uc.tableRepo.GetByID(txCtx, req.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				return ErrTableNotFound
			}
			return fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
		}

		if t.IsOccupied() {
			return ErrTableOccupied
		}
		if !t.Fits(reservation.People) {
			return ErrCapacityExceeded
		}
		if !reservation.CanBeSeated() {
			if reservation.Status == domain.StatusSeated {
				return ErrAlreadySeated
			}
			return ErrNotBooked
		}

		if err := uc.reservationRepo.UpdateStatus(txCtx, reservationID, domain.StatusSeated); err != nil {
			return fmt.Errorf("%w: failed to seat reservation: %v", ErrInternal, err)
		}
		if err := uc.tableRepo.AssignReservation(txCtx, req.TableID, reservationID); err != nil {
			return fmt.Errorf("%w: failed to occupy table: %v", ErrInternal, err)
		}

		t.ReservationID = &reservationID
		result = t
		return nil
	})

	if err != nil {
		uc.logger.Warn("SeatTable: failed to seat reservation id=%d at table id=%d: %v",
			reservationID, req.TableID, err)
		return nil, err
	}

	uc.logger.Info("SeatTable: successfully seated reservation id=%d at table id=%d",
		reservationID, req.TableID)
	return FromDomainTable(result), nil
}
