package finish_table

import (
	"context"
	"errors"
	"fmt"

	"github.com/periodictables/PT-ReservationService/internal/domain"
	tableRepo "github.com/periodictables/PT-ReservationService/internal/infra/storage/table"
)

// UseCase use case завершения обслуживания столика
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

// Execute завершает обслуживание столика: связанное бронирование
// переводится в "finished", столик освобождается. Оба изменения
// выполняются в одной сериализуемой транзакции - при любой ошибке
// оба остаются в исходном состоянии.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FinishTable: finishing table id=%d", req.TableID)

	var result *domain.Table

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		t, err := uc.tableRepo.GetByID(txCtx, req.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				return ErrTableNotFound
			}
			return fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
		}

		if !t.IsOccupied() {
			return ErrTableNotOccupied
		}

		if err := uc.reservationRepo.UpdateStatus(txCtx, *t.ReservationID, domain.StatusFinished); err != nil {
			return fmt.Errorf("%w: failed to finish reservation: %v", ErrInternal, err)
		}
		if err := uc.tableRepo.ClearReservation(txCtx, req.TableID); err != nil {
			return fmt.Errorf("%w: failed to free table: %v", ErrInternal, err)
		}

		t.ReservationID = nil
		result = t
		return nil
	})

	if err != nil {
		uc.logger.Warn("FinishTable: failed to finish table id=%d: %v", req.TableID, err)
		return nil, err
	}

	uc.logger.Info("FinishTable: successfully finished table id=%d", req.TableID)
	return FromDomainTable(result), nil
}
