package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/periodictables/PT-ReservationService/internal/domain"
	tableRepo "github.com/periodictables/PT-ReservationService/internal/infra/storage/table"
	"github.com/periodictables/PT-ReservationService/internal/service/tables/models"
	"github.com/periodictables/PT-ReservationService/internal/validation"
)

// Service сервис для работы со столиками
type Service struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса столиков
func NewService(
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Create проверяет payload и создает новый свободный столик
func (s *Service) Create(ctx context.Context, data map[string]interface{}) (*models.TableResponse, error) {
	if err := validation.ValidateTable(data); err != nil {
		s.logger.Warn("Create: table validation failed: %v", err)
		return nil, err
	}

	created, err := s.tableRepo.Create(ctx, validation.TableFromPayload(data))
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created table id=%d name=%s", created.ID, created.Name)
	return models.FromDomainTable(created), nil
}

// List получает все столики, отсортированные по имени
func (s *Service) List(ctx context.Context) ([]*models.TableResponse, error) {
	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d tables", len(tables))
	return models.FromDomainTableList(tables), nil
}

// Delete удаляет столик.
// Занятый столик нельзя удалить молча: связанное бронирование сначала
// переводится в "finished" в той же транзакции, что и удаление.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting table id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		t, err := s.tableRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				return ErrTableNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if t.IsOccupied() {
			s.logger.Info("Delete: table id=%d is occupied, finishing reservation id=%d", id, *t.ReservationID)
			if err := s.reservationRepo.UpdateStatus(txCtx, *t.ReservationID, domain.StatusFinished); err != nil {
				return fmt.Errorf("%w: Delete - finish reservation: %v", ErrInternal, err)
			}
		}

		if err := s.tableRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				return ErrTableNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted table id=%d", id)
	return nil
}
