package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/periodictables/PT-ReservationService/internal/domain"
	reservationRepo "github.com/periodictables/PT-ReservationService/internal/infra/storage/reservation"
	"github.com/periodictables/PT-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	exactPhoneMatch bool
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// exactPhoneMatch управляет режимом поиска по номеру телефона:
// точное совпадение вместо частичного по цифрам.
func NewService(reservationRepo ReservationRepository, exactPhoneMatch bool, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		exactPhoneMatch: exactPhoneMatch,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает список бронирований.
// Фильтр по дате возвращает бронирования на эту дату, отсортированные по
// времени начала; фильтр по номеру телефона ищет по совпадению цифр.
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) ([]*models.ReservationResponse, error) {
	filter := domain.ReservationFilter{ExactMatch: s.exactPhoneMatch}

	switch {
	case req.Date != nil:
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			s.logger.Warn("List: invalid date filter %q", *req.Date)
			return nil, ErrInvalidDate
		}
		filter.Date = &date
		s.logger.Info("List: fetching reservations for date=%s", *req.Date)

	case req.MobileNumber != nil:
		filter.MobileNumber = req.MobileNumber
		s.logger.Info("List: searching reservations by mobile_number")

	default:
		s.logger.Info("List: fetching all reservations")
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// UpdateStatus обновляет статус бронирования.
// Статус должен быть одним из известных, а текущий статус не может быть
// "finished" - завершенное бронирование неизменяемо.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", id, status)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	newStatus, err := models.ToDomainReservationStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", status, id)
		return nil, ErrInvalidStatus
	}

	if !reservation.CanChangeStatus() {
		s.logger.Warn("UpdateStatus: reservation id=%d is already finished", id)
		return nil, ErrAlreadyFinished
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	reservation.Status = newStatus
	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", id, newStatus)
	return models.FromDomainReservation(reservation), nil
}

// Delete удаляет бронирование (периферийная операция, физическое удаление)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}
