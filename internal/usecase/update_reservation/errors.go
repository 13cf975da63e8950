package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrAlreadyFinished возвращается при попытке изменить завершенное бронирование
	ErrAlreadyFinished = errors.New("update_reservation: reservation is already finished")

	// ErrNotEditable возвращается, когда бронирование нельзя редактировать.
	// Редактируются только бронирования в статусе "booked".
	ErrNotEditable = errors.New("update_reservation: reservation is not editable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
