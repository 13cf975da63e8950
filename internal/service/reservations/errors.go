package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrAlreadyFinished возвращается при попытке изменить завершенное бронирование
	ErrAlreadyFinished = errors.New("reservation is already finished")

	// ErrInvalidDate возвращается при некорректной дате в фильтре
	ErrInvalidDate = errors.New("invalid date filter")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
