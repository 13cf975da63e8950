package seat_table

import "errors"

var (
	// ErrMissingReservationID возвращается, когда в payload нет reservation_id
	ErrMissingReservationID = errors.New("seat_table: reservation_id is missing")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("seat_table: reservation not found")

	// ErrTableNotFound возвращается, когда столик не найден
	ErrTableNotFound = errors.New("seat_table: table not found")

	// ErrTableOccupied возвращается, когда столик уже занят
	ErrTableOccupied = errors.New("seat_table: table is occupied")

	// ErrCapacityExceeded возвращается, когда компания не помещается за столик
	ErrCapacityExceeded = errors.New("seat_table: party exceeds table capacity")

	// ErrAlreadySeated возвращается, когда бронирование уже посажено
	ErrAlreadySeated = errors.New("seat_table: reservation is already seated")

	// ErrNotBooked возвращается, когда бронирование не в статусе "booked"
	// (завершено или отменено) и не может быть посажено
	ErrNotBooked = errors.New("seat_table: reservation is not booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("seat_table: internal error")
)
