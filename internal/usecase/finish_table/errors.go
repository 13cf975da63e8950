package finish_table

import "errors"

var (
	// ErrTableNotFound возвращается, когда столик не найден
	ErrTableNotFound = errors.New("finish_table: table not found")

	// ErrTableNotOccupied возвращается, когда столик никем не занят
	ErrTableNotOccupied = errors.New("finish_table: table is not occupied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("finish_table: internal error")
)
