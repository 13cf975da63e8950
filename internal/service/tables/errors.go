package tables

import "errors"

var (
	// ErrTableNotFound возвращается, когда столик не найден
	ErrTableNotFound = errors.New("table not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
