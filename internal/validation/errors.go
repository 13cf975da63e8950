package validation

import (
	"errors"
	"fmt"
)

// ErrInvalidPayload sentinel для всех ошибок валидации payload.
// Конкретное сообщение для клиента несет сам экземпляр ошибки.
var ErrInvalidPayload = errors.New("validation: invalid payload")

// PayloadError ошибка валидации с сообщением для клиента
type PayloadError struct {
	msg string
}

func newPayloadError(format string, v ...interface{}) *PayloadError {
	return &PayloadError{msg: fmt.Sprintf(format, v...)}
}

// Error возвращает сообщение в том виде, в котором оно уходит клиенту
func (e *PayloadError) Error() string {
	return e.msg
}

// Is связывает все PayloadError с sentinel ErrInvalidPayload
func (e *PayloadError) Is(target error) bool {
	return target == ErrInvalidPayload
}
