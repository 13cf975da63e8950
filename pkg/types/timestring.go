package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// TimeString represents a time of day in "HH:MM:SS" form.
// Comparisons are lexicographic, which is correct once the value is normalized.
type TimeString string

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format")

	timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(:(\d{2}))?`)
)

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04:05"))
}

// NewTimeStringFromString парсит строку вида "HH:MM" или "HH:MM:SS"
// и возвращает нормализованное значение "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return "", ErrInvalidTimeString
	}

	var hour, minute, second int
	if _, err := fmt.Sscanf(m[1], "%d", &hour); err != nil {
		return "", ErrInvalidTimeString
	}
	if _, err := fmt.Sscanf(m[2], "%d", &minute); err != nil {
		return "", ErrInvalidTimeString
	}
	if m[4] != "" {
		if _, err := fmt.Sscanf(m[4], "%d", &second); err != nil {
			return "", ErrInvalidTimeString
		}
	}

	if hour > 23 || minute > 59 || second > 59 {
		return "", ErrInvalidTimeString
	}

	return TimeString(fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)), nil
}

// Validate проверяет, что значение является корректным временем
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsBefore возвращает true, если t раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время через minutes минут (в пределах суток)
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse("15:04:05", string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTimeString, err)
	}
	return NewTimeString(parsed.Add(time.Duration(minutes) * time.Minute)), nil
}

// At объединяет дату и время в один момент
func (t TimeString) At(date time.Time) (time.Time, error) {
	parsed, err := time.Parse("15:04:05", string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTimeString, err)
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0,
		date.Location(),
	), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		normalized, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = normalized
		return nil
	case []byte:
		normalized, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = normalized
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}
