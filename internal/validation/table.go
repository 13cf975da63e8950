package validation

import (
	"math"

	"github.com/periodictables/PT-ReservationService/internal/domain"
)

const (
	msgEmptyTable          = "Can not submit an empty form."
	msgMissingTableField   = "The order must include %s"
	msgCapacityNotNumeric  = "The capacity entered must be numeric"
	msgCapacityNotPositive = "The capacity entered must be greater than zero."
	msgTableNameTooShort   = "The table_name entered must be greater than one character."
)

var tableRequiredFields = []string{"table_name", "capacity"}

var tableKnownFields = map[string]struct{}{
	"table_name":     {},
	"capacity":       {},
	"reservation_id": {},
	"table_id":       {},
	"created_at":     {},
	"updated_at":     {},
}

// ValidateTable проверяет payload создания столика
func ValidateTable(data map[string]interface{}) error {
	if data == nil {
		return newPayloadError(msgEmptyTable)
	}

	if err := checkKnownFields(data, tableKnownFields); err != nil {
		return err
	}

	if err := checkRequiredFields(data, tableRequiredFields, msgMissingTableField); err != nil {
		return err
	}

	capacity, ok := data["capacity"].(float64)
	if !ok {
		return newPayloadError(msgCapacityNotNumeric)
	}
	if capacity <= 0 || capacity != math.Trunc(capacity) {
		return newPayloadError(msgCapacityNotPositive)
	}

	name, _ := data["table_name"].(string)
	if len(name) < domain.MinTableNameLength {
		return newPayloadError(msgTableNameTooShort)
	}

	return nil
}

// TableFromPayload собирает сущность из проверенного payload.
// Новый столик всегда создается свободным.
func TableFromPayload(data map[string]interface{}) *domain.Table {
	name, _ := data["table_name"].(string)
	capacity, _ := data["capacity"].(float64)

	return &domain.Table{
		Name:     name,
		Capacity: int(capacity),
	}
}
