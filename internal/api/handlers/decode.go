package handlers

import (
	"encoding/json"
	"net/http"
)

// Envelope тело запроса вида {"data": {...}}.
// Поле data остается необработанным объектом: валидация проверяет
// whitelist полей и типы значений сама.
type Envelope struct {
	Data map[string]interface{} `json:"data"`
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
