package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const msgInternalError = "Something went wrong!"

type dataEnvelope struct {
	Data interface{} `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// RespondData пишет успешный ответ в конверте {"data": ...}
func RespondData(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dataEnvelope{Data: v})
}

// RespondNoContent пишет пустой ответ 204
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError пишет ошибку в конверте {"error": ...}
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: message})
}

// RespondBadRequest пишет ошибку 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound пишет ошибку 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError пишет ошибку 500 с обезличенным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// NotFound обработчик для незарегистрированных путей
func NotFound(w http.ResponseWriter, r *http.Request) {
	RespondNotFound(w, fmt.Sprintf("Path not found: %s", r.URL.Path))
}

// MethodNotAllowed обработчик для неподдерживаемых методов
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	RespondError(w, http.StatusMethodNotAllowed,
		fmt.Sprintf("%s not allowed for %s", r.Method, r.URL.Path))
}
