package update_reservation_status

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/periodictables/PT-ReservationService/internal/api/handlers"
	"github.com/periodictables/PT-ReservationService/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "Please fill in required fields. Can not submit empty form."
	msgUnknownStatus      = "Status input is currently unknown."
	msgAlreadyFinished    = "Reservation can not already have a status of: finished."
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["reservationId"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id}/status - Invalid reservation ID: %v", err)
		handlers.RespondNotFound(w, fmt.Sprintf("Reservation %s cannot be found.", idStr))
		return
	}

	var req handlers.Envelope
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status, _ := req.Data["status"].(string)

	result, err := h.service.UpdateStatus(r.Context(), id, status)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("PUT /reservations/{id}/status - Unknown status: reservation_id=%d, status=%q", id, status)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id}/status - Reservation not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, fmt.Sprintf("Reservation %d cannot be found.", id))

		case errors.Is(err, reservations.ErrAlreadyFinished):
			h.logger.Warn("PUT /reservations/{id}/status - Reservation already finished: reservation_id=%d", id)
			handlers.RespondBadRequest(w, msgAlreadyFinished)

		default:
			h.logger.Error("PUT /reservations/{id}/status - Failed to update status: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id}/status - Status updated successfully: reservation_id=%d, status=%s", id, status)
	handlers.RespondData(w, http.StatusOK, result)
}
