package update_reservation

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/periodictables/PT-ReservationService/internal/api/handlers"
	updateReservation "github.com/periodictables/PT-ReservationService/internal/usecase/update_reservation"
	"github.com/periodictables/PT-ReservationService/internal/validation"
)

const (
	msgInvalidRequestBody = "Please fill in required fields. Can not submit empty form."
	msgAlreadyFinished    = "Reservation can not already have a status of: finished."
	msgNotEditable        = "Only booked reservations may be edited."
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["reservationId"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondNotFound(w, fmt.Sprintf("Reservation %s cannot be found.", idStr))
		return
	}

	var req handlers.Envelope
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateReservation.Request{ID: id, Data: req.Data})
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidPayload):
			h.logger.Warn("PUT /reservations/{id} - Validation failed: reservation_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, fmt.Sprintf("Reservation %d cannot be found.", id))

		case errors.Is(err, updateReservation.ErrAlreadyFinished):
			h.logger.Warn("PUT /reservations/{id} - Reservation already finished: reservation_id=%d", id)
			handlers.RespondBadRequest(w, msgAlreadyFinished)

		case errors.Is(err, updateReservation.ErrNotEditable):
			h.logger.Warn("PUT /reservations/{id} - Reservation not editable: reservation_id=%d", id)
			handlers.RespondBadRequest(w, msgNotEditable)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d", id)
	handlers.RespondData(w, http.StatusOK, result)
}
