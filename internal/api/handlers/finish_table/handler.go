package finish_table

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/periodictables/PT-ReservationService/internal/api/handlers"
	finishTable "github.com/periodictables/PT-ReservationService/internal/usecase/finish_table"
)

const msgTableNotOccupied = "The table you selected is not occupied by any reservation."

type Handler struct {
	useCase FinishTableUseCase
	logger  Logger
}

func NewHandler(useCase FinishTableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /tables/{tableId}/seat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["tableId"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tables/{id}/seat - Invalid table ID: %v", err)
		handlers.RespondNotFound(w, fmt.Sprintf("Table %s cannot be found.", idStr))
		return
	}

	result, err := h.useCase.Execute(r.Context(), &finishTable.Request{TableID: id})
	if err != nil {
		switch {
		case errors.Is(err, finishTable.ErrTableNotFound):
			h.logger.Warn("DELETE /tables/{id}/seat - Table not found: table_id=%d", id)
			handlers.RespondNotFound(w, fmt.Sprintf("Table %d cannot be found.", id))

		case errors.Is(err, finishTable.ErrTableNotOccupied):
			h.logger.Warn("DELETE /tables/{id}/seat - Table not occupied: table_id=%d", id)
			handlers.RespondBadRequest(w, msgTableNotOccupied)

		default:
			h.logger.Error("DELETE /tables/{id}/seat - Failed to finish table: table_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tables/{id}/seat - Table finished successfully: table_id=%d", id)
	handlers.RespondData(w, http.StatusOK, result)
}
