package delete_table

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/periodictables/PT-ReservationService/internal/api/handlers"
	"github.com/periodictables/PT-ReservationService/internal/service/tables"
)

type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["tableId"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondNotFound(w, fmt.Sprintf("Table %s cannot be found.", idStr))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("DELETE /tables/{id} - Table not found: table_id=%d", id)
			handlers.RespondNotFound(w, fmt.Sprintf("Table %d cannot be found.", id))

		default:
			h.logger.Error("DELETE /tables/{id} - Failed to delete table: table_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tables/{id} - Table deleted successfully: table_id=%d", id)
	handlers.RespondNoContent(w)
}
