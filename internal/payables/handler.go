package payables

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hpspeniel/payables-api/internal/platform/httpx"
)

// Handler wires the payables ingestion endpoint.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the payables routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/contas-a-pagar", h.handleCreate)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreatePayableRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err == nil {
		httpx.JSON(w, http.StatusCreated, map[string]any{
			"message": "Conta registrada com sucesso!",
			"id":      id,
		})
		return
	}

	var verr *ValidationError
	var perr *PersistenceError
	switch {
	case errors.Is(err, ErrAmountRequired), errors.Is(err, ErrInvalidAmount):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &verr):
		httpx.Error(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &perr):
		h.logger.Error("insert payable", slog.Any("error", perr.Err))
		httpx.ErrorWithDetails(w, http.StatusInternalServerError, "Falha interna ao registrar a conta.", perr.Detail())
	default:
		h.logger.Error("create payable", slog.Any("error", err))
		httpx.ErrorWithDetails(w, http.StatusInternalServerError, "Falha interna ao registrar a conta.", err.Error())
	}
}
