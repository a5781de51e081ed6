package complete_past_appointments

import (
	"net/http"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers"
)

// SweepResponse HTTP response model
type SweepResponse struct {
	CompletedCount int64 `json:"completedCount"`
}

type Handler struct {
	useCase CompletePastUseCase
	logger  Logger
}

func NewHandler(useCase CompletePastUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/check-past
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /appointments/check-past - Sweep failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /appointments/check-past - Sweep completed: count=%d", result.CompletedCount)
	handlers.RespondJSON(w, http.StatusOK, SweepResponse{CompletedCount: result.CompletedCount})
}
