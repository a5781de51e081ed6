package complete_past_appointments

import (
	"context"

	completePast "github.com/AnthonyDelgadoMiami/nail-salon/internal/usecase/complete_past_appointments"
)

type CompletePastUseCase interface {
	Execute(ctx context.Context) (*completePast.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
