package complete_past_appointments

import (
	"context"
	"errors"
	"fmt"
)

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("complete_past_appointments: internal error")

// Response результат прогона sweep
type Response struct {
	CompletedCount int64
}

// UseCase use case закрытия прошедших записей.
// Прошедшие scheduled/confirmed записи помечаются completed.
// Операция идемпотентна: повторный прогон ничего не меняет
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет sweep и возвращает количество закрытых записей
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	count, err := uc.appointmentRepo.CompletePast(ctx, now)
	if err != nil {
		uc.logger.Error("CompletePastAppointments: sweep failed: %v", err)
		return nil, fmt.Errorf("%w: sweep failed: %v", ErrInternal, err)
	}

	if count > 0 {
		uc.logger.Info("CompletePastAppointments: %d appointments marked completed", count)
	}

	return &Response{CompletedCount: count}, nil
}
