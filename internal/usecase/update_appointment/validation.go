package update_appointment

import (
	"fmt"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.StartAt != nil && req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt must not be zero", ErrInvalidInput)
	}

	if req.ClientID != nil && *req.ClientID <= 0 {
		return fmt.Errorf("%w: clientId must be positive", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.ServiceID != nil && req.NullService {
		return fmt.Errorf("%w: serviceId and nullService are mutually exclusive", ErrInvalidInput)
	}

	if req.EmployeeID != nil && *req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeId must be positive", ErrInvalidInput)
	}

	if req.EmployeeID != nil && req.NullEmployee {
		return fmt.Errorf("%w: employeeId and nullEmployee are mutually exclusive", ErrInvalidInput)
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes < domain.MinDurationMinutes || *req.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: durationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
		}
	}

	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Status != nil && !isValidStatus(*req.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	return nil
}

// isValidStatus проверяет, что статус входит в перечень допустимых
func isValidStatus(status string) bool {
	switch domain.AppointmentStatus(status) {
	case domain.StatusScheduled, domain.StatusConfirmed, domain.StatusCompleted,
		domain.StatusCancelled, domain.StatusNoShow:
		return true
	default:
		return false
	}
}

// requiresReschedule возвращает true, если запрос меняет интервал,
// мастера, клиента или услугу. Такие изменения требуют, чтобы запись
// еще можно было редактировать, и повторной проверки конфликта
func requiresReschedule(req *Request) bool {
	return req.StartAt != nil ||
		req.DurationMinutes != nil ||
		req.ClientID != nil ||
		req.ServiceID != nil || req.NullService ||
		req.EmployeeID != nil || req.NullEmployee
}
