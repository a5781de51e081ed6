package create_appointment

import (
	"fmt"
	"strings"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	// Ровно один способ указать клиента
	if req.ClientID == nil && req.WalkInClient == nil {
		return fmt.Errorf("%w: either clientId or walkInClient is required", ErrInvalidInput)
	}
	if req.ClientID != nil && req.WalkInClient != nil {
		return fmt.Errorf("%w: clientId and walkInClient are mutually exclusive", ErrInvalidInput)
	}

	if req.ClientID != nil && *req.ClientID <= 0 {
		return fmt.Errorf("%w: clientId must be positive", ErrInvalidInput)
	}

	if req.WalkInClient != nil {
		if err := validateWalkInClient(req.WalkInClient); err != nil {
			return err
		}
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	// Кастомная услуга требует явной длительности и цены
	if req.ServiceID == nil {
		if req.DurationMinutes == nil {
			return fmt.Errorf("%w: durationMinutes is required for a custom service", ErrInvalidInput)
		}
		if req.Price == nil {
			return fmt.Errorf("%w: price is required for a custom service", ErrInvalidInput)
		}
	}

	if req.DurationMinutes != nil {
		if err := validateDuration(*req.DurationMinutes); err != nil {
			return err
		}
	}

	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.EmployeeID != nil && *req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeId must be positive", ErrInvalidInput)
	}

	return nil
}

// validateWalkInClient проверяет данные walk-in клиента
func validateWalkInClient(client *WalkInClient) error {
	if strings.TrimSpace(client.FirstName) == "" {
		return fmt.Errorf("%w: walkInClient.firstName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(client.LastName) == "" {
		return fmt.Errorf("%w: walkInClient.lastName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(client.Phone) == "" {
		return fmt.Errorf("%w: walkInClient.phone is required", ErrInvalidInput)
	}
	return nil
}

// validateDuration проверяет, что длительность в допустимых пределах
func validateDuration(minutes int) error {
	if minutes < domain.MinDurationMinutes || minutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}
