package list_appointments

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/service/appointments/models"
)

// parseQuery разбирает query параметры в запрос сервиса.
// Поддерживаются date, from, to (YYYY-MM-DD), clientId, employeeId,
// status и includeInactive
func parseQuery(query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		req.Date = &date
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		req.StartDate = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
		req.EndDate = &to
	}

	if raw := query.Get("clientId"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid clientId: %w", err)
		}
		req.ClientID = &clientID
	}

	if raw := query.Get("employeeId"); raw != "" {
		employeeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid employeeId: %w", err)
		}
		req.EmployeeID = &employeeID
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
