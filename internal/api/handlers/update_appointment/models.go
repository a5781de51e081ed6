package update_appointment

import (
	"time"

	updateAppointment "github.com/AnthonyDelgadoMiami/nail-salon/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest HTTP request model
// Отсутствующие поля сохраняют текущие значения записи
type UpdateAppointmentRequest struct {
	StartAt         *string  `json:"startAt,omitempty"` // ISO 8601
	ClientID        *int64   `json:"clientId,omitempty"`
	ServiceID       *int64   `json:"serviceId,omitempty"`
	NullService     bool     `json:"nullService,omitempty"` // перевести запись в кастомную услугу
	EmployeeID      *int64   `json:"employeeId,omitempty"`
	NullEmployee    bool     `json:"nullEmployee,omitempty"` // снять мастера с записи
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	Status          *string  `json:"status,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	StartAt         string  `json:"startAt"`
	DurationMinutes int     `json:"durationMinutes"`
	ClientID        int64   `json:"clientId"`
	ServiceID       *int64  `json:"serviceId,omitempty"`
	EmployeeID      *int64  `json:"employeeId,omitempty"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`
	ClientName      string  `json:"clientName"`
	ServiceName     *string `json:"serviceName,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id int64) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		ID:              id,
		ClientID:        r.ClientID,
		ServiceID:       r.ServiceID,
		NullService:     r.NullService,
		EmployeeID:      r.EmployeeID,
		NullEmployee:    r.NullEmployee,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Notes:           r.Notes,
		Status:          r.Status,
	}

	if r.StartAt != nil {
		startAt, err := time.Parse(time.RFC3339, *r.StartAt)
		if err != nil {
			return nil, err
		}
		req.StartAt = &startAt
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		StartAt:         resp.StartAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		ClientID:        resp.ClientID,
		ServiceID:       resp.ServiceID,
		EmployeeID:      resp.EmployeeID,
		Price:           resp.Price,
		Status:          resp.Status,
		ClientName:      resp.ClientFirstName + " " + resp.ClientLastName,
		ServiceName:     resp.ServiceName,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
