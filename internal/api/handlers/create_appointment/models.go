package create_appointment

import (
	"time"

	createAppointment "github.com/AnthonyDelgadoMiami/nail-salon/internal/usecase/create_appointment"
)

// WalkInClientRequest данные walk-in клиента в HTTP запросе
type WalkInClientRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
}

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	StartAt         string               `json:"startAt"` // ISO 8601, "2025-10-15T10:00:00Z"
	ClientID        *int64               `json:"clientId,omitempty"`
	WalkInClient    *WalkInClientRequest `json:"walkInClient,omitempty"`
	ServiceID       *int64               `json:"serviceId,omitempty"`
	EmployeeID      *int64               `json:"employeeId,omitempty"`
	DurationMinutes *int                 `json:"durationMinutes,omitempty"`
	Price           *float64             `json:"price,omitempty"`
	Notes           *string              `json:"notes,omitempty"`
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
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	req := &createAppointment.Request{
		StartAt:         startAt,
		ClientID:        r.ClientID,
		ServiceID:       r.ServiceID,
		EmployeeID:      r.EmployeeID,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Notes:           r.Notes,
	}

	if r.WalkInClient != nil {
		req.WalkInClient = &createAppointment.WalkInClient{
			FirstName: r.WalkInClient.FirstName,
			LastName:  r.WalkInClient.LastName,
			Phone:     r.WalkInClient.Phone,
			Email:     r.WalkInClient.Email,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
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
