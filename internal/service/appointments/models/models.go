package models

import (
	"errors"
	"time"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение записей с фильтрацией
type ListAppointmentsRequest struct {
	Date            *time.Time `json:"date,omitempty"`      // Записи на конкретную дату
	StartDate       *time.Time `json:"startDate,omitempty"` // Начало периода
	EndDate         *time.Time `json:"endDate,omitempty"`   // Конец периода
	ClientID        *int64     `json:"clientId,omitempty"`
	EmployeeID      *int64     `json:"employeeId,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
// Date - сокращение для периода из одного дня
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		ClientID:        r.ClientID,
		EmployeeID:      r.EmployeeID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Date != nil {
		filter.StartDate = r.Date
		filter.EndDate = r.Date
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	StartAt         string  `json:"startAt"` // ISO 8601
	DurationMinutes int     `json:"durationMinutes"`
	ClientID        int64   `json:"clientId"`
	ServiceID       *int64  `json:"serviceId,omitempty"`
	EmployeeID      *int64  `json:"employeeId,omitempty"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`

	// Денормализованные данные
	ClientName  string  `json:"clientName"`
	ServiceName *string `json:"serviceName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		StartAt:         a.StartAt.Format(time.RFC3339),
		DurationMinutes: a.DurationMinutes,
		ClientID:        a.ClientID,
		ServiceID:       a.ServiceID,
		EmployeeID:      a.EmployeeID,
		Price:           a.Price,
		Status:          string(a.Status),
		Notes:           a.Notes,
		ClientName:      a.ClientFirstName + " " + a.ClientLastName,
		ServiceName:     a.ServiceName,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appointment := range appointments {
		if apptResp := FromDomainAppointment(appointment); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	validStatuses := []domain.AppointmentStatus{
		domain.StatusScheduled,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
