package models

import (
	"time"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
)

// Request модели

// CreateEmployeeRequest запрос на создание сотрудника
// Пароль приходит открытым текстом и хешируется в сервисе
type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateEmployeeRequest запрос на обновление сотрудника
// Пустой Password оставляет текущий пароль без изменений
type UpdateEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

// Response модели

// EmployeeResponse ответ с данными сотрудника
// Хеш пароля наружу не отдается
type EmployeeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmployeeListResponse ответ со списком сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// EmployeeStatsResponse агрегированная статистика по записям мастера
type EmployeeStatsResponse struct {
	TotalAppointments     int64 `json:"totalAppointments"`
	ThisMonthAppointments int64 `json:"thisMonthAppointments"`
	TodayAppointments     int64 `json:"todayAppointments"`
}

// Методы конвертации

// FromDomainEmployee конвертирует domain модель в DTO
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}

	return &EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// FromDomainEmployeeList конвертирует список domain моделей в DTO
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	if employees == nil {
		return &EmployeeListResponse{
			Employees: []EmployeeResponse{},
		}
	}

	resp := &EmployeeListResponse{
		Employees: make([]EmployeeResponse, len(employees)),
	}

	for i, employee := range employees {
		if employeeResp := FromDomainEmployee(employee); employeeResp != nil {
			resp.Employees[i] = *employeeResp
		}
	}

	return resp
}

// FromDomainEmployeeStats конвертирует domain статистику в DTO
func FromDomainEmployeeStats(s *domain.EmployeeStats) *EmployeeStatsResponse {
	if s == nil {
		return nil
	}

	return &EmployeeStatsResponse{
		TotalAppointments:     s.TotalAppointments,
		ThisMonthAppointments: s.ThisMonthAppointments,
		TodayAppointments:     s.TodayAppointments,
	}
}

// ToDomainEmployeeRole конвертирует строку в domain.EmployeeRole с валидацией
func ToDomainEmployeeRole(role string) (domain.EmployeeRole, bool) {
	switch domain.EmployeeRole(role) {
	case domain.RoleAdmin:
		return domain.RoleAdmin, true
	case domain.RoleEmployee:
		return domain.RoleEmployee, true
	default:
		return "", false
	}
}
