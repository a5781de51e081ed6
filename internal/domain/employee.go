package domain

import "time"

// EmployeeRole роль сотрудника салона
type EmployeeRole string

const (
	RoleAdmin    EmployeeRole = "admin"
	RoleEmployee EmployeeRole = "employee"
)

// Employee represents a staff member (nail technician or admin)
type Employee struct {
	ID           int64
	Name         string
	Email        string // уникален
	PasswordHash string // bcrypt, наружу не отдается
	Role         EmployeeRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin returns true if the employee has the admin role
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// EmployeeStats агрегированная статистика по записям мастера
type EmployeeStats struct {
	TotalAppointments     int64
	ThisMonthAppointments int64
	TodayAppointments     int64
}
