package employees

import (
	"context"
	"time"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, id int64, employee *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория записей (записи и статистика мастера)
type AppointmentRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID int64) ([]*domain.Appointment, error)
	CountStatsByEmployee(ctx context.Context, employeeID int64, now time.Time) (*domain.EmployeeStats, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
