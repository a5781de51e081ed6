package catalog

import (
	"context"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, id int64, service *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория записей (проверка ссылок на услугу)
type AppointmentRepository interface {
	CountByServiceID(ctx context.Context, serviceID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
