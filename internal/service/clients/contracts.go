package clients

import (
	"context"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, search string) ([]*domain.Client, error)
	Update(ctx context.Context, id int64, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория записей (история клиента)
type AppointmentRepository interface {
	GetByClientID(ctx context.Context, clientID int64) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
