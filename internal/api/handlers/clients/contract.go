package clients

import (
	"context"

	apptmodels "github.com/AnthonyDelgadoMiami/nail-salon/internal/service/appointments/models"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/service/clients/models"
)

type ClientService interface {
	Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ClientResponse, error)
	List(ctx context.Context, search string) (*models.ClientListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateClientRequest) (*models.ClientResponse, error)
	Delete(ctx context.Context, id int64) error
	GetHistory(ctx context.Context, id int64) (*apptmodels.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
