package employees

import (
	"context"

	apptmodels "github.com/AnthonyDelgadoMiami/nail-salon/internal/service/appointments/models"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/service/employees/models"
)

type EmployeeService interface {
	Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (*models.EmployeeResponse, error)
	List(ctx context.Context) (*models.EmployeeListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateEmployeeRequest) (*models.EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
	GetAppointments(ctx context.Context, id int64) (*apptmodels.AppointmentListResponse, error)
	GetStats(ctx context.Context, id int64) (*models.EmployeeStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
