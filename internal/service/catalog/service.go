package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	serviceRepo "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/service"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/service/catalog/models"
)

// Service сервис для работы с каталогом услуг
type Service struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Create создает новую услугу в каталоге
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service %q", req.Name)

	if err := validateServiceFields(req.Name, req.DurationMinutes, req.Price); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	service, err := s.serviceRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, serviceRepo.ErrDuplicateName) {
			s.logger.Warn("Create: service name %q already exists", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", service.ID)
	return models.FromDomainService(service), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// List получает все услуги каталога
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// Update обновляет услугу
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	if err := validateServiceFields(req.Name, req.DurationMinutes, req.Price); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	service, err := s.serviceRepo.Update(ctx, id, req.ToDomain())
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		if errors.Is(err, serviceRepo.ErrDuplicateName) {
			s.logger.Warn("Update: service name %q already exists", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", id)
	return models.FromDomainService(service), nil
}

// Delete удаляет услугу из каталога
// Услуга, на которую ссылаются записи, не удаляется
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting service id=%d", id)

	count, err := s.appointmentRepo.CountByServiceID(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count appointments for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if count > 0 {
		s.logger.Warn("Delete: service id=%d is referenced by %d appointments", id, count)
		return ErrServiceInUse
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%d", id)
	return nil
}

// validateServiceFields проверяет обязательные поля услуги
func validateServiceFields(name string, durationMinutes int, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if durationMinutes < domain.MinDurationMinutes || durationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
