package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	clientRepo "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/client"
	apptmodels "github.com/AnthonyDelgadoMiami/nail-salon/internal/service/appointments/models"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/service/clients/models"
)

// Service сервис для работы с клиентами
type Service struct {
	clientRepo      ClientRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Create создает нового клиента
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Create: creating client %s %s, phone=%s", req.FirstName, req.LastName, req.Phone)

	if err := validateClientFields(req.FirstName, req.LastName, req.Phone); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	client, err := s.clientRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, clientRepo.ErrDuplicatePhone) {
			s.logger.Warn("Create: phone %s already exists", req.Phone)
			return nil, ErrDuplicatePhone
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%d", client.ID)
	return models.FromDomainClient(client), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ClientResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// List получает клиентов, опционально фильтруя по поисковой строке
// Поиск идет по имени, фамилии и телефону
func (s *Service) List(ctx context.Context, search string) (*models.ClientListResponse, error) {
	clients, err := s.clientRepo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// Update обновляет данные клиента
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Update: updating client id=%d", id)

	if err := validateClientFields(req.FirstName, req.LastName, req.Phone); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	client, err := s.clientRepo.Update(ctx, id, req.ToDomain())
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Update: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		if errors.Is(err, clientRepo.ErrDuplicatePhone) {
			s.logger.Warn("Update: phone %s already exists", req.Phone)
			return nil, ErrDuplicatePhone
		}
		s.logger.Error("Update: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated client id=%d", id)
	return models.FromDomainClient(client), nil
}

// Delete удаляет клиента
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting client id=%d", id)

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Delete: client id=%d not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("Delete: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted client id=%d", id)
	return nil
}

// GetHistory получает историю записей клиента, свежие первыми
func (s *Service) GetHistory(ctx context.Context, id int64) (*apptmodels.AppointmentListResponse, error) {
	// Проверяем, что клиент существует
	if _, err := s.clientRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetHistory: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetHistory: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetHistory - repository error: %v", ErrInternal, err)
	}

	appointments, err := s.appointmentRepo.GetByClientID(ctx, id)
	if err != nil {
		s.logger.Error("GetHistory: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetHistory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetHistory: fetched %d appointments for client id=%d", len(appointments), id)
	return apptmodels.FromDomainAppointmentList(appointments), nil
}

// validateClientFields проверяет обязательные поля клиента
func validateClientFields(firstName, lastName, phone string) error {
	if strings.TrimSpace(firstName) == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(lastName) == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}
