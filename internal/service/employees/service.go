package employees

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	employeeRepo "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/employee"
	apptmodels "github.com/AnthonyDelgadoMiami/nail-salon/internal/service/appointments/models"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/service/employees/models"
)

// minPasswordLength минимальная длина пароля сотрудника
const minPasswordLength = 8

// Service сервис для работы с сотрудниками
type Service struct {
	employeeRepo    EmployeeRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(employeeRepo EmployeeRepository, appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		employeeRepo:    employeeRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Create создает нового сотрудника с bcrypt-хешированием пароля
func (s *Service) Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("Create: creating employee %s, email=%s", req.Name, req.Email)

	role, err := s.validateEmployeeFields(req.Name, req.Email, req.Role)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if len(req.Password) < minPasswordLength {
		s.logger.Warn("Create: password too short for email=%s", req.Email)
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Create - failed to hash password: %v", ErrInternal, err)
	}

	employee, err := s.employeeRepo.Create(ctx, &domain.Employee{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, employeeRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email %s already exists", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created employee id=%d", employee.ID)
	return models.FromDomainEmployee(employee), nil
}

// GetByID получает сотрудника по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EmployeeResponse, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("GetByID: employee id=%d not found", id)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GetByID: repository error for employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployee(employee), nil
}

// List получает всех сотрудников
func (s *Service) List(ctx context.Context) (*models.EmployeeListResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d employees", len(employees))
	return models.FromDomainEmployeeList(employees), nil
}

// Update обновляет сотрудника
// Пустой пароль в запросе сохраняет текущий хеш
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateEmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("Update: updating employee id=%d", id)

	role, err := s.validateEmployeeFields(req.Name, req.Email, req.Role)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	var passwordHash string
	if req.Password != "" {
		if len(req.Password) < minPasswordLength {
			s.logger.Warn("Update: password too short for employee id=%d", id)
			return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("Update: failed to hash password: %v", err)
			return nil, fmt.Errorf("%w: Update - failed to hash password: %v", ErrInternal, err)
		}
		passwordHash = string(hash)
	}

	employee, err := s.employeeRepo.Update(ctx, id, &domain.Employee{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("Update: employee id=%d not found", id)
			return nil, ErrEmployeeNotFound
		}
		if errors.Is(err, employeeRepo.ErrDuplicateEmail) {
			s.logger.Warn("Update: email %s already exists", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Update: repository error for employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated employee id=%d", id)
	return models.FromDomainEmployee(employee), nil
}

// Delete удаляет сотрудника
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting employee id=%d", id)

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("Delete: employee id=%d not found", id)
			return ErrEmployeeNotFound
		}
		s.logger.Error("Delete: repository error for employee id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted employee id=%d", id)
	return nil
}

// GetAppointments получает записи мастера, свежие первыми
func (s *Service) GetAppointments(ctx context.Context, id int64) (*apptmodels.AppointmentListResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("GetAppointments: employee id=%d not found", id)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GetAppointments: repository error for employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetAppointments - repository error: %v", ErrInternal, err)
	}

	appointments, err := s.appointmentRepo.GetByEmployeeID(ctx, id)
	if err != nil {
		s.logger.Error("GetAppointments: repository error for employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAppointments: fetched %d appointments for employee id=%d", len(appointments), id)
	return apptmodels.FromDomainAppointmentList(appointments), nil
}

// GetStats получает статистику записей мастера: всего, за текущий месяц, за сегодня
func (s *Service) GetStats(ctx context.Context, id int64) (*models.EmployeeStatsResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("GetStats: employee id=%d not found", id)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GetStats: repository error for employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	stats, err := s.appointmentRepo.CountStatsByEmployee(ctx, id, time.Now())
	if err != nil {
		s.logger.Error("GetStats: repository error for employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployeeStats(stats), nil
}

// validateEmployeeFields проверяет обязательные поля сотрудника
func (s *Service) validateEmployeeFields(name, email, role string) (domain.EmployeeRole, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}

	domainRole, ok := models.ToDomainEmployeeRole(role)
	if !ok {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	return domainRole, nil
}
