package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	appointmentStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/appointment"
	clientStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/client"
	employeeStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/employee"
	serviceStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/service"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/schedule"
)

// UseCase use case для переноса/редактирования записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	serviceRepo     ServiceRepository
	employeeRepo    EmployeeRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	scopeByStaff    bool
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	serviceRepo ServiceRepository,
	employeeRepo EmployeeRepository,
	txManager TransactionManager,
	scopeByStaff bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		serviceRepo:     serviceRepo,
		employeeRepo:    employeeRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		scopeByStaff:    scopeByStaff,
		logger:          logger,
	}
}

// Execute выполняет use case редактирования записи.
// Перенос проходит тот же конвейер, что и создание, но запись
// исключает сама себя из проверки конфликта (ExcludeID)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Существование ссылочных сущностей проверяем до транзакции
	if req.ClientID != nil {
		if _, err := uc.clientRepo.GetByID(ctx, *req.ClientID); err != nil {
			if errors.Is(err, clientStorage.ErrClientNotFound) {
				uc.logger.Warn("UpdateAppointment: client id=%d not found", *req.ClientID)
				return nil, ErrClientNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get client id=%d: %v", *req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
	}

	if req.EmployeeID != nil {
		if _, err := uc.employeeRepo.GetByID(ctx, *req.EmployeeID); err != nil {
			if errors.Is(err, employeeStorage.ErrEmployeeNotFound) {
				uc.logger.Warn("UpdateAppointment: employee id=%d not found", *req.EmployeeID)
				return nil, ErrEmployeeNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get employee id=%d: %v", *req.EmployeeID, err)
			return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
		}
	}

	var newService *domain.Service
	if req.ServiceID != nil {
		service, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceStorage.ErrServiceNotFound) {
				uc.logger.Warn("UpdateAppointment: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		newService = service
	}

	var result *domain.Appointment

	// 3. Чтение текущего состояния, проверка конфликта и запись в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, appointmentStorage.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.ID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		reschedule := requiresReschedule(req)

		// Завершенные и отмененные записи не переносятся, но заметки и статус менять можно
		if reschedule && !current.CanBeRescheduled() {
			uc.logger.Warn("UpdateAppointment: appointment id=%d has status %s and cannot be edited",
				req.ID, current.Status)
			return ErrAppointmentNotEditable
		}

		updated := applyChanges(current, req, newService)

		// 3.1. Перенесенный интервал проверяем на конфликт, исключая саму запись
		if reschedule {
			existing, err := uc.loadNeighborhood(txCtx, updated.StartAt)
			if err != nil {
				uc.logger.Error("UpdateAppointment: failed to get appointments: %v", err)
				return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
			}

			check, err := schedule.CheckConflict(schedule.Candidate{
				StartAt:         updated.StartAt,
				DurationMinutes: updated.DurationMinutes,
				ExcludeID:       &req.ID,
				EmployeeID:      updated.EmployeeID,
			}, existing, schedule.Options{ScopeByStaff: uc.scopeByStaff})
			if err != nil {
				uc.logger.Error("UpdateAppointment: conflict check failed: %v", err)
				return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
			}

			if !check.Available {
				uc.logger.Warn("UpdateAppointment: slot %s taken by appointment id=%d",
					updated.StartAt.Format(time.RFC3339), *check.ConflictingID)
				return ErrTimeSlotNotAvailable
			}
		}

		saved, err := uc.appointmentRepo.Update(txCtx, req.ID, updated)
		if err != nil {
			if errors.Is(err, appointmentStorage.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		// Update не перечитывает денормализованные поля, переносим их сами
		saved.ClientFirstName = current.ClientFirstName
		saved.ClientLastName = current.ClientLastName
		saved.ServiceName = current.ServiceName
		if newService != nil {
			saved.ServiceName = &newService.Name
		}
		if req.NullService {
			saved.ServiceName = nil
		}

		result = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		StartAt:         result.StartAt,
		DurationMinutes: result.DurationMinutes,
		ClientID:        result.ClientID,
		ServiceID:       result.ServiceID,
		EmployeeID:      result.EmployeeID,
		Price:           result.Price,
		Status:          string(result.Status),
		Notes:           result.Notes,
		ClientFirstName: result.ClientFirstName,
		ClientLastName:  result.ClientLastName,
		ServiceName:     result.ServiceName,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// applyChanges накладывает nil-пропускающие изменения запроса на текущую запись
func applyChanges(current *domain.Appointment, req *Request, newService *domain.Service) *domain.Appointment {
	updated := *current

	if req.StartAt != nil {
		updated.StartAt = *req.StartAt
	}
	if req.ClientID != nil {
		updated.ClientID = *req.ClientID
	}

	switch {
	case req.NullService:
		updated.ServiceID = nil
	case req.ServiceID != nil:
		updated.ServiceID = req.ServiceID
		// Новая каталожная услуга задает длительность и цену по умолчанию
		updated.DurationMinutes = newService.DurationMinutes
		updated.Price = newService.Price
	}

	switch {
	case req.NullEmployee:
		updated.EmployeeID = nil
	case req.EmployeeID != nil:
		updated.EmployeeID = req.EmployeeID
	}

	if req.DurationMinutes != nil {
		updated.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		updated.Price = *req.Price
	}
	if req.Notes != nil {
		updated.Notes = req.Notes
	}
	if req.Status != nil {
		updated.Status = domain.AppointmentStatus(*req.Status)
	}

	return &updated
}

// loadNeighborhood загружает активные записи вокруг новой даты.
// День до и день после, как при создании
func (uc *UseCase) loadNeighborhood(ctx context.Context, startAt time.Time) ([]*domain.Appointment, error) {
	from := startAt.AddDate(0, 0, -1)
	to := startAt.AddDate(0, 0, 1)

	return uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		StartDate:       &from,
		EndDate:         &to,
		IncludeInactive: false,
	})
}
