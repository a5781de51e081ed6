package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	clientStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/client"
	employeeStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/employee"
	serviceStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/service"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/schedule"
)

// UseCase use case для создания записи
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

// Execute выполняет use case создания записи
// Проверка конфликта и вставка выполняются в одной сериализуемой транзакции,
// чтобы два конкурирующих запроса не получили один и тот же слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: startAt=%s, client=%v, service=%v, employee=%v",
		req.StartAt.Format(time.RFC3339), req.ClientID, req.ServiceID, req.EmployeeID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем услугу: каталожная задает длительность и цену по умолчанию
	duration, price, serviceName, err := uc.resolveService(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Проверяем существование мастера
	if req.EmployeeID != nil {
		if _, err := uc.employeeRepo.GetByID(ctx, *req.EmployeeID); err != nil {
			if errors.Is(err, employeeStorage.ErrEmployeeNotFound) {
				uc.logger.Warn("CreateAppointment: employee id=%d not found", *req.EmployeeID)
				return nil, ErrEmployeeNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get employee id=%d: %v", *req.EmployeeID, err)
			return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
		}
	}

	// 4. Проверяем существование клиента (walk-in создается позже, внутри транзакции)
	var existingClient *domain.Client
	if req.ClientID != nil {
		existingClient, err = uc.clientRepo.GetByID(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, clientStorage.ErrClientNotFound) {
				uc.logger.Warn("CreateAppointment: client id=%d not found", *req.ClientID)
				return nil, ErrClientNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", *req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
	}

	var result *domain.Appointment
	var client *domain.Client

	// 5. Проверка конфликта и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		client = existingClient

		// 5.1. Walk-in клиент создается в той же транзакции, что и запись
		if req.WalkInClient != nil {
			created, err := uc.clientRepo.Create(txCtx, &domain.Client{
				FirstName: req.WalkInClient.FirstName,
				LastName:  req.WalkInClient.LastName,
				Phone:     req.WalkInClient.Phone,
				Email:     req.WalkInClient.Email,
			})
			if err != nil {
				if errors.Is(err, clientStorage.ErrDuplicatePhone) {
					uc.logger.Warn("CreateAppointment: walk-in phone %s already exists", req.WalkInClient.Phone)
					return ErrDuplicatePhone
				}
				uc.logger.Error("CreateAppointment: failed to create walk-in client: %v", err)
				return fmt.Errorf("%w: failed to create walk-in client: %v", ErrInternal, err)
			}
			client = created
		}

		// 5.2. Загружаем окрестность кандидата с блокировкой (FOR UPDATE)
		existing, err := uc.loadNeighborhood(txCtx, req.StartAt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.3. Проверяем доступность интервала
		check, err := schedule.CheckConflict(schedule.Candidate{
			StartAt:         req.StartAt,
			DurationMinutes: duration,
			EmployeeID:      req.EmployeeID,
		}, existing, schedule.Options{ScopeByStaff: uc.scopeByStaff})
		if err != nil {
			uc.logger.Error("CreateAppointment: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		if !check.Available {
			uc.logger.Warn("CreateAppointment: slot %s taken by appointment id=%d",
				req.StartAt.Format(time.RFC3339), *check.ConflictingID)
			return ErrTimeSlotNotAvailable
		}

		// 5.4. Сохраняем запись
		appointment := &domain.Appointment{
			StartAt:         req.StartAt,
			DurationMinutes: duration,
			ClientID:        client.ID,
			ServiceID:       req.ServiceID,
			EmployeeID:      req.EmployeeID,
			Price:           price,
			Notes:           req.Notes,
			Status:          domain.StatusScheduled,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		StartAt:         result.StartAt,
		DurationMinutes: result.DurationMinutes,
		ClientID:        client.ID,
		ServiceID:       result.ServiceID,
		EmployeeID:      result.EmployeeID,
		Price:           result.Price,
		Status:          string(result.Status),
		Notes:           result.Notes,
		ClientFirstName: client.FirstName,
		ClientLastName:  client.LastName,
		ServiceName:     serviceName,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// resolveService вычисляет итоговые длительность и цену записи.
// Каталожная услуга дает значения по умолчанию, явные поля запроса их переопределяют
func (uc *UseCase) resolveService(ctx context.Context, req *Request) (int, float64, *string, error) {
	if req.ServiceID == nil {
		// Кастомная услуга: валидация уже гарантировала наличие полей
		return *req.DurationMinutes, *req.Price, nil, nil
	}

	service, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceStorage.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", *req.ServiceID)
			return 0, 0, nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", *req.ServiceID, err)
		return 0, 0, nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	duration := service.DurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	price := service.Price
	if req.Price != nil {
		price = *req.Price
	}

	return duration, price, &service.Name, nil
}

// loadNeighborhood загружает активные записи вокруг даты кандидата.
// Берем день до и день после: запись с вечера предыдущего дня может
// перекрывать утро кандидата
func (uc *UseCase) loadNeighborhood(ctx context.Context, startAt time.Time) ([]*domain.Appointment, error) {
	from := startAt.AddDate(0, 0, -1)
	to := startAt.AddDate(0, 0, 1)

	return uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		StartDate:       &from,
		EndDate:         &to,
		IncludeInactive: false,
	})
}
