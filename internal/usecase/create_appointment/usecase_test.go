package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	clientStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/client"
	employeeStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/employee"
	serviceStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/service"
	"github.com/AnthonyDelgadoMiami/nail-salon/pkg/ptr"
)

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
	nextID   int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	stored := *appt
	stored.ID = f.nextID
	stored.CreatedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeClientRepo struct {
	clients       map[int64]*domain.Client
	createdClient *domain.Client
	createErr     error
}

func (f *fakeClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	client, ok := f.clients[id]
	if !ok {
		return nil, clientStorage.ErrClientNotFound
	}
	return client, nil
}

func (f *fakeClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *client
	stored.ID = 500
	f.createdClient = &stored
	return &stored, nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	service, ok := f.services[id]
	if !ok {
		return nil, serviceStorage.ErrServiceNotFound
	}
	return service, nil
}

type fakeEmployeeRepo struct {
	employees map[int64]*domain.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	employee, ok := f.employees[id]
	if !ok {
		return nil, employeeStorage.ErrEmployeeNotFound
	}
	return employee, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newTestUseCase(apptRepo *fakeAppointmentRepo, clientRepo *fakeClientRepo) (*UseCase, *fakeTxManager) {
	txManager := &fakeTxManager{}
	uc := NewUseCase(
		apptRepo,
		clientRepo,
		&fakeServiceRepo{services: map[int64]*domain.Service{
			10: {ID: 10, Name: "Gel Manicure", DurationMinutes: 60, Price: 45},
		}},
		&fakeEmployeeRepo{employees: map[int64]*domain.Employee{
			3: {ID: 3, Name: "Maria"},
		}},
		txManager,
		false,
		noopLogger{},
	)
	uc.timeProvider = fixedTime{t: time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC)}
	return uc, txManager
}

func existingClients() *fakeClientRepo {
	return &fakeClientRepo{clients: map[int64]*domain.Client{
		1: {ID: 1, FirstName: "Anna", LastName: "Lee", Phone: "+15550001"},
	}}
}

func TestExecute_CatalogService(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{nextID: 42}
	uc, txManager := newTestUseCase(apptRepo, existingClients())

	resp, err := uc.Execute(context.Background(), &Request{
		StartAt:   time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ClientID:  ptr.Ptr(int64(1)),
		ServiceID: ptr.Ptr(int64(10)),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 60, resp.DurationMinutes, "duration comes from the catalog")
	assert.Equal(t, 45.0, resp.Price, "price comes from the catalog")
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, "Anna", resp.ClientFirstName)
	require.NotNil(t, resp.ServiceName)
	assert.Equal(t, "Gel Manicure", *resp.ServiceName)
	assert.Equal(t, 1, txManager.calls, "check and insert run in one transaction")
}

func TestExecute_CatalogOverrides(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{nextID: 1}
	uc, _ := newTestUseCase(apptRepo, existingClients())

	resp, err := uc.Execute(context.Background(), &Request{
		StartAt:         time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ClientID:        ptr.Ptr(int64(1)),
		ServiceID:       ptr.Ptr(int64(10)),
		DurationMinutes: ptr.Ptr(90),
		Price:           ptr.Ptr(60.0),
	})

	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, 60.0, resp.Price)
}

func TestExecute_CustomService(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{nextID: 1}
	uc, _ := newTestUseCase(apptRepo, existingClients())

	resp, err := uc.Execute(context.Background(), &Request{
		StartAt:         time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ClientID:        ptr.Ptr(int64(1)),
		DurationMinutes: ptr.Ptr(25),
		Price:           ptr.Ptr(15.0),
	})

	require.NoError(t, err)
	assert.Nil(t, resp.ServiceID, "custom service keeps service_id NULL")
	assert.Nil(t, resp.ServiceName)
	assert.Equal(t, 25, resp.DurationMinutes)
	assert.Equal(t, 15.0, resp.Price)
}

func TestExecute_CustomServiceRequiresDurationAndPrice(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{nextID: 1}, existingClients())

	_, err := uc.Execute(context.Background(), &Request{
		StartAt:  time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ClientID: ptr.Ptr(int64(1)),
		Price:    ptr.Ptr(15.0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		StartAt:         time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ClientID:        ptr.Ptr(int64(1)),
		DurationMinutes: ptr.Ptr(25),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SlotTaken(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{
		nextID: 1,
		existing: []*domain.Appointment{
			{
				ID:              7,
				StartAt:         time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC),
				DurationMinutes: 60,
				Status:          domain.StatusConfirmed,
			},
		},
	}
	uc, _ := newTestUseCase(apptRepo, existingClients())

	_, err := uc.Execute(context.Background(), &Request{
		StartAt:   time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ClientID:  ptr.Ptr(int64(1)),
		ServiceID: ptr.Ptr(int64(10)),
	})

	assert.ErrorIs(t, err, ErrTimeSlotNotAvailable)
	assert.Nil(t, apptRepo.created, "nothing is inserted when the slot is taken")
}

func TestExecute_CancelledDoesNotBlock(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{
		nextID: 1,
		existing: []*domain.Appointment{
			{
				ID:              7,
				StartAt:         time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
				DurationMinutes: 60,
				Status:          domain.StatusCancelled,
			},
		},
	}
	uc, _ := newTestUseCase(apptRepo, existingClients())

	_, err := uc.Execute(context.Background(), &Request{
		StartAt:   time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ClientID:  ptr.Ptr(int64(1)),
		ServiceID: ptr.Ptr(int64(10)),
	})

	require.NoError(t, err)
}

func TestExecute_WalkInClient(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{nextID: 1}
	clientRepo := existingClients()
	uc, _ := newTestUseCase(apptRepo, clientRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		StartAt: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		WalkInClient: &WalkInClient{
			FirstName: "Dana",
			LastName:  "Kim",
			Phone:     "+15550099",
		},
		ServiceID: ptr.Ptr(int64(10)),
	})

	require.NoError(t, err)
	require.NotNil(t, clientRepo.createdClient)
	assert.Equal(t, "Dana", clientRepo.createdClient.FirstName)
	assert.Equal(t, clientRepo.createdClient.ID, resp.ClientID)
	assert.Equal(t, "Dana", resp.ClientFirstName)
}

func TestExecute_WalkInDuplicatePhone(t *testing.T) {
	clientRepo := existingClients()
	clientRepo.createErr = clientStorage.ErrDuplicatePhone
	uc, _ := newTestUseCase(&fakeAppointmentRepo{nextID: 1}, clientRepo)

	_, err := uc.Execute(context.Background(), &Request{
		StartAt: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		WalkInClient: &WalkInClient{
			FirstName: "Dana",
			LastName:  "Kim",
			Phone:     "+15550001",
		},
		ServiceID: ptr.Ptr(int64(10)),
	})

	assert.ErrorIs(t, err, ErrDuplicatePhone)
}

func TestExecute_ClientSelection(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{nextID: 1}, existingClients())

	// Ни одного способа указать клиента
	_, err := uc.Execute(context.Background(), &Request{
		StartAt:   time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ServiceID: ptr.Ptr(int64(10)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Оба способа сразу
	_, err = uc.Execute(context.Background(), &Request{
		StartAt:      time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ClientID:     ptr.Ptr(int64(1)),
		WalkInClient: &WalkInClient{FirstName: "Dana", LastName: "Kim", Phone: "+1"},
		ServiceID:    ptr.Ptr(int64(10)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NotFoundErrors(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{nextID: 1}, existingClients())

	_, err := uc.Execute(context.Background(), &Request{
		StartAt:   time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ClientID:  ptr.Ptr(int64(999)),
		ServiceID: ptr.Ptr(int64(10)),
	})
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		StartAt:   time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ClientID:  ptr.Ptr(int64(1)),
		ServiceID: ptr.Ptr(int64(999)),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		StartAt:    time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ClientID:   ptr.Ptr(int64(1)),
		ServiceID:  ptr.Ptr(int64(10)),
		EmployeeID: ptr.Ptr(int64(999)),
	})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_ScopeByStaff(t *testing.T) {
	existing := []*domain.Appointment{
		{
			ID:              7,
			StartAt:         time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
			EmployeeID:      ptr.Ptr(int64(3)),
			Status:          domain.StatusConfirmed,
		},
	}

	apptRepo := &fakeAppointmentRepo{nextID: 1, existing: existing}
	txManager := &fakeTxManager{}
	uc := NewUseCase(
		apptRepo,
		existingClients(),
		&fakeServiceRepo{services: map[int64]*domain.Service{
			10: {ID: 10, Name: "Gel Manicure", DurationMinutes: 60, Price: 45},
		}},
		&fakeEmployeeRepo{employees: map[int64]*domain.Employee{
			3: {ID: 3, Name: "Maria"},
			4: {ID: 4, Name: "Olga"},
		}},
		txManager,
		true, // scopeByStaff
		noopLogger{},
	)

	// Другой мастер свободен в том же слоте
	_, err := uc.Execute(context.Background(), &Request{
		StartAt:    time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ClientID:   ptr.Ptr(int64(1)),
		ServiceID:  ptr.Ptr(int64(10)),
		EmployeeID: ptr.Ptr(int64(4)),
	})
	require.NoError(t, err)

	// Тот же мастер занят
	_, err = uc.Execute(context.Background(), &Request{
		StartAt:    time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ClientID:   ptr.Ptr(int64(1)),
		ServiceID:  ptr.Ptr(int64(10)),
		EmployeeID: ptr.Ptr(int64(3)),
	})
	assert.ErrorIs(t, err, ErrTimeSlotNotAvailable)
}
