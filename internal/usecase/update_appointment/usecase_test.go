package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	appointmentStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/appointment"
	clientStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/client"
	employeeStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/employee"
	serviceStorage "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/service"
	"github.com/AnthonyDelgadoMiami/nail-salon/pkg/ptr"
)

type fakeAppointmentRepo struct {
	byID    map[int64]*domain.Appointment
	week    []*domain.Appointment
	updated *domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentStorage.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.week, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, id int64, appt *domain.Appointment) (*domain.Appointment, error) {
	stored := *appt
	stored.ID = id
	stored.UpdatedAt = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	f.updated = &stored
	return &stored, nil
}

type fakeClientRepo struct{ clients map[int64]*domain.Client }

func (f *fakeClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	client, ok := f.clients[id]
	if !ok {
		return nil, clientStorage.ErrClientNotFound
	}
	return client, nil
}

type fakeServiceRepo struct{ services map[int64]*domain.Service }

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	service, ok := f.services[id]
	if !ok {
		return nil, serviceStorage.ErrServiceNotFound
	}
	return service, nil
}

type fakeEmployeeRepo struct{ employees map[int64]*domain.Employee }

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	employee, ok := f.employees[id]
	if !ok {
		return nil, employeeStorage.ErrEmployeeNotFound
	}
	return employee, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func baseAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              1,
		StartAt:         time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		ClientID:        1,
		ServiceID:       ptr.Ptr(int64(10)),
		Price:           45,
		Status:          domain.StatusScheduled,
		ClientFirstName: "Anna",
		ClientLastName:  "Lee",
		ServiceName:     ptr.Ptr("Gel Manicure"),
	}
}

func newTestUseCase(apptRepo *fakeAppointmentRepo) *UseCase {
	return NewUseCase(
		apptRepo,
		&fakeClientRepo{clients: map[int64]*domain.Client{
			1: {ID: 1, FirstName: "Anna", LastName: "Lee"},
			2: {ID: 2, FirstName: "Dana", LastName: "Kim"},
		}},
		&fakeServiceRepo{services: map[int64]*domain.Service{
			10: {ID: 10, Name: "Gel Manicure", DurationMinutes: 60, Price: 45},
			11: {ID: 11, Name: "Pedicure", DurationMinutes: 90, Price: 65},
		}},
		&fakeEmployeeRepo{employees: map[int64]*domain.Employee{
			3: {ID: 3, Name: "Maria"},
		}},
		fakeTxManager{},
		false,
		noopLogger{},
	)
}

func TestExecute_RescheduleDoesNotConflictWithItself(t *testing.T) {
	appt := baseAppointment()
	apptRepo := &fakeAppointmentRepo{
		byID: map[int64]*domain.Appointment{1: appt},
		week: []*domain.Appointment{appt},
	}
	uc := newTestUseCase(apptRepo)

	// Сдвиг на 30 минут; старый интервал записи все еще в выборке
	resp, err := uc.Execute(context.Background(), &Request{
		ID:      1,
		StartAt: ptr.Ptr(time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC)),
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC), resp.StartAt)
	assert.Equal(t, 60, resp.DurationMinutes, "duration is unchanged")
}

func TestExecute_ConflictWithAnotherAppointment(t *testing.T) {
	appt := baseAppointment()
	other := &domain.Appointment{
		ID:              2,
		StartAt:         time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}
	apptRepo := &fakeAppointmentRepo{
		byID: map[int64]*domain.Appointment{1: appt},
		week: []*domain.Appointment{appt, other},
	}
	uc := newTestUseCase(apptRepo)

	_, err := uc.Execute(context.Background(), &Request{
		ID:      1,
		StartAt: ptr.Ptr(time.Date(2025, 10, 15, 11, 30, 0, 0, time.UTC)),
	})

	assert.ErrorIs(t, err, ErrTimeSlotNotAvailable)
	assert.Nil(t, apptRepo.updated)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	appt := baseAppointment()
	other := &domain.Appointment{
		ID:              2,
		StartAt:         time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}
	apptRepo := &fakeAppointmentRepo{
		byID: map[int64]*domain.Appointment{1: appt},
		week: []*domain.Appointment{appt, other},
	}
	uc := newTestUseCase(apptRepo)

	// Заканчивается ровно в 12:00, когда начинается другая запись
	_, err := uc.Execute(context.Background(), &Request{
		ID:      1,
		StartAt: ptr.Ptr(time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)),
	})

	require.NoError(t, err)
}

func TestExecute_CompletedNotEditable(t *testing.T) {
	appt := baseAppointment()
	appt.Status = domain.StatusCompleted
	apptRepo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{1: appt}}
	uc := newTestUseCase(apptRepo)

	_, err := uc.Execute(context.Background(), &Request{
		ID:      1,
		StartAt: ptr.Ptr(time.Date(2025, 10, 16, 10, 0, 0, 0, time.UTC)),
	})

	assert.ErrorIs(t, err, ErrAppointmentNotEditable)
}

func TestExecute_StatusChangeOnCompletedAllowed(t *testing.T) {
	appt := baseAppointment()
	appt.Status = domain.StatusCompleted
	apptRepo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{1: appt}}
	uc := newTestUseCase(apptRepo)

	// Смена статуса не является переносом
	resp, err := uc.Execute(context.Background(), &Request{
		ID:     1,
		Status: ptr.Ptr("no_show"),
	})

	require.NoError(t, err)
	assert.Equal(t, "no_show", resp.Status)
}

func TestExecute_ServiceChangePullsCatalogDefaults(t *testing.T) {
	appt := baseAppointment()
	apptRepo := &fakeAppointmentRepo{
		byID: map[int64]*domain.Appointment{1: appt},
		week: []*domain.Appointment{appt},
	}
	uc := newTestUseCase(apptRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:        1,
		ServiceID: ptr.Ptr(int64(11)),
	})

	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, 65.0, resp.Price)
	require.NotNil(t, resp.ServiceName)
	assert.Equal(t, "Pedicure", *resp.ServiceName)
}

func TestExecute_NullServiceMakesCustom(t *testing.T) {
	appt := baseAppointment()
	apptRepo := &fakeAppointmentRepo{
		byID: map[int64]*domain.Appointment{1: appt},
		week: []*domain.Appointment{appt},
	}
	uc := newTestUseCase(apptRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:              1,
		NullService:     true,
		DurationMinutes: ptr.Ptr(40),
		Price:           ptr.Ptr(30.0),
	})

	require.NoError(t, err)
	assert.Nil(t, resp.ServiceID)
	assert.Nil(t, resp.ServiceName)
	assert.Equal(t, 40, resp.DurationMinutes)
}

func TestExecute_NotFound(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{}}
	uc := newTestUseCase(apptRepo)

	_, err := uc.Execute(context.Background(), &Request{
		ID:      99,
		StartAt: ptr.Ptr(time.Date(2025, 10, 16, 10, 0, 0, 0, time.UTC)),
	})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{byID: map[int64]*domain.Appointment{}})

	_, err := uc.Execute(context.Background(), &Request{ID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ID: 1, Status: ptr.Ptr("unknown")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ID:          1,
		ServiceID:   ptr.Ptr(int64(10)),
		NullService: true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
