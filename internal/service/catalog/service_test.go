package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	serviceRepo "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/service"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/service/catalog/models"
)

type fakeServiceRepo struct {
	services    map[int64]*domain.Service
	createErr   error
	deleteCalls int
}

func (f *fakeServiceRepo) Create(_ context.Context, service *domain.Service) (*domain.Service, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	service.ID = int64(len(f.services) + 1)
	return service, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	service, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return service, nil
}

func (f *fakeServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0, len(f.services))
	for _, service := range f.services {
		result = append(result, service)
	}
	return result, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, id int64, service *domain.Service) (*domain.Service, error) {
	if _, ok := f.services[id]; !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	service.ID = id
	return service, nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id int64) error {
	f.deleteCalls++
	if _, ok := f.services[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	delete(f.services, id)
	return nil
}

type fakeAppointmentRepo struct {
	countByService map[int64]int64
}

func (f *fakeAppointmentRepo) CountByServiceID(_ context.Context, serviceID int64) (int64, error) {
	return f.countByService[serviceID], nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(services map[int64]*domain.Service, counts map[int64]int64) (*Service, *fakeServiceRepo) {
	repo := &fakeServiceRepo{services: services}
	apptRepo := &fakeAppointmentRepo{countByService: counts}
	return NewService(repo, apptRepo, noopLogger{}), repo
}

func TestDelete_ServiceInUse(t *testing.T) {
	services := map[int64]*domain.Service{
		1: {ID: 1, Name: "Гель-лак", DurationMinutes: 60, Price: 45},
	}
	svc, repo := newTestService(services, map[int64]int64{1: 3})

	err := svc.Delete(context.Background(), 1)

	require.ErrorIs(t, err, ErrServiceInUse)
	// Услуга с записями не должна дойти до репозитория
	assert.Equal(t, 0, repo.deleteCalls)
	assert.Contains(t, repo.services, int64(1))
}

func TestDelete_UnreferencedService(t *testing.T) {
	services := map[int64]*domain.Service{
		1: {ID: 1, Name: "Маникюр", DurationMinutes: 30, Price: 25},
	}
	svc, repo := newTestService(services, nil)

	err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.NotContains(t, repo.services, int64(1))
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newTestService(map[int64]*domain.Service{}, nil)

	err := svc.Delete(context.Background(), 77)

	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := &fakeServiceRepo{createErr: serviceRepo.ErrDuplicateName}
	svc := NewService(repo, &fakeAppointmentRepo{}, noopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:            "Маникюр",
		DurationMinutes: 30,
		Price:           25,
	})

	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService(map[int64]*domain.Service{}, nil)

	tests := []struct {
		name string
		req  *models.CreateServiceRequest
	}{
		{
			name: "empty name",
			req:  &models.CreateServiceRequest{Name: "   ", DurationMinutes: 30, Price: 25},
		},
		{
			name: "zero duration",
			req:  &models.CreateServiceRequest{Name: "Маникюр", DurationMinutes: 0, Price: 25},
		},
		{
			name: "duration above limit",
			req:  &models.CreateServiceRequest{Name: "Маникюр", DurationMinutes: domain.MaxDurationMinutes + 1, Price: 25},
		},
		{
			name: "negative price",
			req:  &models.CreateServiceRequest{Name: "Маникюр", DurationMinutes: 30, Price: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
