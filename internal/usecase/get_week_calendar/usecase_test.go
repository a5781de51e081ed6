package get_week_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/schedule"
	"github.com/AnthonyDelgadoMiami/nail-salon/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	gotFilter    domain.AppointmentsFilter
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.gotFilter = filter
	return f.appointments, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func TestExecute_WeekLayout(t *testing.T) {
	// Среда 15 октября 2025; неделя Monday 13 .. Sunday 19
	wednesday := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:              1,
				StartAt:         time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC),
				DurationMinutes: 30,
				Status:          domain.StatusScheduled,
				ClientFirstName: "Anna",
				ClientLastName:  "Lee",
				ServiceName:     ptr.Ptr("Gel Manicure"),
				Price:           45,
			},
			{
				ID:              2,
				StartAt:         time.Date(2025, 10, 13, 6, 0, 0, 0, time.UTC),
				DurationMinutes: 60,
				Status:          domain.StatusConfirmed,
				ClientFirstName: "Dana",
				ClientLastName:  "Kim",
			},
		},
	}

	uc := NewUseCase(repo, schedule.DefaultGridConfig(), noopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), resp.Monday)
	assert.Equal(t, 28, resp.Rows, "06:00-20:00 with 30-minute rows")

	// Запрошен ровно диапазон недели
	require.NotNil(t, repo.gotFilter.StartDate)
	require.NotNil(t, repo.gotFilter.EndDate)
	assert.Equal(t, resp.Monday, *repo.gotFilter.StartDate)
	assert.Equal(t, resp.Monday.AddDate(0, 0, 6), *repo.gotFilter.EndDate)

	// Понедельник: одна запись в первой строке
	require.Len(t, resp.Days[0].Items, 1)
	assert.Equal(t, int64(2), resp.Days[0].Items[0].AppointmentID)
	assert.Equal(t, 0.0, resp.Days[0].Items[0].Row)
	assert.Equal(t, 2.0, resp.Days[0].Items[0].RowSpan)
	assert.Equal(t, "Dana Kim", resp.Days[0].Items[0].ClientName)
	assert.True(t, resp.Days[0].IsPast)

	// Среда: 09:00/30 мин -> строка 6, спан 1
	require.Len(t, resp.Days[2].Items, 1)
	item := resp.Days[2].Items[0]
	assert.Equal(t, int64(1), item.AppointmentID)
	assert.Equal(t, 6.0, item.Row)
	assert.Equal(t, 1.0, item.RowSpan)
	require.NotNil(t, item.ServiceName)
	assert.Equal(t, "Gel Manicure", *item.ServiceName)
	assert.True(t, resp.Days[2].IsToday)

	// Остальные дни пустые, но не nil
	for i := range resp.Days {
		assert.NotNil(t, resp.Days[i].Items)
	}
}

func TestExecute_RequiresDate(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, schedule.DefaultGridConfig(), noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_Idempotent(t *testing.T) {
	wednesday := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:              1,
				StartAt:         time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC),
				DurationMinutes: 30,
				Status:          domain.StatusScheduled,
			},
		},
	}

	uc := NewUseCase(repo, schedule.DefaultGridConfig(), noopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)}

	first, err := uc.Execute(context.Background(), &Request{Date: wednesday})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Date: wednesday})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
