package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	"github.com/AnthonyDelgadoMiami/nail-salon/pkg/ptr"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC)
}

func appt(id int64, start time.Time, durationMinutes int) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		StartAt:         start,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusScheduled,
	}
}

func TestCheckConflict_Overlap(t *testing.T) {
	existing := []*domain.Appointment{
		appt(1, at(10, 0), 30), // 10:00-10:30
	}

	tests := []struct {
		name      string
		start     time.Time
		duration  int
		available bool
	}{
		{"identical interval", at(10, 0), 30, false},
		{"candidate starts inside", at(10, 15), 30, false},
		{"candidate ends inside", at(9, 45), 30, false},
		{"candidate contains existing", at(9, 30), 90, false},
		{"candidate inside existing", at(10, 10), 10, false},
		{"back-to-back after", at(10, 30), 30, true},
		{"back-to-back before", at(9, 30), 30, true},
		{"fully before", at(8, 0), 60, true},
		{"fully after", at(12, 0), 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := CheckConflict(Candidate{
				StartAt:         tt.start,
				DurationMinutes: tt.duration,
			}, existing, Options{})

			require.NoError(t, err)
			assert.Equal(t, tt.available, res.Available)
			if tt.available {
				assert.Nil(t, res.ConflictingID)
			} else {
				require.NotNil(t, res.ConflictingID)
				assert.Equal(t, int64(1), *res.ConflictingID)
			}
		})
	}
}

func TestCheckConflict_InvalidDuration(t *testing.T) {
	for _, duration := range []int{0, -30} {
		_, err := CheckConflict(Candidate{
			StartAt:         at(10, 0),
			DurationMinutes: duration,
		}, nil, Options{})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	}
}

func TestCheckConflict_SelfExclusion(t *testing.T) {
	existing := []*domain.Appointment{
		appt(7, at(10, 0), 30),
	}

	// Перенос записи 7 на то же время не конфликтует с ней самой
	res, err := CheckConflict(Candidate{
		StartAt:         at(10, 0),
		DurationMinutes: 30,
		ExcludeID:       ptr.Ptr(int64(7)),
	}, existing, Options{})

	require.NoError(t, err)
	assert.True(t, res.Available)
}

func TestCheckConflict_ExcludeIDNotInSet(t *testing.T) {
	existing := []*domain.Appointment{
		appt(1, at(10, 0), 30),
	}

	// Несуществующий excludeID = отсутствие исключения, а не ошибка
	res, err := CheckConflict(Candidate{
		StartAt:         at(10, 0),
		DurationMinutes: 30,
		ExcludeID:       ptr.Ptr(int64(999)),
	}, existing, Options{})

	require.NoError(t, err)
	assert.False(t, res.Available)
}

func TestCheckConflict_CancelledDoesNotBlock(t *testing.T) {
	cancelled := appt(1, at(10, 0), 30)
	cancelled.Status = domain.StatusCancelled
	noShow := appt(2, at(10, 0), 30)
	noShow.Status = domain.StatusNoShow

	res, err := CheckConflict(Candidate{
		StartAt:         at(10, 0),
		DurationMinutes: 30,
	}, []*domain.Appointment{cancelled, noShow}, Options{})

	require.NoError(t, err)
	assert.True(t, res.Available)
}

func TestCheckConflict_SecondBookingSameSlot(t *testing.T) {
	// Первая запись прошла и сохранилась; вторая на тот же слот должна получить отказ
	first := appt(1, at(10, 0), 30)
	first.EmployeeID = ptr.Ptr(int64(100))

	res, err := CheckConflict(Candidate{
		StartAt:         at(10, 0),
		DurationMinutes: 30,
		EmployeeID:      ptr.Ptr(int64(200)), // другой мастер, global scope
	}, []*domain.Appointment{first}, Options{})

	require.NoError(t, err)
	assert.False(t, res.Available)
}

func TestCheckConflict_ScopeByStaff(t *testing.T) {
	first := appt(1, at(10, 0), 30)
	first.EmployeeID = ptr.Ptr(int64(100))

	// Тот же слот, другой мастер: при scope-by-staff разрешено
	res, err := CheckConflict(Candidate{
		StartAt:         at(10, 0),
		DurationMinutes: 30,
		EmployeeID:      ptr.Ptr(int64(200)),
	}, []*domain.Appointment{first}, Options{ScopeByStaff: true})

	require.NoError(t, err)
	assert.True(t, res.Available)

	// Тот же слот, тот же мастер: конфликт
	res, err = CheckConflict(Candidate{
		StartAt:         at(10, 0),
		DurationMinutes: 30,
		EmployeeID:      ptr.Ptr(int64(100)),
	}, []*domain.Appointment{first}, Options{ScopeByStaff: true})

	require.NoError(t, err)
	assert.False(t, res.Available)

	// Кандидат без мастера проверяется глобально даже при scope-by-staff
	res, err = CheckConflict(Candidate{
		StartAt:         at(10, 0),
		DurationMinutes: 30,
	}, []*domain.Appointment{first}, Options{ScopeByStaff: true})

	require.NoError(t, err)
	assert.False(t, res.Available)
}
