package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
)

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"wednesday",
			time.Date(2025, 10, 15, 13, 45, 0, 0, time.UTC),
			time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday itself",
			time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			// Воскресенье относится к ПРЕДЫДУЩЕМУ понедельнику
			"sunday",
			time.Date(2025, 10, 19, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			"saturday",
			time.Date(2025, 10, 18, 23, 59, 0, 0, time.UTC),
			time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(MondayOf(tt.in)), "got %s", MondayOf(tt.in))
		})
	}
}

func TestBuildWeekGrid_SevenDaysMondayFirst(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC) // среда

	for d := 0; d < 7; d++ {
		reference := time.Date(2025, 10, 13+d, 10, 0, 0, 0, time.UTC)
		week, err := BuildWeekGrid(nil, reference, now, DefaultGridConfig())
		require.NoError(t, err)

		assert.Equal(t, time.Monday, week[0].Date.Weekday())
		assert.Equal(t, time.Sunday, week[6].Date.Weekday())
		for i := 1; i < 7; i++ {
			assert.Equal(t, 24*time.Hour, week[i].Date.Sub(week[i-1].Date))
		}
	}
}

func TestBuildWeekGrid_SundayReference(t *testing.T) {
	now := time.Date(2025, 10, 19, 8, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 10, 19, 8, 0, 0, 0, time.UTC)

	week, err := BuildWeekGrid(nil, sunday, now, DefaultGridConfig())
	require.NoError(t, err)

	// Неделя начинается в предыдущий понедельник и заканчивается этим воскресеньем
	assert.True(t, week[0].Date.Equal(time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)))
	assert.True(t, week[6].Date.Equal(time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)))
	assert.True(t, week[6].IsToday)
	assert.False(t, week[6].IsPast)
}

func TestBuildWeekGrid_TodayAndPastFlags(t *testing.T) {
	// now = среда 15-е; пн и вт в прошлом, среда - сегодня
	now := time.Date(2025, 10, 15, 23, 59, 0, 0, time.UTC)

	week, err := BuildWeekGrid(nil, now, now, DefaultGridConfig())
	require.NoError(t, err)

	assert.True(t, week[0].IsPast)
	assert.True(t, week[1].IsPast)
	assert.True(t, week[2].IsToday)
	assert.False(t, week[2].IsPast)
	for i := 3; i < 7; i++ {
		assert.False(t, week[i].IsToday)
		assert.False(t, week[i].IsPast)
	}
}

func TestBuildWeekGrid_Positioning(t *testing.T) {
	cfg := DefaultGridConfig() // 06:00-20:00, 30 минут

	tests := []struct {
		name     string
		start    time.Time
		duration int
		row      float64
		rowSpan  float64
	}{
		{"nine o'clock half hour", time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC), 30, 6, 1},
		{"grid start", time.Date(2025, 10, 15, 6, 0, 0, 0, time.UTC), 30, 0, 1},
		{"fractional minutes", time.Date(2025, 10, 15, 9, 15, 0, 0, time.UTC), 45, 6.5, 1.5},
		{"before grid start goes negative", time.Date(2025, 10, 15, 5, 0, 0, 0, time.UTC), 30, -2, 1},
		{"after grid end passes through", time.Date(2025, 10, 15, 21, 0, 0, 0, time.UTC), 60, 30, 2},
	}

	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := appt(1, tt.start, tt.duration)
			week, err := BuildWeekGrid([]*domain.Appointment{a}, tt.start, now, cfg)
			require.NoError(t, err)

			require.Len(t, week[2].Items, 1) // среда
			item := week[2].Items[0]
			assert.Equal(t, int64(1), item.AppointmentID)
			assert.InDelta(t, tt.row, item.Row, 1e-9)
			assert.InDelta(t, tt.rowSpan, item.RowSpan, 1e-9)
		})
	}
}

func TestBuildWeekGrid_RowSpanScalesLinearly(t *testing.T) {
	cfg := DefaultGridConfig()
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

	single, err := BuildWeekGrid([]*domain.Appointment{appt(1, start, 30)}, start, now, cfg)
	require.NoError(t, err)
	double, err := BuildWeekGrid([]*domain.Appointment{appt(1, start, 60)}, start, now, cfg)
	require.NoError(t, err)

	assert.InDelta(t, 2*single[2].Items[0].RowSpan, double[2].Items[0].RowSpan, 1e-9)
}

func TestBuildWeekGrid_BucketsByCalendarDate(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	appointments := []*domain.Appointment{
		appt(1, time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC), 30),  // понедельник
		appt(2, time.Date(2025, 10, 19, 18, 0, 0, 0, time.UTC), 30),  // воскресенье
		appt(3, time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC), 30),  // следующая неделя - пропускается
		appt(4, time.Date(2025, 10, 12, 10, 0, 0, 0, time.UTC), 30),  // прошлая неделя - пропускается
		nil, // защитная проверка на nil в списке
	}

	week, err := BuildWeekGrid(appointments, now, now, DefaultGridConfig())
	require.NoError(t, err)

	assert.Len(t, week[0].Items, 1)
	assert.Equal(t, int64(1), week[0].Items[0].AppointmentID)
	assert.Len(t, week[6].Items, 1)
	assert.Equal(t, int64(2), week[6].Items[0].AppointmentID)
	for i := 1; i < 6; i++ {
		assert.Empty(t, week[i].Items)
	}
}

func TestBuildWeekGrid_Idempotent(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	appointments := []*domain.Appointment{
		appt(1, time.Date(2025, 10, 14, 9, 30, 0, 0, time.UTC), 45),
		appt(2, time.Date(2025, 10, 16, 11, 0, 0, 0, time.UTC), 60),
	}

	first, err := BuildWeekGrid(appointments, now, now, DefaultGridConfig())
	require.NoError(t, err)
	second, err := BuildWeekGrid(appointments, now, now, DefaultGridConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildWeekGrid_InvalidConfig(t *testing.T) {
	now := time.Now()

	_, err := BuildWeekGrid(nil, now, now, GridConfig{DayStartHour: 6, DayEndHour: 20, SlotMinutes: 0})
	assert.ErrorIs(t, err, ErrInvalidGridConfig)

	_, err = BuildWeekGrid(nil, now, now, GridConfig{DayStartHour: 20, DayEndHour: 6, SlotMinutes: 30})
	assert.ErrorIs(t, err, ErrInvalidGridConfig)
}
