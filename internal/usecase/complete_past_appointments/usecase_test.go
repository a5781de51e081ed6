package complete_past_appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentRepo struct {
	count  int64
	err    error
	gotNow time.Time
}

func (f *fakeAppointmentRepo) CompletePast(_ context.Context, now time.Time) (int64, error) {
	f.gotNow = now
	return f.count, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func TestExecute_ReportsCount(t *testing.T) {
	repo := &fakeAppointmentRepo{count: 3}
	uc := NewUseCase(repo, noopLogger{})
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	uc.timeProvider = fixedTime{t: now}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.CompletedCount)
	assert.Equal(t, now, repo.gotNow)
}

func TestExecute_SecondRunFindsNothing(t *testing.T) {
	repo := &fakeAppointmentRepo{count: 0}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.CompletedCount)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeAppointmentRepo{err: errors.New("connection reset")}
	uc := NewUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
