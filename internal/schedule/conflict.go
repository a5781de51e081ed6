package schedule

import (
	"errors"
	"time"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
)

var (
	// ErrInvalidDuration возвращается для кандидата с нулевой или отрицательной длительностью
	// Валидация должна отсекать такие запросы раньше; здесь защитная проверка
	ErrInvalidDuration = errors.New("schedule: candidate duration must be positive")
)

// Candidate describes a proposed appointment interval to be checked
type Candidate struct {
	StartAt         time.Time
	DurationMinutes int

	// ExcludeID - ID записи, которая сейчас переносится и не должна
	// конфликтовать сама с собой. nil или несуществующий ID = без исключения
	ExcludeID *int64

	// EmployeeID мастер кандидата; используется только при Options.ScopeByStaff
	EmployeeID *int64
}

// EndAt returns the exclusive end of the candidate interval
func (c Candidate) EndAt() time.Time {
	return c.StartAt.Add(time.Duration(c.DurationMinutes) * time.Minute)
}

// Options conflict detection policy
type Options struct {
	// ScopeByStaff ограничивает проверку записями того же мастера.
	// По умолчанию false: две записи на одно время конфликтуют,
	// даже если назначены разным мастерам
	ScopeByStaff bool
}

// Result is the outcome of a conflict check
// Конфликт - это решение, а не ошибка: вызывающий код превращает его в отказ (409)
type Result struct {
	Available     bool
	ConflictingID *int64
}

// CheckConflict decides whether the candidate interval may be committed.
//
// Интервалы полуоткрытые [start, end): записи "впритык" не конфликтуют.
// Пересечение есть iff E.start < cand.end && E.end > cand.start.
// Отмененные и no-show записи слот не занимают и пропускаются.
func CheckConflict(cand Candidate, existing []*domain.Appointment, opts Options) (Result, error) {
	if cand.DurationMinutes <= 0 {
		return Result{}, ErrInvalidDuration
	}

	candEnd := cand.EndAt()

	for _, appt := range existing {
		if appt == nil {
			continue
		}

		// Запись, которую переносим, не конфликтует сама с собой
		if cand.ExcludeID != nil && appt.ID == *cand.ExcludeID {
			continue
		}

		if !appt.BlocksSlot() {
			continue
		}

		// При scope-by-staff записи разных мастеров не конфликтуют
		if opts.ScopeByStaff && cand.EmployeeID != nil && appt.EmployeeID != nil &&
			*cand.EmployeeID != *appt.EmployeeID {
			continue
		}

		if appt.StartAt.Before(candEnd) && appt.EndAt().After(cand.StartAt) {
			id := appt.ID
			return Result{Available: false, ConflictingID: &id}, nil
		}
	}

	return Result{Available: true}, nil
}
