package get_week_calendar

import (
	"context"
	"fmt"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/schedule"
)

// UseCase use case построения недельного календаря
type UseCase struct {
	appointmentRepo AppointmentRepository
	gridConfig      schedule.GridConfig
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, gridConfig schedule.GridConfig, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		gridConfig:      gridConfig,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case построения календаря.
// Грузит записи недели Monday..Sunday одним запросом и раскладывает их
// по сетке, обогащая позиции данными для отображения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	monday := schedule.MondayOf(req.Date)
	sunday := monday.AddDate(0, 0, 6)

	uc.logger.Info("GetWeekCalendar: week of %s", monday.Format(domain.DateFormat))

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		StartDate:       &monday,
		EndDate:         &sunday,
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		uc.logger.Error("GetWeekCalendar: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	grid, err := schedule.BuildWeekGrid(appointments, req.Date, now, uc.gridConfig)
	if err != nil {
		uc.logger.Error("GetWeekCalendar: failed to build grid: %v", err)
		return nil, fmt.Errorf("%w: failed to build grid: %v", ErrInternal, err)
	}

	// Индекс для обогащения позиций данными записи
	byID := make(map[int64]*domain.Appointment, len(appointments))
	for _, appt := range appointments {
		if appt != nil {
			byID[appt.ID] = appt
		}
	}

	resp := &Response{
		Monday: monday,
		Rows:   uc.gridConfig.Rows(),
	}

	for i, day := range grid {
		items := make([]Item, 0, len(day.Items))
		for _, gridItem := range day.Items {
			appt, ok := byID[gridItem.AppointmentID]
			if !ok {
				continue
			}

			items = append(items, Item{
				AppointmentID:   gridItem.AppointmentID,
				Row:             gridItem.Row,
				RowSpan:         gridItem.RowSpan,
				StartAt:         appt.StartAt,
				DurationMinutes: appt.DurationMinutes,
				Status:          string(appt.Status),
				ClientName:      appt.ClientFirstName + " " + appt.ClientLastName,
				ServiceName:     appt.ServiceName,
				EmployeeID:      appt.EmployeeID,
				Price:           appt.Price,
			})
		}

		resp.Days[i] = Day{
			Date:    day.Date,
			IsToday: day.IsToday,
			IsPast:  day.IsPast,
			Items:   items,
		}
	}

	uc.logger.Info("GetWeekCalendar: %d appointments laid out for week of %s",
		len(appointments), monday.Format(domain.DateFormat))

	return resp, nil
}
