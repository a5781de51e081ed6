package schedule

import (
	"errors"
	"time"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
)

var (
	// ErrInvalidGridConfig возвращается при некорректных параметрах сетки
	ErrInvalidGridConfig = errors.New("schedule: invalid grid config")
)

// GridConfig parameters of the weekly time grid
type GridConfig struct {
	DayStartHour int // первый час сетки (6 = 06:00)
	DayEndHour   int // последний час сетки (20 = 20:00)
	SlotMinutes  int // размер одной строки сетки в минутах
}

// DefaultGridConfig returns the salon's standard 06:00-20:00 grid with 30-minute rows
func DefaultGridConfig() GridConfig {
	return GridConfig{
		DayStartHour: domain.DefaultDayStartHour,
		DayEndHour:   domain.DefaultDayEndHour,
		SlotMinutes:  domain.DefaultSlotMinutes,
	}
}

// Validate проверяет параметры сетки
func (c GridConfig) Validate() error {
	if c.SlotMinutes <= 0 {
		return ErrInvalidGridConfig
	}
	if c.DayEndHour <= c.DayStartHour {
		return ErrInvalidGridConfig
	}
	return nil
}

// Rows returns the total number of grid rows in a day
func (c GridConfig) Rows() int {
	return (c.DayEndHour - c.DayStartHour) * 60 / c.SlotMinutes
}

// Item positioned appointment within a day column
// Row и RowSpan измеряются в строках сетки (slot units), дробные значения
// допустимы для времени, не выровненного по слоту. Перевод в пиксели -
// забота слоя представления
type Item struct {
	AppointmentID int64
	Row           float64
	RowSpan       float64
}

// Day one column of the weekly grid
type Day struct {
	Date    time.Time
	IsToday bool
	IsPast  bool
	Items   []Item
}

// BuildWeekGrid lays a flat list of appointments out into a Monday-first week.
//
// Чистая функция: состояние не хранится, повторный вызов с теми же входами
// дает тот же результат. now передается явно, чтобы тесты были детерминированы.
//
// Записи с началом вне [DayStartHour, DayEndHour) все равно получают позицию -
// возможно отрицательную или за пределами сетки. Обрезка, если нужна,
// выполняется потребителем; движок значения не ограничивает.
//
// Пересекающиеся записи НЕ раскладываются по колонкам: каждая позиция
// независима, визуально они накладываются друг на друга (z-order)
func BuildWeekGrid(appointments []*domain.Appointment, referenceDate, now time.Time, cfg GridConfig) ([7]Day, error) {
	var week [7]Day

	if err := cfg.Validate(); err != nil {
		return week, err
	}

	monday := MondayOf(referenceDate)
	today := StartOfDay(now)

	rowsPerHour := 60.0 / float64(cfg.SlotMinutes)

	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i)
		week[i] = Day{
			Date:    date,
			IsToday: SameDay(date, today),
			IsPast:  date.Before(today),
			Items:   []Item{},
		}
	}

	for _, appt := range appointments {
		if appt == nil {
			continue
		}

		dayIdx := -1
		for i := range week {
			if SameDay(appt.StartAt, week[i].Date) {
				dayIdx = i
				break
			}
		}
		if dayIdx < 0 {
			// Запись вне отображаемой недели
			continue
		}

		row := float64(appt.StartAt.Hour()-cfg.DayStartHour)*rowsPerHour +
			float64(appt.StartAt.Minute())/float64(cfg.SlotMinutes)
		rowSpan := float64(appt.DurationMinutes) / float64(cfg.SlotMinutes)

		week[dayIdx].Items = append(week[dayIdx].Items, Item{
			AppointmentID: appt.ID,
			Row:           row,
			RowSpan:       rowSpan,
		})
	}

	return week, nil
}
