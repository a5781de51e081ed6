package get_week_calendar

import "time"

// Request модель запроса недельного календаря
type Request struct {
	Date time.Time // любой день интересующей недели

	// IncludeInactive добавляет в выдачу отмененные и no-show записи
	IncludeInactive bool
}

// Item запись, позиционированная в колонке дня
type Item struct {
	AppointmentID   int64
	Row             float64
	RowSpan         float64
	StartAt         time.Time
	DurationMinutes int
	Status          string
	ClientName      string
	ServiceName     *string
	EmployeeID      *int64
	Price           float64
}

// Day одна колонка недельной сетки
type Day struct {
	Date    time.Time
	IsToday bool
	IsPast  bool
	Items   []Item
}

// Response модель ответа с готовой сеткой Monday-first
type Response struct {
	Monday time.Time
	Rows   int // количество строк сетки в дне
	Days   [7]Day
}
