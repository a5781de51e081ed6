package get_week_calendar

import (
	"time"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	getWeekCalendar "github.com/AnthonyDelgadoMiami/nail-salon/internal/usecase/get_week_calendar"
)

// ItemResponse запись, позиционированная в колонке дня
type ItemResponse struct {
	AppointmentID   int64   `json:"appointmentId"`
	Row             float64 `json:"row"`
	RowSpan         float64 `json:"rowSpan"`
	StartAt         string  `json:"startAt"` // ISO 8601
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ClientName      string  `json:"clientName"`
	ServiceName     *string `json:"serviceName,omitempty"`
	EmployeeID      *int64  `json:"employeeId,omitempty"`
	Price           float64 `json:"price"`
}

// DayResponse одна колонка недельной сетки
type DayResponse struct {
	Date    string         `json:"date"` // "2025-10-13"
	IsToday bool           `json:"isToday"`
	IsPast  bool           `json:"isPast"`
	Items   []ItemResponse `json:"items"`
}

// WeekCalendarResponse HTTP response model
type WeekCalendarResponse struct {
	Monday string        `json:"monday"` // "2025-10-13"
	Rows   int           `json:"rows"`
	Days   []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekCalendar.Response) *WeekCalendarResponse {
	out := &WeekCalendarResponse{
		Monday: resp.Monday.Format(domain.DateFormat),
		Rows:   resp.Rows,
		Days:   make([]DayResponse, len(resp.Days)),
	}

	for i, day := range resp.Days {
		items := make([]ItemResponse, len(day.Items))
		for j, item := range day.Items {
			items[j] = ItemResponse{
				AppointmentID:   item.AppointmentID,
				Row:             item.Row,
				RowSpan:         item.RowSpan,
				StartAt:         item.StartAt.Format(time.RFC3339),
				DurationMinutes: item.DurationMinutes,
				Status:          item.Status,
				ClientName:      item.ClientName,
				ServiceName:     item.ServiceName,
				EmployeeID:      item.EmployeeID,
				Price:           item.Price,
			}
		}

		out.Days[i] = DayResponse{
			Date:    day.Date.Format(domain.DateFormat),
			IsToday: day.IsToday,
			IsPast:  day.IsPast,
			Items:   items,
		}
	}

	return out
}
