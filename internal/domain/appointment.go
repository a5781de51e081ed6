package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a single salon appointment
// Интервал записи полуоткрытый: [StartAt, StartAt + DurationMinutes)
type Appointment struct {
	ID              int64
	StartAt         time.Time
	DurationMinutes int
	ClientID        int64
	ServiceID       *int64 // NULL = кастомная услуга с ценой и длительностью "от руки"
	EmployeeID      *int64
	Price           float64
	Notes           *string
	Status          AppointmentStatus

	// Denormalized display data, populated by joins
	ClientFirstName string
	ClientLastName  string
	ServiceName     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndAt returns the exclusive end of the appointment interval
func (a *Appointment) EndAt() time.Time {
	return a.StartAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// BlocksSlot returns true if the appointment occupies its time slot
// Отмененные записи и no-show не блокируют свой бывший слот
func (a *Appointment) BlocksSlot() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// IsPast returns true if the appointment has fully ended before now
func (a *Appointment) IsPast(now time.Time) bool {
	return a.EndAt().Before(now)
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the appointment can be edited/moved
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// IsCustomService returns true if the appointment uses an ad hoc service
func (a *Appointment) IsCustomService() bool {
	return a.ServiceID == nil
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	StartDate       *time.Time         // Начало периода (включительно)
	EndDate         *time.Time         // Конец периода (включительно, по дате)
	ClientID        *int64             // Фильтр по клиенту
	EmployeeID      *int64             // Фильтр по мастеру
	Status          *AppointmentStatus // Фильтр по статусу
	IncludeInactive bool               // Включать ли отмененные и no-show
}
