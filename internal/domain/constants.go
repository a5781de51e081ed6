package domain

// Default calendar grid values
const (
	DefaultDayStartHour = 6  // 06:00
	DefaultDayEndHour   = 20 // 20:00
	DefaultSlotMinutes  = 30
)

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 часов
	MaxNotesLength     = 500
	MinPasswordLength  = 8
)

// Time format constants
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // без зоны, трактуется как UTC
)

// InactiveStatuses статусы записей, не блокирующих слот
// Используются для фильтрации при проверке конфликтов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses статусы записей, занимающих слот
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
}

// SweepableStatuses статусы, которые фоновый sweep переводит в completed
// после того, как время записи прошло
var SweepableStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
}
