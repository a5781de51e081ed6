package update_appointment

import "time"

// Request модель запроса на перенос/редактирование записи
// Nil-поля сохраняют текущие значения записи.
// Смена ServiceID на каталожную услугу подтягивает ее длительность и цену,
// если они не переопределены явно; NullService переводит запись
// в кастомную услугу (service_id = NULL)
type Request struct {
	ID              int64
	StartAt         *time.Time
	ClientID        *int64
	ServiceID       *int64
	NullService     bool // сбросить услугу в кастомную
	EmployeeID      *int64
	NullEmployee    bool // снять мастера с записи
	DurationMinutes *int
	Price           *float64
	Notes           *string
	Status          *string
}

// Response модель ответа с обновленной записью
type Response struct {
	ID              int64
	StartAt         time.Time
	DurationMinutes int
	ClientID        int64
	ServiceID       *int64
	EmployeeID      *int64
	Price           float64
	Status          string
	Notes           *string

	// Денормализованные данные для отображения
	ClientFirstName string
	ClientLastName  string
	ServiceName     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
