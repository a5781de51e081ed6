package create_appointment

import "time"

// WalkInClient данные для создания клиента "с улицы" прямо при записи
type WalkInClient struct {
	FirstName string
	LastName  string
	Phone     string
	Email     *string
}

// Request модель запроса на создание записи
// Указывается либо ClientID, либо WalkInClient (ровно одно из двух).
// Для услуги из каталога достаточно ServiceID; кастомная услуга
// требует явных DurationMinutes и Price
type Request struct {
	StartAt         time.Time
	ClientID        *int64
	WalkInClient    *WalkInClient
	ServiceID       *int64
	EmployeeID      *int64
	DurationMinutes *int     // обязателен для кастомной услуги, опционален для каталожной
	Price           *float64 // аналогично DurationMinutes
	Notes           *string
}

// Response модель ответа с созданной записью
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
