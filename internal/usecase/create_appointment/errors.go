package create_appointment

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrEmployeeNotFound возвращается, когда мастер не найден
	ErrEmployeeNotFound = errors.New("create_appointment: employee not found")

	// ErrDuplicatePhone возвращается, когда walk-in клиент с таким телефоном уже существует
	ErrDuplicatePhone = errors.New("create_appointment: client phone already exists")

	// ErrTimeSlotNotAvailable возвращается, когда интервал пересекается с существующей записью
	ErrTimeSlotNotAvailable = errors.New("create_appointment: time slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
