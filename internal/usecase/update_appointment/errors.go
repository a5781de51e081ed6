package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrAppointmentNotEditable возвращается для завершенных, отмененных и no-show записей
	ErrAppointmentNotEditable = errors.New("update_appointment: appointment can no longer be edited")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("update_appointment: client not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrEmployeeNotFound возвращается, когда мастер не найден
	ErrEmployeeNotFound = errors.New("update_appointment: employee not found")

	// ErrTimeSlotNotAvailable возвращается, когда новый интервал пересекается с другой записью
	ErrTimeSlotNotAvailable = errors.New("update_appointment: time slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
