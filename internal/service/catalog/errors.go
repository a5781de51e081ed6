package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrDuplicateName возвращается, когда название услуги уже занято
	ErrDuplicateName = errors.New("service name already exists")

	// ErrServiceInUse возвращается при попытке удалить услугу, на которую ссылаются записи
	ErrServiceInUse = errors.New("service is referenced by appointments")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
