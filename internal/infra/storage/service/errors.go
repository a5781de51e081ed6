package service

import "errors"

var (
	// ErrServiceNotFound услуга не найдена
	ErrServiceNotFound = errors.New("service not found")
	// ErrDuplicateName услуга с таким названием уже существует
	ErrDuplicateName = errors.New("service name already exists")
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("failed to execute query")
	// ErrScanRow ошибка сканирования результата запроса
	ErrScanRow = errors.New("failed to scan row")
)
