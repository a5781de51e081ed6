package employee

import "errors"

var (
	// ErrEmployeeNotFound сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrDuplicateEmail сотрудник с таким email уже существует
	ErrDuplicateEmail = errors.New("employee email already exists")
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("failed to execute query")
	// ErrScanRow ошибка сканирования результата запроса
	ErrScanRow = errors.New("failed to scan row")
)
