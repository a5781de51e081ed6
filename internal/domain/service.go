package domain

import "time"

// Service represents a catalog service (manicure, pedicure, gel polish, ...)
type Service struct {
	ID              int64
	Name            string // уникально в рамках каталога
	Description     *string
	DurationMinutes int
	Price           float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
