package domain

import "time"

// Client represents a salon client
// Клиент может быть создан заранее или "walk-in" прямо при записи
type Client struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string // уникален в рамках салона
	Email     *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the display name of the client
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
