package models

import (
	"time"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
)

// Request модели

// CreateClientRequest запрос на создание клиента
type CreateClientRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateClientRequest) ToDomain() *domain.Client {
	return &domain.Client{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		Notes:     r.Notes,
	}
}

// UpdateClientRequest запрос на обновление клиента
type UpdateClientRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateClientRequest) ToDomain() *domain.Client {
	return &domain.Client{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		Notes:     r.Notes,
	}
}

// Response модели

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// Методы конвертации

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	return &ClientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	if clients == nil {
		return &ClientListResponse{
			Clients: []ClientResponse{},
		}
	}

	resp := &ClientListResponse{
		Clients: make([]ClientResponse, len(clients)),
	}

	for i, client := range clients {
		if clientResp := FromDomainClient(client); clientResp != nil {
			resp.Clients[i] = *clientResp
		}
	}

	return resp
}
