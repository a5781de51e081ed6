package clients

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers"
	clientsService "github.com/AnthonyDelgadoMiami/nail-salon/internal/service/clients"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/service/clients/models"
)

const (
	msgInvalidClientID    = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "клиент не найден"
	msgDuplicatePhone     = "клиент с таким телефоном уже существует"
	msgInvalidInput       = "некорректные данные клиента"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/clients
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /clients", err)
		return
	}

	h.logger.Info("POST /clients - Client created: client_id=%d", client.ID)
	handlers.RespondJSON(w, http.StatusCreated, client)
}

// HandleGet GET /api/v1/clients/{clientId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	clientID, ok := h.clientID(w, r, "GET /clients/{id}")
	if !ok {
		return
	}

	client, err := h.service.GetByID(r.Context(), clientID)
	if err != nil {
		h.respondServiceError(w, "GET /clients/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, client)
}

// HandleList GET /api/v1/clients?search=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	clients, err := h.service.List(r.Context(), search)
	if err != nil {
		h.respondServiceError(w, "GET /clients", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, clients)
}

// HandleUpdate PUT /api/v1/clients/{clientId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	clientID, ok := h.clientID(w, r, "PUT /clients/{id}")
	if !ok {
		return
	}

	var req models.UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.Update(r.Context(), clientID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /clients/{id}", err)
		return
	}

	h.logger.Info("PUT /clients/{id} - Client updated: client_id=%d", clientID)
	handlers.RespondJSON(w, http.StatusOK, client)
}

// HandleDelete DELETE /api/v1/clients/{clientId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	clientID, ok := h.clientID(w, r, "DELETE /clients/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), clientID); err != nil {
		h.respondServiceError(w, "DELETE /clients/{id}", err)
		return
	}

	h.logger.Info("DELETE /clients/{id} - Client deleted: client_id=%d", clientID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleHistory GET /api/v1/clients/{clientId}/appointments
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	clientID, ok := h.clientID(w, r, "GET /clients/{id}/appointments")
	if !ok {
		return
	}

	history, err := h.service.GetHistory(r.Context(), clientID)
	if err != nil {
		h.respondServiceError(w, "GET /clients/{id}/appointments", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, history)
}

// clientID извлекает и парсит clientId из URL
func (h *Handler) clientID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	vars := mux.Vars(r)
	clientID, err := strconv.ParseInt(vars["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid client ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return 0, false
	}
	return clientID, true
}

// respondServiceError конвертирует ошибки сервиса в HTTP статусы
func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, clientsService.ErrClientNotFound):
		h.logger.Warn("%s - Client not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, clientsService.ErrDuplicatePhone):
		h.logger.Warn("%s - Duplicate phone", route)
		handlers.RespondError(w, http.StatusConflict, msgDuplicatePhone)

	case errors.Is(err, clientsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
