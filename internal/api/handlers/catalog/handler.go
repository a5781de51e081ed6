package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers"
	catalogService "github.com/AnthonyDelgadoMiami/nail-salon/internal/service/catalog"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/service/catalog/models"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "услуга не найдена"
	msgDuplicateName      = "услуга с таким названием уже существует"
	msgServiceInUse       = "услуга используется в записях и не может быть удалена"
	msgInvalidInput       = "некорректные данные услуги"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /services", err)
		return
	}

	h.logger.Info("POST /services - Service created: service_id=%d", service.ID)
	handlers.RespondJSON(w, http.StatusCreated, service)
}

// HandleGet GET /api/v1/services/{serviceId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := h.serviceID(w, r, "GET /services/{id}")
	if !ok {
		return
	}

	service, err := h.service.GetByID(r.Context(), serviceID)
	if err != nil {
		h.respondServiceError(w, "GET /services/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, service)
}

// HandleList GET /api/v1/services
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /services", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, services)
}

// HandleUpdate PUT /api/v1/services/{serviceId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := h.serviceID(w, r, "PUT /services/{id}")
	if !ok {
		return
	}

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.service.Update(r.Context(), serviceID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /services/{id}", err)
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, service)
}

// HandleDelete DELETE /api/v1/services/{serviceId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := h.serviceID(w, r, "DELETE /services/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), serviceID); err != nil {
		h.respondServiceError(w, "DELETE /services/{id}", err)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// serviceID извлекает и парсит serviceId из URL
func (h *Handler) serviceID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid service ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return 0, false
	}
	return serviceID, true
}

// respondServiceError конвертирует ошибки сервиса в HTTP статусы
func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, catalogService.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, catalogService.ErrDuplicateName):
		h.logger.Warn("%s - Duplicate name", route)
		handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

	case errors.Is(err, catalogService.ErrServiceInUse):
		h.logger.Warn("%s - Service in use", route)
		handlers.RespondError(w, http.StatusConflict, msgServiceInUse)

	case errors.Is(err, catalogService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
