package employees

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers"
	employeesService "github.com/AnthonyDelgadoMiami/nail-salon/internal/service/employees"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/service/employees/models"
)

const (
	msgInvalidEmployeeID  = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "сотрудник не найден"
	msgDuplicateEmail     = "сотрудник с таким email уже существует"
	msgInvalidInput       = "некорректные данные сотрудника"
)

type Handler struct {
	service EmployeeService
	logger  Logger
}

func NewHandler(service EmployeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/employees
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	employee, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /employees", err)
		return
	}

	h.logger.Info("POST /employees - Employee created: employee_id=%d", employee.ID)
	handlers.RespondJSON(w, http.StatusCreated, employee)
}

// HandleGet GET /api/v1/employees/{employeeId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.employeeID(w, r, "GET /employees/{id}")
	if !ok {
		return
	}

	employee, err := h.service.GetByID(r.Context(), employeeID)
	if err != nil {
		h.respondServiceError(w, "GET /employees/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, employee)
}

// HandleList GET /api/v1/employees
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /employees", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, employees)
}

// HandleUpdate PUT /api/v1/employees/{employeeId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.employeeID(w, r, "PUT /employees/{id}")
	if !ok {
		return
	}

	var req models.UpdateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /employees/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	employee, err := h.service.Update(r.Context(), employeeID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /employees/{id}", err)
		return
	}

	h.logger.Info("PUT /employees/{id} - Employee updated: employee_id=%d", employeeID)
	handlers.RespondJSON(w, http.StatusOK, employee)
}

// HandleDelete DELETE /api/v1/employees/{employeeId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.employeeID(w, r, "DELETE /employees/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), employeeID); err != nil {
		h.respondServiceError(w, "DELETE /employees/{id}", err)
		return
	}

	h.logger.Info("DELETE /employees/{id} - Employee deleted: employee_id=%d", employeeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleAppointments GET /api/v1/employees/{employeeId}/appointments
func (h *Handler) HandleAppointments(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.employeeID(w, r, "GET /employees/{id}/appointments")
	if !ok {
		return
	}

	appointments, err := h.service.GetAppointments(r.Context(), employeeID)
	if err != nil {
		h.respondServiceError(w, "GET /employees/{id}/appointments", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, appointments)
}

// HandleStats GET /api/v1/employees/{employeeId}/stats
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.employeeID(w, r, "GET /employees/{id}/stats")
	if !ok {
		return
	}

	stats, err := h.service.GetStats(r.Context(), employeeID)
	if err != nil {
		h.respondServiceError(w, "GET /employees/{id}/stats", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}

// employeeID извлекает и парсит employeeId из URL
func (h *Handler) employeeID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	vars := mux.Vars(r)
	employeeID, err := strconv.ParseInt(vars["employeeId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid employee ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return 0, false
	}
	return employeeID, true
}

// respondServiceError конвертирует ошибки сервиса в HTTP статусы
func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, employeesService.ErrEmployeeNotFound):
		h.logger.Warn("%s - Employee not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, employeesService.ErrDuplicateEmail):
		h.logger.Warn("%s - Duplicate email", route)
		handlers.RespondError(w, http.StatusConflict, msgDuplicateEmail)

	case errors.Is(err, employeesService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
