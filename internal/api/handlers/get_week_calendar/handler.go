package get_week_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	getWeekCalendar "github.com/AnthonyDelgadoMiami/nail-salon/internal/usecase/get_week_calendar"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidQuery = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetWeekCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/week?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Без date показываем текущую неделю
	date := time.Now().UTC()
	if raw := query.Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /calendar/week - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	includeInactive := false
	if raw := query.Get("includeInactive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /calendar/week - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		includeInactive = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekCalendar.Request{
		Date:            date,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeekCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar/week - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /calendar/week - Failed to build calendar: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
