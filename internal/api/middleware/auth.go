package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers"
)

// headerEmployeeID заголовок аутентификации сотрудника
const headerEmployeeID = "X-Employee-ID"

const msgMissingEmployeeID = "отсутствует или некорректен заголовок X-Employee-ID"

type contextKey string

const employeeIDKey contextKey = "employeeID"

// Auth проверяет наличие заголовка X-Employee-ID и кладет ID сотрудника в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerEmployeeID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingEmployeeID)
			return
		}

		employeeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || employeeID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingEmployeeID)
			return
		}

		ctx := context.WithValue(r.Context(), employeeIDKey, employeeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetEmployeeID извлекает ID аутентифицированного сотрудника из контекста
func GetEmployeeID(ctx context.Context) (int64, bool) {
	employeeID, ok := ctx.Value(employeeIDKey).(int64)
	return employeeID, ok
}
