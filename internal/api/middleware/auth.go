package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth middleware статической bearer-аутентификации администратора
// Сравнение токена выполняется за постоянное время. Если токен не
// сконфигурирован, административные эндпоинты недоступны целиком
func AdminAuth(token string, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				log.Warn("AdminAuth: admin token is not configured, rejecting %s %s", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusServiceUnavailable, "admin access is not configured")
				return
			}

			header := r.Header.Get("Authorization")
			presented, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				log.Warn("AdminAuth: missing bearer token for %s %s", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				log.Warn("AdminAuth: invalid bearer token for %s %s", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, "invalid bearer token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
