package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newAuthedRouter(token string) *mux.Router {
	r := mux.NewRouter()
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(AdminAuth(token, nopLogger{}))
	admin.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return r
}

func TestAdminAuth(t *testing.T) {
	cases := []struct {
		name           string
		token          string
		header         string
		expectedStatus int
	}{
		{
			name:           "valid token",
			token:          "secret-token",
			header:         "Bearer secret-token",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong token",
			token:          "secret-token",
			header:         "Bearer wrong",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing header",
			token:          "secret-token",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			token:          "secret-token",
			header:         "Basic secret-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token not configured",
			token:          "",
			header:         "Bearer anything",
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			router := newAuthedRouter(c.token)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, c.expectedStatus, rec.Code)
		})
	}
}
