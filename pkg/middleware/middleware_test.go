package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/sarpras/reservation-service/pkg/auth"
	md "github.com/sarpras/reservation-service/pkg/middleware"
)

func TestJwtAuthentication(t *testing.T) {
	t.Parallel()
	cfg := auth.Config{Secret: "secret", TTL: time.Hour}
	id := uuid.New()
	valid, err := auth.NewToken(cfg, id, "student", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "ok", header: "Bearer " + valid, expectedCode: http.StatusOK},
		{name: "no header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "no bearer", header: valid, expectedCode: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer abc", expectedCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				u, err := auth.GetUser(c.Request().Context())
				if err != nil {
					return err
				}
				return c.String(http.StatusOK, u.ID.String())
			}, md.JwtAuthentication(cfg))

			r := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
			if tt.header != "" {
				r.Header.Set(md.AuthorizationHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				require.Equal(t, id.String(), w.Body.String())
			}
		})
	}
}
