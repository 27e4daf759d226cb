package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "inventory/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var seen string
	e := echo.New()
	e.Use(NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process)
	e.GET("/", func(c echo.Context) error {
		seen = deliverycontext.GetRequestID(c)
		assert.Equal(t, seen, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
		assert.NotNil(t, deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil))

		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec, seen
}

func TestRequestID_ReusesWellFormedHeader(t *testing.T) {
	rec, seen := serveWithRequestID(t, "client-42:retry.1")

	assert.Equal(t, "client-42:retry.1", seen)
	assert.Equal(t, "client-42:retry.1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestID_GeneratesWhenMissingOrMalformed(t *testing.T) {
	for _, header := range []string{"", "has space", "<script>", strings.Repeat("a", maxRequestIDLength+1)} {
		rec, seen := serveWithRequestID(t, header)

		_, err := uuid.Parse(seen)
		require.NoErrorf(t, err, "header %q", header)
		assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	}
}
