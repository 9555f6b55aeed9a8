package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(XRequestID))
	assert.Equal(t, seen, GetRequestIDFromContext(c.Request().Context()))
}

func TestRequestIDKeepsInboundID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(XRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error { return nil })

	require.NoError(t, handler(c))
	assert.Equal(t, "req-123", rec.Header().Get(XRequestID))
}

func TestGetRequestIDFromHeaderFallsBackToCorrelationID(t *testing.T) {
	h := http.Header{}
	h.Set(XCorrelationID, "corr-7")
	assert.Equal(t, "corr-7", GetRequestIDFromHeader(h))
}
