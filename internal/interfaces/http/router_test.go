package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-libros/internal/application/dto"
)

func TestHealth(t *testing.T) {
	app := newApp(t, 0)
	status, raw, _ := doJSON(t, app, fiber.MethodGet, "/health", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok","service":"catalogo-test"}`, string(raw))
}

func TestRequestID(t *testing.T) {
	app := newApp(t, 0)

	_, _, hdr := doJSON(t, app, fiber.MethodGet, "/health", "")
	assert.Len(t, hdr.Get(fiber.HeaderXRequestID), 36)

	req := httptest.NewRequest(fiber.MethodGet, "/health", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestCORS(t *testing.T) {
	app := newApp(t, 0)

	req := httptest.NewRequest(fiber.MethodOptions, "/books", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, fiber.MethodDelete)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Contains(t, resp.Header.Get(fiber.HeaderAccessControlAllowMethods), "DELETE")
}

func TestRutaInexistente(t *testing.T) {
	app := newApp(t, 0)
	status, raw, _ := doJSON(t, app, fiber.MethodGet, "/nada", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &e))
	assert.Equal(t, "NOT_FOUND", e.Code)
}
