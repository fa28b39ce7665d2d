package app

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"career-guide/internal/config"
	"career-guide/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr(" 8080 ")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9000")
	require.NoError(t, err)
	assert.Equal(t, ":9000", addr)

	_, err = ListenAddr("  ")
	assert.Error(t, err)
}

func TestNew_RegistersRouteTable(t *testing.T) {
	a := New(Wire(config.Config{}, nil, nil))

	got := map[string]bool{}
	for _, r := range a.Fiber.GetRoutes(true) {
		got[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /health",
		"GET /api/v1/health",
		"POST /api/v1/accounts/signup",
		"POST /api/v1/accounts/signin",
		"GET /api/v1/accounts/:email/profile",
		"PUT /api/v1/accounts/:email/profile",
		"GET /api/v1/accounts/:email/profile/picture",
		"PUT /api/v1/accounts/:email/profile/picture",
		"GET /api/v1/accounts/:email/recommendations",
		"POST /api/v1/accounts/:email/resume",
		"GET /api/v1/accounts/:email/resume",
		"POST /api/v1/accounts/:email/applications",
		"GET /api/v1/accounts/:email/applications",
		"GET /api/v1/jobs/search",
		"GET /api/v1/jobs/catalog",
		"GET /api/v1/jobs/card",
		"POST /api/v1/chat",
		"GET /api/v1/ws/chat",
	} {
		assert.True(t, got[want], want)
	}
}

func TestHealth_ReportsDisabledDependencies(t *testing.T) {
	a := New(Wire(config.Config{}, nil, nil))

	resp, err := a.Fiber.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env response.SemanticResponse
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, map[string]any{"database": "disabled", "cache": "disabled"}, env.Data)
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	a := New(Wire(config.Config{}, nil, nil))

	resp, err := a.Fiber.Test(httptest.NewRequest(fiber.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env response.SemanticResponse
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, fiber.StatusNotFound, env.Status)
}
