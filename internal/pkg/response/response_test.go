package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_FillsDefaultMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error { return Success(c, fiber.StatusOK, "", []int{1}) })
	app.Get("/new", func(c fiber.Ctx) error { return Created(c, nil) })
	app.Get("/odd", func(c fiber.Ctx) error { return Error(c, 42, "", nil) })

	cases := []struct {
		path    string
		status  int
		message string
	}{
		{"/ok", fiber.StatusOK, MessageOK},
		{"/new", fiber.StatusCreated, MessageCreated},
		{"/odd", fiber.StatusInternalServerError, MessageInternalServerError},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.path, nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var env SemanticResponse
		require.NoError(t, json.Unmarshal(body, &env))
		assert.Equal(t, tc.status, resp.StatusCode, tc.path)
		assert.Equal(t, tc.status, env.Status, tc.path)
		assert.Equal(t, tc.message, env.Message, tc.path)
	}
}

func TestDefaultMessage(t *testing.T) {
	assert.Equal(t, MessageTooManyRequests, DefaultMessage(fiber.StatusTooManyRequests))
	assert.Equal(t, MessageError, DefaultMessage(fiber.StatusTeapot))
	assert.Equal(t, MessageInternalServerError, DefaultMessage(fiber.StatusBadGateway))
}
