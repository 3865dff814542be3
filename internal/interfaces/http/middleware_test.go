package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Ginebra-api/internal/interfaces/http"
	"github.com/jhoicas/Ginebra-api/pkg/logger"
)

type observation struct {
	method, route, status string
}

type fakeObserver struct{ seen []observation }

func (f *fakeObserver) ObserveHTTP(method, route, status string, _ time.Duration) {
	f.seen = append(f.seen, observation{method, route, status})
}

func buildObservedApp(buf *bytes.Buffer, obs *fakeObserver) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.FiberErrorHandler})
	app.Use(apphttp.Metrics(obs))
	app.Use(apphttp.RequestLogger(logger.New(logger.Config{Env: "production", Level: "info", Output: buf})))
	app.Use(recover.New())
	app.Get("/ok/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/falla", func(c *fiber.Ctx) error { return errors.New("sin conexión") })
	app.Get("/panico", func(c *fiber.Ctx) error { panic("boom") })
	return app
}

func TestMiddlewares_RegistranYMiden(t *testing.T) {
	var buf bytes.Buffer
	obs := &fakeObserver{}
	app := buildObservedApp(&buf, obs)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok/123", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "/ok/123", line["path"])
	assert.EqualValues(t, 200, line["status"])

	require.Len(t, obs.seen, 1)
	assert.Equal(t, observation{"GET", "/ok/:id", "200"}, obs.seen[0], "la ruta se mide por patrón")
}

func TestMiddlewares_ErroresYPanicosSon500(t *testing.T) {
	for _, path := range []string{"/falla", "/panico"} {
		var buf bytes.Buffer
		obs := &fakeObserver{}
		app := buildObservedApp(&buf, obs)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, path)

		assert.Contains(t, buf.String(), `"level":"error"`, path)
		require.Len(t, obs.seen, 1)
		assert.Equal(t, "500", obs.seen[0].status, path)
	}
}
