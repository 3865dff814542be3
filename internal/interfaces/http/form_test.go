package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/domain"
)

func TestJSONValues_AplanaCostos(t *testing.T) {
	values, err := jsonValues([]byte(`{
		"passenger_name": "Ana",
		"sale_price": 1500.5,
		"bonus": "1.234,50",
		"comments": null,
		"net_costs": {"hotel": 600, "flight": "200", "desconocido": 1},
		"tags": ["x"]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Ana", values["passenger_name"])
	assert.Equal(t, "1500.5", values["sale_price"])
	assert.Equal(t, "1.234,50", values["bonus"])
	assert.Equal(t, "", values["comments"])
	assert.Equal(t, "600", values["cost_hotel"])
	assert.Equal(t, "200", values["cost_flight"])
	assert.NotContains(t, values, "tags")
	assert.NotContains(t, values, "net_costs")

	empty, err := jsonValues(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = jsonValues([]byte(`{roto`))
	assert.Error(t, err)
}

func multipartBody(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		fw, err := w.CreateFormFile("attachment", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func echoForm(maxBytes int64) *fiber.App {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		values, upload, err := formValues(c, maxBytes)
		if err != nil {
			return invalidBody(c)
		}
		out := fiber.Map{"values": values}
		if upload != nil {
			out["filename"] = upload.Filename
			out["size"] = upload.Size
			out["read"] = len(upload.Content)
		}
		return c.JSON(out)
	})
	return app
}

func TestFormValues_MultipartConAdjunto(t *testing.T) {
	body, ct := multipartBody(t, map[string]string{"destination": "Cusco"}, "voucher.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", ct)

	resp, err := echoForm(1024).Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		Values   map[string]string `json:"values"`
		Filename string            `json:"filename"`
		Size     int64             `json:"size"`
		Read     int               `json:"read"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Cusco", out.Values["destination"])
	assert.Equal(t, "voucher.pdf", out.Filename)
	assert.Equal(t, int64(8), out.Size)
	assert.Equal(t, 8, out.Read)
}

func TestFormValues_AdjuntoSobreElLimiteNoSeLee(t *testing.T) {
	body, ct := multipartBody(t, nil, "grande.pdf", bytes.Repeat([]byte("x"), 64))
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", ct)

	resp, err := echoForm(16).Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `"size":64`)
	assert.Contains(t, string(raw), `"read":0`)
}

func TestFormValues_URLEncoded(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("name=Sol&location=Lima"))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp, err := echoForm(0).Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		Values map[string]string `json:"values"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, map[string]string{"name": "Sol", "location": "Lima"}, out.Values)
}

func TestWriteError_Mapeo(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("%w: agente", domain.ErrUserNotFound), http.StatusNotFound, "USER_NOT_FOUND"},
		{fmt.Errorf("%w: nombre", domain.ErrInvalidInput), http.StatusBadRequest, "VALIDATION"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrHasDependents, http.StatusConflict, "HAS_DEPENDENTS"},
		{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
		{domain.ErrAttachmentRejected, http.StatusUnprocessableEntity, "ATTACHMENT_REJECTED"},
		{domain.ErrFeatureDisabled, http.StatusForbidden, "FEATURE_DISABLED"},
		{fmt.Errorf("conexión perdida"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error { return writeError(c, tc.err) })
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()
		assert.Equal(t, tc.status, resp.StatusCode, tc.err.Error())
		assert.Equal(t, tc.code, body.Code)
	}
}

func TestWriteError_InternoNoExponeDetalle(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return writeError(c, fmt.Errorf("password=secreta")) })
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(raw), "secreta")
}
