package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
)

// attachmentFields nombres aceptados para el archivo adjunto en multipart.
var attachmentFields = []string{"attachment", "comprobante"}

// costKeys claves del objeto net_costs en JSON → campo de formulario.
var costKeys = map[string]string{
	"hotel": "cost_hotel", "flight": "cost_flight", "transfer": "cost_transfer",
	"insurance": "cost_insurance", "tour": "cost_tour", "cruise": "cost_cruise",
	"excursion": "cost_excursion", "package": "cost_package",
}

// formValues lee el cuerpo como formulario plano. Acepta multipart (con adjunto
// opcional), x-www-form-urlencoded o JSON; en JSON los números y booleanos se pasan
// a texto y el objeto net_costs se aplana a cost_*.
func formValues(c *fiber.Ctx, maxBytes int64) (map[string]string, *dto.Upload, error) {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		return multipartValues(c, maxBytes)
	case strings.HasPrefix(ct, fiber.MIMEApplicationForm):
		values := map[string]string{}
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			values[string(k)] = string(v)
		})
		return values, nil, nil
	default:
		values, err := jsonValues(c.Body())
		return values, nil, err
	}
}

func multipartValues(c *fiber.Ctx, maxBytes int64) (map[string]string, *dto.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, fmt.Errorf("multipart: %w", err)
	}
	values := make(map[string]string, len(form.Value))
	for k, v := range form.Value {
		if len(v) > 0 {
			values[k] = v[0]
		}
	}
	for _, name := range attachmentFields {
		files := form.File[name]
		if len(files) == 0 || files[0].Filename == "" {
			continue
		}
		fh := files[0]
		upload := &dto.Upload{Filename: fh.Filename, Size: fh.Size}
		// por encima del límite no se lee: el caso de uso lo rechaza por tamaño
		if maxBytes <= 0 || fh.Size <= maxBytes {
			f, err := fh.Open()
			if err != nil {
				return nil, nil, fmt.Errorf("abrir adjunto: %w", err)
			}
			upload.Content, err = io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, nil, fmt.Errorf("leer adjunto: %w", err)
			}
		}
		return values, upload, nil
	}
	return values, nil, nil
}

func jsonValues(body []byte) (map[string]string, error) {
	values := map[string]string{}
	if len(bytes.TrimSpace(body)) == 0 {
		return values, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	for k, v := range raw {
		if k == "net_costs" {
			costs, ok := v.(map[string]any)
			if !ok {
				continue
			}
			for ck, cv := range costs {
				if field, ok := costKeys[ck]; ok {
					values[field] = scalar(cv)
				}
			}
			continue
		}
		if s, ok := scalarOK(v); ok {
			values[k] = s
		}
	}
	return values, nil
}

func scalar(v any) string {
	s, _ := scalarOK(v)
	return s
}

// scalarOK descarta objetos y arreglos anidados.
func scalarOK(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool:
		if x {
			return "true", true
		}
		return "false", true
	}
	return "", false
}

// sendAttachment responde el PDF como descarga.
func sendAttachment(c *fiber.Ctx, name string, content []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(content)
}

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func sendXLSX(c *fiber.Ctx, name string, content []byte) error {
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(content)
}
