package http

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationErrorResponse error 400 con el detalle por campo.
type ValidationErrorResponse struct {
	dto.ErrorResponse
	Fields map[string]string `json:"fields"`
}

// validationFields campo → regla incumplida.
func validationFields(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

// parseAndValidate BodyParser + validator; escribe la respuesta 400 y devuelve false si falla.
func parseAndValidate(c *fiber.Ctx, in any) (bool, error) {
	if err := c.BodyParser(in); err != nil {
		return false, invalidBody(c)
	}
	return checkValid(c, in)
}

// queryAndValidate igual que parseAndValidate para parámetros de query.
func queryAndValidate(c *fiber.Ctx, in any) (bool, error) {
	if err := c.QueryParser(in); err != nil {
		return false, badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	return checkValid(c, in)
}

func checkValid(c *fiber.Ctx, in any) (bool, error) {
	fields := validationFields(in)
	if fields == nil {
		return true, nil
	}
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return false, c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
		ErrorResponse: dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos: " + strings.Join(names, ", ")},
		Fields:        fields,
	})
}
