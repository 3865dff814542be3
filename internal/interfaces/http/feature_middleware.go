package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
)

// featureChecker contrato mínimo del middleware; lo implementa *usecase.FeatureService.
type featureChecker interface {
	Allowed(ctx context.Context, actor policy.Actor, feature string) (bool, error)
}

// RequireFeature verifica que la empresa del agente tenga habilitada la feature
// (gestión de reservas o productos). Debe usarse después de AuthMiddleware.
//
//   - 403 FEATURE_DISABLED: la empresa no tiene la feature o el agente no tiene empresa.
//   - 503 FEATURE_CHECK_FAILED: fallo al consultar la empresa.
func RequireFeature(feature string, checker featureChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, err := checker.Allowed(c.UserContext(), GetActor(c), feature)
		if err != nil {
			c.Locals(LocalError, err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "FEATURE_CHECK_FAILED",
				Message: "no se pudo verificar la funcionalidad, intente más tarde",
			})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FEATURE_DISABLED",
				Message: "la funcionalidad '" + feature + "' no está habilitada para su empresa",
			})
		}
		return c.Next()
	}
}
