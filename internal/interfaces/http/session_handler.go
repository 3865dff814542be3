package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/ports"
	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
)

// sessionScope resuelve la empresa por defecto de listados y reportes.
type sessionScope struct {
	store ports.SelectionStore
}

// company devuelve requested si viene informado; si no, y el agente es master/admin,
// la empresa seleccionada en su sesión. Para el resto los casos de uso fijan la suya.
func (s sessionScope) company(c *fiber.Ctx, requested string) string {
	requested = strings.TrimSpace(requested)
	if requested != "" || s.store == nil {
		return requested
	}
	actor := GetActor(c)
	if !policy.IsTopTier(actor.Role) {
		return ""
	}
	selected, err := s.store.Get(c.UserContext(), actor.ID)
	if err != nil {
		// sin selección se listan todas las empresas
		c.Locals(LocalError, err)
		return ""
	}
	return selected
}

// SessionHandler empresa de trabajo de la sesión (master/admin).
type SessionHandler struct {
	store     ports.SelectionStore
	companies *usecase.CompanyUseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(store ports.SelectionStore, companies *usecase.CompanyUseCase) *SessionHandler {
	return &SessionHandler{store: store, companies: companies}
}

// GetCompany godoc
// @Summary      Empresa seleccionada en la sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SelectedCompanyResponse
// @Router       /api/session/company [get]
func (h *SessionHandler) GetCompany(c *fiber.Ctx) error {
	actor := GetActor(c)
	id, err := h.store.Get(c.UserContext(), actor.ID)
	if err != nil {
		return writeError(c, err)
	}
	out := dto.SelectedCompanyResponse{CompanyID: id}
	if id != "" {
		company, err := h.companies.GetByID(c.UserContext(), actor, id)
		if err != nil {
			// la empresa ya no existe: se limpia la selección
			_ = h.store.Clear(c.UserContext(), actor.ID)
			return c.JSON(dto.SelectedCompanyResponse{})
		}
		out.Company = company
	}
	return c.JSON(out)
}

// SelectCompany godoc
// @Summary      Seleccionar empresa de trabajo
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectCompanyRequest  true  "Empresa"
// @Success      200   {object}  dto.SelectedCompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/session/company [put]
func (h *SessionHandler) SelectCompany(c *fiber.Ctx) error {
	var in dto.SelectCompanyRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	actor := GetActor(c)
	company, err := h.companies.GetByID(c.UserContext(), actor, in.CompanyID)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.store.Set(c.UserContext(), actor.ID, company.ID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SelectedCompanyResponse{CompanyID: company.ID, Company: company})
}

// ClearCompany godoc
// @Summary      Quitar la empresa seleccionada (ver todas)
// @Tags         session
// @Success      204
// @Router       /api/session/company [delete]
func (h *SessionHandler) ClearCompany(c *fiber.Ctx) error {
	if err := h.store.Clear(c.UserContext(), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
