package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
)

// AgentHandler alta, edición, consulta y baja de agentes.
type AgentHandler struct {
	uc    *usecase.AgentUseCase
	scope sessionScope
}

// NewAgentHandler construye el handler.
func NewAgentHandler(uc *usecase.AgentUseCase, scope sessionScope) *AgentHandler {
	return &AgentHandler{uc: uc, scope: scope}
}

// Create godoc
// @Summary      Crear agente
// @Tags         agents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateAgentRequest  true  "Datos del agente"
// @Success      201   {object}  dto.AgentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/agents [post]
func (h *AgentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAgentRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar agente
// @Tags         agents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "ID del agente"
// @Param        body  body  dto.UpdateAgentRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.AgentResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/agents/{id} [put]
func (h *AgentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAgentRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener agente
// @Tags         agents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del agente"
// @Success      200  {object}  dto.AgentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agents/{id} [get]
func (h *AgentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar agentes visibles
// @Tags         agents
// @Produce      json
// @Security     BearerAuth
// @Param        q           query  string  false  "Búsqueda"
// @Param        company_id  query  string  false  "Empresa (master/admin)"
// @Param        limit       query  int     false  "Límite"  default(10)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.AgentListResponse
// @Router       /api/agents [get]
func (h *AgentHandler) List(c *fiber.Ctx) error {
	var in dto.AgentListRequest
	if ok, err := queryAndValidate(c, &in); !ok {
		return err
	}
	in.CompanyID = h.scope.company(c, in.CompanyID)
	out, err := h.uc.List(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Dar de baja un agente
// @Description  El agente queda Inactivo; sus reservas se conservan.
// @Tags         agents
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del agente"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/agents/{id} [delete]
func (h *AgentHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
