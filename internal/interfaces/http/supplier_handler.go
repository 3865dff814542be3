package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
)

// SupplierHandler proveedores con baja lógica, reactivación y borrado definitivo.
type SupplierHandler struct {
	uc    *usecase.SupplierUseCase
	scope sessionScope
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, scope sessionScope) *SupplierHandler {
	return &SupplierHandler{uc: uc, scope: scope}
}

// lifecycleRequest query común de proveedores, contratos y catálogos.
func lifecycleRequest(c *fiber.Ctx, scope sessionScope) (dto.LifecycleListRequest, bool, error) {
	var in dto.LifecycleListRequest
	if ok, err := queryAndValidate(c, &in); !ok {
		return in, false, err
	}
	in.CompanyID = scope.company(c, in.CompanyID)
	return in, true, nil
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.SupplierResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	values, _, err := formValues(c, 0)
	if err != nil {
		return invalidBody(c)
	}
	companyID := h.scope.company(c, values["company_id"])
	out, err := h.uc.Create(c.UserContext(), GetActor(c), companyID, values)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	values, _, err := formValues(c, 0)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), values)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proveedor
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        include_inactive  query  bool    false  "Incluir dados de baja"
// @Param        q                 query  string  false  "Búsqueda"
// @Success      200  {object}  dto.SupplierListResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	in, ok, err := lifecycleRequest(c, h.scope)
	if !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Dar de baja proveedor
// @Tags         suppliers
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del proveedor"
// @Success      204
// @Router       /api/suppliers/{id}/deactivate [post]
func (h *SupplierHandler) Deactivate(c *fiber.Ctx) error {
	return noContent(c, h.uc.Deactivate(c.UserContext(), GetActor(c), c.Params("id")))
}

// Reactivate godoc
// @Summary      Reactivar proveedor
// @Tags         suppliers
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del proveedor"
// @Success      204
// @Router       /api/suppliers/{id}/reactivate [post]
func (h *SupplierHandler) Reactivate(c *fiber.Ctx) error {
	return noContent(c, h.uc.Reactivate(c.UserContext(), GetActor(c), c.Params("id")))
}

// Purge godoc
// @Summary      Eliminar proveedor definitivamente
// @Description  Se rechaza con 409 mientras existan contratos o catálogos asociados.
// @Tags         suppliers
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del proveedor"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Purge(c *fiber.Ctx) error {
	return noContent(c, h.uc.Purge(c.UserContext(), GetActor(c), c.Params("id")))
}

func noContent(c *fiber.Ctx, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
