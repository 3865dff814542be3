package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
)

// ContractHandler contratos y catálogos de proveedores, con comprobante PDF opcional.
type ContractHandler struct {
	uc       *usecase.ContractUseCase
	scope    sessionScope
	maxBytes int64
}

// NewContractHandler construye el handler.
func NewContractHandler(uc *usecase.ContractUseCase, scope sessionScope, maxBytes int64) *ContractHandler {
	return &ContractHandler{uc: uc, scope: scope, maxBytes: maxBytes}
}

// ── Contratos ─────────────────────────────────────────────────────────────────

// SaveContract godoc
// @Summary      Crear o editar contrato
// @Description  POST crea; PUT /{id} edita. Acepta multipart con "attachment" o JSON.
// @Tags         contracts
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SaveDocumentResponse[dto.ContractResponse]
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/contracts [post]
// @Router       /api/contracts/{id} [put]
func (h *ContractHandler) SaveContract(c *fiber.Ctx) error {
	values, upload, err := formValues(c, h.maxBytes)
	if err != nil {
		return invalidBody(c)
	}
	id := c.Params("id")
	out, err := h.uc.SaveContract(c.UserContext(), GetActor(c), id, values, upload)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(savedStatus(id)).JSON(out)
}

// GetContract godoc
// @Summary      Obtener contrato
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {object}  dto.ContractResponse
// @Router       /api/contracts/{id} [get]
func (h *ContractHandler) GetContract(c *fiber.Ctx) error {
	out, err := h.uc.GetContract(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListContracts godoc
// @Summary      Listar contratos
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        supplier_id       query  string  false  "Proveedor"
// @Param        include_inactive  query  bool    false  "Incluir dados de baja"
// @Success      200  {object}  dto.ContractListResponse
// @Router       /api/contracts [get]
func (h *ContractHandler) ListContracts(c *fiber.Ctx) error {
	in, ok, err := lifecycleRequest(c, h.scope)
	if !ok {
		return err
	}
	out, err := h.uc.ListContracts(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ContractAttachment descarga el PDF del contrato.
func (h *ContractHandler) ContractAttachment(c *fiber.Ctx) error {
	att, err := h.uc.ContractAttachment(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, att.Name, att.Content)
}

func (h *ContractHandler) DeactivateContract(c *fiber.Ctx) error {
	return noContent(c, h.uc.DeactivateContract(c.UserContext(), GetActor(c), c.Params("id")))
}

func (h *ContractHandler) ReactivateContract(c *fiber.Ctx) error {
	return noContent(c, h.uc.ReactivateContract(c.UserContext(), GetActor(c), c.Params("id")))
}

func (h *ContractHandler) PurgeContract(c *fiber.Ctx) error {
	return noContent(c, h.uc.PurgeContract(c.UserContext(), GetActor(c), c.Params("id")))
}

// ── Catálogos ─────────────────────────────────────────────────────────────────

// SaveCatalog godoc
// @Summary      Crear o editar catálogo
// @Tags         catalogs
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SaveDocumentResponse[dto.CatalogResponse]
// @Router       /api/catalogs [post]
// @Router       /api/catalogs/{id} [put]
func (h *ContractHandler) SaveCatalog(c *fiber.Ctx) error {
	values, upload, err := formValues(c, h.maxBytes)
	if err != nil {
		return invalidBody(c)
	}
	id := c.Params("id")
	out, err := h.uc.SaveCatalog(c.UserContext(), GetActor(c), id, values, upload)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(savedStatus(id)).JSON(out)
}

// GetCatalog godoc
// @Summary      Obtener catálogo
// @Tags         catalogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del catálogo"
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalogs/{id} [get]
func (h *ContractHandler) GetCatalog(c *fiber.Ctx) error {
	out, err := h.uc.GetCatalog(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListCatalogs godoc
// @Summary      Listar catálogos
// @Tags         catalogs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /api/catalogs [get]
func (h *ContractHandler) ListCatalogs(c *fiber.Ctx) error {
	in, ok, err := lifecycleRequest(c, h.scope)
	if !ok {
		return err
	}
	out, err := h.uc.ListCatalogs(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ContractHandler) CatalogAttachment(c *fiber.Ctx) error {
	att, err := h.uc.CatalogAttachment(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, att.Name, att.Content)
}

func (h *ContractHandler) DeactivateCatalog(c *fiber.Ctx) error {
	return noContent(c, h.uc.DeactivateCatalog(c.UserContext(), GetActor(c), c.Params("id")))
}

func (h *ContractHandler) ReactivateCatalog(c *fiber.Ctx) error {
	return noContent(c, h.uc.ReactivateCatalog(c.UserContext(), GetActor(c), c.Params("id")))
}

func (h *ContractHandler) PurgeCatalog(c *fiber.Ctx) error {
	return noContent(c, h.uc.PurgeCatalog(c.UserContext(), GetActor(c), c.Params("id")))
}

// savedStatus 201 al crear, 200 al editar.
func savedStatus(id string) int {
	if id == "" {
		return fiber.StatusCreated
	}
	return fiber.StatusOK
}
