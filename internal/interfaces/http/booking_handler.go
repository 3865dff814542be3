package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
)

// BookingHandler reservas: formulario con adjunto PDF opcional.
type BookingHandler struct {
	uc       *usecase.BookingUseCase
	scope    sessionScope
	maxBytes int64
}

// NewBookingHandler construye el handler. maxBytes es el tamaño a partir del cual
// el adjunto no se lee (el caso de uso lo rechaza igualmente).
func NewBookingHandler(uc *usecase.BookingUseCase, scope sessionScope, maxBytes int64) *BookingHandler {
	return &BookingHandler{uc: uc, scope: scope, maxBytes: maxBytes}
}

// Create godoc
// @Summary      Registrar reserva
// @Description  Acepta multipart/form-data (campo "attachment" con el PDF) o JSON. Un adjunto
// @Description  rechazado no impide guardar: se informa en attachment_warning.
// @Tags         bookings
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.SaveBookingResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	values, upload, err := formValues(c, h.maxBytes)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), values, upload)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar reserva
// @Description  Los campos ausentes conservan su valor; los derivados se recalculan siempre.
// @Tags         bookings
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.SaveBookingResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [put]
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	values, upload, err := formValues(c, h.maxBytes)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), values, upload)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener reserva
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.BookingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar reservas visibles
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        periodo     query  string  false  "Período de venta (ultimos_30_dias, YYYY-MM, Marzo 2024)"
// @Param        q           query  string  false  "Pasajero, destino o localizador"
// @Param        company_id  query  string  false  "Empresa (master/admin)"
// @Param        agent_id    query  string  false  "Agente"
// @Success      200  {object}  dto.BookingListResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	in, ok, err := h.listRequest(c)
	if !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *BookingHandler) listRequest(c *fiber.Ctx) (dto.BookingListRequest, bool, error) {
	var in dto.BookingListRequest
	if ok, err := queryAndValidate(c, &in); !ok {
		return in, false, err
	}
	in.CompanyID = h.scope.company(c, in.CompanyID)
	return in, true, nil
}

// Attachment godoc
// @Summary      Descargar comprobante PDF
// @Tags         bookings
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/attachment [get]
func (h *BookingHandler) Attachment(c *fiber.Ctx) error {
	att, err := h.uc.Attachment(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, att.Name, att.Content)
}

// Delete godoc
// @Summary      Eliminar reserva
// @Tags         bookings
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la reserva"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
