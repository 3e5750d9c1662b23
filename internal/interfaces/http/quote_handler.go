package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/application/records"
)

// QuoteHandler maneja el CRUD de presupuestos.
type QuoteHandler struct {
	uc *records.UseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *records.UseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// List godoc
// @Summary      Lista los presupuestos del usuario
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.QuoteResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	list, err := h.uc.ListQuotes(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crea un presupuesto
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.QuoteRequest  true  "Presupuesto"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	var in dto.QuoteRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateQuote(c.Context(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualiza un presupuesto (p. ej. aceptado o rechazado)
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "ID del presupuesto"
// @Param        body  body      dto.QuoteRequest  true  "Presupuesto"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [put]
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	var in dto.QuoteRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateQuote(c.Context(), userID, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina un presupuesto
// @Tags         quotes
// @Security     Bearer
// @Param        id   path  string  true  "ID del presupuesto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	if err := h.uc.DeleteQuote(c.Context(), userID, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
