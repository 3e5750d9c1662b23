package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/facturacion-api/internal/application/dashboard"
)

// DashboardHandler maneja los endpoints del dashboard fiscal.
type DashboardHandler struct {
	uc *dashboard.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen fiscal del periodo (IVA, IRPF, balances)
// @Description  Siempre responde 200: ante un fallo interno devuelve el esquema a cero.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        year          query  string  false  "Año (YYYY). Vacío o 'all' = histórico completo."
// @Param        period        query  string  false  "all | q1..q4 | m1..m12 (default all)"
// @Param        forceRefresh  query  bool    false  "Ignora la caché y recalcula"
// @Param        timestamp     query  string  false  "Anti-caché del navegador; se ignora"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stats/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	force := strings.EqualFold(c.Query("forceRefresh"), "true") || c.Query("forceRefresh") == "1"
	// year y period acaban en la clave de caché: copia fuera del buffer de fasthttp
	year := utils.CopyString(c.Query("year"))
	period := utils.CopyString(c.Query("period"))
	summary := h.uc.GetSummary(c.Context(), userID, year, period, force)
	return c.JSON(summary)
}

// GetStatus godoc
// @Summary      Marca de cambios del dashboard para sondeo
// @Description  El cliente vuelve a pedir el resumen cuando updated_at avanza.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatusDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard-status [get]
func (h *DashboardHandler) GetStatus(c *fiber.Ctx) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	return c.JSON(h.uc.GetStatus(c.Context(), userID))
}

// ClearCache godoc
// @Summary      Vacía los resúmenes cacheados del usuario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CacheClearDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stats/dashboard-cached/clear [post]
func (h *DashboardHandler) ClearCache(c *fiber.Ctx) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	return c.JSON(h.uc.ClearCache(c.Context(), userID))
}
