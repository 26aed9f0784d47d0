package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/painel-bi/internal/application/analytics"
)

// DashboardHandler maneja el resumen del cuadrimestre.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve la facturación del cuadrimestre en curso frente a la META.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO. Los vendedores ven solo sus notas; el
// cuadrimestre se calcula en el servidor con la zona horaria configurada.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	summary, err := h.uc.GetSummary(c.UserContext(), companyID, GetUsername(c), GetRole(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
