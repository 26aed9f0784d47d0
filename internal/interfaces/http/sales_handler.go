package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/usecase"
)

// SalesHandler maneja el painel de ventas de la empresa.
type SalesHandler struct {
	uc     *usecase.SalesUseCase
	export *usecase.ExportUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *usecase.SalesUseCase, export *usecase.ExportUseCase) *SalesHandler {
	return &SalesHandler{uc: uc, export: export}
}

// Report GET /api/sales/report?preset=30dias&customers=...&page=1
//
// Respuesta: SalesReportDTO con KPIs, gráficos, opciones de filtro y la página
// de la tabla.
func (h *SalesHandler) Report(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var req dto.SalesReportRequest
	if err := c.QueryParser(&req); err != nil {
		return badQuery(c)
	}
	report, err := h.uc.Report(c.UserContext(), companyID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// ExportXLSX GET /api/sales/export.xlsx con los mismos filtros del reporte.
func (h *SalesHandler) ExportXLSX(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var req dto.SalesReportRequest
	if err := c.QueryParser(&req); err != nil {
		return badQuery(c)
	}
	f, err := h.export.SalesXLSX(c.UserContext(), companyID, req)
	return sendFile(c, f, err)
}
