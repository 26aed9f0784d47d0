package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/usecase"
)

// ServiceHandler painel de notas de servicio.
type ServiceHandler struct {
	uc     *usecase.ServiceUseCase
	export *usecase.ExportUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase, export *usecase.ExportUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc, export: export}
}

func (h *ServiceHandler) parse(c *fiber.Ctx) (string, dto.ServiceReportRequest, bool, error) {
	var req dto.ServiceReportRequest
	companyID := GetCompanyID(c)
	if companyID == "" {
		return "", req, false, unauthorized(c)
	}
	if err := c.QueryParser(&req); err != nil {
		return "", req, false, badQuery(c)
	}
	return companyID, req, true, nil
}

// Report GET /api/services/report
func (h *ServiceHandler) Report(c *fiber.Ctx) error {
	companyID, req, ok, err := h.parse(c)
	if !ok {
		return err
	}
	report, err := h.uc.Report(c.UserContext(), companyID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// ExportXLSX GET /api/services/export.xlsx
func (h *ServiceHandler) ExportXLSX(c *fiber.Ctx) error {
	companyID, req, ok, err := h.parse(c)
	if !ok {
		return err
	}
	f, err := h.export.ServicesXLSX(c.UserContext(), companyID, req)
	return sendFile(c, f, err)
}

// ExportPDF GET /api/services/export.pdf
func (h *ServiceHandler) ExportPDF(c *fiber.Ctx) error {
	companyID, req, ok, err := h.parse(c)
	if !ok {
		return err
	}
	f, err := h.export.ServicesPDF(c.UserContext(), companyID, GetUsername(c), req)
	return sendFile(c, f, err)
}
