package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/usecase"
)

// CustomerHandler painel de clientes.
type CustomerHandler struct {
	uc     *usecase.CustomerUseCase
	export *usecase.ExportUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, export *usecase.ExportUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, export: export}
}

func (h *CustomerHandler) parse(c *fiber.Ctx) (string, dto.CustomerReportRequest, bool, error) {
	var req dto.CustomerReportRequest
	companyID := GetCompanyID(c)
	if companyID == "" {
		return "", req, false, unauthorized(c)
	}
	if err := c.QueryParser(&req); err != nil {
		return "", req, false, badQuery(c)
	}
	return companyID, req, true, nil
}

// Report GET /api/customers/report
func (h *CustomerHandler) Report(c *fiber.Ctx) error {
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

// ExportXLSX GET /api/customers/export.xlsx
func (h *CustomerHandler) ExportXLSX(c *fiber.Ctx) error {
	companyID, req, ok, err := h.parse(c)
	if !ok {
		return err
	}
	f, err := h.export.CustomersXLSX(c.UserContext(), companyID, req)
	return sendFile(c, f, err)
}

// ExportPDF GET /api/customers/export.pdf
func (h *CustomerHandler) ExportPDF(c *fiber.Ctx) error {
	companyID, req, ok, err := h.parse(c)
	if !ok {
		return err
	}
	f, err := h.export.CustomersPDF(c.UserContext(), companyID, GetUsername(c), req)
	return sendFile(c, f, err)
}
