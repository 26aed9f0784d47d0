package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/usecase"
)

// StockHandler painel de estoque y solicitud de compra.
type StockHandler struct {
	uc     *usecase.StockUseCase
	export *usecase.ExportUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase, export *usecase.ExportUseCase) *StockHandler {
	return &StockHandler{uc: uc, export: export}
}

func (h *StockHandler) parse(c *fiber.Ctx) (string, dto.StockReportRequest, bool, error) {
	var req dto.StockReportRequest
	companyID := GetCompanyID(c)
	if companyID == "" {
		return "", req, false, unauthorized(c)
	}
	if err := c.QueryParser(&req); err != nil {
		return "", req, false, badQuery(c)
	}
	return companyID, req, true, nil
}

// Report GET /api/stock/report?status=A&balance=negativo&quick=rapido
func (h *StockHandler) Report(c *fiber.Ctx) error {
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

// ExportXLSX GET /api/stock/export.xlsx
func (h *StockHandler) ExportXLSX(c *fiber.Ctx) error {
	companyID, req, ok, err := h.parse(c)
	if !ok {
		return err
	}
	f, err := h.export.StockXLSX(c.UserContext(), companyID, req)
	return sendFile(c, f, err)
}

// ExportPDF GET /api/stock/export.pdf
func (h *StockHandler) ExportPDF(c *fiber.Ctx) error {
	companyID, req, ok, err := h.parse(c)
	if !ok {
		return err
	}
	f, err := h.export.StockPDF(c.UserContext(), companyID, GetUsername(c), req)
	return sendFile(c, f, err)
}

// PurchaseRequest POST /api/stock/purchase-request
// Body: {"notes": "...", "lines": [{"code": "10", "quantity": 5}]}
// Respuesta: el PDF de la solicitud.
func (h *StockHandler) PurchaseRequest(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	f, err := h.export.PurchaseRequestFile(c.UserContext(), companyID, GetUsername(c), in)
	return sendFile(c, f, err)
}
