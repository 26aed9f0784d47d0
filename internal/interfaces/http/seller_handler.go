package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/usecase"
)

// SellerHandler painel del vendedor: solo sus notas, identificado por el
// username del token.
type SellerHandler struct {
	uc     *usecase.SellerUseCase
	export *usecase.ExportUseCase
}

// NewSellerHandler construye el handler.
func NewSellerHandler(uc *usecase.SellerUseCase, export *usecase.ExportUseCase) *SellerHandler {
	return &SellerHandler{uc: uc, export: export}
}

// Report GET /api/seller/report
func (h *SellerHandler) Report(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var req dto.SellerReportRequest
	if err := c.QueryParser(&req); err != nil {
		return badQuery(c)
	}
	report, err := h.uc.Report(c.UserContext(), companyID, GetUsername(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// ExportXLSX GET /api/seller/export.xlsx
func (h *SellerHandler) ExportXLSX(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var req dto.SellerReportRequest
	if err := c.QueryParser(&req); err != nil {
		return badQuery(c)
	}
	f, err := h.export.SellerXLSX(c.UserContext(), companyID, GetUsername(c), req)
	return sendFile(c, f, err)
}

// UpdateTag PATCH /api/seller/invoices/:id/tag
// Body: {"tag": "Inbound" | "Outbound" | "ReCompra"}
func (h *SellerHandler) UpdateTag(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateTagRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.UpdateTag(c.UserContext(), companyID, GetUsername(c), c.Params("id"), in.Tag); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
