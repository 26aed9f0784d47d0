package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/usecase"
)

// ConfigHandler lectura y edición de la configuración de la empresa, y recarga
// de los datos del ERP.
type ConfigHandler struct {
	uc      *usecase.ConfigUseCase
	refresh *usecase.RefreshUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(uc *usecase.ConfigUseCase, refresh *usecase.RefreshUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc, refresh: refresh}
}

// List GET /api/config
func (h *ConfigHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	entries, err := h.uc.List(c.UserContext(), companyID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(entries)
}

// Update PUT /api/config/:key
// Body: {"value": "R$ 150.000,00"}
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entry, err := h.uc.Update(c.UserContext(), companyID, c.Params("key"), in.Value)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(entry)
}

// Refresh POST /api/refresh
// Descarta los datos guardados de la empresa; la próxima consulta vuelve al ERP.
func (h *ConfigHandler) Refresh(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	h.refresh.Refresh(companyID)
	return c.SendStatus(fiber.StatusNoContent)
}
