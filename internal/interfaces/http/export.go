package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-bi/internal/application/usecase"
)

// sendFile responde el archivo como descarga.
func sendFile(c *fiber.Ctx, f *usecase.File, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, f.Name))
	return c.Send(f.Data)
}
