package repository

import (
	"context"

	"github.com/jhoicas/painel-bi/internal/domain/entity"
)

// ConfigRepository puerto de las entradas de configuración (META, ANIMACAO_META...).
type ConfigRepository interface {
	ListConfig(ctx context.Context, companyID string) ([]entity.ConfigEntry, error)

	// UpdateConfig reemplaza el valor de una clave existente. Clave inexistente
	// devuelve domain.ErrNotFound.
	UpdateConfig(ctx context.Context, companyID, key, value string) (*entity.ConfigEntry, error)
}
