package repository

import (
	"context"

	"github.com/jhoicas/painel-bi/internal/domain/entity"
)

// StockRepository puerto de lectura del estoque.
type StockRepository interface {
	ListStock(ctx context.Context, companyID string) ([]entity.StockItem, error)
}
