package repository

import (
	"context"

	"github.com/jhoicas/painel-bi/internal/domain/entity"
)

// CustomerRepository puerto de lectura del cadastro de clientes.
type CustomerRepository interface {
	ListCustomers(ctx context.Context, companyID string) ([]entity.Customer, error)
}
