package repository

import (
	"context"
	"time"

	"github.com/jhoicas/painel-bi/internal/domain/entity"
)

// InvoiceQuery rango de emisión pedido a la fuente. Extremos nil = sin límite.
type InvoiceQuery struct {
	Start *time.Time
	End   *time.Time
}

// InvoiceRepository puerto de lectura de notas fiscales de venta y de
// reclasificación de su tipo.
type InvoiceRepository interface {
	// ListInvoices devuelve solo notas de venta emitidas (el filtro de natureza y
	// situación lo aplica el adaptador).
	ListInvoices(ctx context.Context, companyID string, q InvoiceQuery) ([]entity.Invoice, error)

	// UpdateInvoiceTag cambia el tipo de la nota en la fuente.
	UpdateInvoiceTag(ctx context.Context, companyID, invoiceID string, tag entity.InvoiceTag) error
}
