package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/ports"
	"github.com/jhoicas/painel-bi/internal/domain"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
	"github.com/jhoicas/painel-bi/internal/domain/filter"
	"github.com/jhoicas/painel-bi/internal/domain/normalize"
	"github.com/jhoicas/painel-bi/internal/domain/repository"
	"github.com/jhoicas/painel-bi/pkg/logger"
)

// SellerUseCase vista del vendedor logueado: solo sus notas.
type SellerUseCase struct {
	invoices repository.InvoiceRepository
	clock    Clock
	log      *logger.Logger
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(invoices repository.InvoiceRepository, clock Clock, log *logger.Logger) *SellerUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SellerUseCase{invoices: invoices, clock: clock, log: log.Component("seller")}
}

// ownedBy la nota es del vendedor si su nombre contiene el usuario (sin mayúsculas ni acentos).
func ownedBy(username string) filter.Predicate[entity.Invoice] {
	return func(inv entity.Invoice) bool {
		return normalize.ContainsFold(inv.SellerName, username)
	}
}

func requireUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("usuario sin nombre: %w", domain.ErrUnauthorized)
	}
	return nil
}

func (uc *SellerUseCase) view(ctx context.Context, companyID, username string, req dto.SellerReportRequest) (*invoiceView, error) {
	if err := requireUsername(username); err != nil {
		return nil, err
	}
	period, err := resolvePeriod(req.Preset, req.From, req.To, uc.clock.Today())
	if err != nil {
		return nil, err
	}
	sortBy, err := parseSort(req.Sort, req.Order, salesDefaultSort, true, "data_emissao", "cliente", "valor", "vendedor", "tipo")
	if err != nil {
		return nil, err
	}
	all, err := loadInvoices(ctx, uc.invoices, companyID)
	if err != nil {
		return nil, err
	}

	mine := filter.Apply(all, ownedBy(username))
	filtered := filter.Apply(mine, filter.All(
		filter.Within(period, invoiceDate),
		filter.AnyIn(filter.NewSet(req.Products...), invoiceProducts),
	))
	rows := filter.Apply(filtered, filter.All(filter.Search(req.Search, sellerSearchText, invoiceSearchDigits)))
	sortInvoices(rows, sortBy)
	return &invoiceView{period: period, all: mine, filtered: filtered, rows: rows}, nil
}

// Report igual que el de ventas pero sin ranking de vendedores.
func (uc *SellerUseCase) Report(ctx context.Context, companyID, username string, req dto.SellerReportRequest) (*dto.SalesReportDTO, error) {
	v, err := uc.view(ctx, companyID, username, req)
	if err != nil {
		return nil, err
	}
	return invoiceReport(v, req.Page, false)
}

// Table tabla completa del vendedor, con la columna de tipo.
func (uc *SellerUseCase) Table(ctx context.Context, companyID, username string, req dto.SellerReportRequest) (ports.Table, error) {
	v, err := uc.view(ctx, companyID, username, req)
	if err != nil {
		return ports.Table{}, err
	}
	return invoiceTable("Minhas Vendas", v, true), nil
}

// UpdateTag clasifica una nota propia como Outbound, Inbound o ReCompra.
func (uc *SellerUseCase) UpdateTag(ctx context.Context, companyID, username, invoiceID, tag string) error {
	if err := requireUsername(username); err != nil {
		return err
	}
	t := entity.InvoiceTag(strings.TrimSpace(tag))
	if !t.Valid() {
		return fmt.Errorf("%q: %w", tag, domain.ErrInvalidTag)
	}
	all, err := loadInvoices(ctx, uc.invoices, companyID)
	if err != nil {
		return err
	}

	var found *entity.Invoice
	for i := range all {
		if all[i].ID == invoiceID {
			found = &all[i]
			break
		}
	}
	if found == nil {
		return fmt.Errorf("nota %s: %w", invoiceID, domain.ErrNotFound)
	}
	if !ownedBy(username)(*found) {
		return fmt.Errorf("nota %s no pertenece a %s: %w", invoiceID, username, domain.ErrForbidden)
	}
	if err := uc.invoices.UpdateInvoiceTag(ctx, companyID, invoiceID, t); err != nil {
		return fmt.Errorf("actualizar tipo de nota %s: %w", invoiceID, err)
	}
	uc.log.Info().Str("company_id", companyID).Str("invoice_id", invoiceID).Str("tipo", string(t)).Str("usuario", username).Msg("nota clasificada")
	return nil
}

func sellerSearchText(inv entity.Invoice) []string {
	return append(invoiceSearchText(inv), string(inv.Tag))
}
