package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/ports"
	"github.com/jhoicas/painel-bi/internal/domain"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
	"github.com/jhoicas/painel-bi/internal/domain/filter"
	"github.com/jhoicas/painel-bi/internal/domain/metrics"
	"github.com/jhoicas/painel-bi/internal/domain/repository"
)

const (
	stockPageSize    = 15
	stockTopValue    = 10
	stockTopShare    = 8
	stockDefaultSort = "nome"
)

// Filtros de saldo.
const (
	balanceAll      = "todos"
	balancePositive = "comSaldo"
	balanceZero     = "semSaldo"
	balanceNegative = "negativo"
)

// ConfigReader lectura de una clave de configuración.
type ConfigReader interface {
	Value(ctx context.Context, companyID, key string) (string, bool, error)
}

// ReportOptions datos comunes de los documentos generados.
type ReportOptions struct {
	CompanyName string
	PDFMaxRows  int
}

// StockUseCase reporte de estoque y solicitudes de compra.
type StockUseCase struct {
	stock  repository.StockRepository
	config ConfigReader
	pdf    ports.ReportPDFGenerator
	opts   ReportOptions
	clock  Clock
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stock repository.StockRepository, config ConfigReader, pdf ports.ReportPDFGenerator, opts ReportOptions, clock Clock) *StockUseCase {
	return &StockUseCase{stock: stock, config: config, pdf: pdf, opts: opts, clock: clock}
}

type stockView struct {
	all        []entity.StockItem
	filtered   []entity.StockItem
	rows       []entity.StockItem
	quickCodes []string
}

func (uc *StockUseCase) quickCodes(ctx context.Context, companyID string) ([]string, error) {
	if uc.config == nil {
		return nil, nil
	}
	v, ok, err := uc.config.Value(ctx, companyID, entity.ConfigKeyQuickCodes)
	if err != nil || !ok {
		return nil, err
	}
	return splitCodes(v), nil
}

func (uc *StockUseCase) view(ctx context.Context, companyID string, req dto.StockReportRequest) (*stockView, error) {
	sortBy, err := parseSort(req.Sort, req.Order, stockDefaultSort, false, "nome", "codigo", "preco", "saldo", "situacao")
	if err != nil {
		return nil, err
	}
	statusPred, err := stockStatusFilter(req.Status)
	if err != nil {
		return nil, err
	}
	balancePred, err := stockBalanceFilter(req.Balance)
	if err != nil {
		return nil, err
	}

	all, err := uc.stock.ListStock(ctx, companyID)
	if err != nil {
		return nil, upstream("estoque", err)
	}
	quick, err := uc.quickCodes(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var quickPred filter.Predicate[entity.StockItem]
	switch req.Quick {
	case "", "nenhum":
	case "rapido":
		// lista rápida sin códigos configurados no muestra nada
		set := filter.NewSet(quick...)
		quickPred = func(it entity.StockItem) bool { return !set.Empty() && set.Matches(it.Code) }
	default:
		return nil, fmt.Errorf("lista rápida %q: %w", req.Quick, domain.ErrInvalidInput)
	}

	filtered := filter.Apply(all, filter.All(
		filter.In(filter.NewSet(req.Codes...), stockCode),
		statusPred,
		balancePred,
		quickPred,
	))
	rows := filter.Apply(filtered, filter.All(filter.Search(req.Search, stockSearchText, nil)))
	sortStock(rows, sortBy)
	return &stockView{all: all, filtered: filtered, rows: rows, quickCodes: quick}, nil
}

func stockStatusFilter(status string) (filter.Predicate[entity.StockItem], error) {
	switch status {
	case "", "todos":
		return nil, nil
	case string(entity.StockActive), string(entity.StockInactive):
		s := entity.StockStatus(status)
		return func(it entity.StockItem) bool { return it.Status == s }, nil
	}
	return nil, fmt.Errorf("situação %q: %w", status, domain.ErrInvalidInput)
}

func stockBalanceFilter(balance string) (filter.Predicate[entity.StockItem], error) {
	switch balance {
	case "", balanceAll:
		return nil, nil
	case balancePositive:
		return func(it entity.StockItem) bool { return it.Balance.IsPositive() }, nil
	case balanceZero:
		return func(it entity.StockItem) bool { return it.Balance.IsZero() }, nil
	case balanceNegative:
		return func(it entity.StockItem) bool { return it.Balance.IsNegative() }, nil
	}
	return nil, fmt.Errorf("filtro de saldo %q: %w", balance, domain.ErrInvalidInput)
}

// Report KPIs, gráficos y la página pedida de la tabla.
func (uc *StockUseCase) Report(ctx context.Context, companyID string, req dto.StockReportRequest) (*dto.StockReportDTO, error) {
	v, err := uc.view(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	p, err := page(v.rows, req.Page, stockPageSize)
	if err != nil {
		return nil, err
	}

	active, zero := 0, 0
	for _, it := range v.filtered {
		if it.Status == entity.StockActive {
			active++
		}
		if it.Balance.IsZero() {
			zero++
		}
	}
	// los gráficos de valor solo consideran itens con saldo y preço positivos
	valued := filter.Apply(v.filtered, func(it entity.StockItem) bool {
		return it.Balance.IsPositive() && it.Price.IsPositive()
	})
	byValue := metrics.GroupBy(valued, stockKey, stockValue)

	out := &dto.StockReportDTO{
		KPIs: dto.StockKPIsDTO{
			ActiveCount:      active,
			ZeroBalanceCount: zero,
			TotalValue:       metrics.Sum(v.filtered, stockValue).Round(2),
			TopItem:          topGroup(byValue),
		},
		Charts: dto.StockChartsDTO{
			TopByValue:   groupsDTO(metrics.TopN(byValue, stockTopValue)),
			Distribution: groupsDTO(metrics.TopNWithOthers(byValue, stockTopShare)),
			ByStatus:     groupsDTO(metrics.GroupBy(v.filtered, stockStatusKey, stockValue)),
		},
		QuickCodes: v.quickCodes,
		Rows:       make([]dto.StockRowDTO, 0, len(p.Items)),
		Page:       pageMeta(p),
	}
	if out.QuickCodes == nil {
		out.QuickCodes = []string{}
	}
	opts := make(map[string]string)
	for _, it := range v.all {
		if it.Code != "" {
			opts[it.Code] = fmt.Sprintf("%s (%s)", it.Name, it.Code)
		}
	}
	out.Options = options(opts)
	for _, it := range p.Items {
		out.Rows = append(out.Rows, dto.StockRowDTO{
			ID:      it.ID,
			Code:    it.Code,
			Name:    it.Name,
			Unit:    it.Unit,
			Price:   it.Price,
			Balance: it.Balance,
			Value:   it.Value().Round(2),
			Status:  string(it.Status),
		})
	}
	return out, nil
}

// Table tabla completa filtrada y ordenada.
func (uc *StockUseCase) Table(ctx context.Context, companyID string, req dto.StockReportRequest) (ports.Table, error) {
	v, err := uc.view(ctx, companyID, req)
	if err != nil {
		return ports.Table{}, err
	}
	t := ports.Table{
		Title: "Relatório de Estoque",
		Columns: []ports.Column{
			{Header: "Código", Width: 2},
			{Header: "Produto", Width: 4},
			{Header: "Un.", Width: 1, Align: ports.AlignCenter},
			{Header: "Preço", Width: 2, Align: ports.AlignRight, Format: ports.FormatMoney},
			{Header: "Saldo", Width: 1, Align: ports.AlignRight, Format: ports.FormatQuantity},
			{Header: "Situação", Width: 2, Align: ports.AlignCenter},
		},
	}
	for _, it := range v.rows {
		t.Rows = append(t.Rows, []any{it.Code, it.Name, it.Unit, it.Price, it.Balance, stockStatusLabel(it.Status)})
	}
	return t, nil
}

// PurchaseRequest PDF de solicitud de compra con las líneas de cantidad
// positiva. Cada código debe existir en el estoque.
func (uc *StockUseCase) PurchaseRequest(ctx context.Context, companyID, requester string, req dto.PurchaseRequest) ([]byte, error) {
	wanted := make([]dto.PurchaseLineRequest, 0, len(req.Lines))
	for _, l := range req.Lines {
		if l.Quantity.IsPositive() {
			wanted = append(wanted, l)
		}
	}
	if len(wanted) == 0 {
		return nil, fmt.Errorf("solicitud sin cantidades: %w", domain.ErrInvalidInput)
	}

	all, err := uc.stock.ListStock(ctx, companyID)
	if err != nil {
		return nil, upstream("estoque", err)
	}
	byCode := make(map[string]entity.StockItem, len(all))
	for _, it := range all {
		byCode[it.Code] = it
	}

	doc := ports.PurchaseRequestDocument{
		CompanyName: uc.opts.CompanyName,
		RequestedBy: requester,
		GeneratedAt: uc.now(),
		Notes:       strings.TrimSpace(req.Notes),
	}
	for _, l := range wanted {
		it, ok := byCode[strings.TrimSpace(l.Code)]
		if !ok {
			return nil, fmt.Errorf("código %q: %w", l.Code, domain.ErrInvalidInput)
		}
		doc.Lines = append(doc.Lines, ports.PurchaseLine{
			Code:     it.Code,
			Name:     it.Name,
			Unit:     it.Unit,
			Balance:  it.Balance,
			Quantity: l.Quantity,
		})
	}
	return uc.pdf.GeneratePurchaseRequestPDF(ctx, doc)
}

func (uc *StockUseCase) now() time.Time {
	if uc.clock.Now != nil {
		return uc.clock.Now()
	}
	return time.Now()
}

func sortStock(rows []entity.StockItem, s sortSpec) {
	sortRows(rows, s, func(a, b entity.StockItem) int {
		switch s.key {
		case "codigo":
			return strings.Compare(a.Code, b.Code)
		case "preco":
			return a.Price.Cmp(b.Price)
		case "saldo":
			return a.Balance.Cmp(b.Balance)
		case "situacao":
			return strings.Compare(string(a.Status), string(b.Status))
		default:
			return compareText(a.Name, b.Name)
		}
	})
}

func stockStatusLabel(s entity.StockStatus) string {
	if s == entity.StockActive {
		return "Ativo"
	}
	return "Inativo"
}

func stockCode(it entity.StockItem) string           { return it.Code }
func stockValue(it entity.StockItem) decimal.Decimal { return it.Value() }
func stockKey(it entity.StockItem) (string, string)  { return it.ID, it.Name }
func stockSearchText(it entity.StockItem) []string   { return []string{it.Name, it.Code, it.Unit} }
func stockStatusKey(it entity.StockItem) (string, string) {
	return string(it.Status), stockStatusLabel(it.Status)
}
