package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/ports"
	"github.com/jhoicas/painel-bi/internal/domain/calendar"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
	"github.com/jhoicas/painel-bi/internal/domain/filter"
	"github.com/jhoicas/painel-bi/internal/domain/metrics"
	"github.com/jhoicas/painel-bi/internal/domain/repository"
)

const (
	salesPageSize        = 10
	salesTopProducts     = 5
	salesTopSellers      = 5
	salesTopCustomers    = 8
	salesDefaultSort     = "data_emissao"
	productLabelFallback = "Sem descrição"
)

// SalesUseCase reporte de ventas de toda la empresa.
type SalesUseCase struct {
	invoices repository.InvoiceRepository
	clock    Clock
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(invoices repository.InvoiceRepository, clock Clock) *SalesUseCase {
	return &SalesUseCase{invoices: invoices, clock: clock}
}

// invoiceView notas filtradas (para KPIs y gráficos) y filas de la tabla
// (además buscadas y ordenadas).
type invoiceView struct {
	period   calendar.Period
	all      []entity.Invoice
	filtered []entity.Invoice
	rows     []entity.Invoice
}

func loadInvoices(ctx context.Context, repo repository.InvoiceRepository, companyID string) ([]entity.Invoice, error) {
	invs, err := repo.ListInvoices(ctx, companyID, repository.InvoiceQuery{})
	if err != nil {
		return nil, upstream("notas fiscais", err)
	}
	return invs, nil
}

func (uc *SalesUseCase) view(ctx context.Context, companyID string, req dto.SalesReportRequest) (*invoiceView, error) {
	period, err := resolvePeriod(req.Preset, req.From, req.To, uc.clock.Today())
	if err != nil {
		return nil, err
	}
	sortBy, err := parseSort(req.Sort, req.Order, salesDefaultSort, true, "data_emissao", "cliente", "valor", "vendedor")
	if err != nil {
		return nil, err
	}
	all, err := loadInvoices(ctx, uc.invoices, companyID)
	if err != nil {
		return nil, err
	}

	filtered := filter.Apply(all, filter.All(
		filter.Within(period, invoiceDate),
		filter.In(filter.NewSet(req.Customers...), entity.Invoice.CustomerName),
		filter.In(filter.NewSet(req.Sellers...), invoiceSeller),
		filter.AnyIn(filter.NewSet(req.Products...), invoiceProducts),
	))
	rows := filter.Apply(filtered, filter.All(filter.Search(req.Search, invoiceSearchText, invoiceSearchDigits)))
	sortInvoices(rows, sortBy)
	return &invoiceView{period: period, all: all, filtered: filtered, rows: rows}, nil
}

// Report KPIs, gráficos, opciones de filtro y la página pedida de la tabla.
func (uc *SalesUseCase) Report(ctx context.Context, companyID string, req dto.SalesReportRequest) (*dto.SalesReportDTO, error) {
	v, err := uc.view(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	out, err := invoiceReport(v, req.Page, true)
	if err != nil {
		return nil, err
	}
	customers := make(map[string]string)
	sellers := make(map[string]string)
	for _, inv := range v.all {
		if n := inv.CustomerName(); n != "" {
			customers[n] = n
		}
		if inv.SellerName != "" {
			sellers[inv.SellerName] = inv.SellerName
		}
	}
	out.Options.Customers = options(customers)
	out.Options.Sellers = options(sellers)
	return out, nil
}

// Table tabla completa filtrada y ordenada, para exportar.
func (uc *SalesUseCase) Table(ctx context.Context, companyID string, req dto.SalesReportRequest) (ports.Table, error) {
	v, err := uc.view(ctx, companyID, req)
	if err != nil {
		return ports.Table{}, err
	}
	return invoiceTable("Relatório de Vendas", v, false), nil
}

// invoiceReport arma la respuesta común a ventas y vendedor.
func invoiceReport(v *invoiceView, pageN int, withSellers bool) (*dto.SalesReportDTO, error) {
	p, err := page(v.rows, pageN, salesPageSize)
	if err != nil {
		return nil, err
	}

	products := metrics.GroupByMany(v.filtered, invoiceItems, itemProductKey, itemValue)
	total := metrics.Sum(v.filtered, invoiceTotal)
	out := &dto.SalesReportDTO{
		Period: periodDTO(v.period),
		KPIs: dto.SalesKPIsDTO{
			TotalBilled:   total.Round(2),
			SalesCount:    len(v.filtered),
			AverageTicket: metrics.Average(total, len(v.filtered)),
			BestProduct:   topGroup(products),
		},
		Charts: dto.SalesChartsDTO{
			Monthly:      monthsDTO(metrics.Monthly(v.filtered, invoiceDate, invoiceTotal)),
			TopProducts:  groupsDTO(metrics.TopN(products, salesTopProducts)),
			TopCustomers: groupsDTO(metrics.TopN(metrics.GroupBy(v.filtered, invoiceCustomerKey, invoiceTotal), salesTopCustomers)),
		},
		Rows: make([]dto.InvoiceRowDTO, 0, len(p.Items)),
		Page: pageMeta(p),
	}
	if withSellers {
		out.Charts.TopSellers = groupsDTO(metrics.TopN(metrics.GroupBy(v.filtered, invoiceSellerKey, invoiceTotal), salesTopSellers))
	}

	productOpts := make(map[string]string)
	for _, inv := range v.all {
		for _, it := range inv.Items {
			l := productLabel(it)
			productOpts[l] = l
		}
	}
	out.Options.Products = options(productOpts)

	for _, inv := range p.Items {
		out.Rows = append(out.Rows, invoiceRow(inv))
	}
	return out, nil
}

func invoiceTable(title string, v *invoiceView, withTag bool) ports.Table {
	cols := []ports.Column{
		{Header: "Data", Width: 2},
		{Header: "Número", Width: 1},
		{Header: "Cliente", Width: 3},
		{Header: "CPF/CNPJ", Width: 2},
		{Header: "Vendedor", Width: 2},
		{Header: "Valor", Width: 2, Align: ports.AlignRight, Format: ports.FormatMoney},
	}
	if withTag {
		cols = append(cols, ports.Column{Header: "Tipo", Width: 1})
	}
	t := ports.Table{Title: title, Subtitle: periodSubtitle(v.period), Columns: cols}
	for _, inv := range v.rows {
		row := []any{inv.IssueDate, inv.Number, inv.CustomerName(), inv.CustomerTaxID(), inv.SellerName, inv.Total}
		if withTag {
			row = append(row, tagLabel(inv.Tag))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func periodSubtitle(p calendar.Period) string {
	from, to := "início", "hoje"
	if p.Start != nil {
		from = p.Start.Format("02/01/2006")
	}
	if p.End != nil {
		to = p.End.Format("02/01/2006")
	}
	if p.Unbounded() {
		return "Período: todos"
	}
	return fmt.Sprintf("Período: %s a %s", from, to)
}

func tagLabel(t entity.InvoiceTag) string {
	if t == entity.TagNone {
		return "Não definido"
	}
	return string(t)
}

func invoiceRow(inv entity.Invoice) dto.InvoiceRowDTO {
	row := dto.InvoiceRowDTO{
		ID:            inv.ID,
		Number:        inv.Number,
		IssueDate:     inv.IssueDate.Format(dateLayout),
		CustomerName:  inv.CustomerName(),
		CustomerTaxID: inv.CustomerTaxID(),
		SellerName:    inv.SellerName,
		Total:         inv.Total,
		Tag:           string(inv.Tag),
		Items:         make([]dto.InvoiceItemDTO, 0, len(inv.Items)),
	}
	for _, it := range inv.Items {
		row.Items = append(row.Items, dto.InvoiceItemDTO{
			Code:        it.Code,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitValue:   it.UnitValue,
			TotalValue:  it.TotalValue,
		})
	}
	return row
}

func sortInvoices(rows []entity.Invoice, s sortSpec) {
	sortRows(rows, s, func(a, b entity.Invoice) int {
		switch s.key {
		case "cliente":
			return compareText(a.CustomerName(), b.CustomerName())
		case "valor":
			return a.Total.Cmp(b.Total)
		case "vendedor":
			return compareText(a.SellerName, b.SellerName)
		case "tipo":
			return compareText(string(a.Tag), string(b.Tag))
		default:
			return compareTime(a.IssueDate, b.IssueDate)
		}
	})
}

// productLabel "descricao (codigo)", la clave de producto de filtros y rankings.
func productLabel(it entity.InvoiceItem) string {
	d := strings.TrimSpace(it.Description)
	if d == "" {
		d = productLabelFallback
	}
	if it.Code == "" {
		return d
	}
	return fmt.Sprintf("%s (%s)", d, it.Code)
}

func invoiceDate(inv entity.Invoice) time.Time        { return inv.IssueDate }
func invoiceTotal(inv entity.Invoice) decimal.Decimal { return inv.Total }
func invoiceSeller(inv entity.Invoice) string         { return inv.SellerName }
func invoiceItems(inv entity.Invoice) []entity.InvoiceItem {
	return inv.Items
}
func itemValue(it entity.InvoiceItem) decimal.Decimal { return it.TotalValue }

func itemProductKey(it entity.InvoiceItem) (string, string) {
	l := productLabel(it)
	return l, l
}

func invoiceProducts(inv entity.Invoice) []string {
	out := make([]string, 0, len(inv.Items))
	for _, it := range inv.Items {
		out = append(out, productLabel(it))
	}
	return out
}

func invoiceCustomerKey(inv entity.Invoice) (string, string) {
	n := inv.CustomerName()
	return n, n
}

func invoiceSellerKey(inv entity.Invoice) (string, string) {
	return inv.SellerName, inv.SellerName
}

func invoiceSearchText(inv entity.Invoice) []string {
	out := []string{inv.Number, inv.CustomerName(), inv.SellerName, inv.Total.StringFixed(2), strings.Replace(inv.Total.StringFixed(2), ".", ",", 1)}
	for _, it := range inv.Items {
		out = append(out, it.Description, it.Code)
	}
	return out
}

func invoiceSearchDigits(inv entity.Invoice) []string {
	return []string{inv.CustomerTaxID()}
}
