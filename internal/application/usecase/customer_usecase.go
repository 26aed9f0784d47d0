package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/ports"
	"github.com/jhoicas/painel-bi/internal/domain/calendar"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
	"github.com/jhoicas/painel-bi/internal/domain/filter"
	"github.com/jhoicas/painel-bi/internal/domain/metrics"
	"github.com/jhoicas/painel-bi/internal/domain/normalize"
	"github.com/jhoicas/painel-bi/internal/domain/repository"
)

const (
	customerPageSize     = 15
	customerTopRanking   = 10
	customerTopEvolution = 5
	customerTopShare     = 8
	customerDefaultSort  = "totalComprado"
)

// CustomerUseCase reporte de clientes: cadastro del ERP cruzado con las notas
// del período por CPF/CNPJ (solo dígitos).
type CustomerUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	clock     Clock
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, invoices repository.InvoiceRepository, clock Clock) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, invoices: invoices, clock: clock}
}

// customerStats cliente consolidado con sus compras del período.
type customerStats struct {
	entity.Customer
	key          string // CPF/CNPJ solo dígitos
	invoices     []entity.Invoice
	total        decimal.Decimal
	count        int
	average      decimal.Decimal
	lastPurchase *time.Time
	status       metrics.Status
}

type customerView struct {
	period    calendar.Period
	today     time.Time
	all       []entity.Invoice
	customers []entity.Customer
	filtered  []entity.Invoice
	listed    []*customerStats // con al menos una compra en el período
	rows      []*customerStats
	withBuys  int
	noBuys    int
}

func (uc *CustomerUseCase) view(ctx context.Context, companyID string, req dto.CustomerReportRequest) (*customerView, error) {
	today := uc.clock.Today()
	period, err := resolvePeriod(req.Preset, req.From, req.To, today)
	if err != nil {
		return nil, err
	}
	sortBy, err := parseSort(req.Sort, req.Order, customerDefaultSort, true, "nome", "ultimaCompra", "totalComprado", "numeroCompras", "status")
	if err != nil {
		return nil, err
	}

	// clientes y notas son independientes: se piden en paralelo
	type customersResult struct {
		list []entity.Customer
		err  error
	}
	type invoicesResult struct {
		list []entity.Invoice
		err  error
	}
	custCh := make(chan customersResult, 1)
	invCh := make(chan invoicesResult, 1)
	go func() {
		list, err := uc.customers.ListCustomers(ctx, companyID)
		custCh <- customersResult{list, err}
	}()
	go func() {
		list, err := loadInvoices(ctx, uc.invoices, companyID)
		invCh <- invoicesResult{list, err}
	}()
	cust := <-custCh
	invs := <-invCh
	if cust.err != nil {
		return nil, upstream("clientes", cust.err)
	}
	if invs.err != nil {
		return nil, invs.err
	}

	filtered := filter.Apply(invs.list, filter.All(
		filter.Within(period, invoiceDate),
		filter.In(filter.NewSet(req.Sellers...), invoiceSeller),
		filter.AnyIn(filter.NewSet(req.Products...), invoiceProducts),
	))

	byTaxID := make(map[string][]entity.Invoice)
	for _, inv := range filtered {
		if k := normalize.TaxID(inv.CustomerTaxID()); k != "" {
			byTaxID[k] = append(byTaxID[k], inv)
		}
	}

	v := &customerView{period: period, today: today, all: invs.list, customers: cust.list, filtered: filtered}
	consolidated := make(map[string]*customerStats)
	order := make([]*customerStats, 0)
	for _, c := range cust.list {
		key := normalize.TaxID(c.TaxID)
		if key == "" {
			// sin documento no hay con qué cruzar
			v.noBuys++
			continue
		}
		if _, dup := consolidated[key]; dup {
			continue
		}
		if len(byTaxID[key]) > 0 {
			v.withBuys++
		} else {
			v.noBuys++
		}
		s := &customerStats{Customer: c, key: key, invoices: byTaxID[key]}
		consolidated[key] = s
		order = append(order, s)
	}

	selected := filter.NewSetWith(normalize.TaxID, req.Customers...)
	for _, s := range order {
		if len(s.invoices) == 0 || !selected.Matches(s.key) {
			continue
		}
		s.total = metrics.Sum(s.invoices, invoiceTotal)
		s.count = len(s.invoices)
		s.average = metrics.Average(s.total, s.count)
		last := s.invoices[0].IssueDate
		for _, inv := range s.invoices[1:] {
			if inv.IssueDate.After(last) {
				last = inv.IssueDate
			}
		}
		s.lastPurchase = &last
		s.status = metrics.Classify(s.lastPurchase, today)
		v.listed = append(v.listed, s)
	}

	v.rows = filter.Apply(v.listed, filter.All(filter.Search(req.Search, customerSearchText, customerSearchDigits)))
	sortCustomers(v.rows, sortBy)
	return v, nil
}

// Report KPIs, gráficos, opciones y la página pedida de la tabla.
func (uc *CustomerUseCase) Report(ctx context.Context, companyID string, req dto.CustomerReportRequest) (*dto.CustomerReportDTO, error) {
	v, err := uc.view(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	p, err := page(v.rows, req.Page, customerPageSize)
	if err != nil {
		return nil, err
	}

	groups := make([]metrics.Group, 0, len(v.listed))
	lastPurchases := make([]*time.Time, 0, len(v.listed))
	averages := decimal.Zero
	for _, s := range v.listed {
		groups = append(groups, metrics.Group{Key: s.key, Label: s.Name, Total: s.total, Count: s.count, Average: s.average})
		lastPurchases = append(lastPurchases, s.lastPurchase)
		averages = averages.Add(s.average)
	}
	activity := metrics.CountActivity(lastPurchases, v.today)

	out := &dto.CustomerReportDTO{
		Period: periodDTO(v.period),
		KPIs: dto.CustomerKPIsDTO{
			Active:            activity.Active,
			Inactive:          activity.Inactive,
			TopCustomer:       topGroup(groups),
			MeanAverageTicket: metrics.Average(averages, len(v.listed)),
			PeriodBilling:     metrics.Sum(v.filtered, invoiceTotal).Round(2),
			WithPurchases:     v.withBuys,
			WithoutPurchases:  v.noBuys,
		},
		Charts: dto.CustomerChartsDTO{
			Ranking:      groupsDTO(metrics.TopN(groups, customerTopRanking)),
			Evolution:    customerEvolution(v, groups),
			Distribution: groupsDTO(metrics.TopNWithOthers(groups, customerTopShare)),
		},
		Options: customerOptions(v),
		Rows:    make([]dto.CustomerRowDTO, 0, len(p.Items)),
		Page:    pageMeta(p),
	}
	for _, s := range p.Items {
		out.Rows = append(out.Rows, customerRow(s, v.today))
	}
	return out, nil
}

// Table tabla completa filtrada y ordenada.
func (uc *CustomerUseCase) Table(ctx context.Context, companyID string, req dto.CustomerReportRequest) (ports.Table, error) {
	v, err := uc.view(ctx, companyID, req)
	if err != nil {
		return ports.Table{}, err
	}
	t := ports.Table{
		Title:    "Relatório de Clientes",
		Subtitle: periodSubtitle(v.period),
		Columns: []ports.Column{
			{Header: "Cliente", Width: 3},
			{Header: "CPF/CNPJ", Width: 2},
			{Header: "Última compra", Width: 2},
			{Header: "Compras", Width: 1, Align: ports.AlignRight},
			{Header: "Total", Width: 2, Align: ports.AlignRight, Format: ports.FormatMoney},
			{Header: "Status", Width: 2},
		},
	}
	for _, s := range v.rows {
		t.Rows = append(t.Rows, []any{s.Name, s.TaxID, *s.lastPurchase, s.count, s.total, string(s.status)})
	}
	return t, nil
}

// customerEvolution serie mensual de los 5 mayores clientes sobre las mismas
// notas filtradas; los meses sin compra del cliente quedan en cero.
func customerEvolution(v *customerView, groups []metrics.Group) []dto.SeriesDTO {
	top := metrics.TopN(groups, customerTopEvolution)
	if len(top) == 0 {
		return []dto.SeriesDTO{}
	}
	months := metrics.Monthly(v.filtered, invoiceDate, invoiceTotal)
	byKey := make(map[string]*customerStats, len(v.listed))
	for _, s := range v.listed {
		byKey[s.key] = s
	}

	out := make([]dto.SeriesDTO, 0, len(top))
	for _, g := range top {
		own := metrics.Monthly(byKey[g.Key].invoices, invoiceDate, invoiceTotal)
		idx := make(map[calendar.Month]metrics.MonthPoint, len(own))
		for _, p := range own {
			idx[p.Month] = p
		}
		points := make([]metrics.MonthPoint, 0, len(months))
		for _, m := range months {
			p, ok := idx[m.Month]
			if !ok {
				p = metrics.MonthPoint{Month: m.Month, Total: decimal.Zero}
			}
			points = append(points, p)
		}
		out = append(out, dto.SeriesDTO{Key: g.Key, Label: g.Label, Points: monthsDTO(points)})
	}
	return out
}

func customerOptions(v *customerView) dto.CustomerOptionsDTO {
	customers := make(map[string]string)
	for _, c := range v.customers {
		if k := normalize.TaxID(c.TaxID); k != "" {
			if _, ok := customers[k]; !ok {
				customers[k] = c.Name
			}
		}
	}
	sellers := make(map[string]string)
	products := make(map[string]string)
	for _, inv := range v.all {
		if inv.SellerName != "" {
			sellers[inv.SellerName] = inv.SellerName
		}
		for _, it := range inv.Items {
			l := productLabel(it)
			products[l] = l
		}
	}
	return dto.CustomerOptionsDTO{
		Customers: options(customers),
		Sellers:   options(sellers),
		Products:  options(products),
	}
}

func customerRow(s *customerStats, today time.Time) dto.CustomerRowDTO {
	row := dto.CustomerRowDTO{
		ID:             s.ID,
		Name:           s.Name,
		TaxID:          s.TaxID,
		Email:          s.Email,
		Phone:          s.Phone,
		TotalPurchased: s.total.Round(2),
		PurchaseCount:  s.count,
		AverageTicket:  s.average,
		Status:         string(s.status),
	}
	if s.lastPurchase != nil {
		d := s.lastPurchase.Format(dateLayout)
		days := calendar.DaysBetween(*s.lastPurchase, today)
		row.LastPurchase = &d
		row.DaysSinceLast = &days
	}
	return row
}

func sortCustomers(rows []*customerStats, s sortSpec) {
	sortRows(rows, s, func(a, b *customerStats) int {
		switch s.key {
		case "nome":
			return compareText(a.Name, b.Name)
		case "ultimaCompra":
			return compareTime(*a.lastPurchase, *b.lastPurchase)
		case "numeroCompras":
			return compareInt(a.count, b.count)
		case "status":
			return compareText(string(a.status), string(b.status))
		default:
			return a.total.Cmp(b.total)
		}
	})
}

func customerSearchText(s *customerStats) []string {
	return []string{s.Name, s.Email, s.Phone, s.TaxID}
}

func customerSearchDigits(s *customerStats) []string {
	return []string{s.TaxID}
}
