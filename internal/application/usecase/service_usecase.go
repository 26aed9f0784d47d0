package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
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
	servicePageSize     = 10
	serviceTopPayers    = 10
	serviceTopCities    = 10
	serviceTypeMaxRunes = 50
	serviceTypeUnknown  = "Não especificado"
	serviceDefaultSort  = "data_emissao"
)

// ServiceUseCase reporte de notas fiscais de serviço (NFS-e).
type ServiceUseCase struct {
	notes repository.ServiceNoteRepository
	clock Clock
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(notes repository.ServiceNoteRepository, clock Clock) *ServiceUseCase {
	return &ServiceUseCase{notes: notes, clock: clock}
}

type serviceView struct {
	period   calendar.Period
	all      []entity.ServiceNote
	filtered []entity.ServiceNote
	rows     []entity.ServiceNote
}

func (uc *ServiceUseCase) view(ctx context.Context, companyID string, req dto.ServiceReportRequest) (*serviceView, error) {
	period, err := resolvePeriod(req.Preset, req.From, req.To, uc.clock.Today())
	if err != nil {
		return nil, err
	}
	sortBy, err := parseSort(req.Sort, req.Order, serviceDefaultSort, true, "data_emissao", "numero", "cliente", "valor", "cidade")
	if err != nil {
		return nil, err
	}
	all, err := uc.notes.ListServiceNotes(ctx, companyID)
	if err != nil {
		return nil, upstream("notas de serviço", err)
	}

	filtered := filter.Apply(all, filter.All(
		filter.Within(period, serviceDate),
		filter.In(filter.NewSet(req.Payers...), payerLabel),
		filter.In(filter.NewSet(req.Cities...), cityLabel),
		filter.In(filter.NewSet(req.Types...), serviceType),
	))
	rows := filter.Apply(filtered, filter.All(filter.Search(req.Search, serviceSearchText, serviceSearchDigits)))
	sortServices(rows, sortBy)
	return &serviceView{period: period, all: all, filtered: filtered, rows: rows}, nil
}

// Report KPIs, gráficos, opciones y la página pedida de la tabla.
func (uc *ServiceUseCase) Report(ctx context.Context, companyID string, req dto.ServiceReportRequest) (*dto.ServiceReportDTO, error) {
	v, err := uc.view(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	p, err := page(v.rows, req.Page, servicePageSize)
	if err != nil {
		return nil, err
	}

	total := metrics.Sum(v.filtered, serviceValue)
	payers := metrics.GroupBy(v.filtered, payerKey, serviceValue)
	out := &dto.ServiceReportDTO{
		Period: periodDTO(v.period),
		KPIs: dto.ServiceKPIsDTO{
			Total:         total.Round(2),
			Count:         len(v.filtered),
			AverageTicket: metrics.Average(total, len(v.filtered)),
			TopPayer:      topGroup(payers),
		},
		Charts: dto.ServiceChartsDTO{
			Monthly:   monthsDTO(metrics.Monthly(v.filtered, serviceDate, serviceValue)),
			TopPayers: groupsDTO(metrics.TopN(payers, serviceTopPayers)),
			TopCities: groupsDTO(metrics.TopN(metrics.GroupBy(v.filtered, cityKey, serviceValue), serviceTopCities)),
		},
		Rows: make([]dto.ServiceRowDTO, 0, len(p.Items)),
		Page: pageMeta(p),
	}

	payerOpts := make(map[string]string)
	cityOpts := make(map[string]string)
	typeOpts := make(map[string]string)
	for _, n := range v.all {
		payerOpts[payerLabel(n)] = payerLabel(n)
		cityOpts[cityLabel(n)] = cityLabel(n)
		typeOpts[serviceType(n)] = serviceType(n)
	}
	out.Options = dto.ServiceOptionsDTO{Payers: options(payerOpts), Cities: options(cityOpts), Types: options(typeOpts)}

	for _, n := range p.Items {
		out.Rows = append(out.Rows, dto.ServiceRowDTO{
			ID:            n.ID,
			Number:        n.Number,
			IssueDate:     n.IssueDate.Format(dateLayout),
			PayerName:     n.PayerName,
			PayerTaxID:    n.PayerTaxID,
			City:          cityLabel(n),
			ServiceType:   serviceType(n),
			ServiceValue:  n.ServiceValue,
			ReceivedValue: n.ReceivedValue,
			ISSValue:      n.ISSValue,
			Status:        n.Status,
		})
	}
	return out, nil
}

// Table tabla completa filtrada y ordenada.
func (uc *ServiceUseCase) Table(ctx context.Context, companyID string, req dto.ServiceReportRequest) (ports.Table, error) {
	v, err := uc.view(ctx, companyID, req)
	if err != nil {
		return ports.Table{}, err
	}
	t := ports.Table{
		Title:    "Relatório de Serviços",
		Subtitle: periodSubtitle(v.period),
		Columns: []ports.Column{
			{Header: "Data", Width: 2},
			{Header: "NFS-e", Width: 1},
			{Header: "Cliente", Width: 3},
			{Header: "CNPJ", Width: 2},
			{Header: "Cidade", Width: 2},
			{Header: "Valor", Width: 2, Align: ports.AlignRight, Format: ports.FormatMoney},
		},
	}
	for _, n := range v.rows {
		t.Rows = append(t.Rows, []any{n.IssueDate, n.Number, n.PayerName, n.PayerTaxID, cityLabel(n), n.ServiceValue})
	}
	return t, nil
}

func sortServices(rows []entity.ServiceNote, s sortSpec) {
	sortRows(rows, s, func(a, b entity.ServiceNote) int {
		switch s.key {
		case "numero":
			return compareNumber(a.Number, b.Number)
		case "cliente":
			return compareText(a.PayerName, b.PayerName)
		case "valor":
			return a.ServiceValue.Cmp(b.ServiceValue)
		case "cidade":
			return compareText(a.City, b.City)
		default:
			return compareTime(a.IssueDate, b.IssueDate)
		}
	})
}

// compareNumber compara como entero cuando ambos lo son.
func compareNumber(a, b string) int {
	x, errA := strconv.ParseInt(a, 10, 64)
	y, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}

// serviceType primeros 50 caracteres de la discriminação.
func serviceType(n entity.ServiceNote) string {
	if d := strings.TrimSpace(n.Description); d != "" {
		return normalize.Truncate(d, serviceTypeMaxRunes)
	}
	return serviceTypeUnknown
}

// payerLabel "razão (cnpj)".
func payerLabel(n entity.ServiceNote) string {
	return fmt.Sprintf("%s (%s)", n.PayerName, n.PayerTaxID)
}

// cityLabel "cidade/UF".
func cityLabel(n entity.ServiceNote) string {
	return n.City + "/" + n.State
}

func serviceDate(n entity.ServiceNote) time.Time        { return n.IssueDate }
func serviceValue(n entity.ServiceNote) decimal.Decimal { return n.ServiceValue }
func payerKey(n entity.ServiceNote) (string, string)    { return n.PayerName, n.PayerName }
func cityKey(n entity.ServiceNote) (string, string)     { return cityLabel(n), cityLabel(n) }

func serviceSearchText(n entity.ServiceNote) []string {
	return []string{n.Number, n.PayerName, n.PayerTaxID, n.City, n.Description}
}

func serviceSearchDigits(n entity.ServiceNote) []string {
	return []string{n.PayerTaxID}
}
