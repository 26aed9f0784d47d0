// Package analytics contiene el resumen del dashboard: facturación del
// cuatrimestre en curso contra la meta y sus franjas de bonificación.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/domain"
	"github.com/jhoicas/painel-bi/internal/domain/calendar"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
	"github.com/jhoicas/painel-bi/internal/domain/metrics"
	"github.com/jhoicas/painel-bi/internal/domain/normalize"
	"github.com/jhoicas/painel-bi/internal/domain/repository"
)

// ConfigReader lectura de una clave de configuración.
type ConfigReader interface {
	Value(ctx context.Context, companyID, key string) (string, bool, error)
}

// DashboardUseCase resumen del cuatrimestre para la página inicial.
//
// Fuentes: notas de venta del cuatrimestre, notas de servicio y las claves
// META y ANIMACAO_META de la configuración.
type DashboardUseCase struct {
	invoices repository.InvoiceRepository
	services repository.ServiceNoteRepository
	config   ConfigReader
	now      func() time.Time
	loc      *time.Location
}

// NewDashboardUseCase construye el caso de uso. loc fija en qué zona se calcula "hoy".
func NewDashboardUseCase(
	invoices repository.InvoiceRepository,
	services repository.ServiceNoteRepository,
	config ConfigReader,
	now func() time.Time,
	loc *time.Location,
) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{invoices: invoices, services: services, config: config, now: now, loc: loc}
}

// GetSummary construye el DashboardSummaryDTO para la empresa indicada.
//
// Tres lecturas en paralelo:
//  1. notas de venta del cuatrimestre
//  2. notas de servicio
//  3. META y ANIMACAO_META
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID, username, role string) (*dto.DashboardSummaryDTO, error) {
	today := calendar.Today(uc.now(), uc.loc)
	months := calendar.Quadrimester(today)
	start, end := months[0].First(), months[len(months)-1].Last()
	period := calendar.Period{Start: &start, End: &end}

	type invoicesResult struct {
		list []entity.Invoice
		err  error
	}
	type servicesResult struct {
		list []entity.ServiceNote
		err  error
	}
	type configResult struct {
		target  decimal.Decimal
		animate bool
		err     error
	}

	invCh := make(chan invoicesResult, 1)
	svcCh := make(chan servicesResult, 1)
	cfgCh := make(chan configResult, 1)

	go func() {
		list, err := uc.invoices.ListInvoices(ctx, companyID, repository.InvoiceQuery{Start: &start, End: &end})
		invCh <- invoicesResult{list, err}
	}()
	go func() {
		list, err := uc.services.ListServiceNotes(ctx, companyID)
		svcCh <- servicesResult{list, err}
	}()
	go func() {
		var r configResult
		target, _, err := uc.config.Value(ctx, companyID, entity.ConfigKeyTarget)
		if err != nil {
			r.err = err
			cfgCh <- r
			return
		}
		animate, _, err := uc.config.Value(ctx, companyID, entity.ConfigKeyAnimateGoal)
		r.target = normalize.Amount(target)
		r.animate = strings.EqualFold(strings.TrimSpace(animate), "true")
		r.err = err
		cfgCh <- r
	}()

	inv := <-invCh
	svc := <-svcCh
	cfg := <-cfgCh

	if inv.err != nil {
		return nil, fmt.Errorf("dashboard: notas fiscais: %w", upstream(inv.err))
	}
	if svc.err != nil {
		return nil, fmt.Errorf("dashboard: notas de serviço: %w", upstream(svc.err))
	}
	if cfg.err != nil {
		return nil, fmt.Errorf("dashboard: configurações: %w", cfg.err)
	}

	// ── Totales por mes ────────────────────────────────────────────────────────
	sales := make(map[calendar.Month]decimal.Decimal, len(months))
	services := make(map[calendar.Month]decimal.Decimal, len(months))
	for _, n := range inv.list {
		if period.Contains(n.IssueDate) {
			m := calendar.MonthOf(n.IssueDate)
			sales[m] = sales[m].Add(n.Total)
		}
	}
	for _, n := range svc.list {
		if period.Contains(n.IssueDate) {
			m := calendar.MonthOf(n.IssueDate)
			services[m] = services[m].Add(n.ServiceValue)
		}
	}

	out := &dto.DashboardSummaryDTO{
		Quadrimester: months[0].Label() + " - " + months[len(months)-1].Label(),
		Months:       make([]dto.DashboardMonthDTO, 0, len(months)),
		SalesTotal:   decimal.Zero,
		ServiceTotal: decimal.Zero,
		Target:       cfg.target,
		AnimateGoal:  cfg.animate,
		User:         dto.DashboardUserDTO{Username: username, Role: role},
	}
	for _, m := range months {
		s, v := sales[m], services[m]
		out.Months = append(out.Months, dto.DashboardMonthDTO{
			Month:    m.Key(),
			Label:    m.Name(),
			Sales:    s.Round(2),
			Services: v.Round(2),
			Total:    s.Add(v).Round(2),
		})
		out.SalesTotal = out.SalesTotal.Add(s)
		out.ServiceTotal = out.ServiceTotal.Add(v)
	}
	out.SalesTotal = out.SalesTotal.Round(2)
	out.ServiceTotal = out.ServiceTotal.Round(2)
	out.Total = out.SalesTotal.Add(out.ServiceTotal)

	for _, tp := range metrics.TargetProgress(out.Total, cfg.target) {
		out.Tiers = append(out.Tiers, dto.DashboardTierDTO{
			Name:       tp.Tier.Name,
			BonusLabel: tp.Tier.BonusLabel,
			Goal:       tp.Goal,
			Progress:   tp.Progress,
			Remaining:  tp.Remaining,
			Reached:    tp.Reached,
		})
	}
	return out, nil
}

func upstream(err error) error {
	if errors.Is(err, domain.ErrUpstream) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
}
