package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/domain"
	"github.com/jhoicas/painel-bi/internal/domain/calendar"
	"github.com/jhoicas/painel-bi/internal/domain/metrics"
	"github.com/jhoicas/painel-bi/internal/domain/normalize"
	"github.com/jhoicas/painel-bi/internal/domain/pagination"
)

const dateLayout = "2006-01-02"

// Clock fija "hoy" en la zona horaria configurada.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

// Today día de calendario actual.
func (c Clock) Today() time.Time {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return calendar.Today(now(), loc)
}

func resolvePeriod(preset, from, to string, today time.Time) (calendar.Period, error) {
	p, err := calendar.ResolvePreset(calendar.Preset(preset), from, to, today)
	if err != nil {
		return calendar.Period{}, fmt.Errorf("%s: %w", err.Error(), domain.ErrInvalidInput)
	}
	return p, nil
}

func periodDTO(p calendar.Period) dto.PeriodDTO {
	var out dto.PeriodDTO
	if p.Start != nil {
		s := p.Start.Format(dateLayout)
		out.From = &s
	}
	if p.End != nil {
		e := p.End.Format(dateLayout)
		out.To = &e
	}
	return out
}

// sortSpec columna y dirección pedidas para la tabla.
type sortSpec struct {
	key  string
	desc bool
}

// parseSort valida la columna contra allowed. Sin dirección se usa defaultDesc.
func parseSort(key, order, defaultKey string, defaultDesc bool, allowed ...string) (sortSpec, error) {
	if key == "" {
		key = defaultKey
	}
	ok := false
	for _, a := range allowed {
		if a == key {
			ok = true
			break
		}
	}
	if !ok {
		return sortSpec{}, fmt.Errorf("columna de orden %q: %w", key, domain.ErrInvalidInput)
	}
	switch strings.ToLower(order) {
	case "":
		return sortSpec{key: key, desc: defaultDesc}, nil
	case "desc":
		return sortSpec{key: key, desc: true}, nil
	case "asc":
		return sortSpec{key: key}, nil
	default:
		return sortSpec{}, fmt.Errorf("dirección de orden %q: %w", order, domain.ErrInvalidInput)
	}
}

// sortRows ordena de forma estable con cmp (<0, 0, >0 ascendente).
func sortRows[T any](rows []T, s sortSpec, cmp func(a, b T) int) {
	sort.SliceStable(rows, func(i, j int) bool {
		c := cmp(rows[i], rows[j])
		if s.desc {
			return c > 0
		}
		return c < 0
	})
}

func compareText(a, b string) int {
	return strings.Compare(normalize.Fold(a), normalize.Fold(b))
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func page[T any](rows []T, n, size int) (pagination.Page[T], error) {
	if n == 0 {
		n = 1
	}
	return pagination.Paginate(rows, n, size)
}

func pageMeta[T any](p pagination.Page[T]) dto.PageMeta {
	return dto.PageMeta{Page: p.Page, PageSize: p.PageSize, TotalItems: p.TotalItems, TotalPages: p.TotalPages}
}

func groupDTO(g metrics.Group) dto.GroupDTO {
	return dto.GroupDTO{Key: g.Key, Label: g.Label, Total: g.Total.Round(2), Count: g.Count, Average: g.Average}
}

func groupsDTO(groups []metrics.Group) []dto.GroupDTO {
	out := make([]dto.GroupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, groupDTO(g))
	}
	return out
}

// topGroup el mayor grupo o nil si no hay ninguno.
func topGroup(groups []metrics.Group) *dto.GroupDTO {
	top := metrics.TopN(groups, 1)
	if len(top) == 0 {
		return nil
	}
	g := groupDTO(top[0])
	return &g
}

func monthsDTO(points []metrics.MonthPoint) []dto.MonthPointDTO {
	out := make([]dto.MonthPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.MonthPointDTO{
			Month: p.Month.Key(),
			Label: p.Month.Label(),
			Total: p.Total.Round(2),
			Count: p.Count,
		})
	}
	return out
}

// options valores distintos en orden alfabético (sin acentos ni mayúsculas).
func options(values map[string]string) []dto.OptionDTO {
	out := make([]dto.OptionDTO, 0, len(values))
	for v, label := range values {
		out = append(out, dto.OptionDTO{Value: v, Label: label})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := compareText(out[i].Label, out[j].Label); c != 0 {
			return c < 0
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// upstream marca los errores de lectura del ERP que no vienen ya clasificados.
func upstream(what string, err error) error {
	if errors.Is(err, domain.ErrUpstream) || errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w", what, err)
	}
	return fmt.Errorf("%s: %w: %v", what, domain.ErrUpstream, err)
}
