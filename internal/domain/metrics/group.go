// Package metrics agrega colecciones ya filtradas: agrupación con suma y
// conteo, ticket medio, rankings top-N con balde "Outros", series mensuales,
// clasificación de actividad de clientes y progreso contra la meta.
package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-bi/internal/domain/calendar"
)

// OthersLabel etiqueta del balde que suma el resto de un ranking.
const OthersLabel = "Outros"

// Group acumulado de una clave.
type Group struct {
	Key     string
	Label   string
	Total   decimal.Decimal
	Count   int
	Average decimal.Decimal
}

// Average total/count redondeado a 2 decimales; cero si count es cero.
func Average(total decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// Sum suma value sobre todos los registros.
func Sum[T any](items []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(value(it))
	}
	return total
}

// GroupBy agrupa por key acumulando value. Los grupos quedan en orden de
// aparición. Registros cuya clave es vacía se descartan.
func GroupBy[T any](items []T, key func(T) (k, label string), value func(T) decimal.Decimal) []Group {
	idx := make(map[string]int)
	groups := make([]Group, 0)
	for _, it := range items {
		k, label := key(it)
		if k == "" {
			continue
		}
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, Group{Key: k, Label: label, Total: decimal.Zero})
		}
		groups[i].Total = groups[i].Total.Add(value(it))
		groups[i].Count++
	}
	for i := range groups {
		groups[i].Average = Average(groups[i].Total, groups[i].Count)
	}
	return groups
}

// GroupByMany como GroupBy pero cada registro puede aportar a varias claves
// (las líneas de una nota, por ejemplo).
func GroupByMany[T any, L any](items []T, lines func(T) []L, key func(L) (k, label string), value func(L) decimal.Decimal) []Group {
	flat := make([]L, 0, len(items))
	for _, it := range items {
		flat = append(flat, lines(it)...)
	}
	return GroupBy(flat, key, value)
}

// SortDesc ordena por total descendente; los empates conservan el orden de aparición.
func SortDesc(groups []Group) []Group {
	out := append([]Group(nil), groups...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// TopN los n grupos de mayor total.
func TopN(groups []Group, n int) []Group {
	out := SortDesc(groups)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TopNWithOthers los n mayores más un grupo "Outros" con la suma del resto,
// solo si hay resto.
func TopNWithOthers(groups []Group, n int) []Group {
	sorted := SortDesc(groups)
	if len(sorted) <= n {
		return sorted
	}
	head := append([]Group(nil), sorted[:n]...)
	others := Group{Key: OthersLabel, Label: OthersLabel, Total: decimal.Zero}
	for _, g := range sorted[n:] {
		others.Total = others.Total.Add(g.Total)
		others.Count += g.Count
	}
	others.Average = Average(others.Total, others.Count)
	return append(head, others)
}

// MonthPoint total de un mes.
type MonthPoint struct {
	Month calendar.Month
	Total decimal.Decimal
	Count int
}

// Monthly agrupa por mes de calendario en orden cronológico.
func Monthly[T any](items []T, date func(T) time.Time, value func(T) decimal.Decimal) []MonthPoint {
	byKey := make(map[calendar.Month]*MonthPoint)
	for _, it := range items {
		m := calendar.MonthOf(date(it))
		p, ok := byKey[m]
		if !ok {
			p = &MonthPoint{Month: m, Total: decimal.Zero}
			byKey[m] = p
		}
		p.Total = p.Total.Add(value(it))
		p.Count++
	}
	out := make([]MonthPoint, 0, len(byKey))
	for _, p := range byKey {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}
