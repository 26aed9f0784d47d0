// Package filter compone los filtros de las vistas: selección múltiple por
// dimensión, rango de fechas y búsqueda de texto. Una dimensión sin selección no
// restringe nada.
package filter

import (
	"strings"
	"time"

	"github.com/jhoicas/painel-bi/internal/domain/calendar"
	"github.com/jhoicas/painel-bi/internal/domain/normalize"
)

// Predicate decide si un registro pasa el filtro.
type Predicate[T any] func(T) bool

// All conjunción de predicados. Sin predicados todo pasa.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}

// Apply devuelve los registros que cumplen p, en el mismo orden.
func Apply[T any](items []T, p Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if p(it) {
			out = append(out, it)
		}
	}
	return out
}

// Set selección múltiple de una dimensión.
type Set struct {
	values map[string]struct{}
}

// NewSet construye la selección ignorando valores vacíos.
func NewSet(values ...string) Set {
	s := Set{values: make(map[string]struct{}, len(values))}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			s.values[v] = struct{}{}
		}
	}
	return s
}

// NewSetWith aplica key a cada valor antes de guardarlo (p.ej. normalize.TaxID).
func NewSetWith(key func(string) string, values ...string) Set {
	mapped := make([]string, 0, len(values))
	for _, v := range values {
		mapped = append(mapped, key(v))
	}
	return NewSet(mapped...)
}

// Empty sin selección: no restringe.
func (s Set) Empty() bool { return len(s.values) == 0 }

// Len cantidad de valores seleccionados.
func (s Set) Len() int { return len(s.values) }

// Matches indica si v está seleccionado. Un Set vacío acepta todo.
func (s Set) Matches(v string) bool {
	if s.Empty() {
		return true
	}
	_, ok := s.values[v]
	return ok
}

// MatchesAny existencial: basta con que uno de los valores esté seleccionado.
func (s Set) MatchesAny(values ...string) bool {
	if s.Empty() {
		return true
	}
	for _, v := range values {
		if _, ok := s.values[v]; ok {
			return true
		}
	}
	return false
}

// In predicado sobre un campo escalar.
func In[T any](s Set, field func(T) string) Predicate[T] {
	if s.Empty() {
		return nil
	}
	return func(v T) bool { return s.Matches(field(v)) }
}

// AnyIn predicado sobre un campo de colección (líneas de la nota, por ejemplo).
func AnyIn[T any](s Set, field func(T) []string) Predicate[T] {
	if s.Empty() {
		return nil
	}
	return func(v T) bool { return s.MatchesAny(field(v)...) }
}

// Within predicado de rango de fechas.
func Within[T any](p calendar.Period, date func(T) time.Time) Predicate[T] {
	if p.Unbounded() {
		return nil
	}
	return func(v T) bool { return p.Contains(date(v)) }
}

// Search búsqueda libre: el registro pasa si algún campo de text contiene la
// consulta (sin acentos ni mayúsculas) o si algún campo de digits contiene los
// dígitos de la consulta ("12.345" encuentra "12345678000190").
func Search[T any](query string, text func(T) []string, digits func(T) []string) Predicate[T] {
	if normalize.Fold(query) == "" {
		return nil
	}
	qDigits := normalize.Digits(query)
	return func(v T) bool {
		for _, f := range text(v) {
			if normalize.ContainsFold(f, query) {
				return true
			}
		}
		if digits == nil || qDigits == "" {
			return false
		}
		for _, f := range digits(v) {
			if d := normalize.Digits(f); d != "" && strings.Contains(d, qDigits) {
				return true
			}
		}
		return false
	}
}
