// Package pagination corta listados en páginas numeradas desde 1.
package pagination

import (
	"fmt"

	"github.com/jhoicas/painel-bi/internal/domain"
)

// Page una página de resultados.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// TotalPages ceil(total/size). Cero elementos = cero páginas.
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Paginate devuelve la página page (1..TotalPages). Fuera de rango devuelve
// domain.ErrPageOutOfRange. La página 1 de una lista vacía es válida y vacía.
func Paginate[T any](items []T, page, size int) (Page[T], error) {
	if size <= 0 {
		return Page[T]{}, fmt.Errorf("tamaño de página %d: %w", size, domain.ErrInvalidInput)
	}
	total := len(items)
	pages := TotalPages(total, size)
	if page < 1 || (page > pages && !(page == 1 && total == 0)) {
		return Page[T]{}, fmt.Errorf("página %d de %d: %w", page, pages, domain.ErrPageOutOfRange)
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: pages,
	}, nil
}
