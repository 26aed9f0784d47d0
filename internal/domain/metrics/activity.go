package metrics

import (
	"time"

	"github.com/jhoicas/painel-bi/internal/domain/calendar"
)

// ActiveWindowDays días desde la última compra en los que el cliente sigue activo.
const ActiveWindowDays = 90

// Status actividad de un cliente.
type Status string

const (
	StatusActive   Status = "Ativo"
	StatusInactive Status = "Inativo"
)

// Classify activo si hay última compra y han pasado como mucho ActiveWindowDays
// días hasta today. Sin compras siempre es inactivo. El KPI y la columna de la
// tabla usan esta misma función.
func Classify(lastPurchase *time.Time, today time.Time) Status {
	if lastPurchase == nil {
		return StatusInactive
	}
	if calendar.DaysBetween(*lastPurchase, today) <= ActiveWindowDays {
		return StatusActive
	}
	return StatusInactive
}

// ActivityCount conteo de activos e inactivos.
type ActivityCount struct {
	Active   int
	Inactive int
}

// CountActivity clasifica cada fecha con Classify.
func CountActivity(lastPurchases []*time.Time, today time.Time) ActivityCount {
	var c ActivityCount
	for _, lp := range lastPurchases {
		if Classify(lp, today) == StatusActive {
			c.Active++
		} else {
			c.Inactive++
		}
	}
	return c
}
