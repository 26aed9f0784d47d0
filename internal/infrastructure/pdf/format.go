package pdf

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/painel-bi/internal/application/ports"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// money "R$ 1.234,56".
func money(d decimal.Decimal) string {
	return "R$ " + brl.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// quantity sin decimales si es entera: "1.234" o "2,50".
func quantity(d decimal.Decimal) string {
	if d.IsInteger() {
		return brl.Sprintf("%d", d.IntPart())
	}
	return brl.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

func date(t time.Time) string {
	return t.Format("02/01/2006")
}

// cell texto de una celda según el formato de su columna.
func cell(v any, f ports.CellFormat) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return date(x)
	case decimal.Decimal:
		if f == ports.FormatQuantity {
			return quantity(x)
		}
		if f == ports.FormatMoney {
			return money(x)
		}
		return brl.Sprintf("%.2f", x.Round(2).InexactFloat64())
	case int:
		return brl.Sprintf("%d", x)
	default:
		return fmt.Sprint(x)
	}
}
