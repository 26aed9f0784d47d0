// Package normalize convierte los valores heterogéneos que devuelve el ERP
// (montos como texto en formato brasileño, CPF/CNPJ con puntuación, textos con
// acentos) a una forma canónica. Ninguna función de este paquete falla.
package normalize

import (
	"encoding/json"
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Amount convierte un monto a decimal. Acepta string, números, json.Number y
// decimal. Entradas vacías, nulas o no numéricas devuelven cero.
//
// Reglas para texto: se eliminan "R$" y espacios; si hay coma, es el separador
// decimal y los puntos son de miles ("1.234,56"); sin coma, varios puntos son
// de miles ("1.234.567") y un único punto seguido de exactamente tres dígitos
// también ("1.500"); en otro caso el punto es decimal ("1234.56").
func Amount(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case string:
		return parseAmountString(x)
	case *string:
		if x == nil {
			return decimal.Zero
		}
		return parseAmountString(*x)
	case json.Number:
		return parseAmountString(x.String())
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	default:
		return decimal.Zero
	}
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func parseAmountString(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return decimal.Zero
	}

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	case strings.Count(s, ".") == 1:
		if i := strings.IndexByte(s, '.'); isThousandsGroup(s[:i], s[i+1:]) {
			s = s[:i] + s[i+1:]
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// isThousandsGroup reconoce "1.500" pero no "0.500" ni "1234.567".
func isThousandsGroup(head, tail string) bool {
	head = strings.TrimPrefix(head, "-")
	if len(tail) != 3 || !isDigits(tail) || !isDigits(head) {
		return false
	}
	return len(head) <= 3 && head[0] != '0'
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
