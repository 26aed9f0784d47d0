package normalize_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/painel-bi/internal/domain/normalize"
)

func TestAmount_FormatoBrasileño(t *testing.T) {
	cases := map[string]string{
		"R$ 1.234,56":   "1234.56",
		"1.234,56":      "1234.56",
		"R$1.234.567,8": "1234567.8",
		"  99,90 ":      "99.9",
		"1234.56":       "1234.56",
		"1.234.567":     "1234567",
		"1.500":         "1500",
		"0.5":           "0.5",
		"-10,25":        "-10.25",
		"350":           "350",
	}
	for in, want := range cases {
		got := normalize.Amount(in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "entrada %q: esperado %s, obtenido %s", in, want, got)
	}
}

func TestAmount_VacioONuloDevuelveCero(t *testing.T) {
	var nilDec *decimal.Decimal
	var nilStr *string
	for _, in := range []any{nil, "", "   ", "R$", "abc", "1,2,3x", nilDec, nilStr, struct{}{}} {
		assert.True(t, normalize.Amount(in).IsZero(), "entrada %#v debe ser cero", in)
	}
}

func TestAmount_Numericos(t *testing.T) {
	assert.True(t, normalize.Amount(100.5).Equal(decimal.RequireFromString("100.5")))
	assert.True(t, normalize.Amount(42).Equal(decimal.NewFromInt(42)))
	assert.True(t, normalize.Amount(int64(7)).Equal(decimal.NewFromInt(7)))
	assert.True(t, normalize.Amount(json.Number("12.5")).Equal(decimal.RequireFromString("12.5")))
	assert.True(t, normalize.Amount(math.NaN()).IsZero(), "NaN debe ser cero")
	assert.True(t, normalize.Amount(math.Inf(1)).IsZero(), "Inf debe ser cero")
}

func TestSameTaxID_IgnoraPuntuacion(t *testing.T) {
	assert.True(t, normalize.SameTaxID("12.345.678/0001-90", "12345678000190"))
	assert.Equal(t, "12345678000190", normalize.TaxID("12.345.678/0001-90"))
	assert.False(t, normalize.SameTaxID("", ""), "documentos vacíos no deben coincidir")
	assert.False(t, normalize.SameTaxID("123.456.789-00", "12345678901"))
}

func TestFold_QuitaAcentos(t *testing.T) {
	assert.Equal(t, "nao especificado", normalize.Fold("Não Especificado"))
	assert.True(t, normalize.ContainsFold("São José Ltda", "sao jose"))
	assert.True(t, normalize.ContainsFold("cualquier cosa", ""))
	assert.False(t, normalize.ContainsFold("Acme", "beta"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "ção", normalize.Truncate("ção ampla", 3))
	assert.Equal(t, "abc", normalize.Truncate("abc", 50))
}
