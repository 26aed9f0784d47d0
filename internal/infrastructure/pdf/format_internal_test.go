package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/painel-bi/internal/application/ports"
)

func TestCell_FormatoBrasileño(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", cell(decimal.RequireFromString("1234.56"), ports.FormatMoney))
	assert.Equal(t, "12", cell(decimal.RequireFromString("12"), ports.FormatQuantity))
	assert.Equal(t, "2,50", cell(decimal.RequireFromString("2.5"), ports.FormatQuantity))
	assert.Equal(t, "31/03/2025", cell(time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), ports.FormatAuto))
	assert.Equal(t, "", cell(time.Time{}, ports.FormatAuto))
	assert.Equal(t, "texto", cell("texto", ports.FormatMoney))
	assert.Equal(t, "", cell(nil, ports.FormatAuto))
}

func TestGridSizes_SumaDoce(t *testing.T) {
	cases := [][]int{
		{2, 1, 3, 2, 2, 2},
		{2, 1, 3, 2, 2, 2, 1},
		{3, 2, 2, 1, 2, 2},
		{1},
		{0, 0, 0},
		{10, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	for _, widths := range cases {
		cols := make([]ports.Column, 0, len(widths))
		for _, w := range widths {
			cols = append(cols, ports.Column{Width: w})
		}
		sizes := gridSizes(cols)
		sum := 0
		for _, s := range sizes {
			assert.GreaterOrEqual(t, s, 1)
			sum += s
		}
		assert.Equal(t, gridColumns, sum, "%v → %v", widths, sizes)
	}
}

func TestReportBody_CortaEnMaxRows(t *testing.T) {
	rows := make([][]any, 120)
	for i := range rows {
		rows[i] = []any{i}
	}

	body := reportBody(rows, 50)
	assert.Len(t, body, 50)
	assert.Equal(t, 49, body[49][0])
	assert.Equal(t, "Exibindo 50 de 120 registros. Exporte em XLSX para a lista completa.", footerText(len(body), len(rows)))

	assert.Len(t, reportBody(rows, 0), 120, "sin límite")
	assert.Len(t, reportBody(rows[:10], 50), 10)
	assert.Equal(t, "Total de registros: 10", footerText(10, 10))
}
