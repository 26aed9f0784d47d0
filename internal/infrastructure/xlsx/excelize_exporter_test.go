package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/painel-bi/internal/application/ports"
	"github.com/jhoicas/painel-bi/internal/infrastructure/xlsx"
)

func TestExportTable(t *testing.T) {
	tbl := ports.Table{
		Title:    "Relatório de Vendas",
		Subtitle: "Período: todos",
		Columns: []ports.Column{
			{Header: "Data", Width: 2},
			{Header: "Cliente", Width: 3},
			{Header: "Valor", Width: 2, Align: ports.AlignRight, Format: ports.FormatMoney},
		},
		Rows: [][]any{
			{time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), "Padaria Sol", decimal.RequireFromString("100.50")},
			{time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), "Mercado Lua", decimal.RequireFromString("200.25")},
		},
	}

	data, err := xlsx.NewExcelizeExporter().ExportTable(context.Background(), tbl)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Relatório de Vendas"}, f.GetSheetList())
	sheet := "Relatório de Vendas"

	title, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Relatório de Vendas", title)

	header, err := f.GetCellValue(sheet, "C4")
	require.NoError(t, err)
	assert.Equal(t, "Valor", header)

	name, err := f.GetCellValue(sheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "Mercado Lua", name)

	raw, err := f.GetCellValue(sheet, "C5", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "100.5", raw)
}

func TestExportTable_TituloLargoYSinFilas(t *testing.T) {
	tbl := ports.Table{
		Title:   "Relatório de Estoque: itens/ativos [lista rápida completa]",
		Columns: []ports.Column{{Header: "Código"}},
	}
	data, err := xlsx.NewExcelizeExporter().ExportTable(context.Background(), tbl)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	assert.LessOrEqual(t, len([]rune(sheets[0])), 31)
	assert.NotContains(t, sheets[0], ":")
}

func TestExportTable_SinColumnas(t *testing.T) {
	_, err := xlsx.NewExcelizeExporter().ExportTable(context.Background(), ports.Table{Title: "x"})
	assert.Error(t, err)
}
