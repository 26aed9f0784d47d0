// Package xlsx genera las planillas de los reportes con excelize.
package xlsx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/painel-bi/internal/application/ports"
)

const (
	titleRow  = 1
	headerRow = 4
	firstRow  = 5

	maxSheetName = 31
	defaultSheet = "Sheet1"
)

// ExcelizeExporter implementa ports.SpreadsheetExporter: una hoja con título,
// subtítulo, encabezado con filtro y las filas con formato numérico nativo.
type ExcelizeExporter struct{}

var _ ports.SpreadsheetExporter = (*ExcelizeExporter)(nil)

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

type styles struct {
	title, header, money, quantity, date int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	moneyFmt := `"R$" #,##0.00`
	qtyFmt := `#,##0.##`
	dateFmt := "dd/mm/yyyy"

	if s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14, Color: "00467F"}}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
	}); err != nil {
		return s, err
	}
	if s.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt}); err != nil {
		return s, err
	}
	if s.quantity, err = f.NewStyle(&excelize.Style{CustomNumFmt: &qtyFmt}); err != nil {
		return s, err
	}
	s.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	return s, err
}

// ExportTable escribe la tabla completa, sin límite de filas.
func (e *ExcelizeExporter) ExportTable(_ context.Context, t ports.Table) ([]byte, error) {
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("xlsx: tabla sin columnas")
	}
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(t.Title)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, fmt.Errorf("xlsx: nombre de hoja: %w", err)
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilos: %w", err)
	}

	if err := f.SetCellValue(sheet, "A1", t.Title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", st.title); err != nil {
		return nil, err
	}
	if t.Subtitle != "" {
		if err := f.SetCellValue(sheet, "A2", t.Subtitle); err != nil {
			return nil, err
		}
	}

	headers := make([]any, 0, len(t.Columns))
	for _, c := range t.Columns {
		headers = append(headers, c.Header)
	}
	if err := f.SetSheetRow(sheet, cellName(1, headerRow), &headers); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	lastCol := len(t.Columns)
	if err := f.SetCellStyle(sheet, cellName(1, headerRow), cellName(lastCol, headerRow), st.header); err != nil {
		return nil, err
	}

	for i, r := range t.Rows {
		values := make([]any, 0, len(r))
		for _, v := range r {
			values = append(values, cellValue(v))
		}
		if err := f.SetSheetRow(sheet, cellName(1, firstRow+i), &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}

	lastRow := firstRow + len(t.Rows) - 1
	for i, c := range t.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, float64(maxInt(c.Width, 1))*8); err != nil {
			return nil, err
		}
		if len(t.Rows) == 0 {
			continue
		}
		if style, ok := columnStyle(st, c, t.Rows, i); ok {
			if err := f.SetCellStyle(sheet, cellName(i+1, firstRow), cellName(i+1, lastRow), style); err != nil {
				return nil, err
			}
		}
	}

	if lastRow < headerRow {
		lastRow = headerRow
	}
	if err := f.AutoFilter(sheet, cellName(1, headerRow)+":"+cellName(lastCol, lastRow), nil); err != nil {
		return nil, fmt.Errorf("xlsx: filtro: %w", err)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: cellName(1, firstRow),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("xlsx: panel fijo: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

// columnStyle estilo numérico de la columna según su formato o, en automático,
// según el tipo de la primera celda.
func columnStyle(st styles, c ports.Column, rows [][]any, idx int) (int, bool) {
	switch c.Format {
	case ports.FormatMoney:
		return st.money, true
	case ports.FormatQuantity:
		return st.quantity, true
	}
	if idx < len(rows[0]) {
		if _, ok := rows[0][idx].(time.Time); ok {
			return st.date, true
		}
	}
	return 0, false
}

// cellValue convierte la celda a un tipo que excelize escribe de forma nativa.
func cellValue(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64()
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x
	}
	return v
}

// sheetName título apto como nombre de hoja: sin []:*?/\ y con 31 caracteres como máximo.
func sheetName(title string) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return ' '
		}
		return r
	}, strings.TrimSpace(title))
	if clean == "" {
		return "Relatório"
	}
	r := []rune(clean)
	if len(r) > maxSheetName {
		r = r[:maxSheetName]
	}
	return strings.TrimSpace(string(r))
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
