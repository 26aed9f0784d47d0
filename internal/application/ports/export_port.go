package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Align alineación de una columna exportada.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// CellFormat cómo se presentan los valores de una columna.
type CellFormat int

const (
	FormatAuto     CellFormat = iota // según el tipo de la celda
	FormatMoney                      // R$ 1.234,56
	FormatQuantity                   // 1.234 o 1.234,5
)

// Column encabezado de una tabla exportada. Width es la fracción de la grilla
// de 12 columnas usada en el PDF.
type Column struct {
	Header string
	Width  int
	Align  Align
	Format CellFormat
}

// Table tabla ya filtrada y ordenada, lista para exportar. Cada celda es
// string, int, decimal.Decimal o time.Time; los exportadores dan el formato.
type Table struct {
	Title    string
	Subtitle string
	Columns  []Column
	Rows     [][]any
}

// ReportDocument tabla con los datos de encabezado y pie del PDF.
type ReportDocument struct {
	Table       Table
	CompanyName string
	RequestedBy string
	GeneratedAt time.Time
	MaxRows     int // filas del cuerpo; el resto se indica en el pie
}

// PurchaseLine línea de una solicitud de compra.
type PurchaseLine struct {
	Code     string
	Name     string
	Unit     string
	Balance  decimal.Decimal
	Quantity decimal.Decimal
}

// PurchaseRequestDocument solicitud de compra a imprimir.
type PurchaseRequestDocument struct {
	CompanyName string
	RequestedBy string
	GeneratedAt time.Time
	Notes       string
	Lines       []PurchaseLine
}

// ReportPDFGenerator genera los PDF de reportes.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, doc ReportDocument) ([]byte, error)
	GeneratePurchaseRequestPDF(ctx context.Context, doc PurchaseRequestDocument) ([]byte, error)
}

// SpreadsheetExporter genera una planilla de una hoja: encabezado más filas.
type SpreadsheetExporter interface {
	ExportTable(ctx context.Context, t Table) ([]byte, error)
}
