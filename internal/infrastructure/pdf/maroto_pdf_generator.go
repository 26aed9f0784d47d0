// Package pdf genera los PDF de los reportes y de la solicitud de compra.
//
// Layout de la página A4 de un reporte:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título      │  Fecha de emisión          │
//	│  Subtítulo (período) / solicitado por                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: columnas de la tabla exportada                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: registros mostrados / total, solicitado por        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/painel-bi/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

const gridColumns = 12

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ ports.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

// GenerateReportPDF genera el PDF de una tabla exportada. Con MaxRows > 0 el
// cuerpo se corta y el pie indica cuántos registros quedaron fuera.
func (g *MarotoPDFGenerator) GenerateReportPDF(_ context.Context, doc ports.ReportDocument) ([]byte, error) {
	t := doc.Table
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("pdf: tabla sin columnas")
	}
	if len(t.Columns) > gridColumns {
		return nil, fmt.Errorf("pdf: %d columnas, máximo %d", len(t.Columns), gridColumns)
	}

	m := newDocument(t.Title, doc.CompanyName)
	m.AddRows(headerRow(doc.CompanyName, t.Title, date(doc.GeneratedAt)))
	m.AddRows(subtitleRow(t.Subtitle, doc.RequestedBy))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	sizes := gridSizes(t.Columns)
	m.AddRows(tableHeaderRow(t.Columns, sizes))

	body := reportBody(t.Rows, doc.MaxRows)
	for i, r := range body {
		m.AddRows(tableRow(t.Columns, sizes, r, i%2 == 1))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(body), len(t.Rows), doc.RequestedBy))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// GeneratePurchaseRequestPDF genera la solicitud de compra con espacio para firmas.
func (g *MarotoPDFGenerator) GeneratePurchaseRequestPDF(_ context.Context, doc ports.PurchaseRequestDocument) ([]byte, error) {
	const title = "Solicitação de Compra"
	m := newDocument(title, doc.CompanyName)
	m.AddRows(headerRow(doc.CompanyName, title, date(doc.GeneratedAt)))
	m.AddRows(subtitleRow(fmt.Sprintf("%d itens", len(doc.Lines)), doc.RequestedBy))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	cols := []ports.Column{
		{Header: "Código", Width: 2},
		{Header: "Produto", Width: 5},
		{Header: "Un.", Width: 1, Align: ports.AlignCenter},
		{Header: "Saldo atual", Width: 2, Align: ports.AlignRight, Format: ports.FormatQuantity},
		{Header: "Quantidade", Width: 2, Align: ports.AlignRight, Format: ports.FormatQuantity},
	}
	sizes := gridSizes(cols)
	m.AddRows(tableHeaderRow(cols, sizes))
	for i, l := range doc.Lines {
		m.AddRows(tableRow(cols, sizes, []any{l.Code, l.Name, l.Unit, l.Balance, l.Quantity}, i%2 == 1))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if doc.Notes != "" {
		m.AddRows(row.New(14).Add(col.New(12).Add(
			text.New("OBSERVAÇÕES", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(doc.Notes, props.Text{Size: 8, Top: 6}),
		)))
	}
	m.AddRows(signatureRows()...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar solicitud: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + título (izq) y fecha de emisión (der).
func headerRow(company, title, issued string) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(nonEmpty(company, "Painel BI"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Top: 8}),
		),
		col.New(4).Add(
			text.New("Emitido em", props.Text{Size: 8, Align: align.Right, Color: colorGray, Top: 2}),
			text.New(issued, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7}),
		),
	)
}

func subtitleRow(subtitle, requestedBy string) core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New(subtitle, props.Text{Size: 8, Color: colorGray, Top: 1})),
		col.New(4).Add(text.New("Solicitado por: "+nonEmpty(requestedBy, "-"), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 1,
		})),
	)
}

// tableHeaderRow: cabecera con fondo en el color principal.
func tableHeaderRow(cols []ports.Column, sizes []int) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for i, c := range cols {
		cells = append(cells, col.New(sizes[i]).Add(text.New(c.Header, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: alignOf(c.Align),
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cells...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableRow(cols []ports.Column, sizes []int, values []any, striped bool) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for i, c := range cols {
		var v any
		if i < len(values) {
			v = values[i]
		}
		cells = append(cells, col.New(sizes[i]).Add(text.New(cell(v, c.Format), props.Text{
			Size: 7.5, Align: alignOf(c.Align), Top: 1, Left: 1, Right: 1,
		})))
	}
	r := row.New(6).Add(cells...)
	if striped {
		r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

// reportBody filas que entran en el cuerpo; maxRows <= 0 no corta.
func reportBody(rows [][]any, maxRows int) [][]any {
	if maxRows > 0 && len(rows) > maxRows {
		return rows[:maxRows]
	}
	return rows
}

func footerText(shown, total int) string {
	if shown < total {
		return fmt.Sprintf("Exibindo %d de %d registros. Exporte em XLSX para a lista completa.", shown, total)
	}
	return fmt.Sprintf("Total de registros: %d", total)
}

func footerRow(shown, total int, requestedBy string) core.Row {
	return row.New(8).Add(
		col.New(8).Add(text.New(footerText(shown, total), props.Text{
			Size: 7.5, Color: colorGray, Top: 2,
		})),
		col.New(4).Add(text.New("Solicitado por: "+nonEmpty(requestedBy, "-"), props.Text{
			Size: 7.5, Align: align.Right, Color: colorGray, Top: 2,
		})),
	)
}

func signatureRows() []core.Row {
	sign := func(label string) core.Col {
		return col.New(5).Add(
			text.New("_______________________________", props.Text{Size: 9, Align: align.Center, Top: 10}),
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 16}),
		)
	}
	return []core.Row{
		row.New(24).Add(sign("Solicitante"), col.New(2), sign("Aprovação")),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func alignOf(a ports.Align) align.Type {
	switch a {
	case ports.AlignRight:
		return align.Right
	case ports.AlignCenter:
		return align.Center
	}
	return align.Left
}

// gridSizes reparte las 12 columnas de la grilla en proporción a Width, con
// al menos 1 por columna. Requiere len(cols) <= 12.
func gridSizes(cols []ports.Column) []int {
	weights := make([]int, len(cols))
	total := 0
	for i, c := range cols {
		weights[i] = c.Width
		if weights[i] < 1 {
			weights[i] = 1
		}
		total += weights[i]
	}
	sizes := make([]int, len(cols))
	used := 0
	for i, w := range weights {
		sizes[i] = w * gridColumns / total
		if sizes[i] < 1 {
			sizes[i] = 1
		}
		used += sizes[i]
	}
	// ajuste: sobra o falta grilla por el redondeo
	for used != gridColumns {
		i := widest(sizes, weights, used < gridColumns)
		if used < gridColumns {
			sizes[i]++
			used++
		} else {
			sizes[i]--
			used--
		}
	}
	return sizes
}

// widest índice con mayor peso; al reducir solo considera tamaños > 1.
func widest(sizes, weights []int, grow bool) int {
	best := -1
	for i := range sizes {
		if !grow && sizes[i] <= 1 {
			continue
		}
		if best == -1 || weights[i] > weights[best] {
			best = i
		}
	}
	return best
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
