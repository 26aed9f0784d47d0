package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/ports"
)

// Tipos de contenido de los archivos exportados.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// File archivo generado.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Reports casos de uso cuyas tablas se exportan.
type Reports struct {
	Sales     *SalesUseCase
	Seller    *SellerUseCase
	Customers *CustomerUseCase
	Stock     *StockUseCase
	Services  *ServiceUseCase
}

// ExportUseCase exporta la tabla filtrada y ordenada de cada reporte: XLSX
// completo o PDF con el cuerpo limitado a ReportOptions.PDFMaxRows filas.
type ExportUseCase struct {
	reports Reports
	xlsx    ports.SpreadsheetExporter
	pdf     ports.ReportPDFGenerator
	opts    ReportOptions
	clock   Clock
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(reports Reports, xlsx ports.SpreadsheetExporter, pdf ports.ReportPDFGenerator, opts ReportOptions, clock Clock) *ExportUseCase {
	return &ExportUseCase{reports: reports, xlsx: xlsx, pdf: pdf, opts: opts, clock: clock}
}

func (uc *ExportUseCase) now() time.Time {
	if uc.clock.Now != nil {
		return uc.clock.Now()
	}
	return time.Now()
}

func (uc *ExportUseCase) fileName(base, ext string) string {
	return fmt.Sprintf("%s_%s.%s", base, uc.clock.Today().Format(dateLayout), ext)
}

func (uc *ExportUseCase) toXLSX(ctx context.Context, base string, t ports.Table, err error) (*File, error) {
	if err != nil {
		return nil, err
	}
	data, err := uc.xlsx.ExportTable(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", base, err)
	}
	return &File{Name: uc.fileName(base, "xlsx"), ContentType: ContentTypeXLSX, Data: data}, nil
}

func (uc *ExportUseCase) toPDF(ctx context.Context, base, requester string, t ports.Table, err error) (*File, error) {
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.GenerateReportPDF(ctx, ports.ReportDocument{
		Table:       t,
		CompanyName: uc.opts.CompanyName,
		RequestedBy: requester,
		GeneratedAt: uc.now(),
		MaxRows:     uc.opts.PDFMaxRows,
	})
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", base, err)
	}
	return &File{Name: uc.fileName(base, "pdf"), ContentType: ContentTypePDF, Data: data}, nil
}

// SalesXLSX planilla de ventas.
func (uc *ExportUseCase) SalesXLSX(ctx context.Context, companyID string, req dto.SalesReportRequest) (*File, error) {
	t, err := uc.reports.Sales.Table(ctx, companyID, req)
	return uc.toXLSX(ctx, "vendas", t, err)
}

// SellerXLSX planilla de las ventas del vendedor.
func (uc *ExportUseCase) SellerXLSX(ctx context.Context, companyID, username string, req dto.SellerReportRequest) (*File, error) {
	t, err := uc.reports.Seller.Table(ctx, companyID, username, req)
	return uc.toXLSX(ctx, "minhas_vendas", t, err)
}

// CustomersXLSX planilla de clientes.
func (uc *ExportUseCase) CustomersXLSX(ctx context.Context, companyID string, req dto.CustomerReportRequest) (*File, error) {
	t, err := uc.reports.Customers.Table(ctx, companyID, req)
	return uc.toXLSX(ctx, "clientes", t, err)
}

// CustomersPDF PDF de clientes.
func (uc *ExportUseCase) CustomersPDF(ctx context.Context, companyID, requester string, req dto.CustomerReportRequest) (*File, error) {
	t, err := uc.reports.Customers.Table(ctx, companyID, req)
	return uc.toPDF(ctx, "clientes", requester, t, err)
}

// StockXLSX planilla de estoque.
func (uc *ExportUseCase) StockXLSX(ctx context.Context, companyID string, req dto.StockReportRequest) (*File, error) {
	t, err := uc.reports.Stock.Table(ctx, companyID, req)
	return uc.toXLSX(ctx, "estoque", t, err)
}

// StockPDF PDF de estoque.
func (uc *ExportUseCase) StockPDF(ctx context.Context, companyID, requester string, req dto.StockReportRequest) (*File, error) {
	t, err := uc.reports.Stock.Table(ctx, companyID, req)
	return uc.toPDF(ctx, "estoque", requester, t, err)
}

// ServicesXLSX planilla de servicios.
func (uc *ExportUseCase) ServicesXLSX(ctx context.Context, companyID string, req dto.ServiceReportRequest) (*File, error) {
	t, err := uc.reports.Services.Table(ctx, companyID, req)
	return uc.toXLSX(ctx, "servicos", t, err)
}

// ServicesPDF PDF de servicios.
func (uc *ExportUseCase) ServicesPDF(ctx context.Context, companyID, requester string, req dto.ServiceReportRequest) (*File, error) {
	t, err := uc.reports.Services.Table(ctx, companyID, req)
	return uc.toPDF(ctx, "servicos", requester, t, err)
}

// PurchaseRequestFile PDF de solicitud de compra.
func (uc *ExportUseCase) PurchaseRequestFile(ctx context.Context, companyID, requester string, req dto.PurchaseRequest) (*File, error) {
	data, err := uc.reports.Stock.PurchaseRequest(ctx, companyID, requester, req)
	if err != nil {
		return nil, err
	}
	return &File{Name: uc.fileName("solicitacao_compra", "pdf"), ContentType: ContentTypePDF, Data: data}, nil
}
