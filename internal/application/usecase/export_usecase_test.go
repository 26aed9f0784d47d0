package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/usecase"
	"github.com/jhoicas/painel-bi/internal/domain"
)

func newExport(xlsx *fakeXLSX, pdf *fakePDF) *usecase.ExportUseCase {
	customers, invoices := customerFixture()
	opts := usecase.ReportOptions{CompanyName: "Empresa Teste", PDFMaxRows: 2}
	return usecase.NewExportUseCase(usecase.Reports{
		Sales:     usecase.NewSalesUseCase(invoices, fixedClock),
		Seller:    usecase.NewSellerUseCase(invoices, fixedClock, nil),
		Customers: usecase.NewCustomerUseCase(customers, invoices, fixedClock),
		Stock:     usecase.NewStockUseCase(&fakeStock{list: stockItems()}, nil, pdf, opts, fixedClock),
		Services:  usecase.NewServiceUseCase(&fakeServices{list: serviceNotes()}, fixedClock),
	}, xlsx, pdf, opts, fixedClock)
}

func TestExport_XLSXUsaLaTablaFiltrada(t *testing.T) {
	xlsx := &fakeXLSX{}
	uc := newExport(xlsx, &fakePDF{})

	f, err := uc.SalesXLSX(context.Background(), "c-1", dto.SalesReportRequest{Preset: "custom", From: "2025-03-01", To: "2025-03-31"})
	require.NoError(t, err)
	assert.Equal(t, "vendas_2025-04-15.xlsx", f.Name)
	assert.Equal(t, usecase.ContentTypeXLSX, f.ContentType)
	require.Len(t, xlsx.tables, 1)
	assert.Len(t, xlsx.tables[0].Rows, 3)
	assert.Equal(t, "Período: 01/03/2025 a 31/03/2025", xlsx.tables[0].Subtitle)

	f, err = uc.SellerXLSX(context.Background(), "c-1", "maria", dto.SellerReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, "minhas_vendas_2025-04-15.xlsx", f.Name)
	assert.Len(t, xlsx.tables[1].Rows, 2)
}

func TestExport_PDFLlevaCabecera(t *testing.T) {
	pdf := &fakePDF{}
	uc := newExport(&fakeXLSX{}, pdf)

	f, err := uc.CustomersPDF(context.Background(), "c-1", "ana", dto.CustomerReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, "clientes_2025-04-15.pdf", f.Name)
	assert.Equal(t, usecase.ContentTypePDF, f.ContentType)
	require.Len(t, pdf.reports, 1)
	doc := pdf.reports[0]
	assert.Equal(t, "Empresa Teste", doc.CompanyName)
	assert.Equal(t, "ana", doc.RequestedBy)
	assert.Equal(t, 2, doc.MaxRows)
	assert.Equal(t, time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC), doc.GeneratedAt)
	assert.Len(t, doc.Table.Rows, 3, "el recorte lo hace el generador")

	_, err = uc.StockPDF(context.Background(), "c-1", "ana", dto.StockReportRequest{})
	require.NoError(t, err)
	_, err = uc.ServicesPDF(context.Background(), "c-1", "ana", dto.ServiceReportRequest{})
	require.NoError(t, err)
	assert.Len(t, pdf.reports, 3)
}

func TestExport_ErroresDelReporteSePropagan(t *testing.T) {
	xlsx := &fakeXLSX{}
	uc := newExport(xlsx, &fakePDF{})
	_, err := uc.StockXLSX(context.Background(), "c-1", dto.StockReportRequest{Status: "Z"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, xlsx.tables)
}

func TestExport_SolicitudDeCompra(t *testing.T) {
	pdf := &fakePDF{}
	uc := newExport(&fakeXLSX{}, pdf)
	f, err := uc.PurchaseRequestFile(context.Background(), "c-1", "ana", dto.PurchaseRequest{
		Lines: []dto.PurchaseLineRequest{{Code: "40", Quantity: d("12")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "solicitacao_compra_2025-04-15.pdf", f.Name)
	require.Len(t, pdf.purchases, 1)
}
