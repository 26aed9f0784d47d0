package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/usecase"
	"github.com/jhoicas/painel-bi/internal/domain"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
)

func salesInvoices() []entity.Invoice {
	return []entity.Invoice{
		invoice("1", day(2025, time.March, 3), "100.50", "Padaria Sol", "12.345.678/0001-90", "Maria Souza", item("Cabo", "10", "100.50")),
		invoice("2", day(2025, time.March, 15), "200.25", "Mercado Lua", "98765432000155", "João Lima", item("Fonte", "20", "150.25"), item("Cabo", "10", "50")),
		invoice("3", day(2025, time.March, 31), "49.25", "Padaria Sol", "12345678000190", "Maria Souza", item("Plug", "30", "49.25")),
		invoice("4", day(2025, time.February, 28), "999", "Loja Azul", "11111111000111", "João Lima", item("Fonte", "20", "999")),
	}
}

func TestSalesReport_TotalMensalETicketMedio(t *testing.T) {
	uc := usecase.NewSalesUseCase(&fakeInvoices{list: salesInvoices()}, fixedClock)

	out, err := uc.Report(context.Background(), "c-1", dto.SalesReportRequest{
		Preset: "custom", From: "2025-03-01", To: "2025-03-31",
	})
	require.NoError(t, err)

	require.Len(t, out.Charts.Monthly, 1)
	assert.Equal(t, "2025-03", out.Charts.Monthly[0].Month)
	assert.True(t, d("350.00").Equal(out.Charts.Monthly[0].Total))
	assert.True(t, d("350.00").Equal(out.KPIs.TotalBilled))
	assert.True(t, d("116.67").Equal(out.KPIs.AverageTicket), out.KPIs.AverageTicket.String())
	assert.Equal(t, 3, out.KPIs.SalesCount)

	require.NotNil(t, out.KPIs.BestProduct)
	assert.Equal(t, "Cabo (10)", out.KPIs.BestProduct.Label)
	assert.True(t, d("150.50").Equal(out.KPIs.BestProduct.Total))

	require.Len(t, out.Charts.TopSellers, 2)
	assert.Equal(t, "João Lima", out.Charts.TopSellers[0].Label)
	require.Len(t, out.Charts.TopCustomers, 2)
	assert.Equal(t, "Mercado Lua", out.Charts.TopCustomers[0].Label)
	assert.True(t, d("149.75").Equal(out.Charts.TopCustomers[1].Total))
}

func TestSalesReport_FiltroVacioNoRestringe(t *testing.T) {
	uc := usecase.NewSalesUseCase(&fakeInvoices{list: salesInvoices()}, fixedClock)
	all, err := uc.Report(context.Background(), "c-1", dto.SalesReportRequest{})
	require.NoError(t, err)
	withEmpty, err := uc.Report(context.Background(), "c-1", dto.SalesReportRequest{Customers: []string{}, Sellers: []string{""}})
	require.NoError(t, err)
	assert.Equal(t, all.KPIs.SalesCount, withEmpty.KPIs.SalesCount)
	assert.Equal(t, 4, all.KPIs.SalesCount)
	assert.Len(t, all.Options.Products, 3)
	assert.Len(t, all.Options.Sellers, 2)
}

func TestSalesReport_ProductoEnCualquierLinea(t *testing.T) {
	uc := usecase.NewSalesUseCase(&fakeInvoices{list: salesInvoices()}, fixedClock)
	out, err := uc.Report(context.Background(), "c-1", dto.SalesReportRequest{
		Products: []string{"Cabo (10)"},
		Sort:     "valor",
		Order:    "asc",
	})
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "1", out.Rows[0].ID)
	assert.Equal(t, "2", out.Rows[1].ID)
}

func TestSalesReport_BusquedaPorDocumentoSinPuntuacion(t *testing.T) {
	uc := usecase.NewSalesUseCase(&fakeInvoices{list: salesInvoices()}, fixedClock)
	out, err := uc.Report(context.Background(), "c-1", dto.SalesReportRequest{Search: "12.345.678"})
	require.NoError(t, err)
	assert.Len(t, out.Rows, 2)
	assert.Equal(t, 4, out.KPIs.SalesCount, "la búsqueda solo afecta la tabla")
}

func TestSalesReport_Errores(t *testing.T) {
	uc := usecase.NewSalesUseCase(&fakeInvoices{list: salesInvoices()}, fixedClock)
	ctx := context.Background()

	_, err := uc.Report(ctx, "c-1", dto.SalesReportRequest{Page: 2})
	assert.ErrorIs(t, err, domain.ErrPageOutOfRange)

	_, err = uc.Report(ctx, "c-1", dto.SalesReportRequest{Sort: "margem"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Report(ctx, "c-1", dto.SalesReportRequest{Preset: "custom", From: "2025-04-10", To: "2025-04-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	failing := usecase.NewSalesUseCase(&fakeInvoices{err: errors.New("timeout")}, fixedClock)
	_, err = failing.Report(ctx, "c-1", dto.SalesReportRequest{})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestSalesReport_PeriodoVacioNoEsError(t *testing.T) {
	uc := usecase.NewSalesUseCase(&fakeInvoices{list: salesInvoices()}, fixedClock)
	out, err := uc.Report(context.Background(), "c-1", dto.SalesReportRequest{Preset: "7dias"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.KPIs.SalesCount)
	assert.True(t, out.KPIs.AverageTicket.IsZero())
	assert.Nil(t, out.KPIs.BestProduct)
	assert.Empty(t, out.Rows)
	assert.Equal(t, 0, out.Page.TotalPages)
	require.NotNil(t, out.Period.From)
	assert.Equal(t, "2025-04-08", *out.Period.From)
}
