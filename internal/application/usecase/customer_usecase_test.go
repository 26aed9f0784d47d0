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

func customerFixture() (*fakeCustomers, *fakeInvoices) {
	customers := &fakeCustomers{list: []entity.Customer{
		{ID: "1", Name: "Padaria Sol", TaxID: "12.345.678/0001-90"},
		{ID: "2", Name: "Padaria Sol Filial", TaxID: "12345678000190"},
		{ID: "3", Name: "Mercado Lua", TaxID: "98.765.432/0001-55", Email: "compras@lua.com.br"},
		{ID: "4", Name: "Sem Compra", TaxID: "22222222000122"},
		{ID: "5", Name: "Sem Documento"},
		{ID: "6", Name: "Antiga", TaxID: "33333333000133"},
	}}
	invs := append(salesInvoices(),
		invoice("5", day(2024, time.October, 1), "300", "Antiga Ltda", "33.333.333/0001-33", "João Lima", item("Fonte", "20", "300")),
	)
	return customers, &fakeInvoices{list: invs}
}

func TestCustomerReport_CruzaPorDocumento(t *testing.T) {
	customers, invoices := customerFixture()
	uc := usecase.NewCustomerUseCase(customers, invoices, fixedClock)

	out, err := uc.Report(context.Background(), "c-1", dto.CustomerReportRequest{})
	require.NoError(t, err)

	require.Len(t, out.Rows, 3, "solo clientes con compras; el duplicado se consolida")
	assert.Equal(t, "Antiga", out.Rows[0].Name)
	assert.Equal(t, "Mercado Lua", out.Rows[1].Name)
	assert.Equal(t, "Padaria Sol", out.Rows[2].Name)

	padaria := out.Rows[2]
	assert.Equal(t, 2, padaria.PurchaseCount)
	assert.True(t, d("149.75").Equal(padaria.TotalPurchased))
	assert.True(t, d("74.88").Equal(padaria.AverageTicket))
	require.NotNil(t, padaria.LastPurchase)
	assert.Equal(t, "2025-03-31", *padaria.LastPurchase)
	require.NotNil(t, padaria.DaysSinceLast)
	assert.Equal(t, 15, *padaria.DaysSinceLast)
	assert.Equal(t, "Ativo", padaria.Status)
	assert.Equal(t, "Inativo", out.Rows[0].Status)

	assert.Equal(t, 2, out.KPIs.Active)
	assert.Equal(t, 1, out.KPIs.Inactive)
	assert.Equal(t, 3, out.KPIs.WithPurchases, "el duplicado cuenta una vez")
	assert.Equal(t, 2, out.KPIs.WithoutPurchases)
	assert.True(t, d("191.71").Equal(out.KPIs.MeanAverageTicket), out.KPIs.MeanAverageTicket.String())
	assert.True(t, d("1649").Equal(out.KPIs.PeriodBilling))
	require.NotNil(t, out.KPIs.TopCustomer)
	assert.Equal(t, "Antiga", out.KPIs.TopCustomer.Label)

	assert.Len(t, out.Options.Customers, 4)
}

func TestCustomerReport_FiltroPorDocumentoConPuntuacion(t *testing.T) {
	customers, invoices := customerFixture()
	uc := usecase.NewCustomerUseCase(customers, invoices, fixedClock)

	out, err := uc.Report(context.Background(), "c-1", dto.CustomerReportRequest{Customers: []string{"12345678000190"}})
	require.NoError(t, err)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "12.345.678/0001-90", out.Rows[0].TaxID)
	assert.Equal(t, 1, out.KPIs.Active)
	assert.Equal(t, 0, out.KPIs.Inactive)
}

func TestCustomerReport_PeriodoRestringeCompras(t *testing.T) {
	customers, invoices := customerFixture()
	uc := usecase.NewCustomerUseCase(customers, invoices, fixedClock)

	out, err := uc.Report(context.Background(), "c-1", dto.CustomerReportRequest{
		Preset: "custom", From: "2025-03-01", To: "2025-03-31",
	})
	require.NoError(t, err)
	assert.Len(t, out.Rows, 2)
	assert.Equal(t, 2, out.KPIs.WithPurchases)
	assert.Equal(t, 3, out.KPIs.WithoutPurchases)
	assert.Equal(t, 5, out.KPIs.WithPurchases+out.KPIs.WithoutPurchases, "clientes distintos")
	assert.True(t, d("350").Equal(out.KPIs.PeriodBilling))

	require.Len(t, out.Charts.Evolution, 2)
	assert.Equal(t, "Mercado Lua", out.Charts.Evolution[0].Label)
	require.Len(t, out.Charts.Evolution[0].Points, 1)
	assert.Equal(t, "2025-03", out.Charts.Evolution[0].Points[0].Month)
}

func TestCustomerReport_EvolucionRellenaMesesEnCero(t *testing.T) {
	customers, invoices := customerFixture()
	uc := usecase.NewCustomerUseCase(customers, invoices, fixedClock)

	out, err := uc.Report(context.Background(), "c-1", dto.CustomerReportRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, out.Charts.Evolution)
	antiga := out.Charts.Evolution[0]
	assert.Equal(t, "Antiga", antiga.Label)
	require.Len(t, antiga.Points, 3, "out/2024, fev/2025, mar/2025")
	assert.True(t, d("300").Equal(antiga.Points[0].Total))
	assert.True(t, antiga.Points[1].Total.IsZero())
	assert.True(t, antiga.Points[2].Total.IsZero())
}

func TestCustomerReport_BusquedaYOrden(t *testing.T) {
	customers, invoices := customerFixture()
	uc := usecase.NewCustomerUseCase(customers, invoices, fixedClock)
	ctx := context.Background()

	out, err := uc.Report(ctx, "c-1", dto.CustomerReportRequest{Search: "98765"})
	require.NoError(t, err)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "Mercado Lua", out.Rows[0].Name)
	assert.Equal(t, 3, out.KPIs.Active+out.KPIs.Inactive, "la búsqueda no cambia los KPIs")

	out, err = uc.Report(ctx, "c-1", dto.CustomerReportRequest{Sort: "nome", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, "Antiga", out.Rows[0].Name)
	assert.Equal(t, "Padaria Sol", out.Rows[2].Name)

	_, err = uc.Report(ctx, "c-1", dto.CustomerReportRequest{Sort: "cidade"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerReport_ErrorDelCadastro(t *testing.T) {
	_, invoices := customerFixture()
	uc := usecase.NewCustomerUseCase(&fakeCustomers{err: errors.New("timeout")}, invoices, fixedClock)
	_, err := uc.Report(context.Background(), "c-1", dto.CustomerReportRequest{})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestCustomerTable(t *testing.T) {
	customers, invoices := customerFixture()
	uc := usecase.NewCustomerUseCase(customers, invoices, fixedClock)
	tbl, err := uc.Table(context.Background(), "c-1", dto.CustomerReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Relatório de Clientes", tbl.Title)
	assert.Len(t, tbl.Rows, 3)
	assert.Equal(t, "Período: todos", tbl.Subtitle)
}
