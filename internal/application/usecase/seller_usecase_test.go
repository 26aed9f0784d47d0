package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/application/usecase"
	"github.com/jhoicas/painel-bi/internal/domain"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
)

func TestSellerReport_SoloNotasPropias(t *testing.T) {
	uc := usecase.NewSellerUseCase(&fakeInvoices{list: salesInvoices()}, fixedClock, nil)

	out, err := uc.Report(context.Background(), "c-1", "maria", dto.SellerReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.KPIs.SalesCount)
	assert.True(t, d("149.75").Equal(out.KPIs.TotalBilled))
	assert.Nil(t, out.Charts.TopSellers, "el vendedor no ve ranking de vendedores")
	assert.Len(t, out.Options.Products, 2, "opciones solo de sus notas")
	for _, r := range out.Rows {
		assert.Equal(t, "Maria Souza", r.SellerName)
	}
}

func TestSellerReport_AcentosYMayusculas(t *testing.T) {
	uc := usecase.NewSellerUseCase(&fakeInvoices{list: salesInvoices()}, fixedClock, nil)
	out, err := uc.Report(context.Background(), "c-1", "JOAO", dto.SellerReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.KPIs.SalesCount)
}

func TestSellerReport_SinUsuario(t *testing.T) {
	uc := usecase.NewSellerUseCase(&fakeInvoices{list: salesInvoices()}, fixedClock, nil)
	_, err := uc.Report(context.Background(), "c-1", "  ", dto.SellerReportRequest{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSellerTable_IncluyeTipo(t *testing.T) {
	invs := salesInvoices()
	invs[0].Tag = entity.TagInbound
	uc := usecase.NewSellerUseCase(&fakeInvoices{list: invs}, fixedClock, nil)

	tbl, err := uc.Table(context.Background(), "c-1", "maria", dto.SellerReportRequest{Sort: "data_emissao", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, "Minhas Vendas", tbl.Title)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Tipo", tbl.Columns[len(tbl.Columns)-1].Header)
	assert.Equal(t, "Inbound", tbl.Rows[0][len(tbl.Rows[0])-1])
	assert.Equal(t, "Não definido", tbl.Rows[1][len(tbl.Rows[1])-1])
}

func TestUpdateTag(t *testing.T) {
	ctx := context.Background()

	t.Run("nota propia", func(t *testing.T) {
		repo := &fakeInvoices{list: salesInvoices()}
		uc := usecase.NewSellerUseCase(repo, fixedClock, nil)
		require.NoError(t, uc.UpdateTag(ctx, "c-1", "maria", "1", "ReCompra"))
		assert.Equal(t, entity.TagReCompra, repo.tagged["1"])
	})

	t.Run("tipo inválido", func(t *testing.T) {
		repo := &fakeInvoices{list: salesInvoices()}
		uc := usecase.NewSellerUseCase(repo, fixedClock, nil)
		assert.ErrorIs(t, uc.UpdateTag(ctx, "c-1", "maria", "1", "Venda"), domain.ErrInvalidTag)
		assert.ErrorIs(t, uc.UpdateTag(ctx, "c-1", "maria", "1", ""), domain.ErrInvalidTag)
		assert.Empty(t, repo.tagged)
	})

	t.Run("nota de otro vendedor", func(t *testing.T) {
		repo := &fakeInvoices{list: salesInvoices()}
		uc := usecase.NewSellerUseCase(repo, fixedClock, nil)
		assert.ErrorIs(t, uc.UpdateTag(ctx, "c-1", "maria", "2", "Inbound"), domain.ErrForbidden)
		assert.Empty(t, repo.tagged)
	})

	t.Run("nota inexistente", func(t *testing.T) {
		uc := usecase.NewSellerUseCase(&fakeInvoices{list: salesInvoices()}, fixedClock, nil)
		assert.ErrorIs(t, uc.UpdateTag(ctx, "c-1", "maria", "999", "Inbound"), domain.ErrNotFound)
	})

	t.Run("falla del ERP", func(t *testing.T) {
		repo := &fakeInvoices{list: salesInvoices(), tagErr: errors.New("rechazado")}
		uc := usecase.NewSellerUseCase(repo, fixedClock, nil)
		err := uc.UpdateTag(ctx, "c-1", "maria", "1", "Outbound")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rechazado")
	})
}

func TestSellerReport_PeriodoYProducto(t *testing.T) {
	uc := usecase.NewSellerUseCase(&fakeInvoices{list: salesInvoices()}, fixedClock, nil)
	out, err := uc.Report(context.Background(), "c-1", "joão", dto.SellerReportRequest{
		Preset:   "custom",
		From:     "2025-03-01",
		Products: []string{"Fonte (20)"},
	})
	require.NoError(t, err)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "2", out.Rows[0].ID)
}
