package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/painel-bi/internal/application/usecase"
	"github.com/jhoicas/painel-bi/internal/domain"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
)

func configFixture() *fakeConfig {
	return &fakeConfig{entries: []entity.ConfigEntry{
		{ID: "1", Key: entity.ConfigKeyTarget, Value: "100000"},
		{ID: "2", Key: entity.ConfigKeyAnimateGoal, Value: "true"},
		{ID: "3", Key: entity.ConfigKeyQuickCodes, Value: "10,20"},
	}}
}

func TestConfigUpdate_ReemplazaEnMemoria(t *testing.T) {
	repo := configFixture()
	uc := usecase.NewConfigUseCase(repo, nil)
	ctx := context.Background()

	_, err := uc.List(ctx, "c-1")
	require.NoError(t, err)

	saved, err := uc.Update(ctx, "c-1", "META", "R$ 150.000,00")
	require.NoError(t, err)
	assert.Equal(t, "150000", saved.Value)

	v, ok, err := uc.Value(ctx, "c-1", "META")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "150000", v)
	assert.Equal(t, 1, repo.listCalls, "la edición no recarga la lista")
}

func TestConfigUpdate_FalloNoCambiaNada(t *testing.T) {
	repo := configFixture()
	uc := usecase.NewConfigUseCase(repo, nil)
	ctx := context.Background()
	_, _ = uc.List(ctx, "c-1")

	repo.updateErr = errors.New("ERP caído")
	_, err := uc.Update(ctx, "c-1", "META", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ERP caído")

	v, _, _ := uc.Value(ctx, "c-1", "META")
	assert.Equal(t, "100000", v)
}

func TestConfigUpdate_Validacion(t *testing.T) {
	uc := usecase.NewConfigUseCase(configFixture(), nil)
	ctx := context.Background()

	for _, tc := range []struct{ key, value string }{
		{"META", "muito"},
		{"META", "-10"},
		{"ANIMACAO_META", "sim"},
		{" ", "x"},
	} {
		_, err := uc.Update(ctx, "c-1", tc.key, tc.value)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%s=%s", tc.key, tc.value)
	}

	saved, err := uc.Update(ctx, "c-1", "ANIMACAO_META", "FALSE")
	require.NoError(t, err)
	assert.Equal(t, "false", saved.Value)

	saved, err = uc.Update(ctx, "c-1", "CODIGOS_RAPIDOS", " 10 , ,30")
	require.NoError(t, err)
	assert.Equal(t, "10,30", saved.Value)

	_, err = uc.Update(ctx, "c-1", "NAO_EXISTE", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConfigInvalidate(t *testing.T) {
	repo := configFixture()
	uc := usecase.NewConfigUseCase(repo, nil)
	ctx := context.Background()

	_, _ = uc.List(ctx, "c-1")
	_, _ = uc.List(ctx, "c-1")
	assert.Equal(t, 1, repo.listCalls)

	refresh := usecase.NewRefreshUseCase(nil, uc)
	refresh.Refresh("c-1")
	_, _ = uc.List(ctx, "c-1")
	assert.Equal(t, 2, repo.listCalls)
}

// slowConfig lee el listado y se detiene hasta que el test lo libere.
type slowConfig struct {
	*fakeConfig
	read    chan struct{}
	release chan struct{}
}

func (s *slowConfig) ListConfig(ctx context.Context, companyID string) ([]entity.ConfigEntry, error) {
	list, err := s.fakeConfig.ListConfig(ctx, companyID)
	close(s.read)
	<-s.release
	return list, err
}

func TestConfigUpdate_DuranteCargaNoQuedaObsoleta(t *testing.T) {
	repo := &slowConfig{fakeConfig: configFixture(), read: make(chan struct{}), release: make(chan struct{})}
	uc := usecase.NewConfigUseCase(repo, nil)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := uc.List(ctx, "c-1")
		done <- err
	}()
	<-repo.read

	_, err := uc.Update(ctx, "c-1", "META", "200")
	require.NoError(t, err)

	close(repo.release)
	require.NoError(t, <-done)

	repo.read = make(chan struct{})
	repo.release = make(chan struct{})
	close(repo.release)

	v, ok, err := uc.Value(ctx, "c-1", "META")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "200", v)
}
