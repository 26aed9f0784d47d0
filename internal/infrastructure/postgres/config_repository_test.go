package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/painel-bi/internal/domain"
	"github.com/jhoicas/painel-bi/internal/infrastructure/postgres"
)

type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

type fakeQuerier struct {
	execs   []string
	args    [][]any
	present map[string]bool
	row     pgx.Row
	rowArgs []any
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	f.args = append(f.args, args)
	if len(args) >= 3 {
		if key, ok := args[2].(string); ok && f.present[key] {
			return pgconn.NewCommandTag("INSERT 0 0"), nil
		}
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, assert.AnError
}

func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.rowArgs = args
	return f.row
}

func TestConfigRepo_UpdateConfigClaveInexistente(t *testing.T) {
	q := &fakeQuerier{row: rowFunc(func(dest ...any) error { return pgx.ErrNoRows })}
	_, err := postgres.NewConfigRepository(q).UpdateConfig(context.Background(), "c-1", "NAO_EXISTE", "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConfigRepo_UpdateConfigDevuelveEntrada(t *testing.T) {
	id := uuid.New()
	now := time.Now()
	q := &fakeQuerier{row: rowFunc(func(dest ...any) error {
		*dest[0].(*uuid.UUID) = id
		*dest[1].(*string) = "META"
		*dest[2].(*string) = "150000.00"
		*dest[3].(*decimal.NullDecimal) = decimal.NewNullDecimal(decimal.RequireFromString("150000.00"))
		*dest[4].(*time.Time) = now
		return nil
	})}
	e, err := postgres.NewConfigRepository(q).UpdateConfig(context.Background(), "c-1", "META", "150000")
	require.NoError(t, err)
	assert.Equal(t, id.String(), e.ID)
	assert.Equal(t, "150000", e.Value, "la copia numérica da la forma canónica")

	require.Len(t, q.rowArgs, 4)
	num := q.rowArgs[3].(decimal.NullDecimal)
	assert.True(t, num.Valid)
	assert.True(t, num.Decimal.Equal(decimal.NewFromInt(150000)))
}

func TestConfigRepo_UpdateConfigClaveNoNumerica(t *testing.T) {
	q := &fakeQuerier{row: rowFunc(func(dest ...any) error {
		*dest[0].(*uuid.UUID) = uuid.New()
		*dest[1].(*string) = "CODIGOS_RAPIDOS"
		*dest[2].(*string) = "10,20"
		*dest[4].(*time.Time) = time.Now()
		return nil
	})}
	e, err := postgres.NewConfigRepository(q).UpdateConfig(context.Background(), "c-1", "CODIGOS_RAPIDOS", "10,20")
	require.NoError(t, err)
	assert.Equal(t, "10,20", e.Value)
	assert.False(t, q.rowArgs[3].(decimal.NullDecimal).Valid)
}

func TestConfigRepo_SeedNoPisaExistentes(t *testing.T) {
	q := &fakeQuerier{present: map[string]bool{"META": true}}
	n, err := postgres.NewConfigRepository(q).Seed(context.Background(), "c-1", map[string]string{
		"META":          "0",
		"ANIMACAO_META": "false",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, q.args, 2)
	assert.Equal(t, "ANIMACAO_META", q.args[0][2], "orden por clave")
	assert.False(t, q.args[0][4].(decimal.NullDecimal).Valid)
	assert.True(t, q.args[1][4].(decimal.NullDecimal).Valid, "META lleva copia numérica")
}

func TestConfigRepo_ListConfigPropagaError(t *testing.T) {
	_, err := postgres.NewConfigRepository(&fakeQuerier{}).ListConfig(context.Background(), "c-1")
	assert.ErrorIs(t, err, assert.AnError)
}
