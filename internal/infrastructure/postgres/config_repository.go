package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-bi/internal/domain"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
	"github.com/jhoicas/painel-bi/internal/domain/repository"
)

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

const configSchema = `
	CREATE TABLE IF NOT EXISTS config_entries (
		id          UUID PRIMARY KEY,
		company_id  TEXT NOT NULL,
		key         TEXT NOT NULL,
		value       TEXT NOT NULL DEFAULT '',
		numeric_value NUMERIC,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (company_id, key)
	);
	ALTER TABLE config_entries ADD COLUMN IF NOT EXISTS numeric_value NUMERIC`

// numericValue copia numérica de las claves de monto; NULL para las demás.
func numericValue(key, value string) decimal.NullDecimal {
	if key != entity.ConfigKeyTarget {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// scanEntry lee id, key, value, numeric_value, updated_at. Si hay copia
// numérica, el valor se devuelve en su forma canónica.
func scanEntry(row pgx.Row) (entity.ConfigEntry, error) {
	var e entity.ConfigEntry
	var id uuid.UUID
	var num decimal.NullDecimal
	if err := row.Scan(&id, &e.Key, &e.Value, &num, &e.UpdatedAt); err != nil {
		return e, err
	}
	e.ID = id.String()
	if num.Valid {
		e.Value = num.Decimal.String()
	}
	return e, nil
}

// ConfigRepo entradas de configuración por empresa en PostgreSQL.
type ConfigRepo struct {
	q Querier
}

// NewConfigRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConfigRepository(q Querier) *ConfigRepo {
	return &ConfigRepo{q: q}
}

// EnsureSchema crea la tabla si no existe.
func (r *ConfigRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, configSchema); err != nil {
		return fmt.Errorf("create config_entries: %w", err)
	}
	return nil
}

// Seed inserta las claves que falten con su valor inicial; las existentes no se tocan.
func (r *ConfigRepo) Seed(ctx context.Context, companyID string, defaults map[string]string) (int, error) {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	query := `
		INSERT INTO config_entries (id, company_id, key, value, numeric_value, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (company_id, key) DO NOTHING`
	inserted := 0
	for _, k := range keys {
		tag, err := r.q.Exec(ctx, query, uuid.New(), companyID, k, defaults[k], numericValue(k, defaults[k]))
		if err != nil {
			return inserted, fmt.Errorf("seed config %s: %w", k, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// ListConfig entradas de la empresa ordenadas por clave.
func (r *ConfigRepo) ListConfig(ctx context.Context, companyID string) ([]entity.ConfigEntry, error) {
	query := `
		SELECT id, key, value, numeric_value, updated_at
		FROM config_entries WHERE company_id = $1
		ORDER BY key`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()

	var list []entity.ConfigEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// UpdateConfig reemplaza el valor de una clave existente.
func (r *ConfigRepo) UpdateConfig(ctx context.Context, companyID, key, value string) (*entity.ConfigEntry, error) {
	query := `
		UPDATE config_entries SET value = $3, numeric_value = $4, updated_at = now()
		WHERE company_id = $1 AND key = $2
		RETURNING id, key, value, numeric_value, updated_at`
	e, err := scanEntry(r.q.QueryRow(ctx, query, companyID, key, value, numericValue(key, value)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update config %s: %w", key, err)
	}
	return &e, nil
}
