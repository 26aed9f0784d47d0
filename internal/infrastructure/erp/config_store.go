package erp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/painel-bi/internal/domain"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
	"github.com/jhoicas/painel-bi/internal/domain/repository"
)

var _ repository.ConfigRepository = (*Client)(nil)

// ListConfig GET /configuracoes.
func (c *Client) ListConfig(ctx context.Context, companyID string) ([]entity.ConfigEntry, error) {
	raws, err := c.list(ctx, c.cfg.ConfigPath, nil)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ConfigEntry, 0, len(raws))
	q8 := newQuarantine(c.log, "configuracoes", companyID)
	for _, raw := range raws {
		var w wireConfig
		if err := json.Unmarshal(raw, &w); err != nil || w.Chave == "" {
			q8.add(string(w.ID), "sin chave")
			continue
		}
		out = append(out, entity.ConfigEntry{ID: w.ID.String(), Key: w.Chave, Value: w.Valor.String()})
	}
	q8.flush()
	return out, nil
}

// UpdateConfig PUT /configuracoes/{chave} con {"valor": ...}. Devuelve la entrada
// que responde el ERP o, si responde vacío, la entrada con el valor enviado.
func (c *Client) UpdateConfig(ctx context.Context, companyID, key, value string) (*entity.ConfigEntry, error) {
	path := fmt.Sprintf("%s/%s", c.cfg.ConfigPath, url.PathEscape(key))
	var w wireConfig
	err := c.do(ctx, http.MethodPut, path, nil, map[string]string{"valor": value}, &w)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("configuración %q: %w", key, domain.ErrNotFound)
		}
		return nil, err
	}
	entry := &entity.ConfigEntry{ID: w.ID.String(), Key: key, Value: value}
	if w.Chave != "" {
		entry.Key = w.Chave
		entry.Value = w.Valor.String()
	}
	c.log.Info().Str("company_id", companyID).Str("chave", key).Msg("configuración actualizada en el ERP")
	return entry, nil
}
