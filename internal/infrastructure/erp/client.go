// Package erp es el adaptador de la API REST del ERP de facturación: notas
// fiscales, clientes, estoque, notas de servicio y configuraciones.
//
// Las respuestas se decodifican en estructuras tolerantes (montos como número o
// texto) y se convierten en entidades estrictas; los registros sin id o con
// fecha ilegible se descartan y se registran como advertencia.
package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/painel-bi/internal/domain"
	"github.com/jhoicas/painel-bi/pkg/config"
	pkgjwt "github.com/jhoicas/painel-bi/pkg/jwt"
	"github.com/jhoicas/painel-bi/pkg/logger"
)

// maxBody límite de lectura de una respuesta (los listados completos del año caben de sobra).
const maxBody = 64 << 20

// Client cliente HTTP del ERP.
type Client struct {
	baseURL    string
	token      string
	cfg        config.ERPConfig
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. Si cfg.Token está vacío, cada petición debe
// llevar el token del usuario en el contexto (pkgjwt.ContextWithToken).
func NewClient(cfg config.ERPConfig, log *logger.Logger) *Client {
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("erp"),
	}
}

// errorEnvelope forma habitual de los errores del ERP.
type errorEnvelope struct {
	Detail  any    `json:"detail"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e errorEnvelope) text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Error != "":
		return e.Error
	case e.Detail != nil:
		return fmt.Sprint(e.Detail)
	}
	return ""
}

// do ejecuta la petición y decodifica el cuerpo en out (si no es nil).
// Respuestas no 2xx devuelven un error que envuelve domain.ErrUpstream.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erp: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("erp: construir request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.bearer(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erp: %s %s: %v: %w", method, path, err, domain.ErrUpstream)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("erp: leer respuesta de %s: %v: %w", path, err, domain.ErrUpstream)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(started)).
		Msg("erp request")

	if resp.StatusCode == http.StatusNotFound && method != http.MethodGet {
		return fmt.Errorf("erp: %s %s: %w", method, path, domain.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env errorEnvelope
		msg := ""
		if json.Unmarshal(raw, &env) == nil {
			msg = env.text()
		}
		if msg == "" {
			msg = truncate(string(raw), 200)
		}
		return fmt.Errorf("erp: %s %s: HTTP %d: %s: %w", method, path, resp.StatusCode, msg, domain.ErrUpstream)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("erp: decodificar %s: %v: %w", path, err, domain.ErrUpstream)
	}
	return nil
}

// bearer token del usuario si viene en el contexto; si no, el token fijo.
func (c *Client) bearer(ctx context.Context) string {
	if tok := pkgjwt.TokenFromContext(ctx); tok != "" {
		return tok
	}
	return c.token
}

// list pide un listado. Acepta un array JSON o un objeto con el array en
// "data", "items" o "results".
func (c *Client) list(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}
	return unwrapList(raw)
}

func unwrapList(raw json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var items []json.RawMessage
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("erp: listado inválido: %v: %w", err, domain.ErrUpstream)
		}
		return items, nil
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("erp: listado inválido: %v: %w", err, domain.ErrUpstream)
	}
	for _, k := range []string{"data", "items", "results"} {
		if v, ok := env[k]; ok {
			return unwrapList(v)
		}
	}
	return nil, fmt.Errorf("erp: respuesta sin listado: %w", domain.ErrUpstream)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
