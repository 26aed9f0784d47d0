package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/painel-bi/internal/domain/entity"
	"github.com/jhoicas/painel-bi/internal/domain/repository"
	"github.com/jhoicas/painel-bi/pkg/logger"
)

// fetchTimeout límite de una carga compartida contra el ERP.
const fetchTimeout = 60 * time.Second

// Sources listados que el Gateway envuelve.
type Sources struct {
	Invoices     repository.InvoiceRepository
	Customers    repository.CustomerRepository
	Stock        repository.StockRepository
	ServiceNotes repository.ServiceNoteRepository
}

// Gateway snapshot por empresa de los listados del ERP.
//
// Cargas concurrentes de la misma clave se unen en una sola petición. Cada
// empresa tiene una generación: Invalidate la incrementa y una carga iniciada
// antes no puede guardar su resultado encima de una más nueva.
//
// Los slices devueltos se comparten entre requests y no deben modificarse.
type Gateway struct {
	src   Sources
	ttl   time.Duration
	cache *TTLCache[string, any]
	group singleflight.Group
	log   *logger.Logger

	mu   sync.Mutex
	gen  map[string]uint64
	keys map[string]map[string]struct{}
}

var (
	_ repository.InvoiceRepository     = (*Gateway)(nil)
	_ repository.CustomerRepository    = (*Gateway)(nil)
	_ repository.StockRepository       = (*Gateway)(nil)
	_ repository.ServiceNoteRepository = (*Gateway)(nil)
)

// NewGateway construye el gateway.
func NewGateway(src Sources, ttl time.Duration, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{
		src:   src,
		ttl:   ttl,
		cache: NewTTLCache[string, any](),
		log:   log.Component("snapshot"),
		gen:   make(map[string]uint64),
		keys:  make(map[string]map[string]struct{}),
	}
}

// Invalidate descarta el snapshot de la empresa; la próxima lectura vuelve al ERP.
func (g *Gateway) Invalidate(companyID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen[companyID]++
	for k := range g.keys[companyID] {
		g.cache.Delete(k)
	}
	delete(g.keys, companyID)
	g.log.Info().Str("company_id", companyID).Uint64("generacion", g.gen[companyID]).Msg("snapshot invalidado")
}

func (g *Gateway) generation(companyID string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen[companyID]
}

// store guarda el resultado solo si la generación sigue siendo la de la carga.
func (g *Gateway) store(companyID string, gen uint64, key string, v any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gen[companyID] != gen {
		g.log.Debug().Str("key", key).Msg("carga obsoleta descartada")
		return
	}
	g.cache.Set(key, v, g.ttl)
	if g.keys[companyID] == nil {
		g.keys[companyID] = make(map[string]struct{})
	}
	g.keys[companyID][key] = struct{}{}
}

func load[T any](ctx context.Context, g *Gateway, companyID, dataset string, fetch func(context.Context) (T, error)) (T, error) {
	key := companyID + "|" + dataset
	if v, ok := g.cache.Get(key); ok {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}

	gen := g.generation(companyID)
	ch := g.group.DoChan(fmt.Sprintf("%s#%d", key, gen), func() (any, error) {
		// La carga es compartida: no depende de la cancelación de quien la inició.
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		res, err := fetch(fctx)
		if err != nil {
			return nil, err
		}
		g.store(companyID, gen, key, res)
		return res, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		return r.Val.(T), nil
	}
}

func rangeKey(q repository.InvoiceQuery) string {
	s, e := "-", "-"
	if q.Start != nil {
		s = q.Start.Format("2006-01-02")
	}
	if q.End != nil {
		e = q.End.Format("2006-01-02")
	}
	return "invoices:" + s + ":" + e
}

// ListInvoices listado de notas desde el snapshot.
func (g *Gateway) ListInvoices(ctx context.Context, companyID string, q repository.InvoiceQuery) ([]entity.Invoice, error) {
	return load(ctx, g, companyID, rangeKey(q), func(ctx context.Context) ([]entity.Invoice, error) {
		return g.src.Invoices.ListInvoices(ctx, companyID, q)
	})
}

// ListCustomers listado de clientes desde el snapshot.
func (g *Gateway) ListCustomers(ctx context.Context, companyID string) ([]entity.Customer, error) {
	return load(ctx, g, companyID, "customers", func(ctx context.Context) ([]entity.Customer, error) {
		return g.src.Customers.ListCustomers(ctx, companyID)
	})
}

// ListStock listado de estoque desde el snapshot.
func (g *Gateway) ListStock(ctx context.Context, companyID string) ([]entity.StockItem, error) {
	return load(ctx, g, companyID, "stock", func(ctx context.Context) ([]entity.StockItem, error) {
		return g.src.Stock.ListStock(ctx, companyID)
	})
}

// ListServiceNotes listado de notas de servicio desde el snapshot.
func (g *Gateway) ListServiceNotes(ctx context.Context, companyID string) ([]entity.ServiceNote, error) {
	return load(ctx, g, companyID, "services", func(ctx context.Context) ([]entity.ServiceNote, error) {
		return g.src.ServiceNotes.ListServiceNotes(ctx, companyID)
	})
}

// UpdateInvoiceTag actualiza en el ERP y, si tuvo éxito, refleja el nuevo tipo
// en los snapshots de notas de la empresa (copia y reemplazo, nunca en sitio).
func (g *Gateway) UpdateInvoiceTag(ctx context.Context, companyID, invoiceID string, tag entity.InvoiceTag) error {
	if err := g.src.Invoices.UpdateInvoiceTag(ctx, companyID, invoiceID, tag); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for key := range g.keys[companyID] {
		v, ok := g.cache.Get(key)
		if !ok {
			continue
		}
		invs, ok := v.([]entity.Invoice)
		if !ok {
			continue
		}
		for i := range invs {
			if invs[i].ID != invoiceID {
				continue
			}
			patched := append([]entity.Invoice(nil), invs...)
			patched[i].Tag = tag
			g.cache.Replace(key, patched)
			break
		}
	}
	return nil
}
