package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/painel-bi/internal/domain/calendar"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
	"github.com/jhoicas/painel-bi/internal/domain/repository"
)

var (
	_ repository.CustomerRepository    = (*Client)(nil)
	_ repository.StockRepository       = (*Client)(nil)
	_ repository.ServiceNoteRepository = (*Client)(nil)
)

// ListCustomers GET /clientes.
func (c *Client) ListCustomers(ctx context.Context, companyID string) ([]entity.Customer, error) {
	raws, err := c.list(ctx, c.cfg.CustomersPath, nil)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Customer, 0, len(raws))
	q8 := newQuarantine(c.log, "clientes", companyID)
	for _, raw := range raws {
		var w wireCustomer
		if err := json.Unmarshal(raw, &w); err != nil {
			q8.add("", err.Error())
			continue
		}
		if w.ID == "" {
			q8.add("", "sin id")
			continue
		}
		out = append(out, entity.Customer{
			ID:      w.ID.String(),
			Name:    strings.TrimSpace(w.Nome),
			TaxID:   w.CPFCNPJ.String(),
			Email:   strings.TrimSpace(w.Email),
			Phone:   firstNonEmpty(w.Fone, w.Telefone),
			Address: strings.TrimSpace(w.Endereco),
		})
	}
	q8.flush()
	return out, nil
}

// ListStock GET /estoque.
func (c *Client) ListStock(ctx context.Context, companyID string) ([]entity.StockItem, error) {
	raws, err := c.list(ctx, c.cfg.StockPath, nil)
	if err != nil {
		return nil, err
	}
	out := make([]entity.StockItem, 0, len(raws))
	q8 := newQuarantine(c.log, "estoque", companyID)
	for _, raw := range raws {
		var w wireStockItem
		if err := json.Unmarshal(raw, &w); err != nil {
			q8.add("", err.Error())
			continue
		}
		if w.ID == "" {
			q8.add("", "sin id")
			continue
		}
		status := entity.StockInactive
		if strings.EqualFold(strings.TrimSpace(w.Situacao), string(entity.StockActive)) {
			status = entity.StockActive
		}
		out = append(out, entity.StockItem{
			ID:      w.ID.String(),
			Name:    strings.TrimSpace(w.Nome),
			Code:    w.Codigo.String(),
			Unit:    strings.TrimSpace(w.Unidade),
			Price:   w.Preco.Decimal,
			Balance: w.Saldo.Decimal,
			Status:  status,
		})
	}
	q8.flush()
	return out, nil
}

// ListServiceNotes GET /notas_servico.
func (c *Client) ListServiceNotes(ctx context.Context, companyID string) ([]entity.ServiceNote, error) {
	raws, err := c.list(ctx, c.cfg.ServiceNotesPath, nil)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ServiceNote, 0, len(raws))
	q8 := newQuarantine(c.log, "notas_servico", companyID)
	for _, raw := range raws {
		var w wireServiceNote
		if err := json.Unmarshal(raw, &w); err != nil {
			q8.add("", err.Error())
			continue
		}
		if w.ID == "" {
			q8.add("", "sin id")
			continue
		}
		day, ok := calendar.ParseDate(w.DataEmissao)
		if !ok {
			q8.add(w.ID.String(), fmt.Sprintf("data_emissao ilegible %q", w.DataEmissao))
			continue
		}
		out = append(out, entity.ServiceNote{
			ID:            w.ID.String(),
			Number:        w.NumeroNFSe.String(),
			IssueDate:     day,
			ServiceValue:  w.ValorServico.Decimal,
			ReceivedValue: w.ValorTotalRecebido.Decimal,
			ISSValue:      w.ValorISS.Decimal,
			PayerName:     strings.TrimSpace(w.RazaoSocial),
			PayerTaxID:    w.CPFCNPJ.String(),
			PayerEmail:    strings.TrimSpace(w.Email),
			PayerPhone:    w.Telefone.String(),
			City:          strings.TrimSpace(w.Cidade),
			State:         strings.TrimSpace(w.UF),
			Description:   strings.TrimSpace(w.Discriminacao),
			Status:        strings.TrimSpace(w.Status),
		})
	}
	q8.flush()
	return out, nil
}
