package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jhoicas/painel-bi/internal/domain/calendar"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
	"github.com/jhoicas/painel-bi/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*Client)(nil)

// ListInvoices GET /notas_fiscais con el rango de emisión y los filtros de
// natureza de operação y situação configurados.
func (c *Client) ListInvoices(ctx context.Context, companyID string, q repository.InvoiceQuery) ([]entity.Invoice, error) {
	params := url.Values{}
	if q.Start != nil {
		params.Set("data_inicio", q.Start.Format("2006-01-02"))
	}
	if q.End != nil {
		params.Set("data_fim", q.End.Format("2006-01-02"))
	}
	for _, op := range c.cfg.OperationTypes {
		params.Add("natureza_operacao", op)
	}
	if c.cfg.InvoiceStatus != "" {
		params.Set("descricao_situacao", c.cfg.InvoiceStatus)
	}

	raws, err := c.list(ctx, c.cfg.InvoicesPath, params)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Invoice, 0, len(raws))
	q8 := newQuarantine(c.log, "notas_fiscais", companyID)
	for _, raw := range raws {
		var w wireInvoice
		if err := json.Unmarshal(raw, &w); err != nil {
			q8.add("", err.Error())
			continue
		}
		inv, reason := toInvoice(w)
		if reason != "" {
			q8.add(w.ID.String(), reason)
			continue
		}
		out = append(out, inv)
	}
	q8.flush()
	return out, nil
}

// UpdateInvoiceTag PATCH /notas_fiscais/{id}/tipo.
func (c *Client) UpdateInvoiceTag(ctx context.Context, companyID, invoiceID string, tag entity.InvoiceTag) error {
	path := fmt.Sprintf("%s/%s/tipo", c.cfg.InvoicesPath, url.PathEscape(invoiceID))
	body := map[string]string{"tipo": string(tag)}
	if err := c.do(ctx, http.MethodPatch, path, nil, body, nil); err != nil {
		return err
	}
	c.log.Info().Str("company_id", companyID).Str("invoice_id", invoiceID).Str("tipo", string(tag)).Msg("tipo de nota actualizado")
	return nil
}

func toInvoice(w wireInvoice) (entity.Invoice, string) {
	if w.ID == "" {
		return entity.Invoice{}, "sin id"
	}
	day, ok := calendar.ParseDate(w.DataEmissao)
	if !ok {
		return entity.Invoice{}, fmt.Sprintf("data_emissao ilegible %q", w.DataEmissao)
	}

	inv := entity.Invoice{
		ID:            w.ID.String(),
		Number:        w.Numero.String(),
		IssueDate:     day,
		Total:         w.ValorNota.Decimal,
		ProductsTotal: w.ValorProdutos.Decimal,
		SellerName:    strings.TrimSpace(w.NomeVendedor),
		Notes:         w.Observacoes,
		Items:         make([]entity.InvoiceItem, 0, len(w.Itens)),
	}
	if w.Tipo != nil {
		if t := entity.InvoiceTag(strings.TrimSpace(*w.Tipo)); t.Valid() {
			inv.Tag = t
		}
	}
	if w.Cliente != nil {
		inv.Customer = &entity.InvoiceCustomer{
			ID:    w.Cliente.ID.String(),
			Name:  strings.TrimSpace(w.Cliente.Nome),
			TaxID: w.Cliente.CPFCNPJ.String(),
			Email: strings.TrimSpace(w.Cliente.Email),
			Phone: firstNonEmpty(w.Cliente.Fone, w.Cliente.Telefone),
		}
	}
	for _, it := range w.Itens {
		inv.Items = append(inv.Items, entity.InvoiceItem{
			Description: strings.TrimSpace(it.Descricao),
			Code:        it.Codigo.String(),
			Quantity:    it.Quantidade.Decimal,
			UnitValue:   it.ValorUnitario.Decimal,
			TotalValue:  it.ValorTotal.Decimal,
		})
	}
	return inv, ""
}
