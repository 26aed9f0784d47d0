package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-bi/internal/application/ports"
	"github.com/jhoicas/painel-bi/internal/application/usecase"
	"github.com/jhoicas/painel-bi/internal/domain"
	"github.com/jhoicas/painel-bi/internal/domain/calendar"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
	"github.com/jhoicas/painel-bi/internal/domain/repository"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, dd int) time.Time { return calendar.Day(y, m, dd) }

// hoy fijo: 15/04/2025
var fixedClock = usecase.Clock{
	Now:      func() time.Time { return time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC) },
	Location: time.UTC,
}

type fakeInvoices struct {
	mu     sync.Mutex
	list   []entity.Invoice
	err    error
	tagErr error
	tagged map[string]entity.InvoiceTag
}

func (f *fakeInvoices) ListInvoices(ctx context.Context, companyID string, q repository.InvoiceQuery) ([]entity.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeInvoices) UpdateInvoiceTag(ctx context.Context, companyID, id string, tag entity.InvoiceTag) error {
	if f.tagErr != nil {
		return f.tagErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tagged == nil {
		f.tagged = make(map[string]entity.InvoiceTag)
	}
	f.tagged[id] = tag
	return nil
}

type fakeCustomers struct {
	list []entity.Customer
	err  error
}

func (f *fakeCustomers) ListCustomers(ctx context.Context, companyID string) ([]entity.Customer, error) {
	return f.list, f.err
}

type fakeStock struct {
	list []entity.StockItem
	err  error
}

func (f *fakeStock) ListStock(ctx context.Context, companyID string) ([]entity.StockItem, error) {
	return f.list, f.err
}

type fakeServices struct {
	list []entity.ServiceNote
	err  error
}

func (f *fakeServices) ListServiceNotes(ctx context.Context, companyID string) ([]entity.ServiceNote, error) {
	return f.list, f.err
}

type fakeConfig struct {
	mu        sync.Mutex
	entries   []entity.ConfigEntry
	listCalls int
	updateErr error
}

func (f *fakeConfig) ListConfig(ctx context.Context, companyID string) ([]entity.ConfigEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return append([]entity.ConfigEntry(nil), f.entries...), nil
}

func (f *fakeConfig) UpdateConfig(ctx context.Context, companyID, key, value string) (*entity.ConfigEntry, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].Key == key {
			f.entries[i].Value = value
			e := f.entries[i]
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakePDF struct {
	reports   []ports.ReportDocument
	purchases []ports.PurchaseRequestDocument
}

func (f *fakePDF) GenerateReportPDF(ctx context.Context, doc ports.ReportDocument) ([]byte, error) {
	f.reports = append(f.reports, doc)
	return []byte("%PDF-report"), nil
}

func (f *fakePDF) GeneratePurchaseRequestPDF(ctx context.Context, doc ports.PurchaseRequestDocument) ([]byte, error) {
	f.purchases = append(f.purchases, doc)
	return []byte("%PDF-compra"), nil
}

type fakeXLSX struct {
	tables []ports.Table
}

func (f *fakeXLSX) ExportTable(ctx context.Context, t ports.Table) ([]byte, error) {
	f.tables = append(f.tables, t)
	return []byte("PK"), nil
}

func invoice(id string, date time.Time, total, customer, taxID, seller string, items ...entity.InvoiceItem) entity.Invoice {
	inv := entity.Invoice{ID: id, Number: id, IssueDate: date, Total: d(total), SellerName: seller, Items: items}
	if customer != "" || taxID != "" {
		inv.Customer = &entity.InvoiceCustomer{Name: customer, TaxID: taxID}
	}
	return inv
}

func item(desc, code, total string) entity.InvoiceItem {
	return entity.InvoiceItem{Description: desc, Code: code, Quantity: d("1"), UnitValue: d(total), TotalValue: d(total)}
}
