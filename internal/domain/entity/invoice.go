package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceTag clasificación comercial de una nota fiscal de venta.
type InvoiceTag string

// Valores admitidos para el tipo de la nota. El vacío significa "sin clasificar".
const (
	TagNone     InvoiceTag = ""
	TagOutbound InvoiceTag = "Outbound"
	TagInbound  InvoiceTag = "Inbound"
	TagReCompra InvoiceTag = "ReCompra"
)

// Valid indica si el tipo es uno de los tres asignables.
func (t InvoiceTag) Valid() bool {
	switch t {
	case TagOutbound, TagInbound, TagReCompra:
		return true
	}
	return false
}

// Invoice nota fiscal de venta ya normalizada.
// IssueDate es un día de calendario a las 00:00 UTC, sin hora.
type Invoice struct {
	ID            string
	Number        string
	IssueDate     time.Time
	Total         decimal.Decimal
	ProductsTotal decimal.Decimal
	Customer      *InvoiceCustomer // nil si la nota no trae cliente
	SellerName    string
	Tag           InvoiceTag
	Items         []InvoiceItem
	Notes         string
}

// CustomerName nombre del cliente o vacío si la nota no trae cliente.
func (i Invoice) CustomerName() string {
	if i.Customer == nil {
		return ""
	}
	return i.Customer.Name
}

// CustomerTaxID CPF/CNPJ tal como viene en la nota.
func (i Invoice) CustomerTaxID() string {
	if i.Customer == nil {
		return ""
	}
	return i.Customer.TaxID
}

// InvoiceCustomer datos del cliente embebidos en la nota.
type InvoiceCustomer struct {
	ID    string
	Name  string
	TaxID string
	Email string
	Phone string
}

// InvoiceItem línea de producto de la nota.
type InvoiceItem struct {
	Description string
	Code        string
	Quantity    decimal.Decimal
	UnitValue   decimal.Decimal
	TotalValue  decimal.Decimal
}
