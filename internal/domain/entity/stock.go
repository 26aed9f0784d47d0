package entity

import "github.com/shopspring/decimal"

// StockStatus situación del producto en el ERP.
type StockStatus string

const (
	StockActive   StockStatus = "A"
	StockInactive StockStatus = "I"
)

// StockItem producto del estoque. Balance puede ser negativo.
type StockItem struct {
	ID      string
	Name    string
	Code    string
	Unit    string
	Price   decimal.Decimal
	Balance decimal.Decimal
	Status  StockStatus
}

// Value saldo × precio.
func (s StockItem) Value() decimal.Decimal {
	return s.Balance.Mul(s.Price)
}
