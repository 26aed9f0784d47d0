package dto

import "github.com/shopspring/decimal"

// StockReportRequest filtros de GET /api/stock/report.
type StockReportRequest struct {
	Codes   []string `query:"codes"`
	Status  string   `query:"status"`  // todos | A | I
	Balance string   `query:"balance"` // todos | comSaldo | semSaldo | negativo
	Quick   string   `query:"quick"`   // nenhum | rapido
	Search  string   `query:"search"`
	Sort    string   `query:"sort"` // nome | codigo | preco | saldo | situacao
	Order   string   `query:"order"`
	Page    int      `query:"page"`
}

// StockRowDTO fila de la tabla de estoque.
type StockRowDTO struct {
	ID      string          `json:"id"`
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Unit    string          `json:"unit"`
	Price   decimal.Decimal `json:"price"`
	Balance decimal.Decimal `json:"balance"`
	Value   decimal.Decimal `json:"value"`
	Status  string          `json:"status"`
}

// StockKPIsDTO indicadores de estoque.
type StockKPIsDTO struct {
	ActiveCount      int             `json:"active_count"`
	ZeroBalanceCount int             `json:"zero_balance_count"`
	TotalValue       decimal.Decimal `json:"total_value"`
	TopItem          *GroupDTO       `json:"top_item"`
}

// StockChartsDTO gráficos de estoque.
type StockChartsDTO struct {
	TopByValue   []GroupDTO `json:"top_by_value"`
	Distribution []GroupDTO `json:"distribution"`
	ByStatus     []GroupDTO `json:"by_status"`
}

// StockReportDTO respuesta de GET /api/stock/report.
type StockReportDTO struct {
	KPIs       StockKPIsDTO   `json:"kpis"`
	Charts     StockChartsDTO `json:"charts"`
	Options    []OptionDTO    `json:"options"`
	QuickCodes []string       `json:"quick_codes"`
	Rows       []StockRowDTO  `json:"rows"`
	Page       PageMeta       `json:"page"`
}

// PurchaseLineRequest línea pedida.
type PurchaseLineRequest struct {
	Code     string          `json:"code"`
	Quantity decimal.Decimal `json:"quantity"`
}

// PurchaseRequest cuerpo de POST /api/stock/purchase-request.
type PurchaseRequest struct {
	Notes string                `json:"notes"`
	Lines []PurchaseLineRequest `json:"lines"`
}
