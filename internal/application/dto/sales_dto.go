package dto

import "github.com/shopspring/decimal"

// SalesReportRequest filtros de GET /api/sales/report.
type SalesReportRequest struct {
	Preset    string   `query:"preset"`
	From      string   `query:"from"`
	To        string   `query:"to"`
	Customers []string `query:"customers"`
	Sellers   []string `query:"sellers"`
	Products  []string `query:"products"`
	Search    string   `query:"search"`
	Sort      string   `query:"sort"`  // data_emissao | cliente | valor | vendedor
	Order     string   `query:"order"` // asc | desc
	Page      int      `query:"page"`
}

// SellerReportRequest filtros de GET /api/seller/report. El vendedor sale del token.
type SellerReportRequest struct {
	Preset   string   `query:"preset"`
	From     string   `query:"from"`
	To       string   `query:"to"`
	Products []string `query:"products"`
	Search   string   `query:"search"`
	Sort     string   `query:"sort"` // además: tipo
	Order    string   `query:"order"`
	Page     int      `query:"page"`
}

// UpdateTagRequest cuerpo de PATCH /api/seller/invoices/:id/tag.
type UpdateTagRequest struct {
	Tag string `json:"tag"`
}

// InvoiceItemDTO línea de una nota.
type InvoiceItemDTO struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unit_value"`
	TotalValue  decimal.Decimal `json:"total_value"`
}

// InvoiceRowDTO fila de la tabla de ventas.
type InvoiceRowDTO struct {
	ID            string           `json:"id"`
	Number        string           `json:"number"`
	IssueDate     string           `json:"issue_date"`
	CustomerName  string           `json:"customer_name"`
	CustomerTaxID string           `json:"customer_tax_id"`
	SellerName    string           `json:"seller_name"`
	Total         decimal.Decimal  `json:"total"`
	Tag           string           `json:"tag"`
	Items         []InvoiceItemDTO `json:"items"`
}

// SalesKPIsDTO indicadores de ventas.
type SalesKPIsDTO struct {
	TotalBilled   decimal.Decimal `json:"total_billed"`
	SalesCount    int             `json:"sales_count"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	BestProduct   *GroupDTO       `json:"best_product"`
}

// SalesChartsDTO gráficos de ventas. TopSellers queda vacío en la vista del vendedor.
type SalesChartsDTO struct {
	Monthly      []MonthPointDTO `json:"monthly"`
	TopProducts  []GroupDTO      `json:"top_products"`
	TopSellers   []GroupDTO      `json:"top_sellers,omitempty"`
	TopCustomers []GroupDTO      `json:"top_customers"`
}

// SalesOptionsDTO valores disponibles para los filtros.
type SalesOptionsDTO struct {
	Customers []OptionDTO `json:"customers,omitempty"`
	Sellers   []OptionDTO `json:"sellers,omitempty"`
	Products  []OptionDTO `json:"products"`
}

// SalesReportDTO respuesta de los reportes de ventas y del vendedor.
type SalesReportDTO struct {
	Period  PeriodDTO       `json:"period"`
	KPIs    SalesKPIsDTO    `json:"kpis"`
	Charts  SalesChartsDTO  `json:"charts"`
	Options SalesOptionsDTO `json:"options"`
	Rows    []InvoiceRowDTO `json:"rows"`
	Page    PageMeta        `json:"page"`
}
