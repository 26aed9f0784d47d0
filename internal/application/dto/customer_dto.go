package dto

import "github.com/shopspring/decimal"

// CustomerReportRequest filtros de GET /api/customers/report.
type CustomerReportRequest struct {
	Preset    string   `query:"preset"`
	From      string   `query:"from"`
	To        string   `query:"to"`
	Sellers   []string `query:"sellers"`
	Products  []string `query:"products"`  // "descricao (codigo)"
	Customers []string `query:"customers"` // CPF/CNPJ con o sin puntuación
	Search    string   `query:"search"`
	Sort      string   `query:"sort"` // nome | ultimaCompra | totalComprado | numeroCompras | status
	Order     string   `query:"order"`
	Page      int      `query:"page"`
}

// CustomerRowDTO cliente con sus compras en el período.
type CustomerRowDTO struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	TaxID          string          `json:"tax_id"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	LastPurchase   *string         `json:"last_purchase"`
	DaysSinceLast  *int            `json:"days_since_last_purchase"`
	TotalPurchased decimal.Decimal `json:"total_purchased"`
	PurchaseCount  int             `json:"purchase_count"`
	AverageTicket  decimal.Decimal `json:"average_ticket"`
	Status         string          `json:"status"`
}

// CustomerKPIsDTO indicadores de clientes.
type CustomerKPIsDTO struct {
	Active            int             `json:"active"`
	Inactive          int             `json:"inactive"`
	TopCustomer       *GroupDTO       `json:"top_customer"`
	MeanAverageTicket decimal.Decimal `json:"mean_average_ticket"`
	PeriodBilling     decimal.Decimal `json:"period_billing"`
	WithPurchases     int             `json:"with_purchases"`
	WithoutPurchases  int             `json:"without_purchases"`
}

// CustomerChartsDTO gráficos de clientes.
type CustomerChartsDTO struct {
	Ranking      []GroupDTO  `json:"ranking"`
	Evolution    []SeriesDTO `json:"evolution"`
	Distribution []GroupDTO  `json:"distribution"`
}

// CustomerOptionsDTO valores disponibles para los filtros.
type CustomerOptionsDTO struct {
	Customers []OptionDTO `json:"customers"`
	Sellers   []OptionDTO `json:"sellers"`
	Products  []OptionDTO `json:"products"`
}

// CustomerReportDTO respuesta de GET /api/customers/report.
type CustomerReportDTO struct {
	Period  PeriodDTO          `json:"period"`
	KPIs    CustomerKPIsDTO    `json:"kpis"`
	Charts  CustomerChartsDTO  `json:"charts"`
	Options CustomerOptionsDTO `json:"options"`
	Rows    []CustomerRowDTO   `json:"rows"`
	Page    PageMeta           `json:"page"`
}
