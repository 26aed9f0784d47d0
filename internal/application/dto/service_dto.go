package dto

import "github.com/shopspring/decimal"

// ServiceReportRequest filtros de GET /api/services/report.
type ServiceReportRequest struct {
	Preset string   `query:"preset"`
	From   string   `query:"from"`
	To     string   `query:"to"`
	Payers []string `query:"payers"` // "razão (cnpj)"
	Cities []string `query:"cities"` // "cidade/UF"
	Types  []string `query:"types"`
	Search string   `query:"search"`
	Sort   string   `query:"sort"` // data_emissao | numero | cliente | valor | cidade
	Order  string   `query:"order"`
	Page   int      `query:"page"`
}

// ServiceRowDTO fila de la tabla de notas de servicio.
type ServiceRowDTO struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	IssueDate     string          `json:"issue_date"`
	PayerName     string          `json:"payer_name"`
	PayerTaxID    string          `json:"payer_tax_id"`
	City          string          `json:"city"`
	ServiceType   string          `json:"service_type"`
	ServiceValue  decimal.Decimal `json:"service_value"`
	ReceivedValue decimal.Decimal `json:"received_value"`
	ISSValue      decimal.Decimal `json:"iss_value"`
	Status        string          `json:"status"`
}

// ServiceKPIsDTO indicadores de servicios.
type ServiceKPIsDTO struct {
	Total         decimal.Decimal `json:"total"`
	Count         int             `json:"count"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	TopPayer      *GroupDTO       `json:"top_payer"`
}

// ServiceChartsDTO gráficos de servicios.
type ServiceChartsDTO struct {
	Monthly   []MonthPointDTO `json:"monthly"`
	TopPayers []GroupDTO      `json:"top_payers"`
	TopCities []GroupDTO      `json:"top_cities"`
}

// ServiceOptionsDTO valores disponibles para los filtros.
type ServiceOptionsDTO struct {
	Payers []OptionDTO `json:"payers"`
	Cities []OptionDTO `json:"cities"`
	Types  []OptionDTO `json:"types"`
}

// ServiceReportDTO respuesta de GET /api/services/report.
type ServiceReportDTO struct {
	Period  PeriodDTO         `json:"period"`
	KPIs    ServiceKPIsDTO    `json:"kpis"`
	Charts  ServiceChartsDTO  `json:"charts"`
	Options ServiceOptionsDTO `json:"options"`
	Rows    []ServiceRowDTO   `json:"rows"`
	Page    PageMeta          `json:"page"`
}
