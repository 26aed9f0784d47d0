package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageMeta metadatos de la página devuelta.
type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// PeriodDTO período efectivo aplicado (YYYY-MM-DD); nil = extremo abierto.
type PeriodDTO struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

// GroupDTO un grupo de un ranking o distribución.
type GroupDTO struct {
	Key     string          `json:"key"`
	Label   string          `json:"label"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Average decimal.Decimal `json:"average"`
}

// MonthPointDTO punto de una serie mensual.
type MonthPointDTO struct {
	Month string          `json:"month"` // 2025-03
	Label string          `json:"label"` // mar/2025
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// OptionDTO opción de un filtro de selección múltiple.
type OptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SeriesDTO serie mensual con nombre (evolución por cliente).
type SeriesDTO struct {
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Points []MonthPointDTO `json:"points"`
}
