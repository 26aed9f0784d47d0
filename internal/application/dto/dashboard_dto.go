package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Facturación del cuatrimestre en curso (notas de venta + servicio) contra la meta.
type DashboardSummaryDTO struct {
	Quadrimester string              `json:"quadrimester"` // ej: "jan/2026 - abr/2026"
	Months       []DashboardMonthDTO `json:"months"`
	SalesTotal   decimal.Decimal     `json:"sales_total"`
	ServiceTotal decimal.Decimal     `json:"service_total"`
	Total        decimal.Decimal     `json:"total"`
	Target       decimal.Decimal     `json:"target"`
	Tiers        []DashboardTierDTO  `json:"tiers"`
	AnimateGoal  bool                `json:"animate_goal"`
	User         DashboardUserDTO    `json:"user"`
}

// DashboardMonthDTO facturación de un mes del cuatrimestre.
type DashboardMonthDTO struct {
	Month    string          `json:"month"`
	Label    string          `json:"label"`
	Sales    decimal.Decimal `json:"sales"`
	Services decimal.Decimal `json:"services"`
	Total    decimal.Decimal `json:"total"`
}

// DashboardTierDTO avance contra una franja de bonificación.
type DashboardTierDTO struct {
	Name       string          `json:"name"`
	BonusLabel string          `json:"bonus_label"`
	Goal       decimal.Decimal `json:"goal"`
	Progress   decimal.Decimal `json:"progress"` // 0..100
	Remaining  decimal.Decimal `json:"remaining"`
	Reached    bool            `json:"reached"`
}

// DashboardUserDTO usuario que consulta.
type DashboardUserDTO struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
