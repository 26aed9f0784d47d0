package metrics

import "github.com/shopspring/decimal"

// Tier franja de bonificación sobre la meta.
type Tier struct {
	Name       string
	Factor     decimal.Decimal
	BonusLabel string
}

// Tiers franjas en orden creciente: 90 %, 120 % y 140 % de la meta.
var Tiers = []Tier{
	{Name: "bronze", Factor: decimal.RequireFromString("0.9"), BonusLabel: "55%"},
	{Name: "prata", Factor: decimal.RequireFromString("1.2"), BonusLabel: "85%"},
	{Name: "ouro", Factor: decimal.RequireFromString("1.4"), BonusLabel: "100%"},
}

// TierProgress avance del total contra una franja.
type TierProgress struct {
	Tier      Tier
	Goal      decimal.Decimal
	Progress  decimal.Decimal // porcentaje 0..100
	Remaining decimal.Decimal
	Reached   bool
}

var hundred = decimal.NewFromInt(100)

// Progress porcentaje de total sobre goal, acotado a [0, 100]. Con goal cero o
// negativo el progreso es cero.
func Progress(total, goal decimal.Decimal) decimal.Decimal {
	if !goal.IsPositive() {
		return decimal.Zero
	}
	p := total.Div(goal).Mul(hundred)
	if p.GreaterThan(hundred) {
		p = hundred
	}
	if p.IsNegative() {
		p = decimal.Zero
	}
	return p.Round(1)
}

// TargetProgress avance contra las tres franjas de target.
func TargetProgress(total, target decimal.Decimal) []TierProgress {
	out := make([]TierProgress, 0, len(Tiers))
	for _, t := range Tiers {
		goal := target.Mul(t.Factor).Round(2)
		remaining := goal.Sub(total)
		reached := goal.IsPositive() && !remaining.IsPositive()
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		out = append(out, TierProgress{
			Tier:      t,
			Goal:      goal,
			Progress:  Progress(total, goal),
			Remaining: remaining.Round(2),
			Reached:   reached,
		})
	}
	return out
}
