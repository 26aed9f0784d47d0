package metrics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/painel-bi/internal/domain/calendar"
	"github.com/jhoicas/painel-bi/internal/domain/metrics"
)

type rec struct {
	who   string
	value decimal.Decimal
	date  time.Time
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func keyWho(r rec) (string, string) { return r.who, r.who }
func valueOf(r rec) decimal.Decimal { return r.value }
func dateOf(r rec) time.Time { return r.date }

func records() []rec {
	return []rec{
		{"ana", d("100.50"), calendar.Day(2025, time.March, 3)},
		{"bia", d("200.25"), calendar.Day(2025, time.March, 15)},
		{"ana", d("49.25"), calendar.Day(2025, time.January, 30)},
		{"caio", d("10"), calendar.Day(2025, time.February, 1)},
		{"duda", d("10"), calendar.Day(2025, time.February, 2)},
	}
}

// La suma de los grupos es igual a la suma de los registros.
func TestGroupBy_Conservacion(t *testing.T) {
	items := records()
	groups := metrics.GroupBy(items, keyWho, valueOf)

	total := decimal.Zero
	count := 0
	for _, g := range groups {
		total = total.Add(g.Total)
		count += g.Count
	}
	assert.True(t, metrics.Sum(items, valueOf).Equal(total))
	assert.Equal(t, len(items), count)
	assert.Equal(t, "ana", groups[0].Key, "orden de aparición")
	assert.True(t, d("74.88").Equal(groups[0].Average))
}

func TestAverage_ConteoCero(t *testing.T) {
	assert.True(t, metrics.Average(d("123"), 0).IsZero())
	assert.True(t, metrics.Average(decimal.Zero, 0).IsZero())
	assert.True(t, d("116.67").Equal(metrics.Average(d("350.00"), 3)))
}

func TestTopN_EstableYTruncado(t *testing.T) {
	groups := metrics.GroupBy(records(), keyWho, valueOf)
	top := metrics.TopN(groups, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "bia", top[0].Key)
	assert.Equal(t, "ana", top[1].Key)
	assert.Equal(t, "caio", top[2].Key, "empate conserva orden de aparición")
}

func TestTopNWithOthers(t *testing.T) {
	groups := metrics.GroupBy(records(), keyWho, valueOf)
	top := metrics.TopNWithOthers(groups, 2)
	require.Len(t, top, 3)
	assert.Equal(t, metrics.OthersLabel, top[2].Label)
	assert.True(t, d("20").Equal(top[2].Total))

	top = metrics.TopNWithOthers(groups, 8)
	assert.Len(t, top, 4, "sin resto no hay balde Outros")
}

func TestMonthly_OrdenCronologico(t *testing.T) {
	points := metrics.Monthly(records(), dateOf, valueOf)
	require.Len(t, points, 3)
	assert.Equal(t, time.January, points[0].Month.Month)
	assert.Equal(t, time.March, points[2].Month.Month)
	assert.True(t, d("300.75").Equal(points[2].Total))
}

// Tres notas del mismo mes: total 350.00 y ticket 116.67.
func TestMonthly_EscenarioTicketMedio(t *testing.T) {
	items := []rec{
		{"a", d("100.50"), calendar.Day(2025, time.May, 2)},
		{"b", d("200.25"), calendar.Day(2025, time.May, 17)},
		{"c", d("49.25"), calendar.Day(2025, time.May, 31)},
	}
	points := metrics.Monthly(items, dateOf, valueOf)
	require.Len(t, points, 1)
	assert.Equal(t, "350.00", points[0].Total.StringFixed(2))
	assert.Equal(t, "116.67", metrics.Average(points[0].Total, points[0].Count).StringFixed(2))
}

func TestClassify_Ventana90Dias(t *testing.T) {
	today := calendar.Day(2025, time.June, 30)
	exact := today.AddDate(0, 0, -90)
	older := today.AddDate(0, 0, -91)

	assert.Equal(t, metrics.StatusActive, metrics.Classify(&exact, today))
	assert.Equal(t, metrics.StatusInactive, metrics.Classify(&older, today))
	assert.Equal(t, metrics.StatusInactive, metrics.Classify(nil, today), "sin compras es inactivo")

	c := metrics.CountActivity([]*time.Time{&exact, &older, nil}, today)
	assert.Equal(t, 1, c.Active)
	assert.Equal(t, 2, c.Inactive)
}

func TestTargetProgress(t *testing.T) {
	tiers := metrics.TargetProgress(d("100000"), d("100000"))
	require.Len(t, tiers, 3)

	assert.True(t, d("90000").Equal(tiers[0].Goal))
	assert.True(t, tiers[0].Reached)
	assert.True(t, d("100").Equal(tiers[0].Progress), "el progreso se acota a 100")
	assert.True(t, tiers[0].Remaining.IsZero())

	assert.True(t, d("120000").Equal(tiers[1].Goal))
	assert.False(t, tiers[1].Reached)
	assert.True(t, d("83.3").Equal(tiers[1].Progress))
	assert.True(t, d("20000").Equal(tiers[1].Remaining))
	assert.Equal(t, "85%", tiers[1].Tier.BonusLabel)

	zero := metrics.TargetProgress(d("500"), decimal.Zero)
	assert.True(t, zero[2].Progress.IsZero(), "meta cero no divide")
	assert.False(t, zero[2].Reached)
}
