package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/painel-bi/internal/domain/calendar"
)

func TestParseDate_FormatosAceptados(t *testing.T) {
	want := calendar.Day(2025, time.March, 14)
	for _, in := range []string{"2025-03-14", "2025-03-14T23:59:00-03:00", "2025-03-14 08:00:00", "14/03/2025"} {
		got, ok := calendar.ParseDate(in)
		require.True(t, ok, "entrada %q debe ser válida", in)
		assert.True(t, want.Equal(got), "entrada %q: obtenido %s", in, got)
	}
}

// Una hora cercana a medianoche con zona negativa no debe mover el día.
func TestParseDate_SinDesplazamientoDeZona(t *testing.T) {
	got, ok := calendar.ParseDate("2025-01-31T23:30:00-03:00")
	require.True(t, ok)
	assert.Equal(t, 31, got.Day())
	assert.Equal(t, time.January, got.Month())
}

func TestParseDate_Invalidas(t *testing.T) {
	for _, in := range []string{"", "2025", "2025-13-01", "2025-02-30", "hoy", "2025/03/14", "2025-03-14X"} {
		_, ok := calendar.ParseDate(in)
		assert.False(t, ok, "entrada %q debe ser inválida", in)
	}
}

func TestDaysBetween(t *testing.T) {
	a := calendar.Day(2025, time.January, 1)
	b := calendar.Day(2025, time.April, 1)
	assert.Equal(t, 90, calendar.DaysBetween(a, b))
	assert.Equal(t, -90, calendar.DaysBetween(b, a))
}

func TestQuadrimester(t *testing.T) {
	months := calendar.Quadrimester(calendar.Day(2025, time.June, 10))
	require.Len(t, months, 4)
	assert.Equal(t, time.May, months[0].Month)
	assert.Equal(t, time.August, months[3].Month)

	months = calendar.Quadrimester(calendar.Day(2025, time.December, 31))
	assert.Equal(t, time.September, months[0].Month)
}

func TestMonth_LabelYUltimoDia(t *testing.T) {
	m := calendar.Month{Year: 2024, Month: time.February}
	assert.Equal(t, "fev/2024", m.Label())
	assert.Equal(t, "2024-02", m.Key())
	assert.Equal(t, 29, m.Last().Day())
	assert.Equal(t, calendar.Month{Year: 2025, Month: time.January}, calendar.Month{Year: 2024, Month: time.December}.Next())
}

func TestResolvePreset(t *testing.T) {
	today := calendar.Day(2025, time.March, 14)

	p, err := calendar.ResolvePreset(calendar.PresetAll, "", "", today)
	require.NoError(t, err)
	assert.True(t, p.Unbounded())

	p, err = calendar.ResolvePreset(calendar.PresetLast7, "", "", today)
	require.NoError(t, err)
	assert.True(t, p.Contains(calendar.Day(2025, time.March, 7)))
	assert.False(t, p.Contains(calendar.Day(2025, time.March, 6)))

	p, err = calendar.ResolvePreset(calendar.PresetYear, "", "", today)
	require.NoError(t, err)
	assert.True(t, p.Contains(calendar.Day(2025, time.January, 1)))
	assert.False(t, p.Contains(calendar.Day(2024, time.December, 31)))

	p, err = calendar.ResolvePreset(calendar.PresetCustom, "2025-02-01", "", today)
	require.NoError(t, err)
	assert.Nil(t, p.End, "extremo final abierto")
	assert.True(t, p.Contains(calendar.Day(2030, time.January, 1)))

	_, err = calendar.ResolvePreset(calendar.PresetCustom, "2025-03-01", "2025-02-01", today)
	assert.Error(t, err)

	_, err = calendar.ResolvePreset("semana", "", "", today)
	assert.Error(t, err)
}

func TestPeriod_ExtremosInclusivos(t *testing.T) {
	s := calendar.Day(2025, time.March, 1)
	e := calendar.Day(2025, time.March, 31)
	p := calendar.Period{Start: &s, End: &e}
	assert.True(t, p.Contains(s))
	assert.True(t, p.Contains(e))
	assert.False(t, p.Contains(e.AddDate(0, 0, 1)))
}
