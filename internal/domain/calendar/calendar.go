// Package calendar trabaja con días de calendario (sin hora ni zona) y meses.
// Todas las fechas que produce están a las 00:00 UTC: un día se compara con otro
// sin que la zona horaria del servidor lo desplace.
package calendar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Day construye el día de calendario a las 00:00 UTC.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today día de calendario de now en la zona loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	n := now.In(loc)
	return Day(n.Year(), n.Month(), n.Day())
}

// ParseDate interpreta "2006-01-02" (con o sin hora a continuación) o "02/01/2006"
// descomponiendo año, mes y día. Devuelve false si el texto no es una fecha válida.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 10 {
		return time.Time{}, false
	}
	head := s[:10]

	var y, m, d string
	switch {
	case head[4] == '-' && head[7] == '-':
		y, m, d = head[0:4], head[5:7], head[8:10]
	case head[2] == '/' && head[5] == '/':
		d, m, y = head[0:2], head[3:5], head[6:10]
	default:
		return time.Time{}, false
	}
	if len(s) > 10 && s[10] != 'T' && s[10] != ' ' {
		return time.Time{}, false
	}

	year, err1 := strconv.Atoi(y)
	month, err2 := strconv.Atoi(m)
	day, err3 := strconv.Atoi(d)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := Day(year, time.Month(month), day)
	// 31/02 se normalizaría a marzo
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// DaysBetween días completos de from a to (negativo si to es anterior).
func DaysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// EndOfDay último instante del día de calendario d.
func EndOfDay(d time.Time) time.Time {
	return d.Add(24*time.Hour - time.Nanosecond)
}

var monthAbbr = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Month identifica un mes de calendario.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf mes al que pertenece t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Key forma ordenable "2025-03".
func (m Month) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label etiqueta corta en portugués: "mar/2025".
func (m Month) Label() string {
	return fmt.Sprintf("%s/%d", monthAbbr[m.Month-1], m.Year)
}

// Name nombre completo del mes: "Março".
func (m Month) Name() string {
	return monthNames[m.Month-1]
}

// Before orden cronológico.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// Next mes siguiente.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// First primer día del mes.
func (m Month) First() time.Time {
	return Day(m.Year, m.Month, 1)
}

// Last último día del mes.
func (m Month) Last() time.Time {
	return m.Next().First().AddDate(0, 0, -1)
}

// Quadrimester devuelve los cuatro meses del cuatrimestre que contiene day
// (ene–abr, may–ago, sep–dic).
func Quadrimester(day time.Time) []Month {
	start := time.Month((int(day.Month())-1)/4*4 + 1)
	m := Month{Year: day.Year(), Month: start}
	out := make([]Month, 0, 4)
	for i := 0; i < 4; i++ {
		out = append(out, m)
		m = m.Next()
	}
	return out
}
