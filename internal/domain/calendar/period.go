package calendar

import (
	"fmt"
	"time"
)

// Preset período predefinido de los filtros de fecha.
type Preset string

const (
	PresetLast7     Preset = "7dias"
	PresetLast30    Preset = "30dias"
	PresetYear      Preset = "anoAtual"
	PresetAll       Preset = "todos"
	PresetCustom    Preset = "custom"
	PresetUndefined Preset = ""
)

// Period rango de días inclusivo. Un extremo nil no acota ese lado.
type Period struct {
	Start *time.Time
	End   *time.Time
}

// Unbounded indica que el período no restringe nada.
func (p Period) Unbounded() bool {
	return p.Start == nil && p.End == nil
}

// Contains indica si el día d cae en el período. Ambos extremos son inclusivos.
func (p Period) Contains(d time.Time) bool {
	if p.Start != nil && d.Before(*p.Start) {
		return false
	}
	if p.End != nil && d.After(*p.End) {
		return false
	}
	return true
}

// ResolvePreset traduce un preset a un período relativo a today. En "custom"
// se usan start y end (vacíos = extremo abierto).
func ResolvePreset(preset Preset, start, end string, today time.Time) (Period, error) {
	switch preset {
	case PresetAll, PresetUndefined:
		if preset == PresetUndefined && (start != "" || end != "") {
			return customPeriod(start, end)
		}
		return Period{}, nil
	case PresetLast7:
		s := today.AddDate(0, 0, -7)
		return Period{Start: &s, End: &today}, nil
	case PresetLast30:
		s := today.AddDate(0, 0, -30)
		return Period{Start: &s, End: &today}, nil
	case PresetYear:
		s := Day(today.Year(), time.January, 1)
		return Period{Start: &s, End: &today}, nil
	case PresetCustom:
		return customPeriod(start, end)
	default:
		return Period{}, fmt.Errorf("período desconocido %q", preset)
	}
}

func customPeriod(start, end string) (Period, error) {
	var p Period
	if start != "" {
		s, ok := ParseDate(start)
		if !ok {
			return Period{}, fmt.Errorf("fecha inicial inválida %q", start)
		}
		p.Start = &s
	}
	if end != "" {
		e, ok := ParseDate(end)
		if !ok {
			return Period{}, fmt.Errorf("fecha final inválida %q", end)
		}
		p.End = &e
	}
	if p.Start != nil && p.End != nil && p.End.Before(*p.Start) {
		return Period{}, fmt.Errorf("la fecha final es anterior a la inicial")
	}
	return p, nil
}
