package entity

import "time"

// Claves de configuración conocidas.
const (
	ConfigKeyTarget      = "META"
	ConfigKeyAnimateGoal = "ANIMACAO_META"
	ConfigKeyQuickCodes  = "CODIGOS_RAPIDOS"
)

// ConfigEntry par clave/valor de configuración editable por administradores.
type ConfigEntry struct {
	ID        string
	Key       string
	Value     string
	UpdatedAt time.Time
}

// DefaultConfig valores iniciales de una empresa nueva.
func DefaultConfig() map[string]string {
	return map[string]string{
		ConfigKeyTarget:      "0",
		ConfigKeyAnimateGoal: "true",
		ConfigKeyQuickCodes:  "",
	}
}
