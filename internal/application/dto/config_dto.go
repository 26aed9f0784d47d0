package dto

import "time"

// ConfigEntryDTO entrada de configuración.
type ConfigEntryDTO struct {
	ID        string     `json:"id"`
	Key       string     `json:"key"`
	Value     string     `json:"value"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// UpdateConfigRequest cuerpo de PUT /api/config/:key.
type UpdateConfigRequest struct {
	Value string `json:"value"`
}
