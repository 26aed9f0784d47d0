package repository

import (
	"context"

	"github.com/jhoicas/painel-bi/internal/domain/entity"
)

// ServiceNoteRepository puerto de lectura de notas de servicio.
type ServiceNoteRepository interface {
	ListServiceNotes(ctx context.Context, companyID string) ([]entity.ServiceNote, error)
}
