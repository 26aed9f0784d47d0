package usecase

import "github.com/jhoicas/painel-bi/pkg/logger"

// Invalidator algo que guarda datos por empresa y puede descartarlos.
type Invalidator interface {
	Invalidate(companyID string)
}

// RefreshUseCase descarta lo guardado de la empresa; la próxima lectura vuelve al ERP.
type RefreshUseCase struct {
	targets []Invalidator
	log     *logger.Logger
}

// NewRefreshUseCase construye el caso de uso.
func NewRefreshUseCase(log *logger.Logger, targets ...Invalidator) *RefreshUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RefreshUseCase{targets: targets, log: log.Component("refresh")}
}

// Refresh invalida todos los destinos para la empresa.
func (uc *RefreshUseCase) Refresh(companyID string) {
	for _, t := range uc.targets {
		t.Invalidate(companyID)
	}
	uc.log.Info().Str("company_id", companyID).Msg("datos de la empresa recargados")
}
