package erp

import "github.com/jhoicas/painel-bi/pkg/logger"

// quarantine acumula los registros descartados de un listado y los informa en
// una sola línea de log.
type quarantine struct {
	log       *logger.Logger
	dataset   string
	companyID string
	ids       []string
	reasons   []string
}

func newQuarantine(log *logger.Logger, dataset, companyID string) *quarantine {
	return &quarantine{log: log, dataset: dataset, companyID: companyID}
}

func (q *quarantine) add(id, reason string) {
	q.ids = append(q.ids, id)
	q.reasons = append(q.reasons, reason)
}

func (q *quarantine) flush() {
	if len(q.ids) == 0 {
		return
	}
	// solo los primeros motivos; un listado roto puede traer miles
	reasons := q.reasons
	if len(reasons) > 5 {
		reasons = reasons[:5]
	}
	q.log.Warn().
		Str("dataset", q.dataset).
		Str("company_id", q.companyID).
		Int("descartados", len(q.ids)).
		Strs("ids", q.ids).
		Strs("motivos", reasons).
		Msg("registros del ERP descartados")
}
