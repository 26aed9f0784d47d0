package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceNote nota fiscal de servicio (NFS-e).
type ServiceNote struct {
	ID            string
	Number        string
	IssueDate     time.Time
	ServiceValue  decimal.Decimal
	ReceivedValue decimal.Decimal
	ISSValue      decimal.Decimal
	PayerName     string
	PayerTaxID    string
	PayerEmail    string
	PayerPhone    string
	City          string
	State         string
	Description   string
	Status        string
}
