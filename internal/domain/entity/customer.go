package entity

// Customer cliente del cadastro del ERP.
type Customer struct {
	ID      string
	Name    string
	TaxID   string // CPF o CNPJ, con o sin puntuación
	Email   string
	Phone   string
	Address string
}
