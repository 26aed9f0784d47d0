package normalize

import "strings"

// TaxID deja solo los dígitos de un CPF/CNPJ: "12.345.678/0001-90" → "12345678000190".
func TaxID(s string) string {
	return Digits(s)
}

// Digits elimina todo lo que no sea dígito ASCII.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SameTaxID compara dos documentos por sus dígitos. Documentos vacíos nunca coinciden.
func SameTaxID(a, b string) bool {
	da, db := TaxID(a), TaxID(b)
	return da != "" && da == db
}
