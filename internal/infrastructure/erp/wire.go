package erp

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-bi/internal/domain/normalize"
)

// flexAmount monto que el ERP envía como número, texto ("R$ 1.234,56") o null.
type flexAmount struct {
	decimal.Decimal
}

func (f *flexAmount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		f.Decimal = decimal.Zero
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			f.Decimal = decimal.Zero
			return nil
		}
		f.Decimal = normalize.Amount(s)
		return nil
	}
	// número JSON: el punto siempre es decimal
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		d = decimal.Zero
	}
	f.Decimal = d
	return nil
}

// flexString identificador que puede venir como número o texto.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		// booleanos u objetos: se guarda el literal
		*f = flexString(string(b))
		return nil
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string { return string(f) }

// wireInvoiceCustomer cliente embebido en la nota.
type wireInvoiceCustomer struct {
	ID       flexString `json:"id"`
	Nome     string     `json:"nome"`
	CPFCNPJ  flexString `json:"cpf_cnpj"`
	Email    string     `json:"email"`
	Fone     flexString `json:"fone"`
	Telefone flexString `json:"telefone"`
}

type wireInvoiceItem struct {
	Descricao     string     `json:"descricao"`
	Codigo        flexString `json:"codigo"`
	Quantidade    flexAmount `json:"quantidade"`
	ValorUnitario flexAmount `json:"valor_unitario"`
	ValorTotal    flexAmount `json:"valor_total"`
}

type wireInvoice struct {
	ID            flexString           `json:"id"`
	Numero        flexString           `json:"numero"`
	DataEmissao   string               `json:"data_emissao"`
	ValorNota     flexAmount           `json:"valor_nota"`
	ValorProdutos flexAmount           `json:"valor_produtos"`
	Cliente       *wireInvoiceCustomer `json:"cliente"`
	NomeVendedor  string               `json:"nome_vendedor"`
	Tipo          *string              `json:"tipo"`
	Itens         []wireInvoiceItem    `json:"itens"`
	Observacoes   string               `json:"observacoes"`
}

type wireCustomer struct {
	ID       flexString `json:"id"`
	Nome     string     `json:"nome"`
	CPFCNPJ  flexString `json:"cpf_cnpj"`
	Email    string     `json:"email"`
	Fone     flexString `json:"fone"`
	Telefone flexString `json:"telefone"`
	Endereco string     `json:"endereco"`
}

type wireStockItem struct {
	ID       flexString `json:"id"`
	Nome     string     `json:"nome"`
	Codigo   flexString `json:"codigo"`
	Unidade  string     `json:"unidade"`
	Preco    flexAmount `json:"preco"`
	Saldo    flexAmount `json:"saldo"`
	Situacao string     `json:"situacao"`
}

type wireServiceNote struct {
	ID                 flexString `json:"id"`
	NumeroNFSe         flexString `json:"numero_nfse"`
	DataEmissao        string     `json:"data_emissao"`
	ValorServico       flexAmount `json:"valor_servico"`
	ValorTotalRecebido flexAmount `json:"valor_total_recebido"`
	ValorISS           flexAmount `json:"valor_iss"`
	RazaoSocial        string     `json:"razao_social_tomador"`
	CPFCNPJ            flexString `json:"cpf_cnpj_tomador"`
	Email              string     `json:"email_tomador"`
	Telefone           flexString `json:"telefone_tomador"`
	Cidade             string     `json:"cidade_tomador"`
	UF                 string     `json:"uf_tomador"`
	Discriminacao      string     `json:"discriminacao_servico"`
	Status             string     `json:"status"`
}

type wireConfig struct {
	ID    flexString `json:"id"`
	Chave string     `json:"chave"`
	Valor flexString `json:"valor"`
}

// firstNonEmpty primer texto no vacío.
func firstNonEmpty(vals ...flexString) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v.String()); s != "" {
			return s
		}
	}
	return ""
}
