package partner

import "github.com/gustavoesucri/back-end-ifd/internal/domains/content"

// Partner is a supporting organisation. ExternalURL may be empty.
type Partner struct {
	content.Base
	LogoURL      string `json:"logoUrl"`
	NomeParceiro string `json:"nomeParceiro"`
	ExternalURL  string `json:"externalUrl"`
}

var Schema = content.Schema[Partner]{
	Kind:       "partner",
	Label:      "Parceiro",
	Plural:     "Parceiros",
	Gender:     content.Masculine,
	Table:      "parceiros",
	NameColumn: "nome_parceiro",
	Columns:    []string{"logo_url", "nome_parceiro", "external_url"},
	Fields: func(p *Partner) []any {
		return []any{&p.LogoURL, &p.NomeParceiro, &p.ExternalURL}
	},
	Base: func(p *Partner) *content.Base { return &p.Base },
	Name: func(p *Partner) string { return p.NomeParceiro },
}
