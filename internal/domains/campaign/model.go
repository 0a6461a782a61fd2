package campaign

import "github.com/gustavoesucri/back-end-ifd/internal/domains/content"

// Campaign is a fundraising or awareness campaign shown on the site.
type Campaign struct {
	content.Base
	ImagemURL    string   `json:"imagemUrl"`
	NomeCampanha string   `json:"nomeCampanha"`
	TextoResumo  string   `json:"textoResumo"`
	Paragrafos   []string `json:"paragrafos"`
}

var Schema = content.Schema[Campaign]{
	Kind:       "campaign",
	Label:      "Campanha",
	Plural:     "Campanhas",
	Gender:     content.Feminine,
	Table:      "campanhas",
	NameColumn: "nome_campanha",
	Columns:    []string{"imagem_url", "nome_campanha", "texto_resumo", "paragrafos"},
	Fields: func(c *Campaign) []any {
		return []any{&c.ImagemURL, &c.NomeCampanha, &c.TextoResumo, &c.Paragrafos}
	},
	Base: func(c *Campaign) *content.Base { return &c.Base },
	Name: func(c *Campaign) string { return c.NomeCampanha },
}
