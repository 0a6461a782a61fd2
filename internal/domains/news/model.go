package news

import "github.com/gustavoesucri/back-end-ifd/internal/domains/content"

// News is a published news item. Chamada is the short headline shown in listings.
type News struct {
	content.Base
	ImagemURL   string   `json:"imagemUrl"`
	NomeNoticia string   `json:"nomeNoticia"`
	Chamada     string   `json:"chamada"`
	Paragrafos  []string `json:"paragrafos"`
}

var Schema = content.Schema[News]{
	Kind:       "news",
	Label:      "Notícia",
	Plural:     "Notícias",
	Gender:     content.Feminine,
	Table:      "noticias",
	NameColumn: "nome_noticia",
	Columns:    []string{"imagem_url", "nome_noticia", "chamada", "paragrafos"},
	Fields: func(n *News) []any {
		return []any{&n.ImagemURL, &n.NomeNoticia, &n.Chamada, &n.Paragrafos}
	},
	Base: func(n *News) *content.Base { return &n.Base },
	Name: func(n *News) string { return n.NomeNoticia },
}
