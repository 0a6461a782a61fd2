package project

import "github.com/gustavoesucri/back-end-ifd/internal/domains/content"

// Project is an ongoing initiative of the organisation.
type Project struct {
	content.Base
	ImagemURL   string   `json:"imagemUrl"`
	NomeProjeto string   `json:"nomeProjeto"`
	TextoResumo string   `json:"textoResumo"`
	Paragrafos  []string `json:"paragrafos"`
}

var Schema = content.Schema[Project]{
	Kind:       "project",
	Label:      "Projeto",
	Plural:     "Projetos",
	Gender:     content.Masculine,
	Table:      "projetos",
	NameColumn: "nome_projeto",
	Columns:    []string{"imagem_url", "nome_projeto", "texto_resumo", "paragrafos"},
	Fields: func(p *Project) []any {
		return []any{&p.ImagemURL, &p.NomeProjeto, &p.TextoResumo, &p.Paragrafos}
	},
	Base: func(p *Project) *content.Base { return &p.Base },
	Name: func(p *Project) string { return p.NomeProjeto },
}
