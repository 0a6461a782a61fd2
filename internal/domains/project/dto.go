package project

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/content"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/utils"
)

type CreateProjectRequest struct {
	ImagemURL   string   `json:"imagemUrl"`
	NomeProjeto string   `json:"nomeProjeto"`
	TextoResumo string   `json:"textoResumo"`
	Paragrafos  []string `json:"paragrafos"`
}

func (r *CreateProjectRequest) Validate() error {
	r.ImagemURL = strings.TrimSpace(r.ImagemURL)
	r.NomeProjeto = strings.TrimSpace(r.NomeProjeto)
	r.TextoResumo = strings.TrimSpace(r.TextoResumo)
	r.Paragrafos = utils.TrimAll(r.Paragrafos)

	return validation.ValidateStruct(r,
		validation.Field(&r.ImagemURL, append([]validation.Rule{validation.Required}, content.URLRules...)...),
		validation.Field(&r.NomeProjeto, content.NameRules...),
		validation.Field(&r.TextoResumo, validation.Required, validation.RuneLength(1, content.MaxSummaryLength)),
		validation.Field(&r.Paragrafos, content.ParagraphRules...),
	)
}

func (r *CreateProjectRequest) ToEntity() *Project {
	return &Project{
		ImagemURL:   r.ImagemURL,
		NomeProjeto: r.NomeProjeto,
		TextoResumo: r.TextoResumo,
		Paragrafos:  r.Paragrafos,
	}
}

type UpdateProjectRequest struct {
	ImagemURL   *string  `json:"imagemUrl"`
	NomeProjeto *string  `json:"nomeProjeto"`
	TextoResumo *string  `json:"textoResumo"`
	Paragrafos  []string `json:"paragrafos"`
}

func (r *UpdateProjectRequest) Validate() error {
	r.ImagemURL = content.Trim(r.ImagemURL)
	r.NomeProjeto = content.Trim(r.NomeProjeto)
	r.TextoResumo = content.Trim(r.TextoResumo)
	r.Paragrafos = utils.TrimAll(r.Paragrafos)

	return validation.ValidateStruct(r,
		validation.Field(&r.ImagemURL, append([]validation.Rule{validation.NilOrNotEmpty}, content.URLRules...)...),
		validation.Field(&r.NomeProjeto, validation.When(r.NomeProjeto != nil, content.NameRules...)),
		validation.Field(&r.TextoResumo, validation.NilOrNotEmpty, validation.RuneLength(1, content.MaxSummaryLength)),
		validation.Field(&r.Paragrafos, validation.When(r.Paragrafos != nil, content.ParagraphRules...)),
	)
}

func (r *UpdateProjectRequest) Name() (string, bool) {
	if r.NomeProjeto == nil {
		return "", false
	}
	return *r.NomeProjeto, true
}

func (r *UpdateProjectRequest) Apply(p *Project) {
	if r.ImagemURL != nil {
		p.ImagemURL = *r.ImagemURL
	}
	if r.NomeProjeto != nil {
		p.NomeProjeto = *r.NomeProjeto
	}
	if r.TextoResumo != nil {
		p.TextoResumo = *r.TextoResumo
	}
	if r.Paragrafos != nil {
		p.Paragrafos = r.Paragrafos
	}
}
