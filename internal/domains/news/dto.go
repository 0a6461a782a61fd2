package news

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/content"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/utils"
)

type CreateNewsRequest struct {
	ImagemURL   string   `json:"imagemUrl"`
	NomeNoticia string   `json:"nomeNoticia"`
	Chamada     string   `json:"chamada"`
	Paragrafos  []string `json:"paragrafos"`
}

func (r *CreateNewsRequest) Validate() error {
	r.ImagemURL = strings.TrimSpace(r.ImagemURL)
	r.NomeNoticia = strings.TrimSpace(r.NomeNoticia)
	r.Chamada = strings.TrimSpace(r.Chamada)
	r.Paragrafos = utils.TrimAll(r.Paragrafos)

	return validation.ValidateStruct(r,
		validation.Field(&r.ImagemURL, append([]validation.Rule{validation.Required}, content.URLRules...)...),
		validation.Field(&r.NomeNoticia, content.NameRules...),
		validation.Field(&r.Chamada, validation.Required, validation.RuneLength(1, content.MaxHeadlineLength)),
		validation.Field(&r.Paragrafos, content.ParagraphRules...),
	)
}

func (r *CreateNewsRequest) ToEntity() *News {
	return &News{
		ImagemURL:   r.ImagemURL,
		NomeNoticia: r.NomeNoticia,
		Chamada:     r.Chamada,
		Paragrafos:  r.Paragrafos,
	}
}

type UpdateNewsRequest struct {
	ImagemURL   *string  `json:"imagemUrl"`
	NomeNoticia *string  `json:"nomeNoticia"`
	Chamada     *string  `json:"chamada"`
	Paragrafos  []string `json:"paragrafos"`
}

func (r *UpdateNewsRequest) Validate() error {
	r.ImagemURL = content.Trim(r.ImagemURL)
	r.NomeNoticia = content.Trim(r.NomeNoticia)
	r.Chamada = content.Trim(r.Chamada)
	r.Paragrafos = utils.TrimAll(r.Paragrafos)

	return validation.ValidateStruct(r,
		validation.Field(&r.ImagemURL, append([]validation.Rule{validation.NilOrNotEmpty}, content.URLRules...)...),
		validation.Field(&r.NomeNoticia, validation.When(r.NomeNoticia != nil, content.NameRules...)),
		validation.Field(&r.Chamada, validation.NilOrNotEmpty, validation.RuneLength(1, content.MaxHeadlineLength)),
		validation.Field(&r.Paragrafos, validation.When(r.Paragrafos != nil, content.ParagraphRules...)),
	)
}

func (r *UpdateNewsRequest) Name() (string, bool) {
	if r.NomeNoticia == nil {
		return "", false
	}
	return *r.NomeNoticia, true
}

func (r *UpdateNewsRequest) Apply(n *News) {
	if r.ImagemURL != nil {
		n.ImagemURL = *r.ImagemURL
	}
	if r.NomeNoticia != nil {
		n.NomeNoticia = *r.NomeNoticia
	}
	if r.Chamada != nil {
		n.Chamada = *r.Chamada
	}
	if r.Paragrafos != nil {
		n.Paragrafos = r.Paragrafos
	}
}
