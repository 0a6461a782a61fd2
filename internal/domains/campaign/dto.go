package campaign

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/content"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/utils"
)

// CreateCampaignRequest - POST /campanhas
type CreateCampaignRequest struct {
	ImagemURL    string   `json:"imagemUrl"`
	NomeCampanha string   `json:"nomeCampanha"`
	TextoResumo  string   `json:"textoResumo"`
	Paragrafos   []string `json:"paragrafos"`
}

func (r *CreateCampaignRequest) Validate() error {
	r.ImagemURL = strings.TrimSpace(r.ImagemURL)
	r.NomeCampanha = strings.TrimSpace(r.NomeCampanha)
	r.TextoResumo = strings.TrimSpace(r.TextoResumo)
	r.Paragrafos = utils.TrimAll(r.Paragrafos)

	return validation.ValidateStruct(r,
		validation.Field(&r.ImagemURL, append([]validation.Rule{validation.Required}, content.URLRules...)...),
		validation.Field(&r.NomeCampanha, content.NameRules...),
		validation.Field(&r.TextoResumo, validation.Required, validation.RuneLength(1, content.MaxSummaryLength)),
		validation.Field(&r.Paragrafos, content.ParagraphRules...),
	)
}

func (r *CreateCampaignRequest) ToEntity() *Campaign {
	return &Campaign{
		ImagemURL:    r.ImagemURL,
		NomeCampanha: r.NomeCampanha,
		TextoResumo:  r.TextoResumo,
		Paragrafos:   r.Paragrafos,
	}
}

// UpdateCampaignRequest - PATCH /campanhas/:id. Absent fields are left as they are.
type UpdateCampaignRequest struct {
	ImagemURL    *string  `json:"imagemUrl"`
	NomeCampanha *string  `json:"nomeCampanha"`
	TextoResumo  *string  `json:"textoResumo"`
	Paragrafos   []string `json:"paragrafos"`
}

func (r *UpdateCampaignRequest) Validate() error {
	r.ImagemURL = content.Trim(r.ImagemURL)
	r.NomeCampanha = content.Trim(r.NomeCampanha)
	r.TextoResumo = content.Trim(r.TextoResumo)
	r.Paragrafos = utils.TrimAll(r.Paragrafos)

	return validation.ValidateStruct(r,
		validation.Field(&r.ImagemURL, append([]validation.Rule{validation.NilOrNotEmpty}, content.URLRules...)...),
		validation.Field(&r.NomeCampanha, validation.When(r.NomeCampanha != nil, content.NameRules...)),
		validation.Field(&r.TextoResumo, validation.NilOrNotEmpty, validation.RuneLength(1, content.MaxSummaryLength)),
		validation.Field(&r.Paragrafos, validation.When(r.Paragrafos != nil, content.ParagraphRules...)),
	)
}

func (r *UpdateCampaignRequest) Name() (string, bool) {
	if r.NomeCampanha == nil {
		return "", false
	}
	return *r.NomeCampanha, true
}

func (r *UpdateCampaignRequest) Apply(c *Campaign) {
	if r.ImagemURL != nil {
		c.ImagemURL = *r.ImagemURL
	}
	if r.NomeCampanha != nil {
		c.NomeCampanha = *r.NomeCampanha
	}
	if r.TextoResumo != nil {
		c.TextoResumo = *r.TextoResumo
	}
	if r.Paragrafos != nil {
		c.Paragrafos = r.Paragrafos
	}
}
