package partner

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/content"
)

type CreatePartnerRequest struct {
	LogoURL      string `json:"logoUrl"`
	NomeParceiro string `json:"nomeParceiro"`
	ExternalURL  string `json:"externalUrl"`
}

func (r *CreatePartnerRequest) Validate() error {
	r.LogoURL = strings.TrimSpace(r.LogoURL)
	r.NomeParceiro = strings.TrimSpace(r.NomeParceiro)
	r.ExternalURL = strings.TrimSpace(r.ExternalURL)

	return validation.ValidateStruct(r,
		validation.Field(&r.LogoURL, append([]validation.Rule{validation.Required}, content.URLRules...)...),
		validation.Field(&r.NomeParceiro, content.NameRules...),
		validation.Field(&r.ExternalURL, content.URLRules...),
	)
}

func (r *CreatePartnerRequest) ToEntity() *Partner {
	return &Partner{
		LogoURL:      r.LogoURL,
		NomeParceiro: r.NomeParceiro,
		ExternalURL:  r.ExternalURL,
	}
}

// UpdatePartnerRequest - PATCH /parceiros/:id. An empty externalUrl clears the link.
type UpdatePartnerRequest struct {
	LogoURL      *string `json:"logoUrl"`
	NomeParceiro *string `json:"nomeParceiro"`
	ExternalURL  *string `json:"externalUrl"`
}

func (r *UpdatePartnerRequest) Validate() error {
	r.LogoURL = content.Trim(r.LogoURL)
	r.NomeParceiro = content.Trim(r.NomeParceiro)
	r.ExternalURL = content.Trim(r.ExternalURL)

	return validation.ValidateStruct(r,
		validation.Field(&r.LogoURL, append([]validation.Rule{validation.NilOrNotEmpty}, content.URLRules...)...),
		validation.Field(&r.NomeParceiro, validation.When(r.NomeParceiro != nil, content.NameRules...)),
		validation.Field(&r.ExternalURL, content.URLRules...),
	)
}

func (r *UpdatePartnerRequest) Name() (string, bool) {
	if r.NomeParceiro == nil {
		return "", false
	}
	return *r.NomeParceiro, true
}

func (r *UpdatePartnerRequest) Apply(p *Partner) {
	if r.LogoURL != nil {
		p.LogoURL = *r.LogoURL
	}
	if r.NomeParceiro != nil {
		p.NomeParceiro = *r.NomeParceiro
	}
	if r.ExternalURL != nil {
		p.ExternalURL = *r.ExternalURL
	}
}
