package home

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/content"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/utils"
)

// HomeTextRequest is the body of POST /home and PUT /home/:id.
type HomeTextRequest struct {
	Paragrafos []string `json:"paragrafos"`
}

func (r *HomeTextRequest) Validate() error {
	r.Paragrafos = utils.TrimAll(r.Paragrafos)
	return validation.ValidateStruct(r,
		validation.Field(&r.Paragrafos, content.ParagraphRules...),
	)
}
