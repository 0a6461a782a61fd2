package content

import (
	"errors"
	"html"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/microcosm-cc/bluemonday"

	"github.com/gustavoesucri/back-end-ifd/internal/shared/utils"
)

// Field limits shared by the request DTOs.
const (
	MaxURLLength       = 255
	MaxNameLength      = 100
	MaxSummaryLength   = 1000
	MaxHeadlineLength  = 100
	MaxParagraphs      = 20
	MaxParagraphLength = 2000
)

// markupPolicy is the inline markup a paragraph may carry. It never adds
// attributes, so an allowed paragraph sanitises to itself.
var markupPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "u", "s", "br", "p", "ul", "ol", "li", "blockquote", "code")
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)
	return p
}()

// URLRules validates an absolute URL when present. Hosts without a TLD are
// accepted; combine with validation.Required for mandatory fields.
var URLRules = []validation.Rule{
	validation.RuneLength(0, MaxURLLength),
	is.RequestURL,
}

// NameRules validates a display name: present, bounded and sluggable.
var NameRules = []validation.Rule{
	validation.Required,
	validation.RuneLength(1, MaxNameLength),
	validation.By(sluggable),
}

func sluggable(value interface{}) error {
	v, _ := validation.Indirect(value)
	name, _ := v.(string)
	if name != "" && utils.GenerateSlug(name) == "" {
		return errors.New("must contain at least one letter or digit")
	}
	return nil
}

// ParagraphRules validates a paragraph list: 1..MaxParagraphs items, each
// non-blank once trimmed and free of markup outside markupPolicy.
// Paragraphs are stored exactly as validated.
var ParagraphRules = []validation.Rule{
	validation.Required,
	validation.Length(1, MaxParagraphs),
	validation.Each(validation.Required, validation.RuneLength(1, MaxParagraphLength), validation.By(safeMarkup)),
}

// safeMarkup rejects a paragraph the policy would change. Entities are
// compared decoded, so "Tom & Jerry" and "Tom &amp; Jerry" both pass.
func safeMarkup(value interface{}) error {
	v, _ := validation.Indirect(value)
	p, _ := v.(string)
	if p == "" {
		return nil
	}
	if html.UnescapeString(markupPolicy.Sanitize(p)) != html.UnescapeString(p) {
		return errors.New("contains markup that is not allowed")
	}
	return nil
}

// Trim returns s without surrounding whitespace; nil stays nil.
func Trim(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
