// Package content holds the pieces shared by every slug-keyed resource type
// (campaigns, news, partners, projects): the common record header, the table
// schema descriptor and the repository contract.
package content

import "time"

// Base is embedded by every slug-keyed entity.
type Base struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Gender selects the agreement of confirmation messages ("criada"/"criado").
type Gender int

const (
	Masculine Gender = iota
	Feminine
)

// Pick returns masc or fem according to g.
func (g Gender) Pick(masc, fem string) string {
	if g == Feminine {
		return fem
	}
	return masc
}

// Schema describes how an entity type maps onto its table.
//
// Columns lists the type-specific columns in the same order as the pointers
// returned by Fields; id, slug and the timestamps are handled through Base.
// NameColumn must be one of Columns.
type Schema[E any] struct {
	Kind       string // cache namespace and log field, e.g. "campaign"
	Label      string // display noun, e.g. "Campanha"
	Plural     string // e.g. "Campanhas"
	Gender     Gender
	Table      string
	NameColumn string
	Columns    []string
	Fields     func(e *E) []any
	Base       func(e *E) *Base
	Name       func(e *E) string
}

// Confirmation is the success result of a write.
type Confirmation struct {
	ID      int64  `json:"id"`
	Slug    string `json:"slug,omitempty"`
	Message string `json:"message"`
}
