package partner

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePartnerRequest_ExternalURLOptional(t *testing.T) {
	req := CreatePartnerRequest{LogoURL: "https://ifd.org/logo/acme.svg", NomeParceiro: "ACME"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "", req.ToEntity().ExternalURL)

	req.ExternalURL = "https://acme.example.com"
	require.NoError(t, req.Validate())

	req.ExternalURL = "acme dot com"
	var errs validation.Errors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs, "externalUrl")
}

func TestCreatePartnerRequest_RequiresLogoAndName(t *testing.T) {
	var errs validation.Errors
	require.ErrorAs(t, (&CreatePartnerRequest{}).Validate(), &errs)
	assert.Contains(t, errs, "logoUrl")
	assert.Contains(t, errs, "nomeParceiro")
	assert.NotContains(t, errs, "externalUrl")
}

func TestUpdatePartnerRequest_ClearExternalURL(t *testing.T) {
	empty := ""
	req := UpdatePartnerRequest{ExternalURL: &empty}
	require.NoError(t, req.Validate())

	p := &Partner{NomeParceiro: "ACME", ExternalURL: "https://acme.example.com"}
	req.Apply(p)
	assert.Equal(t, "", p.ExternalURL)
	assert.Equal(t, "ACME", p.NomeParceiro)
}

func TestSchemaColumnsMatchFields(t *testing.T) {
	var p Partner
	assert.Len(t, Schema.Fields(&p), len(Schema.Columns))
}
