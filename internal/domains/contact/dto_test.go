package contact

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContactRequest_Normalizes(t *testing.T) {
	req := CreateContactRequest{
		Name:    "  Maria Silva ",
		Email:   "  Maria.Silva@Example.COM ",
		Subject: "GERAL",
		Message: " Olá! ",
	}
	require.NoError(t, req.Validate())

	s := req.ToSubmission()
	assert.Equal(t, "Maria Silva", s.Name)
	assert.Equal(t, "maria.silva@example.com", s.Email)
	assert.Equal(t, SubjectGeneral, s.Subject)
	assert.Equal(t, "Olá!", s.Message)
}

func TestCreateContactRequest_SubjectCodes(t *testing.T) {
	for _, in := range []Subject{"PARCEIRO", "parceiro", " Parceiro "} {
		req := CreateContactRequest{Name: "A", Email: "a@b.co", Subject: in, Message: "x"}
		require.NoError(t, req.Validate(), in)
		assert.Equal(t, SubjectPartner, req.Subject)
	}

	codes := make([]string, 0, len(Subjects()))
	for _, s := range Subjects() {
		codes = append(codes, string(s.(Subject)))
	}
	assert.Equal(t, []string{"PARCEIRO", "VOLUNTARIO", "DOACOES", "SITE_PROBLEMS", "GERAL"}, codes)
}

func TestCreateContactRequest_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		req   CreateContactRequest
		field string
	}{
		{"missing name", CreateContactRequest{Email: "a@b.co", Subject: SubjectDonations, Message: "x"}, "name"},
		{"bad email", CreateContactRequest{Name: "A", Email: "not-an-email", Subject: SubjectDonations, Message: "x"}, "email"},
		{"unknown subject", CreateContactRequest{Name: "A", Email: "a@b.co", Subject: "spam", Message: "x"}, "subject"},
		{"blank message", CreateContactRequest{Name: "A", Email: "a@b.co", Subject: SubjectDonations, Message: "  "}, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errs validation.Errors
			require.ErrorAs(t, tt.req.Validate(), &errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestSubjectLabels(t *testing.T) {
	for _, s := range Subjects() {
		assert.NotEmpty(t, s.(Subject).Label())
	}
	assert.Equal(t, "Quero ser um voluntário", SubjectVolunteer.Label())
}
