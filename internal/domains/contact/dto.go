package contact

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	MaxNameLength          = 100
	MaxCustomSubjectLength = 100
	MaxMessageLength       = 5000
)

// CreateContactRequest - POST /contato
type CreateContactRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Subject       Subject `json:"subject"`
	CustomSubject string  `json:"customSubject"`
	Message       string  `json:"message"`
}

// Normalize trims every field, lowercases the email and uppercases the subject.
func (r *CreateContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Subject = Subject(strings.ToUpper(strings.TrimSpace(string(r.Subject))))
	r.CustomSubject = strings.TrimSpace(r.CustomSubject)
	r.Message = strings.TrimSpace(r.Message)
}

func (r *CreateContactRequest) Validate() error {
	r.Normalize()
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&r.Email, validation.Required, is.EmailFormat, validation.RuneLength(1, 255)),
		validation.Field(&r.Subject, validation.Required, validation.In(Subjects()...)),
		validation.Field(&r.CustomSubject, validation.RuneLength(0, MaxCustomSubjectLength)),
		validation.Field(&r.Message, validation.Required, validation.RuneLength(1, MaxMessageLength)),
	)
}

func (r *CreateContactRequest) ToSubmission() *Submission {
	return &Submission{
		Name:          r.Name,
		Email:         r.Email,
		Subject:       r.Subject,
		CustomSubject: r.CustomSubject,
		Message:       r.Message,
	}
}
