package contact

import "time"

// Subject is the closed set of contact categories.
type Subject string

const (
	SubjectPartner      Subject = "PARCEIRO"
	SubjectVolunteer    Subject = "VOLUNTARIO"
	SubjectDonations    Subject = "DOACOES"
	SubjectSiteProblems Subject = "SITE_PROBLEMS"
	SubjectGeneral      Subject = "GERAL"
)

var subjectLabels = map[Subject]string{
	SubjectPartner:      "Quero ser um PARCEIRO",
	SubjectVolunteer:    "Quero ser um voluntário",
	SubjectDonations:    "Doações",
	SubjectSiteProblems: "Problemas no site",
	SubjectGeneral:      "Outros",
}

// Subjects lists every valid subject.
func Subjects() []interface{} {
	return []interface{}{SubjectPartner, SubjectVolunteer, SubjectDonations, SubjectSiteProblems, SubjectGeneral}
}

// Label is the human readable category shown in the mail.
func (s Subject) Label() string {
	return subjectLabels[s]
}

// Submission is a stored contact form entry.
type Submission struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Subject       Subject   `json:"subject"`
	CustomSubject string    `json:"customSubject"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
}
