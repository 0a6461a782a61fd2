package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/contact"
	"github.com/gustavoesucri/back-end-ifd/internal/infrastructure/email"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/apperr"
)

type ServiceInterface interface {
	Submit(ctx context.Context, s *contact.Submission) (*contact.Submission, error)
}

type contactService struct {
	repo      contact.Repository
	mailer    email.Mailer
	recipient string
}

// NewContactService sends every submission to recipient before storing it.
func NewContactService(repo contact.Repository, mailer email.Mailer, recipient string) ServiceInterface {
	return &contactService{repo: repo, mailer: mailer, recipient: recipient}
}

// Submit mails the submission and then persists it. Nothing is stored when
// the mail cannot be sent.
func (s *contactService) Submit(ctx context.Context, sub *contact.Submission) (*contact.Submission, error) {
	if s.recipient == "" {
		return nil, apperr.Internal("Erro ao processar o contato.", fmt.Errorf("MAIL_TO is not configured"))
	}

	subject := FullSubject(sub.Subject, sub.CustomSubject)
	msg := email.Message{
		To:      []string{s.recipient},
		ReplyTo: sub.Email,
		Subject: subject,
		Text:    TextBody(sub, subject),
		HTML:    HTMLBody(sub, subject),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return nil, apperr.Internal("Erro ao enviar e-mail.", err)
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, apperr.Internal("Erro ao processar o contato.", err)
	}
	return sub, nil
}

// FullSubject is the category label, suffixed with the custom subject for
// the general category.
func FullSubject(subject contact.Subject, custom string) string {
	label := subject.Label()
	if subject == contact.SubjectGeneral {
		if custom = strings.TrimSpace(custom); custom != "" {
			return label + " - " + custom
		}
	}
	return label
}

func TextBody(sub *contact.Submission, subject string) string {
	return fmt.Sprintf("Nome: %s\nEmail: %s\nAssunto: %s\nMensagem:\n%s", sub.Name, sub.Email, subject, sub.Message)
}

// HTMLBody escapes every user supplied value and turns message newlines into <br>.
func HTMLBody(sub *contact.Submission, subject string) string {
	message := strings.ReplaceAll(html.EscapeString(sub.Message), "\r\n", "\n")
	message = strings.ReplaceAll(message, "\n", "<br>")

	var b strings.Builder
	fmt.Fprintf(&b, "<p><b>Nome:</b> %s</p>\n", html.EscapeString(sub.Name))
	fmt.Fprintf(&b, "<p><b>Email:</b> %s</p>\n", html.EscapeString(sub.Email))
	fmt.Fprintf(&b, "<p><b>Assunto:</b> %s</p>\n", html.EscapeString(subject))
	fmt.Fprintf(&b, "<p><b>Mensagem:</b><br>%s</p>\n", message)
	return b.String()
}
