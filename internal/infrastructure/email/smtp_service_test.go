package email

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_MultipartAlternative(t *testing.T) {
	from := mail.Address{Name: "Site IFD", Address: "site@ifd.org"}
	raw, err := BuildMessage(from, Message{
		To:      []string{"contato@ifd.org"},
		ReplyTo: "maria@example.com",
		Subject: "Doações",
		Text:    "Olá\nMundo",
		HTML:    "<p>Olá<br>Mundo</p>",
	}, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)

	parsed, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)

	subject, err := new(mime.WordDecoder).DecodeHeader(parsed.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Doações", subject)
	assert.Equal(t, "contato@ifd.org", parsed.Header.Get("To"))
	assert.Equal(t, "maria@example.com", parsed.Header.Get("Reply-To"))

	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)

	mr := multipart.NewReader(parsed.Body, params["boundary"])
	var types, bodies []string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		body, err := io.ReadAll(part)
		require.NoError(t, err)
		types = append(types, part.Header.Get("Content-Type"))
		bodies = append(bodies, string(body))
	}

	assert.Equal(t, []string{"text/plain; charset=utf-8", "text/html; charset=utf-8"}, types)
	// quoted-printable text parts carry CRLF line breaks
	assert.Equal(t, "Olá\nMundo", strings.ReplaceAll(bodies[0], "\r\n", "\n"))
	assert.Equal(t, "<p>Olá<br>Mundo</p>", bodies[1])
}

func TestSend_UsesTransport(t *testing.T) {
	svc := NewSMTPEmailService(SMTPConfig{Host: "localhost", Port: 1025, FromEmail: "site@ifd.org"}).(*smtpEmailService)

	var gotFrom string
	var gotTo []string
	svc.send = func(_ context.Context, from string, to []string, _ []byte) error {
		gotFrom, gotTo = from, to
		return nil
	}

	require.NoError(t, svc.Send(context.Background(), Message{To: []string{"a@ifd.org"}, Subject: "x"}))
	assert.Equal(t, "site@ifd.org", gotFrom)
	assert.Equal(t, []string{"a@ifd.org"}, gotTo)
}

func TestSend_Errors(t *testing.T) {
	svc := NewSMTPEmailService(SMTPConfig{Host: "localhost", Port: 1025, FromEmail: "site@ifd.org"}).(*smtpEmailService)
	svc.send = func(context.Context, string, []string, []byte) error { return errors.New("relay refused") }

	assert.Error(t, svc.Send(context.Background(), Message{}), "no recipients")
	assert.ErrorContains(t, svc.Send(context.Background(), Message{To: []string{"a@ifd.org"}}), "relay refused")
}
