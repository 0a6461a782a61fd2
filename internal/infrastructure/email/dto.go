package email

// Message is one outgoing mail with a plain text and an HTML alternative.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}
