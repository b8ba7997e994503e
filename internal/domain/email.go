package domain

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Mailer sends email. Implementations may use SES or a no-op for development.
type Mailer interface {
	Send(to, subject, textBody string, attachments ...Attachment) error
}
