package smtp

import (
	"context"

	"github.com/wneessen/go-mail"
)

// Sender delivers notifications over SMTP. Failures are returned as
// message lists so notification outcomes stay values; a send never
// takes the pipeline down.
type Sender struct {
	host     string
	port     int
	address  string
	password string
}

// NewSender configures an SMTP sender for the given account. The
// forwarding account lives on outlook.com, so STARTTLS on 587 is the
// expected posture.
func NewSender(host string, port int, address, password string) *Sender {
	return &Sender{
		host:     host,
		port:     port,
		address:  address,
		password: password,
	}
}

// Send composes and transmits one HTML notification. The connection is
// established per call; send volume is a handful of messages per
// submission, so pooling buys nothing. An empty return slice means
// success.
func (s *Sender) Send(ctx context.Context, recipients []string, subject, htmlBody string) []string {
	msg := mail.NewMsg()
	if err := msg.From(s.address); err != nil {
		return []string{err.Error()}
	}
	if err := msg.To(recipients...); err != nil {
		return []string{err.Error()}
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(s.host,
		mail.WithPort(s.port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(s.address),
		mail.WithPassword(s.password),
	)
	if err != nil {
		return []string{err.Error()}
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return []string{err.Error()}
	}
	return nil
}
