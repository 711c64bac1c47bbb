package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/mail"
	"path/filepath"
	"strings"

	"studynotion/config"

	"github.com/google/uuid"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Filename string
	Content  []byte
}

// Mail is an outgoing HTML email.
type Mail struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// MailResult is the outcome of a send. Err is set when delivery failed.
type MailResult struct {
	MessageID string
	Err       error
}

// MailTransport delivers a message and returns the transport's message id.
type MailTransport interface {
	Deliver(ctx context.Context, from string, m Mail) (string, error)
}

// Mailer sends notifications. Send never fails from the caller's point of
// view: transport errors are logged and reported in the result only.
type Mailer struct {
	transport MailTransport
	from      string
	logger    *zap.Logger
}

func NewMailer(transport MailTransport, from string, logger *zap.Logger) *Mailer {
	return &Mailer{transport: transport, from: from, logger: logger}
}

// NewMailerFromConfig picks the SMTP or SendGrid transport.
func NewMailerFromConfig(cfg *config.Config, logger *zap.Logger) *Mailer {
	var transport MailTransport
	switch cfg.MailTransport {
	case "sendgrid":
		transport = NewSendGridTransport(cfg.SendGridAPIKey)
	default:
		transport = NewSMTPTransport(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)
	}
	return NewMailer(transport, cfg.MailFrom, logger)
}

func (m *Mailer) Send(ctx context.Context, msg Mail) MailResult {
	id, err := m.transport.Deliver(ctx, m.from, msg)
	if err != nil {
		m.logger.Error("MailSender error",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Error(err))
		return MailResult{Err: err}
	}

	m.logger.Info("Mail sent",
		zap.String("to", msg.To),
		zap.String("message_id", id),
		zap.Int("attachments", len(msg.Attachments)))
	return MailResult{MessageID: id}
}

// SMTPTransport delivers mail over SMTP.
type SMTPTransport struct {
	dialer *gomail.Dialer
	host   string
}

func NewSMTPTransport(host string, port int, user, password string) *SMTPTransport {
	return &SMTPTransport{
		dialer: gomail.NewDialer(host, port, user, password),
		host:   host,
	}
}

func (t *SMTPTransport) Deliver(ctx context.Context, from string, m Mail) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	msg, id := buildSMTPMessage(from, t.host, m)
	if err := t.dialer.DialAndSend(msg); err != nil {
		return "", fmt.Errorf("smtp delivery failed: %w", err)
	}
	return id, nil
}

func buildSMTPMessage(from, host string, m Mail) (*gomail.Message, string) {
	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), host)

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetHeader("Message-Id", id)
	msg.SetBody("text/html", m.HTML)

	for _, a := range m.Attachments {
		content := a.Content
		msg.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	return msg, id
}

// SendGridTransport delivers mail through the SendGrid v3 API.
type SendGridTransport struct {
	client *sendgrid.Client
}

func NewSendGridTransport(apiKey string) *SendGridTransport {
	return &SendGridTransport{client: sendgrid.NewSendClient(apiKey)}
}

func (t *SendGridTransport) Deliver(ctx context.Context, from string, m Mail) (string, error) {
	message, err := buildSendGridMessage(from, m)
	if err != nil {
		return "", err
	}

	resp, err := t.client.SendWithContext(ctx, message)
	if err != nil {
		return "", fmt.Errorf("sendgrid delivery failed: %w", err)
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("sendgrid delivery failed (%d): %s", resp.StatusCode, resp.Body)
	}

	var id string
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		id = ids[0]
	}
	return id, nil
}

func buildSendGridMessage(from string, m Mail) (*sgmail.SGMailV3, error) {
	sender, err := mail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", from, err)
	}

	message := sgmail.NewV3Mail()
	message.SetFrom(sgmail.NewEmail(sender.Name, sender.Address))
	message.Subject = m.Subject

	p := sgmail.NewPersonalization()
	p.AddTos(sgmail.NewEmail("", m.To))
	message.AddPersonalizations(p)
	message.AddContent(sgmail.NewContent("text/html", m.HTML))

	for _, a := range m.Attachments {
		att := sgmail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(a.Content))
		att.SetType(attachmentType(a.Filename))
		att.SetFilename(a.Filename)
		att.SetDisposition("attachment")
		message.AddAttachment(att)
	}

	return message, nil
}

func attachmentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
