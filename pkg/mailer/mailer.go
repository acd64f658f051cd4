package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"go.uber.org/zap"
	"gopkg.in/mail.v2"
)

//go:generate mockgen -source=mailer.go -destination=mocks.go -package=mailer

const (
	FromName        = "CloudlessPay"
	maxRetries      = 3
	OTPTemplate     = "otp.tmpl"
	WelcomeTemplate = "welcome.tmpl"
	PaymentTemplate = "payment.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) error
}

type SMTPMailer struct {
	dialer    *mail.Dialer
	fromEmail string
	backoff   time.Duration
}

func NewSMTP(host string, port int, username, password, fromEmail string) *SMTPMailer {
	return &SMTPMailer{
		dialer:    mail.NewDialer(host, port, username, password),
		fromEmail: fromEmail,
		backoff:   time.Second,
	}
}

func (m *SMTPMailer) Send(templateFile, username, email string, data any) error {
	subject, body, err := Render(templateFile, data)
	if err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetAddressHeader("From", m.fromEmail, FromName)
	msg.SetAddressHeader("To", email, username)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	for i := 0; i < maxRetries; i++ {
		if err = m.dialer.DialAndSend(msg); err == nil {
			return nil
		}
		zap.L().Warn("failed to send email",
			zap.String("template", templateFile),
			zap.Int("attempt", i+1),
			zap.Error(err))
		time.Sleep(m.backoff * time.Duration(i+1))
	}
	return fmt.Errorf("send email after %d attempts: %w", maxRetries, err)
}

// NoopMailer renders and drops messages. It is used when SMTP is not configured.
type NoopMailer struct{}

func (NoopMailer) Send(templateFile, _, email string, data any) error {
	subject, _, err := Render(templateFile, data)
	if err != nil {
		return err
	}
	zap.L().Debug("email dropped, smtp not configured",
		zap.String("to", email),
		zap.String("subject", subject))
	return nil
}

// Render executes the "subject" and "body" blocks of templateFile.
func Render(templateFile string, data any) (subject, body string, err error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return "", "", fmt.Errorf("parse template %s: %w", templateFile, err)
	}

	var buf bytes.Buffer
	if err = tmpl.ExecuteTemplate(&buf, "subject", data); err != nil {
		return "", "", err
	}
	subject = buf.String()

	buf.Reset()
	if err = tmpl.ExecuteTemplate(&buf, "body", data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
