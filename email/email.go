package email

import (
	"fmt"
	"net/smtp"
	"os"
)

// Sender delivers account-recovery mail. The reset flow treats delivery
// failures as log-only; implementations just report them.
type Sender interface {
	SendPasswordResetEmail(to, token string) error
}

type SMTPService struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewSMTPService() *SMTPService {
	return &SMTPService{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		user:     os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
}

func (e *SMTPService) SendPasswordResetEmail(to, token string) error {
	domain := os.Getenv("DOMAIN")
	if domain == "" {
		domain = "http://localhost:8080"
	}

	resetLink := fmt.Sprintf("%s/reset-password/%s", domain, token)

	subject := "Password Reset Request"
	body := fmt.Sprintf(`Hello,

A password reset was requested for your account.

Click the link below to choose a new password:

%s

If you did not request this, you can safely ignore this email.
`, resetLink)

	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", e.from, to, subject, body)

	auth := smtp.PlainAuth("", e.user, e.password, e.host)
	addr := fmt.Sprintf("%s:%s", e.host, e.port)

	if err := smtp.SendMail(addr, auth, e.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}

	return nil
}
