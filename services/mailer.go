// services/mailer.go
package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
)

// Mailer dispatches the password-reset link. Delivery mechanics are outside
// the credential rules; the engine only requires that the plaintext token
// leaves through this interface and is never persisted.
type Mailer interface {
	SendPasswordReset(to, name, resetURL string) error
}

// SMTPMailer sends through the SMTP_* configured relay.
type SMTPMailer struct{}

func (SMTPMailer) SendPasswordReset(to, name, resetURL string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	from := os.Getenv("SMTP_FROM")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASSWORD")

	body := fmt.Sprintf("From: SalonBooker <%s>\r\n"+
		"To: %s\r\n"+
		"Subject: Password recovery - SalonBooker\r\n"+
		"\r\n"+
		"Hi %s,\r\n\r\n"+
		"We received a request to reset your password.\r\n\r\n"+
		"Open the following link to choose a new one:\r\n%s\r\n\r\n"+
		"The link expires in 1 hour. If you did not request this change you can ignore this email.\r\n",
		from, to, name, resetURL)

	auth := smtp.PlainAuth("", user, pass, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, []byte(body))
}

// LogMailer only logs the reset link. Used in development and as the
// fallback when no SMTP relay is configured.
type LogMailer struct{}

func (LogMailer) SendPasswordReset(to, name, resetURL string) error {
	log.Printf("password reset for %s <%s>: %s", name, to, resetURL)
	return nil
}

// NewMailerFromEnv picks the SMTP mailer when a relay is configured.
func NewMailerFromEnv() Mailer {
	if os.Getenv("SMTP_HOST") != "" {
		return SMTPMailer{}
	}
	return LogMailer{}
}
