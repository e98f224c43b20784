package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendEmail sends an HTML email through the configured SMTP account.
func SendEmail(to, subject, body string) error {
	from := os.Getenv("SMTP_EMAIL")
	pass := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if from == "" {
		return fmt.Errorf("SMTP_EMAIL is not configured")
	}
	if host == "" {
		host = "smtp.gmail.com"
	}

	// Headers: UTF-8 & HTML
	msg := ""
	msg += "MIME-Version: 1.0\r\n"
	msg += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	msg += fmt.Sprintf("From: %s\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n", subject)
	msg += "\r\n" + body

	err := smtp.SendMail(
		host+":587",
		smtp.PlainAuth("", from, pass, host),
		from,
		[]string{to},
		[]byte(msg),
	)
	if err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SMTPMailer adapts SendEmail to the services.Mailer interface.
type SMTPMailer struct{}

func (SMTPMailer) Send(to, subject, body string) error {
	return SendEmail(to, subject, body)
}
