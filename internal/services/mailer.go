package services

import (
	"fmt"
	"log"
	"net/smtp"
)

// Mailer delivers one-time passcodes out of band.
type Mailer interface {
	SendOTP(toEmail, code string) error
}

// SMTPMailer sends mail through a plain-auth SMTP relay (Gmail in the
// default deployment).
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPMailer creates a mailer for the given relay credentials.
func NewSMTPMailer(host, port, username, password, from string) (*SMTPMailer, error) {
	if host == "" || username == "" || password == "" {
		return nil, fmt.Errorf("smtp credentials not configured")
	}
	if port == "" {
		port = "587"
	}
	if from == "" {
		from = username
	}
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}, nil
}

func (m *SMTPMailer) SendOTP(toEmail, code string) error {
	subject := "Your OTP for Sharing Yatra"
	body := fmt.Sprintf("Your OTP is: %s. It will expire in 5 minutes.", code)
	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{toEmail}, msg); err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	return nil
}

// LogMailer writes codes to the log instead of sending mail. For local
// development without SMTP credentials.
type LogMailer struct{}

func (LogMailer) SendOTP(toEmail, code string) error {
	log.Printf("📧 [dev] OTP for %s: %s", toEmail, code)
	return nil
}
