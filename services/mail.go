package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"path/filepath"
)

type EmailData struct {
	Name    string
	Message string
	Code    string
	URL     string
}

// Mailer sends the transactional emails the account lifecycle needs. Mail
// failures are logged by callers and never fail the request that triggered
// them.
type Mailer interface {
	SendVerificationEmail(to, code string) error
	SendWelcomeEmail(to, name string) error
	SendPasswordResetEmail(to, resetURL string) error
	SendResetSuccessEmail(to string) error
}

// SMTPMailer renders HTML templates and delivers them over SMTP.
type SMTPMailer struct {
	templatesDir string
}

func NewSMTPMailer(templatesDir string) *SMTPMailer {
	return &SMTPMailer{templatesDir: templatesDir}
}

func (m *SMTPMailer) send(to, subject, templateFile string, data EmailData) error {
	tmpl, err := template.ParseFiles(filepath.Join(m.templatesDir, templateFile))
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		os.Getenv("FROM_EMAIL"),
		subject,
		body.String(),
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	if err := smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (m *SMTPMailer) SendVerificationEmail(to, code string) error {
	return m.send(to, "Verify your email", "verify_email.html", EmailData{
		Message: "Thank you for signing up! Enter the code below to verify your account.",
		Code:    code,
	})
}

func (m *SMTPMailer) SendWelcomeEmail(to, name string) error {
	return m.send(to, "Welcome to PlatePal", "welcome.html", EmailData{
		Name:    name,
		Message: "Your email has been verified. Order away!",
	})
}

func (m *SMTPMailer) SendPasswordResetEmail(to, resetURL string) error {
	return m.send(to, "Reset your password", "reset_password.html", EmailData{
		Message: "You requested a password reset. Click the button below to choose a new password.",
		URL:     resetURL,
	})
}

func (m *SMTPMailer) SendResetSuccessEmail(to string) error {
	return m.send(to, "Password reset successfully", "reset_success.html", EmailData{
		Message: "Your password has been changed. If this wasn't you, contact support immediately.",
	})
}
