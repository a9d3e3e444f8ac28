package handler

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/haikal-dev-fs/my-portofolio/store"
)

// Notifier is told about new contact messages. Notification failures never
// affect the request that stored the message.
type Notifier interface {
	MessageReceived(m *store.Message)
}

// SMTPConfig holds the mail settings for the contact notifier.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
}

// SMTPNotifier forwards contact messages to the site owner's inbox.
type SMTPNotifier struct {
	cfg SMTPConfig
}

// NewSMTPNotifier builds a notifier from the given mail settings.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) MessageReceived(m *store.Message) {
	subject := fmt.Sprintf("Portfolio Contact: %s", m.Subject)
	body := fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Subject, m.Body)

	msg := []byte("To: " + n.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + n.cfg.Username + "\r\n" +
		"Reply-To: " + m.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	if err := smtp.SendMail(n.cfg.Host+":"+n.cfg.Port, auth, n.cfg.Username, []string{n.cfg.To}, msg); err != nil {
		log.Printf("Error sending contact notification: %v", err)
		return
	}
	log.Printf("Contact notification sent for message from %s (%s)", m.Name, m.Email)
}
