package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"

	"creator-tools/internal/models"
	"creator-tools/shared/config"
)

type Sender struct {
	config *config.EmailConfig
}

func NewSender(cfg *config.EmailConfig) *Sender {
	return &Sender{
		config: cfg,
	}
}

// SendDigest emails the scheduled watchlist report. A digest with no entries
// and no failures is silently skipped.
func (s *Sender) SendDigest(digest *models.WatchDigest) error {
	if digest == nil {
		return fmt.Errorf("digest cannot be nil")
	}

	if len(digest.Entries) == 0 && len(digest.Failures) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Keyword Watchlist Digest - %d Keywords (%s)",
		len(digest.Entries), digest.Date.Format("Jan 2, 2006"))

	body, err := s.generateEmailBody(digest)
	if err != nil {
		return fmt.Errorf("failed to generate email body: %w", err)
	}

	return s.SendHTML(subject, body)
}

// SendHTML sends an email with custom HTML content
func (s *Sender) SendHTML(subject, htmlBody string) error {
	return s.sendViaSMTP(subject, htmlBody)
}

func (s *Sender) sendViaSMTP(subject, body string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.SMTPServer)

	to := []string{s.config.ToEmail}
	msg := []byte(fmt.Sprintf(`To: %s
From: %s
Subject: %s
MIME-Version: 1.0
Content-Type: text/html; charset=UTF-8

%s`, s.config.ToEmail, s.config.FromEmail, subject, body))

	addr := fmt.Sprintf("%s:%d", s.config.SMTPServer, s.config.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.FromEmail, to, msg)
}

func (s *Sender) generateEmailBody(digest *models.WatchDigest) (string, error) {
	templatePath := "agents/keyword-watch/email_template.html"
	tmplBytes, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read email template: %w", err)
	}

	tmpl := template.New("digest").Funcs(template.FuncMap{
		"deltaSign": func(delta int) string {
			if delta > 0 {
				return fmt.Sprintf("+%d", delta)
			}
			return fmt.Sprintf("%d", delta)
		},
	})

	tmpl, err = tmpl.Parse(string(tmplBytes))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, digest); err != nil {
		return "", err
	}

	return buf.String(), nil
}
