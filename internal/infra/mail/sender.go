package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, quoteURL string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     "no-reply@chatmaninsurance.com",
		QuoteURL: quoteURL,
	}
}

// SendFollowUp delivers the thanks-for-reaching-out email after a lead is
// captured. The subject line varies by funnel entry point.
func (s *EmailSender) SendFollowUp(to, name, source, insuranceType string) error {
	data := FollowUpEmailData{
		Name:          name,
		Source:        source,
		InsuranceType: insuranceType,
		QuoteLink:     s.QuoteURL,
	}

	tmplPath := filepath.Join("templates", "followup.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subjectFor(source, name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("SMTP send failed: %w", err)
	}

	return nil
}

func subjectFor(source, name string) string {
	switch source {
	case "quiz":
		return fmt.Sprintf("%s, your personalized coverage matches are ready", name)
	case "quote":
		return fmt.Sprintf("%s, your quote is waiting for you", name)
	default:
		return fmt.Sprintf("Thanks for reaching out, %s!", name)
	}
}
