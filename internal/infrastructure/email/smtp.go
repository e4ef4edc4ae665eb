// Package email implements the ports.Mailer interface over plain SMTP.
package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// Config captures the SMTP relay settings. To is the site owner's address
// that receives contact notifications.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Mailer sends contact-form email through an SMTP relay. Port 465 uses
// implicit TLS; any other port connects in plaintext and upgrades with
// STARTTLS.
type Mailer struct {
	cfg Config
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

var notificationTmpl = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;background:#0f172a;color:#e2e8f0;padding:24px">
  <div style="max-width:600px;margin:0 auto;background:#1e293b;border-radius:12px;padding:32px">
    <h1 style="color:#10b981">New Contact Form Submission</h1>
    <p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
    {{if .Subject}}<p><strong>Subject:</strong> {{.Subject}}</p>{{end}}
    <div style="background:#0f172a;border-radius:8px;padding:16px;margin-top:16px">
      <p style="white-space:pre-wrap">{{.Message}}</p>
    </div>
    <p style="color:#64748b;font-size:12px;margin-top:24px">Received {{.CreatedAt.Format "Jan 2, 2006 15:04 MST"}}</p>
  </div>
</body>
</html>`))

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;background:#0f172a;color:#e2e8f0;padding:24px">
  <div style="max-width:600px;margin:0 auto;background:#1e293b;border-radius:12px;padding:32px">
    <h1 style="color:#10b981">Thanks for reaching out, {{.Name}}!</h1>
    <p>Your message has been received. I will get back to you as soon as possible.</p>
    <div style="background:#0f172a;border-radius:8px;padding:16px;margin-top:16px">
      <p style="white-space:pre-wrap">{{.Message}}</p>
    </div>
  </div>
</body>
</html>`))

// SendContactNotification notifies the site owner of a new submission.
func (m *Mailer) SendContactNotification(ctx context.Context, msg *domain.ContactMessage) error {
	subject := "Portfolio contact: " + msg.Name
	if msg.Subject != "" {
		subject = "Portfolio contact: " + msg.Subject
	}

	body, err := renderTemplate(notificationTmpl, msg)
	if err != nil {
		return err
	}
	return m.send(ctx, m.cfg.To, subject, body)
}

// SendContactConfirmation acknowledges receipt to the submitter.
func (m *Mailer) SendContactConfirmation(ctx context.Context, msg *domain.ContactMessage) error {
	body, err := renderTemplate(confirmationTmpl, msg)
	if err != nil {
		return err
	}
	return m.send(ctx, msg.Email, "Thanks for your message!", body)
}

func renderTemplate(tmpl *template.Template, msg *domain.ContactMessage) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, msg); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return buf.String(), nil
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var message bytes.Buffer
	fmt.Fprintf(&message, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&message, "To: %s\r\n", to)
	fmt.Fprintf(&message, "Subject: %s\r\n", subject)
	fmt.Fprintf(&message, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	message.WriteString("\r\n")
	message.WriteString(body)

	client, err := m.connect()
	if err != nil {
		return err
	}
	defer client.Close()

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(message.Bytes()); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	return client.Quit()
}

func (m *Mailer) connect() (*smtp.Client, error) {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	tlsConfig := &tls.Config{ServerName: m.cfg.Host}

	if m.cfg.Port == 465 {
		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return nil, fmt.Errorf("smtp tls dial: %w", err)
		}
		client, err := smtp.NewClient(conn, m.cfg.Host)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("smtp client: %w", err)
		}
		return client, nil
	}

	client, err := smtp.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("smtp dial: %w", err)
	}
	if err := client.StartTLS(tlsConfig); err != nil {
		client.Close()
		return nil, fmt.Errorf("smtp starttls: %w", err)
	}
	return client, nil
}
