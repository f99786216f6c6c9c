package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type IMailService interface {
	SendResetPasswordMail(to, token string) error
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool
	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg SMTPConfig
	tpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	tpl, err := template.New("resetHTML").Parse(resetHTMLTemplate)
	if err != nil {
		return nil, err
	}
	return &smtpMailService{cfg: cfg, tpl: tpl}, nil
}

type resetMailData struct {
	AppName  string
	ResetURL string
	Year     int
}

func (s *smtpMailService) SendResetPasswordMail(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))

	var body bytes.Buffer
	err := s.tpl.Execute(&body, resetMailData{
		AppName:  s.cfg.AppName,
		ResetURL: link,
		Year:     time.Now().Year(),
	})
	if err != nil {
		return err
	}

	return s.send(to, "Reset your password", body.String())
}

func (s *smtpMailService) send(to, subject, htmlBody string) error {
	from := s.cfg.From
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.From)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(htmlBody)

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.Host})
		if err != nil {
			return err
		}
		client, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Auth(auth); err != nil {
			return err
		}
		if err := client.Mail(s.cfg.From); err != nil {
			return err
		}
		if err := client.Rcpt(to); err != nil {
			return err
		}
		w, err := client.Data()
		if err != nil {
			return err
		}
		if _, err := w.Write(msg.Bytes()); err != nil {
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
		return client.Quit()
	}

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
}

const resetHTMLTemplate = `<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#f6f6f6;padding:24px">
  <div style="max-width:480px;margin:auto;background:#fff;border-radius:8px;padding:32px">
    <h2>{{.AppName}}</h2>
    <p>We received a request to reset your password. This link is valid
    for 30 minutes and can be used once.</p>
    <p><a href="{{.ResetURL}}" style="display:inline-block;background:#4a7c59;color:#fff;padding:12px 24px;border-radius:6px;text-decoration:none">Reset password</a></p>
    <p>If you didn't request this, you can safely ignore this email.</p>
    <p style="color:#999;font-size:12px">&copy; {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

// NoopMailService logs nothing and sends nothing. Used when SMTP is not
// configured (local development, tests).
type NoopMailService struct{}

func (NoopMailService) SendResetPasswordMail(to, token string) error { return nil }
