package mailer

import (
	"context"
	"crypto/tls"

	"hotel-inspection-backend/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// New memilih SMTP jika EMAIL_HOST diisi, selain itu email hanya ditulis ke log.
func New(cfg config.MailConfig, production bool, log *zap.Logger) Mailer {
	if cfg.Host == "" {
		log.Warn("EMAIL_HOST kosong, email tidak dikirim dan hanya dicatat di log")
		return &LogMailer{log: log}
	}
	return NewSMTP(cfg, production)
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(cfg config.MailConfig, production bool) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.Port == 465
	if !production {
		// server SMTP development sering memakai sertifikat self-signed
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true, ServerName: cfg.Host}
	}
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTPMailer{dialer: d, from: from}
}

func (m *SMTPMailer) Send(_ context.Context, to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)
	return m.dialer.DialAndSend(msg)
}

type LogMailer struct {
	log *zap.Logger
}

// Isi email (bisa memuat token reset) hanya dicatat di level Debug.
func (m *LogMailer) Send(_ context.Context, to, subject, html string) error {
	m.log.Info("email (tidak dikirim)", zap.String("to", to), zap.String("subject", subject))
	m.log.Debug("isi email (tidak dikirim)", zap.String("to", to), zap.String("body", html))
	return nil
}
