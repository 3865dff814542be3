// Package mail envía los correos de recuperación de contraseña.
package mail

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Ginebra-api/internal/application/ports"
	"github.com/jhoicas/Ginebra-api/pkg/config"
	"github.com/jhoicas/Ginebra-api/pkg/logger"
)

var (
	_ ports.Mailer = (*SMTPMailer)(nil)
	_ ports.Mailer = (*LogMailer)(nil)
)

// New devuelve el mailer SMTP si hay host configurado; si no, uno que solo registra en el log.
func New(cfg config.MailConfig, log *logger.Logger) ports.Mailer {
	if cfg.Host == "" {
		return NewLogMailer(cfg.ResetURL, log)
	}
	return NewSMTPMailer(cfg, gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password), log)
}

// SMTPMailer envía con gomail a través de cualquier gomail.Sender.
type SMTPMailer struct {
	from     string
	resetURL string
	dialer   gomail.Sender
	log      *logger.Logger
}

// Dialer abre una conexión por envío; *gomail.Dialer lo implementa.
type Dialer interface {
	Dial() (gomail.SendCloser, error)
}

// NewSMTPMailer construye el mailer SMTP.
func NewSMTPMailer(cfg config.MailConfig, d Dialer, log *logger.Logger) *SMTPMailer {
	if log == nil {
		log = logger.Nop()
	}
	return &SMTPMailer{from: cfg.From, resetURL: cfg.ResetURL, dialer: dialSender{d}, log: log}
}

// SendPasswordReset arma y envía el correo. gomail no acepta contexto; se comprueba antes de marcar.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, name, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := resetMessage(m.from, to, name, resetLink(m.resetURL, token))
	if err := gomail.Send(m.dialer, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	m.log.Info().Str("to", to).Msg("correo de recuperación enviado")
	return nil
}

// dialSender adapta un Dialer a gomail.Sender cerrando la conexión tras cada envío.
type dialSender struct{ d Dialer }

func (s dialSender) Send(from string, to []string, msg io.WriterTo) error {
	sc, err := s.d.Dial()
	if err != nil {
		return err
	}
	defer func() { _ = sc.Close() }()
	return sc.Send(from, to, msg)
}

func resetMessage(from, to, name, link string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Recuperación de contraseña")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hola %s,\n\nPara elegir una contraseña nueva abre este enlace:\n\n%s\n\n"+
			"Si no solicitaste el cambio, ignora este correo.\n", name, link))
	return msg
}

// resetLink agrega el token como parámetro de la URL del frontend.
func resetLink(base, token string) string {
	u, err := url.Parse(base)
	if err != nil || base == "" {
		return token
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}

// LogMailer registra el enlace en lugar de enviarlo; pensado para desarrollo.
type LogMailer struct {
	resetURL string
	log      *logger.Logger
}

func NewLogMailer(resetURL string, log *logger.Logger) *LogMailer {
	if log == nil {
		log = logger.Nop()
	}
	return &LogMailer{resetURL: resetURL, log: log}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, to, name, token string) error {
	m.log.Warn().Str("to", to).Str("name", name).Str("link", resetLink(m.resetURL, token)).
		Msg("SMTP no configurado: correo de recuperación no enviado")
	return nil
}
