// Package smtp delivers composed mails through an SMTP relay using gomail.
package smtp

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-gomail/gomail"
	"github.com/google/uuid"

	"github.com/csg33k/blueprint-intake/internal/config"
	"github.com/csg33k/blueprint-intake/internal/domain"
	"github.com/csg33k/blueprint-intake/internal/ports"
)

// Dialer opens a session with the relay. *gomail.Dialer satisfies it.
type Dialer interface {
	Dial() (gomail.SendCloser, error)
}

// Sender sends one message per Send call over a fresh relay session.
type Sender struct {
	dialer Dialer
	host   string
}

// New builds a Sender from relay settings. Secure selects implicit TLS;
// otherwise gomail upgrades with STARTTLS when the server offers it.
func New(cfg config.SMTP) (*Sender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: host is required", domain.ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: port must be between 1 and 65535", domain.ErrInvalidConfig)
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = bool(cfg.Secure)
	return NewWithDialer(d, cfg.Host), nil
}

// NewWithDialer builds a Sender over an existing dialer. host is used for
// Message-ID generation.
func NewWithDialer(d Dialer, host string) *Sender {
	return &Sender{dialer: d, host: host}
}

// Factory adapts New to ports.MailSenderFactory.
func Factory(cfg config.SMTP) (ports.MailSender, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Send delivers m. Errors wrap domain.ErrMail.
func (s *Sender) Send(ctx context.Context, m *domain.Mail) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(domain.ErrMail, err)
	}
	if m.From == "" || len(m.To) == 0 {
		return fmt.Errorf("%w: sender and recipient are required", domain.ErrMail)
	}

	sc, err := s.dialer.Dial()
	if err != nil {
		return errors.Join(domain.ErrMail, fmt.Errorf("dial relay: %w", err))
	}
	defer func() { _ = sc.Close() }()

	if err := gomail.Send(sc, s.message(m)); err != nil {
		return errors.Join(domain.ErrMail, err)
	}
	return nil
}

func (s *Sender) message(m *domain.Mail) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", m.To...)
	msg.SetHeader("Subject", m.Subject)
	msg.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host))
	msg.SetBody("text/plain", m.Text)

	for _, a := range m.Attachments {
		settings := []gomail.FileSetting{gomail.SetCopyFunc(copyBytes(a.Content))}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}))
		}
		msg.Attach(a.Filename, settings...)
	}
	return msg
}

func copyBytes(b []byte) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := w.Write(b)
		return err
	}
}
