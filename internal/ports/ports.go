package ports

import (
	"context"

	"github.com/csg33k/blueprint-intake/internal/config"
	"github.com/csg33k/blueprint-intake/internal/domain"
)

// DocumentRenderer defines the document output port.
type DocumentRenderer interface {
	// Render returns the finished one-page summary for s.
	// Failures wrap domain.ErrRender.
	Render(ctx context.Context, s *domain.Submission) ([]byte, error)
}

// MailSender delivers a single composed message.
type MailSender interface {
	Send(ctx context.Context, m *domain.Mail) error
}

// MailSenderFactory builds a transport from SMTP settings. It is called once
// per submission, so implementations should be cheap to construct.
type MailSenderFactory func(cfg config.SMTP) (MailSender, error)
