package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/csg33k/blueprint-intake/internal/domain"
	"github.com/csg33k/blueprint-intake/internal/ports"
)

const (
	AttachmentName = "blueprint-diagnostic.pdf"

	SubjectPrimary = "Nuevo Blueprint Diagnostic"
	SubjectCopy    = "Tu Blueprint Diagnostic"
	CopyText       = "Gracias por tu solicitud. Adjuntamos tu Blueprint Diagnostic."
)

// deliver renders the summary for s and mails it. It reports whether the
// submitter copy was sent. The copy is only attempted after the primary mail
// succeeds; a failed copy still fails the whole delivery.
func (h *Handler) deliver(ctx context.Context, s *domain.Submission) (bool, error) {
	sender, err := h.newSender(h.smtp)
	if err != nil {
		return false, errors.Join(domain.ErrMail, fmt.Errorf("build transport: %w", err))
	}

	doc, err := h.renderer.Render(ctx, s)
	if err != nil {
		if !errors.Is(err, domain.ErrRender) {
			err = errors.Join(domain.ErrRender, err)
		}
		return false, err
	}
	attachment := domain.Attachment{
		Filename:    AttachmentName,
		ContentType: "application/pdf",
		Content:     doc,
	}

	primary := &domain.Mail{
		From:        h.mail.From,
		To:          []string{h.mail.To},
		Subject:     SubjectPrimary,
		Text:        leadText(s),
		Attachments: []domain.Attachment{attachment},
	}
	if err := send(ctx, sender, primary); err != nil {
		return false, fmt.Errorf("send to %s: %w", h.mail.To, err)
	}

	if !h.mail.CopyToUser || s.Email == "" {
		return false, nil
	}
	cp := &domain.Mail{
		From:        h.mail.From,
		To:          []string{s.Email},
		Subject:     SubjectCopy,
		Text:        CopyText,
		Attachments: []domain.Attachment{attachment},
	}
	if err := send(ctx, sender, cp); err != nil {
		return false, fmt.Errorf("send copy to submitter: %w", err)
	}
	return true, nil
}

func send(ctx context.Context, sender ports.MailSender, m *domain.Mail) error {
	err := sender.Send(ctx, m)
	if err != nil && !errors.Is(err, domain.ErrMail) {
		err = errors.Join(domain.ErrMail, err)
	}
	return err
}

// leadText is the plain-text body of the primary mail. Values are written
// raw: absent fields stay empty rather than showing the document placeholder.
func leadText(s *domain.Submission) string {
	var b strings.Builder
	b.WriteString("Nuevo lead:\n")
	for _, f := range s.Fields() {
		b.WriteString("\n")
		b.WriteString(f.Label)
		b.WriteString(": ")
		b.WriteString(f.Value)
	}
	return b.String()
}
