// Package mail provides the SMTP-backed MailSender implementation.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"campustrace/config"
	"campustrace/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// gomailSender implements MailSender over SMTP using gomail.
type gomailSender struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewGomailSender is the constructor for gomailSender.
func NewGomailSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail host must be provided")
	}

	return &gomailSender{
		dialer: gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password),
		from:   cfg.Mail.From,
		logger: logger,
	}, nil
}

// SendMagicLink sends a one-time sign-in link to the given address.
func (s *gomailSender) SendMagicLink(ctx context.Context, to, link string) error {
	body := fmt.Sprintf(
		"<p>Click the link below to sign in to CampusTrace:</p><p><a href=%q>%s</a></p><p>The link expires shortly and can only be used once.</p>",
		link, link,
	)

	return s.send(ctx, to, "Your CampusTrace sign-in link", body)
}

// SendClaimDecision notifies a claimant that their claim was decided.
func (s *gomailSender) SendClaimDecision(ctx context.Context, to, itemTitle, decision string) error {
	body := fmt.Sprintf(
		"<p>Your claim on <strong>%s</strong> has been %s.</p><p>Open CampusTrace for the details.</p>",
		itemTitle, decision,
	)

	return s.send(ctx, to, fmt.Sprintf("Claim %s: %s", decision, itemTitle), body)
}

// send builds and delivers a single HTML message. gomail dials per send,
// which is acceptable for the low mail volume here.
func (s *gomailSender) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return errors.Wrapf(err, "failed to send mail to %s", to)
	}

	s.logger.Debug("Mail sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}
