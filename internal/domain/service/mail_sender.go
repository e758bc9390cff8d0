package service

import "context"

// MailSender defines the interface for sending transactional email.
type MailSender interface {
	// SendMagicLink sends a one-time sign-in link to the given address.
	SendMagicLink(ctx context.Context, to, link string) error

	// SendClaimDecision notifies a claimant that their claim was decided.
	SendClaimDecision(ctx context.Context, to, itemTitle, decision string) error
}
