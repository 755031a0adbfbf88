package domain

import "context"

// Mailer wraps the transactional-email provider behind the operations the
// submission pipeline needs. Implemented by pkg/brevo.
type Mailer interface {
	// IsConfigured reports whether the provider credentials are present
	IsConfigured() bool

	// SendContactNotice emails the submission to the organization inbox
	// with the submitter as reply-to. This is the only fatal send.
	SendContactNotice(ctx context.Context, req *ContactRequest) error

	// SendContactConfirmation sends the best-effort acknowledgement to the
	// submitter via a provider-hosted template.
	SendContactConfirmation(ctx context.Context, email, name string) error

	// SubscribeContact adds the address to the newsletter list. Returns
	// alreadySubscribed=true when the provider reports an existing contact.
	SubscribeContact(ctx context.Context, req *NewsletterRequest) (alreadySubscribed bool, err error)

	// SendNewsletterConfirmation sends the best-effort signup confirmation
	SendNewsletterConfirmation(ctx context.Context, req *NewsletterRequest) error
}
