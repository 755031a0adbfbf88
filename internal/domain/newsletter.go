package domain

import "context"

// NewsletterRequest represents a newsletter signup
type NewsletterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"omitempty,max=50"`
	LastName  string `json:"lastName" binding:"omitempty,max=50"`
	Privacy   bool   `json:"privacy" binding:"required"`
}

// SubscriptionResult reports the terminal state of a newsletter signup.
// Re-submitting a known address is not an error; the provider signals it
// and the distinction is threaded through to the HTTP response.
type SubscriptionResult struct {
	AlreadySubscribed bool
}

// NewsletterUsecase defines the interface for newsletter operations
type NewsletterUsecase interface {
	Subscribe(ctx context.Context, req *NewsletterRequest) (*SubscriptionResult, error)
}
