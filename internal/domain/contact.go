package domain

import "context"

// ContactRequest represents a contact form submission. Field constraints
// mirror the form on the website; extra fields in the body are ignored.
type ContactRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=50"`
	LastName  string `json:"lastName" binding:"required,min=2,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"omitempty,valid_phone"`
	Company   string `json:"company" binding:"omitempty,max=100"`
	Message   string `json:"message" binding:"required,min=10,max=1000"`
	// Consent must be literally true; "required" rejects the zero value
	Privacy bool `json:"privacy" binding:"required"`
}

// FullName returns the submitter's display name for email headers
func (r *ContactRequest) FullName() string {
	return r.FirstName + " " + r.LastName
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact runs the submission pipeline for a validated request
	SubmitContact(ctx context.Context, req *ContactRequest) error
}

// ContactRepository persists contact submissions (best-effort)
type ContactRepository interface {
	// Store inserts the submission and returns the assigned record id
	Store(ctx context.Context, req *ContactRequest) (int64, error)
}
