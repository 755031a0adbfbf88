package usecase

import (
	"context"
	"net/http"

	"ritter-digital-backend/internal/domain"
	"ritter-digital-backend/pkg/apperror"
	"ritter-digital-backend/pkg/logger"
)

type contactUsecase struct {
	repo   domain.ContactRepository
	mailer domain.Mailer
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(repo domain.ContactRepository, mailer domain.Mailer) domain.ContactUsecase {
	return &contactUsecase{
		repo:   repo,
		mailer: mailer,
	}
}

// SubmitContact runs the pipeline for an already validated submission:
// persist (best-effort), notify the organization (fatal), confirm to the
// submitter (best-effort).
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) error {
	if !uc.mailer.IsConfigured() {
		return apperror.Unavailable("Das Kontaktformular ist vorübergehend nicht verfügbar")
	}

	// A lost database write must never prevent the notice email; the
	// email is the channel the business actually works from.
	if uc.repo != nil {
		if id, err := uc.repo.Store(ctx, req); err != nil {
			logger.Log.Error("failed to store contact request", "error", err, "email", req.Email)
		} else {
			logger.Log.Info("contact request stored", "id", id)
		}
	}

	if err := uc.mailer.SendContactNotice(ctx, req); err != nil {
		return apperror.New(http.StatusInternalServerError, "Fehler beim Senden der E-Mail", err)
	}

	if err := uc.mailer.SendContactConfirmation(ctx, req.Email, req.FullName()); err != nil {
		logger.Log.Warn("failed to send contact confirmation", "error", err, "email", req.Email)
	}

	return nil
}
