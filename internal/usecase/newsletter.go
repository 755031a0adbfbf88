package usecase

import (
	"context"
	"net/http"

	"ritter-digital-backend/internal/domain"
	"ritter-digital-backend/pkg/apperror"
	"ritter-digital-backend/pkg/logger"
)

type newsletterUsecase struct {
	mailer domain.Mailer
}

// NewNewsletterUsecase creates a new newsletter usecase. The mailing-list
// provider is the system of record; nothing is persisted locally.
func NewNewsletterUsecase(mailer domain.Mailer) domain.NewsletterUsecase {
	return &newsletterUsecase{mailer: mailer}
}

func (uc *newsletterUsecase) Subscribe(ctx context.Context, req *domain.NewsletterRequest) (*domain.SubscriptionResult, error) {
	if !uc.mailer.IsConfigured() {
		return nil, apperror.Unavailable("Die Newsletter-Anmeldung ist vorübergehend nicht verfügbar")
	}

	already, err := uc.mailer.SubscribeContact(ctx, req)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Fehler bei der Newsletter-Anmeldung", err)
	}

	if already {
		return &domain.SubscriptionResult{AlreadySubscribed: true}, nil
	}

	if err := uc.mailer.SendNewsletterConfirmation(ctx, req); err != nil {
		logger.Log.Warn("failed to send newsletter confirmation", "error", err, "email", req.Email)
	}

	return &domain.SubscriptionResult{}, nil
}
