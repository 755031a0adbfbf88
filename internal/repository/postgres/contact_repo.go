package postgres

import (
	"context"

	"ritter-digital-backend/internal/domain"
	"ritter-digital-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

// Store inserts the submission with a server-assigned timestamp and the
// default "new" status. The caller treats failures as non-fatal.
func (r *contactRepo) Store(ctx context.Context, req *domain.ContactRequest) (int64, error) {
	query := `INSERT INTO contact_requests (first_name, last_name, email, phone, company, message, status, created_at)
              VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, 'new', now())
              RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		req.FirstName, req.LastName, req.Email, req.Phone, req.Company, req.Message,
	).Scan(&id)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return id, nil
}
