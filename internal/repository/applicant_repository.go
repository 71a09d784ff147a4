package repository

import (
	"context"
	"fmt"

	"github.com/Brownie44l1/quickloan/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ==============================================
// APPLICANT REPOSITORY (Postgres)
// ==============================================

type ApplicantRepository struct {
	db *pgxpool.Pool
}

func NewApplicantRepository(db *pgxpool.Pool) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

// GetOrCreate inserts the applicant unless the phone is already registered,
// then reads back whichever row won. Two concurrent first-time verifications
// of the same phone resolve to a single identity.
func (r *ApplicantRepository) GetOrCreate(ctx context.Context, applicant *models.Applicant) (*models.Applicant, error) {
	insert := `
		INSERT INTO applicants (id, phone, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (phone) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, insert, applicant.ID, applicant.Phone, applicant.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create applicant: %w", err)
	}

	query := `
		SELECT id, phone, created_at
		FROM applicants
		WHERE phone = $1
	`

	var stored models.Applicant
	err := r.db.QueryRow(ctx, query, applicant.Phone).Scan(
		&stored.ID,
		&stored.Phone,
		&stored.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get applicant: %w", err)
	}

	return &stored, nil
}
