package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brownie44l1/quickloan/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ==============================================
// APPLICATION REPOSITORY (Postgres)
// ==============================================

type ApplicationRepository struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// CreateIfAbsent inserts the application unless the identity already has
// one. The unique constraint on identity_id guarantees at most one row per
// identity even when submissions race; the loser reads back the winner.
func (r *ApplicationRepository) CreateIfAbsent(ctx context.Context, app *models.Application) (*models.Application, bool, error) {
	insert := `
		INSERT INTO applications (
			id, identity_id, full_name, national_id, email, date_of_birth,
			loan_amount, loan_term, purpose, status, decision_reason, submitted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (identity_id) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, insert,
		app.ID,
		app.IdentityID,
		app.FullName,
		app.NationalID,
		app.Email,
		app.DateOfBirth,
		app.LoanAmount,
		app.LoanTermDays,
		app.Purpose,
		app.Status,
		app.DecisionReason,
		app.SubmittedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create application: %w", err)
	}

	created := tag.RowsAffected() == 1

	stored, err := r.GetByIdentity(ctx, app.IdentityID)
	if err != nil {
		return nil, false, err
	}

	return stored, created, nil
}

func (r *ApplicationRepository) GetByIdentity(ctx context.Context, identityID string) (*models.Application, error) {
	query := `
		SELECT id, identity_id, full_name, national_id, email, date_of_birth,
		       loan_amount, loan_term, purpose, status, decision_reason, submitted_at
		FROM applications
		WHERE identity_id = $1
	`

	var app models.Application
	err := r.db.QueryRow(ctx, query, identityID).Scan(
		&app.ID,
		&app.IdentityID,
		&app.FullName,
		&app.NationalID,
		&app.Email,
		&app.DateOfBirth,
		&app.LoanAmount,
		&app.LoanTermDays,
		&app.Purpose,
		&app.Status,
		&app.DecisionReason,
		&app.SubmittedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return &app, nil
}
