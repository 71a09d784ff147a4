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
// SESSION REPOSITORY (Postgres)
// ==============================================

type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (token, phone, identity_id, issued_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		session.Token,
		session.Phone,
		session.IdentityID,
		session.IssuedAt,
		session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	query := `
		SELECT token, phone, identity_id, issued_at, expires_at
		FROM sessions
		WHERE token = $1
	`

	var session models.Session
	err := r.db.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&session.Phone,
		&session.IdentityID,
		&session.IssuedAt,
		&session.ExpiresAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}
