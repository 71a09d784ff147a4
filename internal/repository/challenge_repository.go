package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Brownie44l1/quickloan/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ==============================================
// CHALLENGE REPOSITORY (Postgres)
// ==============================================

type ChallengeRepository struct {
	db *pgxpool.Pool
}

func NewChallengeRepository(db *pgxpool.Pool) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

// Put upserts the challenge keyed by phone. The upsert is atomic, so a new
// request replaces the prior challenge in one statement (last write wins).
func (r *ChallengeRepository) Put(ctx context.Context, ch *models.PhoneChallenge) error {
	query := `
		INSERT INTO phone_challenges (phone, code, created_at, expires_at, consumed_at)
		VALUES ($1, $2, $3, $4, NULL)
		ON CONFLICT (phone) DO UPDATE
		SET code = EXCLUDED.code,
		    created_at = EXCLUDED.created_at,
		    expires_at = EXCLUDED.expires_at,
		    consumed_at = NULL
	`

	if _, err := r.db.Exec(ctx, query, ch.Phone, ch.Code, ch.CreatedAt, ch.ExpiresAt); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}

	return nil
}

func (r *ChallengeRepository) Get(ctx context.Context, phone string) (*models.PhoneChallenge, error) {
	query := `
		SELECT phone, code, created_at, expires_at, consumed_at
		FROM phone_challenges
		WHERE phone = $1
	`

	var ch models.PhoneChallenge
	err := r.db.QueryRow(ctx, query, phone).Scan(
		&ch.Phone,
		&ch.Code,
		&ch.CreatedAt,
		&ch.ExpiresAt,
		&ch.ConsumedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return &ch, nil
}

// Consume marks the challenge used. The WHERE clause makes this a
// compare-and-set: a challenge that was already consumed (or replaced)
// updates zero rows and the verification fails instead of replaying.
func (r *ChallengeRepository) Consume(ctx context.Context, phone string, at time.Time) error {
	query := `
		UPDATE phone_challenges
		SET consumed_at = $2
		WHERE phone = $1 AND consumed_at IS NULL
	`

	tag, err := r.db.Exec(ctx, query, phone, at)
	if err != nil {
		return fmt.Errorf("failed to consume challenge: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrChallengeConsumed
	}

	return nil
}
