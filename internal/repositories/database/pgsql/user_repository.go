package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserSettingsRepository struct {
	db *pgxpool.Pool
}

func newPgxUserSettingsRepository(db *pgxpool.Pool) portsrepo.UserSettingsRepositoryFacade {
	return &PgxUserSettingsRepository{db: db}
}

var _ portsrepo.UserSettingsRepositoryFacade = (*PgxUserSettingsRepository)(nil)

// FindDefaultCurrencyCode returns nil when the user has no row or no preference.
func (r *PgxUserSettingsRepository) FindDefaultCurrencyCode(ctx context.Context, userID string) (*string, error) {
	var user models.User
	err := r.db.QueryRow(ctx,
		`SELECT user_id, default_currency_code, created_at FROM users WHERE user_id = $1;`, userID,
	).Scan(&user.UserID, &user.DefaultCurrencyCode, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find settings for user %s: %w", userID, err)
	}
	return user.DefaultCurrencyCode, nil
}

// UpdateDefaultCurrencyCode upserts the preference; nil clears it.
func (r *PgxUserSettingsRepository) UpdateDefaultCurrencyCode(ctx context.Context, userID string, currencyCode *string) error {
	query := `
		INSERT INTO users (user_id, default_currency_code)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			default_currency_code = EXCLUDED.default_currency_code;
	`
	if _, err := r.db.Exec(ctx, query, userID, currencyCode); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%w: unknown currency code", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update settings for user %s: %w", userID, err)
	}
	return nil
}

// ensureUser creates the users row for userID inside tx if it is missing.
func ensureUser(ctx context.Context, tx pgx.Tx, userID string) error {
	if _, err := tx.Exec(ctx, `INSERT INTO users (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`, userID); err != nil {
		return fmt.Errorf("failed to ensure user %s: %w", userID, err)
	}
	return nil
}
