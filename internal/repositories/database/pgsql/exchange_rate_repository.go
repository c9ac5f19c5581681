package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exchangeRateColumns = `exchange_rate_id, user_id, from_currency_code, to_currency_code, rate, effective_date, created_at`

// PgxExchangeRateRepository implements the exchange rate store using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// FindRateAsOf returns the latest rate for the pair effective on or before asOf.
func (r *PgxExchangeRateRepository) FindRateAsOf(ctx context.Context, userID, fromCode, toCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE user_id = $1 AND from_currency_code = $2 AND to_currency_code = $3 AND effective_date <= $4
		ORDER BY effective_date DESC, exchange_rate_id ASC
		LIMIT 1;
	`
	return r.queryOne(ctx, query, userID, fromCode, toCode, domain.DateOnly(asOf))
}

func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, userID, rateID string) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE exchange_rate_id = $1 AND user_id = $2;
	`
	return r.queryOne(ctx, query, rateID, userID)
}

func (r *PgxExchangeRateRepository) ListExchangeRatesByUser(ctx context.Context, userID string) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE user_id = $1
		ORDER BY effective_date DESC, from_currency_code, to_currency_code, exchange_rate_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ExchangeRate])
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}
	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}

func (r *PgxExchangeRateRepository) ExistsDuplicate(ctx context.Context, userID, fromCode, toCode string, effectiveDate time.Time, excludeID *string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM exchange_rates
			WHERE user_id = $1 AND from_currency_code = $2 AND to_currency_code = $3 AND effective_date = $4
				AND ($5::uuid IS NULL OR exchange_rate_id <> $5::uuid)
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, userID, fromCode, toCode, domain.DateOnly(effectiveDate), excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check for duplicate exchange rate: %w", err)
	}
	return exists, nil
}

// SaveExchangeRate inserts a new rate. The owning users row is created on
// first write so the foreign key holds for identities issued elsewhere.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(rate)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := ensureUser(ctx, tx, modelRate.UserID); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO exchange_rates (`+exchangeRateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		modelRate.ExchangeRateID, modelRate.UserID, modelRate.FromCurrencyCode, modelRate.ToCurrencyCode,
		modelRate.Rate, modelRate.EffectiveDate, modelRate.CreatedAt,
	)
	if err != nil {
		return mapRateWriteError(err, "failed to save exchange rate")
	}

	return r.Commit(ctx, tx)
}

// UpdateExchangeRate changes the rate value and effective date of an owned rate.
func (r *PgxExchangeRateRepository) UpdateExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(rate)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE exchange_rates
		SET rate = $1, effective_date = $2
		WHERE exchange_rate_id = $3 AND user_id = $4;`,
		modelRate.Rate, modelRate.EffectiveDate, modelRate.ExchangeRateID, modelRate.UserID,
	)
	if err != nil {
		return mapRateWriteError(err, "failed to update exchange rate")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExchangeRateRepository) DeleteExchangeRate(ctx context.Context, userID, rateID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM exchange_rates WHERE exchange_rate_id = $1 AND user_id = $2;`, rateID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete exchange rate %s: %w", rateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExchangeRateRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.ExchangeRate, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rate: %w", err)
	}
	modelRate, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ExchangeRate])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan exchange rate: %w", err)
	}
	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

func mapRateWriteError(err error, msg string) error {
	switch pgErrorCode(err) {
	case pgUniqueViolation:
		return apperrors.ErrDuplicate
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: unknown currency code", apperrors.ErrValidation)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
