package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// rateStrategy tries one way of resolving a pair. ok is false when the
// strategy does not apply and the next one should be tried.
type rateStrategy func(ctx context.Context, userID, from, to string, asOf time.Time) (res domain.RateResolution, ok bool, err error)

type rateResolver struct {
	BaseService
	rateRepo   portsrepo.ExchangeRateReader
	strategies []rateStrategy
}

// NewRateResolver creates the rate resolver. Strategies run in order:
// same currency, direct rate, inverted reverse rate.
func NewRateResolver(rateRepo portsrepo.ExchangeRateReader) portssvc.RateResolverSvc {
	r := &rateResolver{rateRepo: rateRepo}
	r.strategies = []rateStrategy{r.sameCurrency, r.directRate, r.invertedRate}
	return r
}

var _ portssvc.RateResolverSvc = (*rateResolver)(nil)

func (r *rateResolver) ResolveRate(ctx context.Context, userID, fromCode, toCode string, asOf time.Time) (domain.RateResolution, error) {
	from := normalizeCurrencyCode(fromCode)
	to := normalizeCurrencyCode(toCode)
	day := domain.DateOnly(asOf)

	for _, strategy := range r.strategies {
		res, ok, err := strategy(ctx, userID, from, to, day)
		if err != nil {
			return domain.RateResolution{}, err
		}
		if ok {
			return res, nil
		}
	}

	r.LogDebug(ctx, "No exchange rate in either direction, using 1:1",
		slog.String("from", from), slog.String("to", to), slog.Time("as_of", day))
	return domain.IdentityResolution(), nil
}

func (r *rateResolver) Resolve(ctx context.Context, userID, fromCode, toCode string, asOf time.Time) (decimal.Decimal, error) {
	res, err := r.ResolveRate(ctx, userID, fromCode, toCode, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	return res.Factor, nil
}

func (r *rateResolver) Convert(ctx context.Context, userID string, amount decimal.Decimal, fromCode, toCode string, asOf time.Time) (decimal.Decimal, error) {
	factor, err := r.Resolve(ctx, userID, fromCode, toCode, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	return convertAmount(amount, factor), nil
}

// convertAmount applies a factor and rounds to money precision.
func convertAmount(amount, factor decimal.Decimal) decimal.Decimal {
	return domain.RoundMoney(amount.Mul(factor))
}

func (r *rateResolver) sameCurrency(_ context.Context, _, from, to string, _ time.Time) (domain.RateResolution, bool, error) {
	if from != to {
		return domain.RateResolution{}, false, nil
	}
	return domain.IdentityResolution(), true, nil
}

func (r *rateResolver) directRate(ctx context.Context, userID, from, to string, asOf time.Time) (domain.RateResolution, bool, error) {
	rate, err := r.findRate(ctx, userID, from, to, asOf)
	if err != nil || rate == nil {
		return domain.RateResolution{}, false, err
	}
	return domain.DirectResolution(*rate), true, nil
}

func (r *rateResolver) invertedRate(ctx context.Context, userID, from, to string, asOf time.Time) (domain.RateResolution, bool, error) {
	rate, err := r.findRate(ctx, userID, to, from, asOf)
	if err != nil || rate == nil {
		return domain.RateResolution{}, false, err
	}
	if rate.Rate.IsZero() {
		r.LogDebug(ctx, "Skipping zero reverse rate", slog.String("exchange_rate_id", rate.ExchangeRateID))
		return domain.RateResolution{}, false, nil
	}
	return domain.InvertedResolution(*rate), true, nil
}

// findRate maps a not-found store result to (nil, nil).
func (r *rateResolver) findRate(ctx context.Context, userID, from, to string, asOf time.Time) (*domain.ExchangeRate, error) {
	rate, err := r.rateRepo.FindRateAsOf(ctx, userID, from, to, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		r.LogError(ctx, err, "Failed to look up exchange rate",
			slog.String("from", from), slog.String("to", to), slog.Time("as_of", asOf))
		return nil, fmt.Errorf("failed to find rate %s->%s: %w", from, to, err)
	}
	return rate, nil
}
