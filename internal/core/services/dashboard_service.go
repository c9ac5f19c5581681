package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	minDashboardYear         = 2000
	defaultConversionWorkers = 8
)

var hundred = decimal.NewFromInt(100)

type dashboardService struct {
	BaseService
	expenseRepo portsrepo.ExpenseReader
	resolver    portssvc.RateResolverSvc
	workers     int
	now         func() time.Time
}

// DashboardOption configures the dashboard service.
type DashboardOption func(*dashboardService)

// WithConversionWorkers bounds how many rate resolutions run at once.
func WithConversionWorkers(n int) DashboardOption {
	return func(s *dashboardService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithClock replaces the clock used to default and validate the period.
func WithClock(now func() time.Time) DashboardOption {
	return func(s *dashboardService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewDashboardService creates the month aggregation service.
func NewDashboardService(expenseRepo portsrepo.ExpenseReader, resolver portssvc.RateResolverSvc, opts ...DashboardOption) portssvc.DashboardSvc {
	s := &dashboardService{
		expenseRepo: expenseRepo,
		resolver:    resolver,
		workers:     defaultConversionWorkers,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) ResolvePeriod(month, year *int) (int, int, error) {
	now := s.now().UTC()
	m, y := int(now.Month()), now.Year()
	if month != nil {
		m = *month
	}
	if year != nil {
		y = *year
	}

	verrs := apperrors.ValidationErrors{}
	if m < 1 || m > 12 {
		verrs.Add("month", "Month must be between 1 and 12.")
	}
	if maxYear := now.Year() + 1; y < minDashboardYear || y > maxYear {
		verrs.Add("year", fmt.Sprintf("Year must be between %d and %d.", minDashboardYear, maxYear))
	}
	if verrs.HasErrors() {
		return 0, 0, verrs
	}
	return m, y, nil
}

// conversionKey identifies one resolution within a single dashboard pass.
type conversionKey struct {
	from string
	day  time.Time
}

func (s *dashboardService) BuildDashboard(ctx context.Context, userID string, month, year int, display domain.DisplayCurrency) (*domain.DashboardSnapshot, error) {
	logger := s.GetLogger(ctx).With(slog.Int("month", month), slog.Int("year", year), slog.String("display_currency", display.Code))

	expenses, err := s.expenseRepo.ListExpensesForMonth(ctx, userID, month, year)
	if err != nil {
		logger.Error("Failed to list expenses for dashboard", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	snapshot := &domain.DashboardSnapshot{
		Month:             month,
		Year:              year,
		TotalSpent:        decimal.Zero,
		CategoryBreakdown: []domain.CategorySpending{},
		DailySpending:     []domain.DailySpending{},
		DisplayCurrency:   display.Code,
		DisplaySymbol:     display.Symbol,
	}
	if len(expenses) == 0 {
		return snapshot, nil
	}

	converted, err := s.convertAll(ctx, userID, expenses, display.Code)
	if err != nil {
		logger.Error("Failed to convert expenses for dashboard", slog.String("error", err.Error()))
		return nil, err
	}

	aggregate(snapshot, converted)
	logger.Debug("Dashboard built", slog.Int("transaction_count", snapshot.TransactionCount))
	return snapshot, nil
}

// convertAll converts every expense into the display currency as of its own date.
// Each distinct (currency, day) is resolved once, concurrently; results are
// index-addressed so the output does not depend on completion order.
func (s *dashboardService) convertAll(ctx context.Context, userID string, expenses []domain.ExpenseRecord, displayCode string) ([]domain.ConvertedExpense, error) {
	keyIndex := make(map[conversionKey]int)
	keys := make([]conversionKey, 0)
	expenseKeys := make([]int, len(expenses))
	for i, e := range expenses {
		k := conversionKey{from: normalizeCurrencyCode(e.CurrencyCode), day: domain.DateOnly(e.Date)}
		idx, ok := keyIndex[k]
		if !ok {
			idx = len(keys)
			keyIndex[k] = idx
			keys = append(keys, k)
		}
		expenseKeys[i] = idx
	}

	factors := make([]decimal.Decimal, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, k := range keys {
		i, k := i, k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			factor, err := s.resolver.Resolve(gctx, userID, k.from, displayCode, k.day)
			if err != nil {
				return err
			}
			factors[i] = factor
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	converted := make([]domain.ConvertedExpense, len(expenses))
	for i, e := range expenses {
		converted[i] = domain.ConvertedExpense{
			ExpenseID:      e.ExpenseID,
			Amount:         convertAmount(e.Amount, factors[expenseKeys[i]]),
			CurrencyCode:   displayCode,
			OriginalAmount: e.Amount,
			OriginalCode:   e.CurrencyCode,
			Description:    e.Description,
			Date:           e.Date,
			CategoryID:     e.CategoryID,
			CategoryName:   e.CategoryName,
			CategoryColor:  e.CategoryColor,
		}
	}
	return converted, nil
}

// aggregate folds converted expenses into the snapshot totals, breakdowns and series.
func aggregate(snapshot *domain.DashboardSnapshot, converted []domain.ConvertedExpense) {
	total := decimal.Zero
	var highest *domain.ConvertedExpense
	categoryIndex := make(map[string]int)
	categories := make([]domain.CategorySpending, 0)
	dayIndex := make(map[time.Time]int)
	days := make([]domain.DailySpending, 0)

	for i := range converted {
		e := &converted[i]
		total = total.Add(e.Amount)

		if highest == nil || e.Amount.GreaterThan(highest.Amount) ||
			(e.Amount.Equal(highest.Amount) && e.ExpenseID < highest.ExpenseID) {
			highest = e
		}

		ci, ok := categoryIndex[e.CategoryID]
		if !ok {
			ci = len(categories)
			categoryIndex[e.CategoryID] = ci
			categories = append(categories, domain.CategorySpending{
				CategoryID:   e.CategoryID,
				CategoryName: e.CategoryName,
				Color:        e.CategoryColor,
				Total:        decimal.Zero,
			})
		}
		categories[ci].Total = categories[ci].Total.Add(e.Amount)

		day := domain.DateOnly(e.Date)
		di, ok := dayIndex[day]
		if !ok {
			di = len(days)
			dayIndex[day] = di
			days = append(days, domain.DailySpending{Date: day, Total: decimal.Zero})
		}
		days[di].Total = days[di].Total.Add(e.Amount)
	}

	for i := range categories {
		categories[i].Percentage = percentage(categories[i].Total, total)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if c := categories[i].Total.Cmp(categories[j].Total); c != 0 {
			return c > 0
		}
		if categories[i].CategoryName != categories[j].CategoryName {
			return categories[i].CategoryName < categories[j].CategoryName
		}
		return categories[i].CategoryID < categories[j].CategoryID
	})
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	highestCopy := *highest
	snapshot.TotalSpent = total
	snapshot.TransactionCount = len(converted)
	snapshot.HighestExpense = &highestCopy
	snapshot.CategoryBreakdown = categories
	snapshot.DailySpending = days
	if len(categories) > 0 {
		top := categories[0].CategoryName
		snapshot.TopCategory = &top
	}
}

// percentage returns round(part/total*100, 2), or 0 when total is 0.
func percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).DivRound(total, domain.MoneyScale)
}
