package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/benjomoments/studio-api/internal/model"
)

// recentTransactionLimit caps the dashboard activity feed.
const recentTransactionLimit = 10

type IncomeRepository interface {
	Create(ctx context.Context, rec *model.IncomeRecord) (*model.IncomeRecord, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.IncomeRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*model.IncomeRecord, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*model.IncomeRecord, error)
	Total(ctx context.Context) (float64, error)
}

type ExpenseRepository interface {
	Create(ctx context.Context, rec *model.ExpenseRecord) (*model.ExpenseRecord, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.ExpenseRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*model.ExpenseRecord, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*model.ExpenseRecord, error)
	Total(ctx context.Context) (float64, error)
}

type AssetRepository interface {
	Create(ctx context.Context, a *model.Asset) (*model.Asset, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.Asset, error)
	TotalValue(ctx context.Context) (float64, error)
}

// PendingBalanceReader gives the dashboard the customers' outstanding total
// without coupling the ledger to the full customer repository.
type PendingBalanceReader interface {
	TotalPending(ctx context.Context) (float64, error)
}

// LedgerService owns income, expense and asset records and computes the
// aggregate views over them. It validates inputs, delegates persistence and
// returns every failure to the caller untouched: no retries, no logging, no
// partial writes.
type LedgerService struct {
	incomeRepo  IncomeRepository
	expenseRepo ExpenseRepository
	assetRepo   AssetRepository
	balances    PendingBalanceReader
}

func NewLedgerService(incomeRepo IncomeRepository, expenseRepo ExpenseRepository, assetRepo AssetRepository, balances PendingBalanceReader) *LedgerService {
	return &LedgerService{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		assetRepo:   assetRepo,
		balances:    balances,
	}
}

func (s *LedgerService) RecordIncome(ctx context.Context, p model.IncomeCreateRequest) (*model.IncomeRecord, error) {
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.TrimSpace(p.Category)

	if p.Description == "" {
		return nil, ErrDescriptionRequired
	}
	if p.Amount <= 0 {
		return nil, ErrNonPositiveAmount
	}
	if p.Date.IsZero() {
		return nil, ErrDateRequired
	}

	rec := &model.IncomeRecord{
		Date:        p.Date,
		Description: p.Description,
		Category:    p.Category,
		Amount:      p.Amount,
	}
	return s.incomeRepo.Create(ctx, rec)
}

func (s *LedgerService) RecordExpense(ctx context.Context, p model.ExpenseCreateRequest) (*model.ExpenseRecord, error) {
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.TrimSpace(p.Category)

	if p.Category == "" {
		return nil, ErrCategoryRequired
	}
	if p.Amount <= 0 {
		return nil, ErrNonPositiveAmount
	}
	if p.Date.IsZero() {
		return nil, ErrDateRequired
	}

	rec := &model.ExpenseRecord{
		Date:        p.Date,
		Description: p.Description,
		Category:    p.Category,
		Amount:      p.Amount,
	}
	return s.expenseRepo.Create(ctx, rec)
}

func (s *LedgerService) DeleteIncome(ctx context.Context, id int64) error {
	return s.incomeRepo.Delete(ctx, id)
}

func (s *LedgerService) DeleteExpense(ctx context.Context, id int64) error {
	return s.expenseRepo.Delete(ctx, id)
}

func (s *LedgerService) ListIncome(ctx context.Context) ([]*model.IncomeRecord, float64, error) {
	records, err := s.incomeRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.incomeRepo.Total(ctx)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (s *LedgerService) ListExpenses(ctx context.Context) ([]*model.ExpenseRecord, float64, error) {
	records, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.expenseRepo.Total(ctx)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (s *LedgerService) AddAsset(ctx context.Context, p model.AssetCreateRequest) (*model.Asset, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	p.Supplier = strings.TrimSpace(p.Supplier)

	if p.Name == "" {
		return nil, ErrNameRequired
	}
	if p.Category == "" {
		return nil, ErrCategoryRequired
	}
	if p.Value < 0 {
		return nil, ErrNegativeValue
	}

	a := &model.Asset{
		Name:     p.Name,
		Category: p.Category,
		Value:    p.Value,
		Supplier: p.Supplier,
	}
	return s.assetRepo.Create(ctx, a)
}

func (s *LedgerService) DeleteAsset(ctx context.Context, id int64) error {
	return s.assetRepo.Delete(ctx, id)
}

func (s *LedgerService) ListAssets(ctx context.Context) ([]*model.Asset, float64, error) {
	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.assetRepo.TotalValue(ctx)
	if err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

// Dashboard computes the summary figures fresh on every call. Nothing is
// cached, so a write is always visible on the next read.
func (s *LedgerService) Dashboard(ctx context.Context) (*model.DashboardSummary, error) {
	totalIncome, err := s.incomeRepo.Total(ctx)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.expenseRepo.Total(ctx)
	if err != nil {
		return nil, err
	}
	totalPending, err := s.balances.TotalPending(ctx)
	if err != nil {
		return nil, err
	}
	totalAssets, err := s.assetRepo.TotalValue(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.recentTransactions(ctx, recentTransactionLimit)
	if err != nil {
		return nil, err
	}

	return &model.DashboardSummary{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		NetProfit:          totalIncome - totalExpenses,
		TotalPending:       totalPending,
		TotalAssetValue:    totalAssets,
		RecentTransactions: recent,
	}, nil
}

// recentTransactions merges the newest income and expense rows into one feed.
// The stable sort keeps each kind's insertion order on equal dates.
func (s *LedgerService) recentTransactions(ctx context.Context, limit int) ([]model.LedgerTransaction, error) {
	income, err := s.incomeRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	merged := make([]model.LedgerTransaction, 0, len(income)+len(expenses))
	for _, r := range income {
		merged = append(merged, model.LedgerTransaction{
			Kind:        model.TransactionKindIncome,
			ID:          r.ID,
			Date:        r.Date,
			Description: r.Description,
			Category:    r.Category,
			Amount:      r.Amount,
		})
	}
	for _, r := range expenses {
		merged = append(merged, model.LedgerTransaction{
			Kind:        model.TransactionKindExpense,
			ID:          r.ID,
			Date:        r.Date,
			Description: r.Description,
			Category:    r.Category,
			Amount:      r.Amount,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

// Report collects all ledger entries with date in [Start, End] inclusive. An
// empty match is a valid report with zero sums, not an error.
func (s *LedgerService) Report(ctx context.Context, period model.ReportPeriod) (*model.Report, error) {
	if period.Start.IsZero() || period.End.IsZero() {
		return nil, ErrDateRequired
	}
	if period.Start.After(period.End) {
		return nil, ErrInvalidDateRange
	}

	income, err := s.incomeRepo.ListByDateRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListByDateRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		Period:   period,
		Income:   income,
		Expenses: expenses,
	}
	for _, r := range income {
		report.TotalIncome += r.Amount
	}
	for _, r := range expenses {
		report.TotalExpenses += r.Amount
	}
	report.NetProfit = report.TotalIncome - report.TotalExpenses

	return report, nil
}
