package model

import (
	"time"
)

// TransactionKind tags an entry in a merged income/expense listing.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// LedgerTransaction is a single row in the merged recent-activity view.
type LedgerTransaction struct {
	Kind        TransactionKind `json:"type"`
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      float64         `json:"amount"`
}

// DashboardSummary is the aggregate view the admin dashboard renders. It is
// computed on every read; nothing here is cached or persisted.
type DashboardSummary struct {
	TotalIncome        float64             `json:"total_income"`
	TotalExpenses      float64             `json:"total_expenses"`
	NetProfit          float64             `json:"net_profit"`
	TotalPending       float64             `json:"total_pending"`
	TotalAssetValue    float64             `json:"total_asset_value"`
	RecentTransactions []LedgerTransaction `json:"recent_transactions"`
}

// ReportPeriod is an inclusive [Start, End] date range.
type ReportPeriod struct {
	Start time.Time
	End   time.Time
}

// Report holds all ledger entries falling inside a period, with their sums.
type Report struct {
	Period        ReportPeriod     `json:"-"`
	Income        []*IncomeRecord  `json:"income"`
	Expenses      []*ExpenseRecord `json:"expenses"`
	TotalIncome   float64          `json:"total_income"`
	TotalExpenses float64          `json:"total_expenses"`
	NetProfit     float64          `json:"net_profit"`
}
