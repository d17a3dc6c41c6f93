package model

import (
	"time"
)

// ExpenseRecord is one spending entry in the studio ledger (gear, transport,
// studio rent).
type ExpenseRecord struct {
	ID          int64     `json:"id"          db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	Date        time.Time `json:"date"        db:"date"        gorm:"column:date;not null"`
	Description string    `json:"description" db:"description" gorm:"column:description"`
	Category    string    `json:"category"    db:"category"    gorm:"column:category;not null"`
	Amount      float64   `json:"amount"      db:"amount"      gorm:"column:amount;not null;type:decimal(14,2)"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"  gorm:"column:created_at;autoCreateTime"`
}

func (ExpenseRecord) TableName() string { return "expenses" }

// ExpenseCreateRequest is the input for recording an expense.
type ExpenseCreateRequest struct {
	Date        time.Time
	Description string
	Category    string
	Amount      float64
}
