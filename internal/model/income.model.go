package model

import (
	"time"
)

// IncomeRecord is one earning entry in the studio ledger (a shoot, a print
// sale, a booking fee).
type IncomeRecord struct {
	ID          int64     `json:"id"          db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	Date        time.Time `json:"date"        db:"date"        gorm:"column:date;not null"`
	Description string    `json:"description" db:"description" gorm:"column:description;not null"`
	Category    string    `json:"category"    db:"category"    gorm:"column:category;not null"`
	Amount      float64   `json:"amount"      db:"amount"      gorm:"column:amount;not null;type:decimal(14,2)"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"  gorm:"column:created_at;autoCreateTime"`
}

func (IncomeRecord) TableName() string { return "income" }

// IncomeCreateRequest is the input for recording income.
type IncomeCreateRequest struct {
	Date        time.Time
	Description string
	Category    string
	Amount      float64
}
