package model

import (
	"time"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice bills a customer an amount. The amount is independent of the
// customer's stored totals: the studio keeps two ledgers on purpose and does
// not reconcile them.
type Invoice struct {
	ID            int64         `json:"id"             db:"id"             gorm:"primaryKey;autoIncrement;column:id"`
	InvoiceNumber string        `json:"invoice_number" db:"invoice_number" gorm:"column:invoice_number;not null;unique"`
	CustomerID    int64         `json:"customer_id"    db:"customer_id"    gorm:"column:customer_id;not null;index"`
	Customer      *Customer     `json:"-"                                  gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE"`
	CustomerName  string        `json:"customer_name,omitempty"            gorm:"-"`
	Date          time.Time     `json:"date"           db:"date"           gorm:"column:date;not null"`
	Amount        float64       `json:"amount"         db:"amount"         gorm:"column:amount;not null;type:decimal(14,2)"`
	Status        InvoiceStatus `json:"status"         db:"status"         gorm:"column:status;not null;default:pending"`
	CreatedAt     time.Time     `json:"created_at"     db:"created_at"     gorm:"column:created_at;autoCreateTime"`
}

func (Invoice) TableName() string { return "invoices" }

// InvoiceCreateRequest is the input for issuing an invoice. An empty
// InvoiceNumber asks the service to draw the next number from the persisted
// sequence.
type InvoiceCreateRequest struct {
	CustomerID    int64
	InvoiceNumber string
	Date          time.Time
	Amount        float64
}
