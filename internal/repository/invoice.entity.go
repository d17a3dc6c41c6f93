package repository

import (
	"time"

	"github.com/benjomoments/studio-api/internal/model"
)

type InvoiceEntity struct {
	ID            int64     `db:"id"             gorm:"primaryKey;autoIncrement;column:id"`
	InvoiceNumber string    `db:"invoice_number" gorm:"column:invoice_number;not null;unique"`
	CustomerID    int64     `db:"customer_id"    gorm:"column:customer_id;not null;index"`
	Date          time.Time `db:"date"           gorm:"column:date;not null"`
	Amount        float64   `db:"amount"         gorm:"column:amount;not null;type:decimal(14,2)"`
	Status        string    `db:"status"         gorm:"column:status;not null;default:pending"`
	CreatedAt     time.Time `db:"created_at"     gorm:"column:created_at;autoCreateTime"`
}

func (InvoiceEntity) TableName() string {
	return "invoices"
}

// InvoiceSequenceEntity is the persisted monotonic counter behind generated
// invoice numbers. A single row (id = 1) holds the last issued value; numbers
// of deleted invoices are never handed out again.
type InvoiceSequenceEntity struct {
	ID        int64 `db:"id"         gorm:"primaryKey;column:id"`
	LastValue int64 `db:"last_value" gorm:"column:last_value;not null;default:0"`
}

func (InvoiceSequenceEntity) TableName() string {
	return "invoice_sequences"
}

func toInvoiceEntity(m *model.Invoice) *InvoiceEntity {
	if m == nil {
		return nil
	}
	return &InvoiceEntity{
		ID:            m.ID,
		InvoiceNumber: m.InvoiceNumber,
		CustomerID:    m.CustomerID,
		Date:          m.Date,
		Amount:        m.Amount,
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

func toInvoiceModel(e *InvoiceEntity) *model.Invoice {
	if e == nil {
		return nil
	}
	return &model.Invoice{
		ID:            e.ID,
		InvoiceNumber: e.InvoiceNumber,
		CustomerID:    e.CustomerID,
		Date:          e.Date,
		Amount:        e.Amount,
		Status:        model.InvoiceStatus(e.Status),
		CreatedAt:     e.CreatedAt,
	}
}

// InvoiceWithCustomer carries the joined customer name for listings.
type InvoiceWithCustomer struct {
	InvoiceEntity
	CustomerName string `gorm:"column:customer_name"`
}

func toInvoiceWithCustomerModel(e *InvoiceWithCustomer) *model.Invoice {
	m := toInvoiceModel(&e.InvoiceEntity)
	m.CustomerName = e.CustomerName
	return m
}
