package model

import (
	"time"
)

// Customer is a studio client with an agreed engagement total and what they
// have paid so far. Pending is always derived, never stored, so the two
// figures cannot drift apart.
type Customer struct {
	ID          int64     `json:"id"           db:"id"           gorm:"primaryKey;autoIncrement;column:id"`
	Name        string    `json:"name"         db:"name"         gorm:"column:name;not null"`
	Service     string    `json:"service"      db:"service"      gorm:"column:service;not null"`
	Contact     string    `json:"contact"      db:"contact"      gorm:"column:contact"`
	TotalAmount float64   `json:"total_amount" db:"total_amount" gorm:"column:total_amount;not null;type:decimal(14,2)"`
	AmountPaid  float64   `json:"amount_paid"  db:"amount_paid"  gorm:"column:amount_paid;not null;default:0;type:decimal(14,2)"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"   gorm:"column:created_at;autoCreateTime"`
}

func (Customer) TableName() string { return "customers" }

// Pending is the outstanding balance: total agreed minus amount paid.
func (c Customer) Pending() float64 {
	return c.TotalAmount - c.AmountPaid
}

// CustomerCreateRequest is the input for adding a customer.
type CustomerCreateRequest struct {
	Name        string
	Service     string
	Contact     string
	TotalAmount float64
	AmountPaid  float64
}
