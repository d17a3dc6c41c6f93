package repository

import (
	"time"

	"github.com/benjomoments/studio-api/internal/model"
)

type CustomerEntity struct {
	ID          int64     `db:"id"           gorm:"primaryKey;autoIncrement;column:id"`
	Name        string    `db:"name"         gorm:"column:name;not null"`
	Service     string    `db:"service"      gorm:"column:service;not null"`
	Contact     string    `db:"contact"      gorm:"column:contact"`
	TotalAmount float64   `db:"total_amount" gorm:"column:total_amount;not null;type:decimal(14,2)"`
	AmountPaid  float64   `db:"amount_paid"  gorm:"column:amount_paid;not null;default:0;type:decimal(14,2)"`
	CreatedAt   time.Time `db:"created_at"   gorm:"column:created_at;autoCreateTime"`
}

func (CustomerEntity) TableName() string {
	return "customers"
}

func toCustomerEntity(m *model.Customer) *CustomerEntity {
	if m == nil {
		return nil
	}
	return &CustomerEntity{
		ID:          m.ID,
		Name:        m.Name,
		Service:     m.Service,
		Contact:     m.Contact,
		TotalAmount: m.TotalAmount,
		AmountPaid:  m.AmountPaid,
		CreatedAt:   m.CreatedAt,
	}
}

func toCustomerModel(e *CustomerEntity) *model.Customer {
	if e == nil {
		return nil
	}
	return &model.Customer{
		ID:          e.ID,
		Name:        e.Name,
		Service:     e.Service,
		Contact:     e.Contact,
		TotalAmount: e.TotalAmount,
		AmountPaid:  e.AmountPaid,
		CreatedAt:   e.CreatedAt,
	}
}

func toCustomerModels(entities []*CustomerEntity) []*model.Customer {
	if entities == nil {
		return nil
	}
	models := make([]*model.Customer, len(entities))
	for i, e := range entities {
		models[i] = toCustomerModel(e)
	}
	return models
}
