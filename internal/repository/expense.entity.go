package repository

import (
	"time"

	"github.com/benjomoments/studio-api/internal/model"
)

type ExpenseEntity struct {
	ID          int64     `db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	Date        time.Time `db:"date"        gorm:"column:date;not null;index"`
	Description string    `db:"description" gorm:"column:description"`
	Category    string    `db:"category"    gorm:"column:category;not null"`
	Amount      float64   `db:"amount"      gorm:"column:amount;not null;type:decimal(14,2)"`
	CreatedAt   time.Time `db:"created_at"  gorm:"column:created_at;autoCreateTime"`
}

func (ExpenseEntity) TableName() string {
	return "expenses"
}

func toExpenseEntity(m *model.ExpenseRecord) *ExpenseEntity {
	if m == nil {
		return nil
	}
	return &ExpenseEntity{
		ID:          m.ID,
		Date:        m.Date,
		Description: m.Description,
		Category:    m.Category,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
	}
}

func toExpenseModel(e *ExpenseEntity) *model.ExpenseRecord {
	if e == nil {
		return nil
	}
	return &model.ExpenseRecord{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}

func toExpenseModels(entities []*ExpenseEntity) []*model.ExpenseRecord {
	if entities == nil {
		return nil
	}
	models := make([]*model.ExpenseRecord, len(entities))
	for i, e := range entities {
		models[i] = toExpenseModel(e)
	}
	return models
}
