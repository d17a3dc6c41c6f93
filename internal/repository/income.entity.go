package repository

import (
	"time"

	"github.com/benjomoments/studio-api/internal/model"
)

type IncomeEntity struct {
	ID          int64     `db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	Date        time.Time `db:"date"        gorm:"column:date;not null;index"`
	Description string    `db:"description" gorm:"column:description;not null"`
	Category    string    `db:"category"    gorm:"column:category;not null"`
	Amount      float64   `db:"amount"      gorm:"column:amount;not null;type:decimal(14,2)"`
	CreatedAt   time.Time `db:"created_at"  gorm:"column:created_at;autoCreateTime"`
}

func (IncomeEntity) TableName() string {
	return "income"
}

func toIncomeEntity(m *model.IncomeRecord) *IncomeEntity {
	if m == nil {
		return nil
	}
	return &IncomeEntity{
		ID:          m.ID,
		Date:        m.Date,
		Description: m.Description,
		Category:    m.Category,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
	}
}

func toIncomeModel(e *IncomeEntity) *model.IncomeRecord {
	if e == nil {
		return nil
	}
	return &model.IncomeRecord{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}

func toIncomeModels(entities []*IncomeEntity) []*model.IncomeRecord {
	if entities == nil {
		return nil
	}
	models := make([]*model.IncomeRecord, len(entities))
	for i, e := range entities {
		models[i] = toIncomeModel(e)
	}
	return models
}
