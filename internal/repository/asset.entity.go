package repository

import (
	"time"

	"github.com/benjomoments/studio-api/internal/model"
)

type AssetEntity struct {
	ID        int64     `db:"id"         gorm:"primaryKey;autoIncrement;column:id"`
	Name      string    `db:"name"       gorm:"column:name;not null"`
	Category  string    `db:"category"   gorm:"column:category;not null"`
	Value     float64   `db:"value"      gorm:"column:value;not null;type:decimal(14,2)"`
	Supplier  string    `db:"supplier"   gorm:"column:supplier"`
	CreatedAt time.Time `db:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (AssetEntity) TableName() string {
	return "assets"
}

func toAssetEntity(m *model.Asset) *AssetEntity {
	if m == nil {
		return nil
	}
	return &AssetEntity{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		Value:     m.Value,
		Supplier:  m.Supplier,
		CreatedAt: m.CreatedAt,
	}
}

func toAssetModel(e *AssetEntity) *model.Asset {
	if e == nil {
		return nil
	}
	return &model.Asset{
		ID:        e.ID,
		Name:      e.Name,
		Category:  e.Category,
		Value:     e.Value,
		Supplier:  e.Supplier,
		CreatedAt: e.CreatedAt,
	}
}

func toAssetModels(entities []*AssetEntity) []*model.Asset {
	if entities == nil {
		return nil
	}
	models := make([]*model.Asset, len(entities))
	for i, e := range entities {
		models[i] = toAssetModel(e)
	}
	return models
}
