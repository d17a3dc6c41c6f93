package model

import (
	"time"
)

// Asset is a piece of studio equipment tracked for its value (cameras,
// lenses, lighting).
type Asset struct {
	ID        int64     `json:"id"         db:"id"         gorm:"primaryKey;autoIncrement;column:id"`
	Name      string    `json:"name"       db:"name"       gorm:"column:name;not null"`
	Category  string    `json:"category"   db:"category"   gorm:"column:category;not null"`
	Value     float64   `json:"value"      db:"value"      gorm:"column:value;not null;type:decimal(14,2)"`
	Supplier  string    `json:"supplier"   db:"supplier"   gorm:"column:supplier"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (Asset) TableName() string { return "assets" }

// AssetCreateRequest is the input for registering an asset.
type AssetCreateRequest struct {
	Name     string
	Category string
	Value    float64
	Supplier string
}
