package repository

import (
	"context"
	"errors"

	"github.com/benjomoments/studio-api/internal/model"
	"github.com/benjomoments/studio-api/pkg/pg"
)

var (
	// ErrAssetNotFound is returned when an asset does not exist.
	ErrAssetNotFound = errors.New("asset not found")
)

type AssetRepository struct {
	*pg.DB
}

func NewAssetRepository(db *pg.DB) *AssetRepository {
	return &AssetRepository{
		db,
	}
}

func (r *AssetRepository) Create(ctx context.Context, a *model.Asset) (*model.Asset, error) {
	entity := toAssetEntity(a)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toAssetModel(entity), nil
}

func (r *AssetRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Delete(&AssetEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssetNotFound
	}
	return nil
}

// List returns every asset, newest first.
func (r *AssetRepository) List(ctx context.Context) ([]*model.Asset, error) {
	var entities []*AssetEntity
	if err := r.Read(ctx).Order("created_at DESC, id DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toAssetModels(entities), nil
}

func (r *AssetRepository) TotalValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.Read(ctx).
		Model(&AssetEntity{}).
		Select("COALESCE(SUM(value), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
