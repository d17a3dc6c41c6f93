package repository

import (
	"context"
	"errors"
	"time"

	"github.com/benjomoments/studio-api/internal/model"
	"github.com/benjomoments/studio-api/pkg/pg"
)

var (
	// ErrIncomeNotFound is returned when an income record does not exist.
	ErrIncomeNotFound = errors.New("income record not found")
)

type IncomeRepository struct {
	*pg.DB
}

func NewIncomeRepository(db *pg.DB) *IncomeRepository {
	return &IncomeRepository{
		db,
	}
}

func (r *IncomeRepository) Create(ctx context.Context, rec *model.IncomeRecord) (*model.IncomeRecord, error) {
	entity := toIncomeEntity(rec)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toIncomeModel(entity), nil
}

func (r *IncomeRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Delete(&IncomeEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIncomeNotFound
	}
	return nil
}

// List returns every income record, newest date first.
func (r *IncomeRepository) List(ctx context.Context) ([]*model.IncomeRecord, error) {
	var entities []*IncomeEntity
	if err := r.Read(ctx).Order("date DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toIncomeModels(entities), nil
}

// ListRecent returns at most limit records, newest date first. Ties on the
// same date keep insertion order, latest insert first.
func (r *IncomeRepository) ListRecent(ctx context.Context, limit int) ([]*model.IncomeRecord, error) {
	var entities []*IncomeEntity
	if err := r.Read(ctx).Order("date DESC, id DESC").Limit(limit).Find(&entities).Error; err != nil {
		return nil, err
	}
	return toIncomeModels(entities), nil
}

// ListByDateRange returns records with date in [from, to] inclusive.
func (r *IncomeRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*model.IncomeRecord, error) {
	var entities []*IncomeEntity
	err := r.Read(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, id ASC").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toIncomeModels(entities), nil
}

func (r *IncomeRepository) Total(ctx context.Context) (float64, error) {
	var total float64
	err := r.Read(ctx).
		Model(&IncomeEntity{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
