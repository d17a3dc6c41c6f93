package repository

import (
	"context"
	"errors"
	"time"

	"github.com/benjomoments/studio-api/internal/model"
	"github.com/benjomoments/studio-api/pkg/pg"
)

var (
	// ErrExpenseNotFound is returned when an expense record does not exist.
	ErrExpenseNotFound = errors.New("expense record not found")
)

type ExpenseRepository struct {
	*pg.DB
}

func NewExpenseRepository(db *pg.DB) *ExpenseRepository {
	return &ExpenseRepository{
		db,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, rec *model.ExpenseRecord) (*model.ExpenseRecord, error) {
	entity := toExpenseEntity(rec)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toExpenseModel(entity), nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Delete(&ExpenseEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// List returns every expense record, newest date first.
func (r *ExpenseRepository) List(ctx context.Context) ([]*model.ExpenseRecord, error) {
	var entities []*ExpenseEntity
	if err := r.Read(ctx).Order("date DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toExpenseModels(entities), nil
}

// ListRecent returns at most limit records, newest date first. Ties on the
// same date keep insertion order, latest insert first.
func (r *ExpenseRepository) ListRecent(ctx context.Context, limit int) ([]*model.ExpenseRecord, error) {
	var entities []*ExpenseEntity
	if err := r.Read(ctx).Order("date DESC, id DESC").Limit(limit).Find(&entities).Error; err != nil {
		return nil, err
	}
	return toExpenseModels(entities), nil
}

// ListByDateRange returns records with date in [from, to] inclusive.
func (r *ExpenseRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*model.ExpenseRecord, error) {
	var entities []*ExpenseEntity
	err := r.Read(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, id ASC").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toExpenseModels(entities), nil
}

func (r *ExpenseRepository) Total(ctx context.Context) (float64, error) {
	var total float64
	err := r.Read(ctx).
		Model(&ExpenseEntity{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
