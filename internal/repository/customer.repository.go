package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/benjomoments/studio-api/internal/model"
	"github.com/benjomoments/studio-api/pkg/pg"
)

var (
	// ErrCustomerNotFound is returned when a customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
)

type CustomerRepository struct {
	*pg.DB
}

func NewCustomerRepository(db *pg.DB) *CustomerRepository {
	return &CustomerRepository{
		db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	entity := toCustomerEntity(c)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toCustomerModel(entity), nil
}

func (r *CustomerRepository) Get(ctx context.Context, id int64) (*model.Customer, error) {
	var entity CustomerEntity
	err := r.Read(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return toCustomerModel(&entity), nil
}

// List returns every customer, newest first.
func (r *CustomerRepository) List(ctx context.Context) ([]*model.Customer, error) {
	var entities []*CustomerEntity
	if err := r.Read(ctx).Order("created_at DESC, id DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toCustomerModels(entities), nil
}

// Delete removes the customer row only. Callers that must also drop the
// customer's invoices wrap this and InvoiceRepository.DeleteByCustomer in
// WithinTransaction.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Delete(&CustomerEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// TotalPending sums total_amount - amount_paid over all customers.
func (r *CustomerRepository) TotalPending(ctx context.Context) (float64, error) {
	var total float64
	err := r.Read(ctx).
		Model(&CustomerEntity{}).
		Select("COALESCE(SUM(total_amount - amount_paid), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
