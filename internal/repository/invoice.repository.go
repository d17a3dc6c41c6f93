package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/benjomoments/studio-api/internal/model"
	"github.com/benjomoments/studio-api/pkg/pg"
)

var (
	// ErrInvoiceNotFound is returned when an invoice does not exist.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrDuplicateInvoiceNumber is returned when an invoice number is already
	// taken.
	ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")
	// ErrSequenceNotInitialized means the invoice_sequences row is missing;
	// migrations seed it, so this indicates a broken schema.
	ErrSequenceNotInitialized = errors.New("invoice sequence not initialized")
)

const invoiceSequenceID = 1

type InvoiceRepository struct {
	*pg.DB
}

func NewInvoiceRepository(db *pg.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	entity := toInvoiceEntity(inv)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toInvoiceModel(entity), nil
}

func (r *InvoiceRepository) Get(ctx context.Context, id int64) (*model.Invoice, error) {
	var entity InvoiceEntity
	err := r.Read(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return toInvoiceModel(&entity), nil
}

// List returns every invoice joined with its customer's name, newest invoice
// date first.
func (r *InvoiceRepository) List(ctx context.Context) ([]*model.Invoice, error) {
	var entities []*InvoiceWithCustomer
	err := r.Read(ctx).
		Table("invoices").
		Select("invoices.*, customers.name AS customer_name").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Order("invoices.date DESC, invoices.id DESC").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}

	models := make([]*model.Invoice, len(entities))
	for i, e := range entities {
		models[i] = toInvoiceWithCustomerModel(e)
	}
	return models, nil
}

func (r *InvoiceRepository) ExistsNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.Read(ctx).
		Model(&InvoiceEntity{}).
		Where("invoice_number = ?", number).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// NextNumber advances the persisted counter and returns a formatted invoice
// number. The UPDATE takes a row lock, so two transactions can never draw the
// same value. Must be called inside WithinTransaction together with the
// invoice insert, otherwise a failed insert burns a number for nothing.
func (r *InvoiceRepository) NextNumber(ctx context.Context) (string, error) {
	result := r.Write(ctx).
		Model(&InvoiceSequenceEntity{}).
		Where("id = ?", invoiceSequenceID).
		Update("last_value", gorm.Expr("last_value + 1"))
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", ErrSequenceNotInitialized
	}

	var seq InvoiceSequenceEntity
	if err := r.Write(ctx).Where("id = ?", invoiceSequenceID).First(&seq).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("INV-%04d", seq.LastValue), nil
}

// MarkPaid transitions an invoice to paid. Paid invoices stay paid; marking
// one again is a no-op rather than an error.
func (r *InvoiceRepository) MarkPaid(ctx context.Context, id int64) (*model.Invoice, error) {
	var entity InvoiceEntity
	err := r.Write(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	if entity.Status == string(model.InvoiceStatusPaid) {
		return toInvoiceModel(&entity), nil
	}

	result := r.Write(ctx).
		Model(&InvoiceEntity{}).
		Where("id = ?", id).
		Update("status", string(model.InvoiceStatusPaid))
	if result.Error != nil {
		return nil, result.Error
	}

	entity.Status = string(model.InvoiceStatusPaid)
	return toInvoiceModel(&entity), nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Delete(&InvoiceEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// DeleteByCustomer removes every invoice referencing a customer and reports
// how many went. Used by the cascade path of customer deletion.
func (r *InvoiceRepository) DeleteByCustomer(ctx context.Context, customerID int64) (int64, error) {
	result := r.Write(ctx).Where("customer_id = ?", customerID).Delete(&InvoiceEntity{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *InvoiceRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var count int64
	err := r.Read(ctx).
		Model(&InvoiceEntity{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
