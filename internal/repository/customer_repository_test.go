package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjomoments/studio-api/internal/model"
)

func TestCustomerRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Customer{
		Name:        "Amina Diallo",
		Service:     "Wedding package",
		Contact:     "amina@example.com",
		TotalAmount: 2500,
		AmountPaid:  1000,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amina Diallo", got.Name)
	assert.Equal(t, 1500.0, got.Pending())
}

func TestCustomerRepository_Get_NotFound(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerRepository_TotalPending(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		total, err := repo.TotalPending(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0.0, total)
	})

	t.Run("sums derived balances", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.Customer{
			Name: "A", Service: "Portraits", TotalAmount: 1000, AmountPaid: 400,
		})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &model.Customer{
			Name: "B", Service: "Events", TotalAmount: 500, AmountPaid: 500,
		})
		require.NoError(t, err)

		total, err := repo.TotalPending(ctx)
		require.NoError(t, err)
		assert.Equal(t, 600.0, total)
	})
}

func TestCustomerRepository_DeleteCascade(t *testing.T) {
	tdb := setupTestDB(t)
	customerRepo := NewCustomerRepository(tdb.DB)
	invoiceRepo := NewInvoiceRepository(tdb.DB)
	ctx := context.Background()

	customer, err := customerRepo.Create(ctx, &model.Customer{
		Name: "Amina Diallo", Service: "Wedding package", TotalAmount: 2500,
	})
	require.NoError(t, err)

	other, err := customerRepo.Create(ctx, &model.Customer{
		Name: "Kofi Mensah", Service: "Portraits", TotalAmount: 800,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		number, err := invoiceRepo.NextNumber(ctx)
		require.NoError(t, err)
		_, err = invoiceRepo.Create(ctx, &model.Invoice{
			InvoiceNumber: number,
			CustomerID:    customer.ID,
			Date:          time.Date(2024, time.April, 2+i, 0, 0, 0, 0, time.UTC),
			Amount:        500,
			Status:        model.InvoiceStatusPending,
		})
		require.NoError(t, err)
	}

	number, err := invoiceRepo.NextNumber(ctx)
	require.NoError(t, err)
	kept, err := invoiceRepo.Create(ctx, &model.Invoice{
		InvoiceNumber: number,
		CustomerID:    other.ID,
		Date:          time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC),
		Amount:        200,
		Status:        model.InvoiceStatusPending,
	})
	require.NoError(t, err)

	// cascade path: invoices first, then the customer, in one transaction
	err = tdb.DB.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := invoiceRepo.DeleteByCustomer(ctx, customer.ID); err != nil {
			return err
		}
		return customerRepo.Delete(ctx, customer.ID)
	})
	require.NoError(t, err)

	_, err = customerRepo.Get(ctx, customer.ID)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	count, err := invoiceRepo.CountByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	// the other customer's invoice is untouched
	_, err = invoiceRepo.Get(ctx, kept.ID)
	assert.NoError(t, err)
}

func TestCustomerRepository_DeleteRollsBackOnFailure(t *testing.T) {
	tdb := setupTestDB(t)
	customerRepo := NewCustomerRepository(tdb.DB)
	invoiceRepo := NewInvoiceRepository(tdb.DB)
	ctx := context.Background()

	customer, err := customerRepo.Create(ctx, &model.Customer{
		Name: "Amina Diallo", Service: "Wedding package", TotalAmount: 2500,
	})
	require.NoError(t, err)

	number, err := invoiceRepo.NextNumber(ctx)
	require.NoError(t, err)
	_, err = invoiceRepo.Create(ctx, &model.Invoice{
		InvoiceNumber: number,
		CustomerID:    customer.ID,
		Date:          time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
		Amount:        500,
		Status:        model.InvoiceStatusPending,
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tdb.DB.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := invoiceRepo.DeleteByCustomer(ctx, customer.ID); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// rollback restored the invoice
	count, err := invoiceRepo.CountByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCustomerRepository_List_NewestFirst(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Customer{Name: "First", Service: "Portraits", TotalAmount: 100})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Customer{Name: "Second", Service: "Events", TotalAmount: 200})
	require.NoError(t, err)

	customers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Second", customers[0].Name)
}
