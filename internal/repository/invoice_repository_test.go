package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjomoments/studio-api/internal/model"
)

func seedCustomer(t *testing.T, repo *CustomerRepository, name string) *model.Customer {
	t.Helper()
	c, err := repo.Create(context.Background(), &model.Customer{
		Name:        name,
		Service:     "Portraits",
		TotalAmount: 1000,
	})
	require.NoError(t, err)
	return c
}

func TestInvoiceRepository_NextNumber(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	first, err := repo.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", first)

	second, err := repo.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-0002", second)
}

func TestInvoiceRepository_NumberNotReusedAfterDelete(t *testing.T) {
	tdb := setupTestDB(t)
	repo := NewInvoiceRepository(tdb.DB)
	customerRepo := NewCustomerRepository(tdb.DB)
	ctx := context.Background()

	customer := seedCustomer(t, customerRepo, "Amina Diallo")

	number, err := repo.NextNumber(ctx)
	require.NoError(t, err)
	inv, err := repo.Create(ctx, &model.Invoice{
		InvoiceNumber: number,
		CustomerID:    customer.ID,
		Date:          time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
		Amount:        500,
		Status:        model.InvoiceStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", inv.InvoiceNumber)

	require.NoError(t, repo.Delete(ctx, inv.ID))

	// the counter does not rewind
	next, err := repo.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-0002", next)
}

func TestInvoiceRepository_ExistsNumber(t *testing.T) {
	tdb := setupTestDB(t)
	repo := NewInvoiceRepository(tdb.DB)
	customerRepo := NewCustomerRepository(tdb.DB)
	ctx := context.Background()

	customer := seedCustomer(t, customerRepo, "Amina Diallo")

	taken, err := repo.ExistsNumber(ctx, "INV-0001")
	require.NoError(t, err)
	assert.False(t, taken)

	_, err = repo.Create(ctx, &model.Invoice{
		InvoiceNumber: "INV-0001",
		CustomerID:    customer.ID,
		Date:          time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
		Amount:        500,
		Status:        model.InvoiceStatusPending,
	})
	require.NoError(t, err)

	taken, err = repo.ExistsNumber(ctx, "INV-0001")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestInvoiceRepository_MarkPaid(t *testing.T) {
	tdb := setupTestDB(t)
	repo := NewInvoiceRepository(tdb.DB)
	customerRepo := NewCustomerRepository(tdb.DB)
	ctx := context.Background()

	customer := seedCustomer(t, customerRepo, "Amina Diallo")

	inv, err := repo.Create(ctx, &model.Invoice{
		InvoiceNumber: "INV-0001",
		CustomerID:    customer.ID,
		Date:          time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
		Amount:        500,
		Status:        model.InvoiceStatusPending,
	})
	require.NoError(t, err)

	paid, err := repo.MarkPaid(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPaid, paid.Status)

	// paying again is a no-op, not an error
	again, err := repo.MarkPaid(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPaid, again.Status)

	_, err = repo.MarkPaid(ctx, 999)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestInvoiceRepository_List_JoinsCustomerName(t *testing.T) {
	tdb := setupTestDB(t)
	repo := NewInvoiceRepository(tdb.DB)
	customerRepo := NewCustomerRepository(tdb.DB)
	ctx := context.Background()

	customer := seedCustomer(t, customerRepo, "Amina Diallo")

	_, err := repo.Create(ctx, &model.Invoice{
		InvoiceNumber: "INV-0001",
		CustomerID:    customer.ID,
		Date:          time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
		Amount:        500,
		Status:        model.InvoiceStatusPending,
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Invoice{
		InvoiceNumber: "INV-0002",
		CustomerID:    customer.ID,
		Date:          time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC),
		Amount:        300,
		Status:        model.InvoiceStatusPending,
	})
	require.NoError(t, err)

	invoices, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	// newest date first, each row joined with the customer's name
	assert.Equal(t, "INV-0002", invoices[0].InvoiceNumber)
	assert.Equal(t, "Amina Diallo", invoices[0].CustomerName)
	assert.Equal(t, "Amina Diallo", invoices[1].CustomerName)
}

func TestInvoiceRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	err := repo.Delete(ctx, 42)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}
