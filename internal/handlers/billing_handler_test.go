package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/benjomoments/studio-api/internal/model"
	"github.com/benjomoments/studio-api/internal/repository"
	"github.com/benjomoments/studio-api/internal/services"
)

type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) AddCustomer(ctx context.Context, p model.CustomerCreateRequest) (*model.Customer, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockBillingService) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockBillingService) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Customer), args.Error(1)
}

func (m *MockBillingService) DeleteCustomer(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillingService) CreateInvoice(ctx context.Context, p model.InvoiceCreateRequest) (*model.Invoice, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockBillingService) ListInvoices(ctx context.Context) ([]*model.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Invoice), args.Error(1)
}

func (m *MockBillingService) MarkInvoicePaid(ctx context.Context, id int64) (*model.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockBillingService) DeleteInvoice(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestBillingHandler_CreateCustomer(t *testing.T) {
	t.Run("successful creation includes pending", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc, nil)

		bodyBytes, _ := json.Marshal(createCustomerRequest{
			Name:        "Amina Diallo",
			Service:     "Wedding package",
			TotalAmount: 2500,
			AmountPaid:  1000,
		})

		svc.On("AddCustomer", mock.Anything, mock.MatchedBy(func(p model.CustomerCreateRequest) bool {
			return p.Name == "Amina Diallo" && p.TotalAmount == 2500
		})).Return(&model.Customer{
			ID:          1,
			Name:        "Amina Diallo",
			TotalAmount: 2500,
			AmountPaid:  1000,
		}, nil)

		ctx := setupTestContext("POST", "/api/customers", bodyBytes)
		handler.CreateCustomer(ctx)

		assert.Equal(t, 201, ctx.Response.StatusCode())

		var response map[string]any
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		assert.Equal(t, 1500.0, response["pending"])

		svc.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc, nil)

		bodyBytes, _ := json.Marshal(createCustomerRequest{Service: "Portraits"})

		svc.On("AddCustomer", mock.Anything, mock.Anything).
			Return(nil, services.ErrNameRequired)

		ctx := setupTestContext("POST", "/api/customers", bodyBytes)
		handler.CreateCustomer(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())
	})
}

func TestBillingHandler_DeleteCustomer(t *testing.T) {
	t.Run("reports removed invoices", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc, nil)

		svc.On("DeleteCustomer", mock.Anything, int64(7)).Return(int64(3), nil)

		ctx := setupTestContext("DELETE", "/api/customers/7", nil)
		ctx.SetUserValue("id", "7")
		handler.DeleteCustomer(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())

		var response deleteCustomerResponse
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		assert.Equal(t, int64(3), response.RemovedInvoices)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc, nil)

		svc.On("DeleteCustomer", mock.Anything, int64(99)).
			Return(int64(0), repository.ErrCustomerNotFound)

		ctx := setupTestContext("DELETE", "/api/customers/99", nil)
		ctx.SetUserValue("id", "99")
		handler.DeleteCustomer(ctx)

		assert.Equal(t, 404, ctx.Response.StatusCode())
	})
}

func TestBillingHandler_CreateInvoice(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc, nil)

		bodyBytes, _ := json.Marshal(createInvoiceRequest{
			CustomerID: 1,
			Date:       "2024-04-02",
			Amount:     500,
		})

		svc.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(p model.InvoiceCreateRequest) bool {
			return p.CustomerID == 1 && p.InvoiceNumber == "" &&
				p.Date.Equal(time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC))
		})).Return(&model.Invoice{
			ID:            10,
			InvoiceNumber: "INV-0042",
			CustomerID:    1,
			Amount:        500,
			Status:        model.InvoiceStatusPending,
		}, nil)

		ctx := setupTestContext("POST", "/api/invoices", bodyBytes)
		handler.CreateInvoice(ctx)

		assert.Equal(t, 201, ctx.Response.StatusCode())

		var response model.Invoice
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		assert.Equal(t, "INV-0042", response.InvoiceNumber)
	})

	t.Run("duplicate number", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc, nil)

		bodyBytes, _ := json.Marshal(createInvoiceRequest{
			CustomerID:    1,
			InvoiceNumber: "INV-0001",
			Date:          "2024-04-02",
			Amount:        500,
		})

		svc.On("CreateInvoice", mock.Anything, mock.Anything).
			Return(nil, repository.ErrDuplicateInvoiceNumber)

		ctx := setupTestContext("POST", "/api/invoices", bodyBytes)
		handler.CreateInvoice(ctx)

		assert.Equal(t, 409, ctx.Response.StatusCode())
	})

	t.Run("unknown customer", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc, nil)

		bodyBytes, _ := json.Marshal(createInvoiceRequest{
			CustomerID: 404,
			Date:       "2024-04-02",
			Amount:     500,
		})

		svc.On("CreateInvoice", mock.Anything, mock.Anything).
			Return(nil, services.ErrUnknownCustomer)

		ctx := setupTestContext("POST", "/api/invoices", bodyBytes)
		handler.CreateInvoice(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())
	})
}

func TestBillingHandler_PayInvoice(t *testing.T) {
	t.Run("marks paid", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc, nil)

		svc.On("MarkInvoicePaid", mock.Anything, int64(10)).
			Return(&model.Invoice{ID: 10, Status: model.InvoiceStatusPaid}, nil)

		ctx := setupTestContext("POST", "/api/invoices/10/pay", nil)
		ctx.SetUserValue("id", "10")
		handler.PayInvoice(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())

		var response model.Invoice
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		assert.Equal(t, model.InvoiceStatusPaid, response.Status)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc, nil)

		svc.On("MarkInvoicePaid", mock.Anything, int64(404)).
			Return(nil, repository.ErrInvoiceNotFound)

		ctx := setupTestContext("POST", "/api/invoices/404/pay", nil)
		ctx.SetUserValue("id", "404")
		handler.PayInvoice(ctx)

		assert.Equal(t, 404, ctx.Response.StatusCode())
	})
}
