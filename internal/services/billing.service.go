package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/benjomoments/studio-api/internal/model"
	"github.com/benjomoments/studio-api/internal/repository"
)

// maxNumberDraws bounds how many sequence values CreateInvoice will try before
// giving up. Collisions only happen when an explicit number was taken from the
// sequence's future range, so in practice one draw suffices.
const maxNumberDraws = 20

var invoiceNumberPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)
	Get(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context) ([]*model.Customer, error)
	Delete(ctx context.Context, id int64) error
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
	Get(ctx context.Context, id int64) (*model.Invoice, error)
	List(ctx context.Context) ([]*model.Invoice, error)
	ExistsNumber(ctx context.Context, number string) (bool, error)
	NextNumber(ctx context.Context) (string, error)
	MarkPaid(ctx context.Context, id int64) (*model.Invoice, error)
	Delete(ctx context.Context, id int64) error
	DeleteByCustomer(ctx context.Context, customerID int64) (int64, error)
}

// BillingService owns customers and their invoices. Invoice numbers come from
// a persisted counter, so a deleted invoice never frees its number for reuse.
type BillingService struct {
	customerRepo CustomerRepository
	invoiceRepo  InvoiceRepository
}

func NewBillingService(customerRepo CustomerRepository, invoiceRepo InvoiceRepository) *BillingService {
	return &BillingService{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

func (s *BillingService) AddCustomer(ctx context.Context, p model.CustomerCreateRequest) (*model.Customer, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Service = strings.TrimSpace(p.Service)
	p.Contact = strings.TrimSpace(p.Contact)

	if p.Name == "" {
		return nil, ErrNameRequired
	}
	if p.Service == "" {
		return nil, ErrServiceRequired
	}
	if p.TotalAmount < 0 {
		return nil, ErrNegativeValue
	}
	if p.AmountPaid < 0 {
		return nil, ErrNegativeAmountPaid
	}
	if p.AmountPaid > p.TotalAmount {
		return nil, ErrPaidExceedsTotal
	}

	c := &model.Customer{
		Name:        p.Name,
		Service:     p.Service,
		Contact:     p.Contact,
		TotalAmount: p.TotalAmount,
		AmountPaid:  p.AmountPaid,
	}
	return s.customerRepo.Create(ctx, c)
}

func (s *BillingService) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	return s.customerRepo.Get(ctx, id)
}

func (s *BillingService) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	return s.customerRepo.List(ctx)
}

// DeleteCustomer removes a customer and every invoice that references them in
// one transaction. Either both go or neither does.
func (s *BillingService) DeleteCustomer(ctx context.Context, id int64) (int64, error) {
	var removedInvoices int64
	err := s.customerRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		n, err := s.invoiceRepo.DeleteByCustomer(ctx, id)
		if err != nil {
			return err
		}
		removedInvoices = n
		return s.customerRepo.Delete(ctx, id)
	})
	if err != nil {
		return 0, err
	}
	return removedInvoices, nil
}

// CreateInvoice issues an invoice for an existing customer. An explicit number
// is checked for uniqueness; an empty one is drawn from the sequence. The
// whole operation runs in one transaction so a failed insert does not advance
// the sequence.
func (s *BillingService) CreateInvoice(ctx context.Context, p model.InvoiceCreateRequest) (*model.Invoice, error) {
	p.InvoiceNumber = strings.TrimSpace(p.InvoiceNumber)

	if p.Amount <= 0 {
		return nil, ErrNonPositiveAmount
	}
	if p.Date.IsZero() {
		return nil, ErrDateRequired
	}
	if p.InvoiceNumber != "" && !invoiceNumberPattern.MatchString(p.InvoiceNumber) {
		return nil, ErrInvalidNumberFormat
	}

	var created *model.Invoice
	err := s.customerRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		customer, err := s.customerRepo.Get(ctx, p.CustomerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return ErrUnknownCustomer
			}
			return err
		}

		number := p.InvoiceNumber
		if number != "" {
			taken, err := s.invoiceRepo.ExistsNumber(ctx, number)
			if err != nil {
				return err
			}
			if taken {
				return repository.ErrDuplicateInvoiceNumber
			}
		} else {
			number, err = s.nextFreeNumber(ctx)
			if err != nil {
				return err
			}
		}

		inv := &model.Invoice{
			InvoiceNumber: number,
			CustomerID:    customer.ID,
			Date:          p.Date,
			Amount:        p.Amount,
			Status:        model.InvoiceStatusPending,
		}
		created, err = s.invoiceRepo.Create(ctx, inv)
		if err != nil {
			return err
		}
		created.CustomerName = customer.Name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// nextFreeNumber draws sequence values until one is not taken by an explicit
// number. Every draw advances the counter, so skipped values stay burned.
func (s *BillingService) nextFreeNumber(ctx context.Context) (string, error) {
	for i := 0; i < maxNumberDraws; i++ {
		number, err := s.invoiceRepo.NextNumber(ctx)
		if err != nil {
			return "", err
		}
		taken, err := s.invoiceRepo.ExistsNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}
	return "", repository.ErrDuplicateInvoiceNumber
}

func (s *BillingService) ListInvoices(ctx context.Context) ([]*model.Invoice, error) {
	return s.invoiceRepo.List(ctx)
}

func (s *BillingService) MarkInvoicePaid(ctx context.Context, id int64) (*model.Invoice, error) {
	return s.invoiceRepo.MarkPaid(ctx, id)
}

func (s *BillingService) DeleteInvoice(ctx context.Context, id int64) error {
	return s.invoiceRepo.Delete(ctx, id)
}
