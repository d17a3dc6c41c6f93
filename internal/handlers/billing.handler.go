package handlers

import (
	"context"

	"github.com/fasthttp/router"

	"github.com/benjomoments/studio-api/internal/auth"
	"github.com/benjomoments/studio-api/internal/model"
	xhttp "github.com/benjomoments/studio-api/pkg/http"
	"github.com/benjomoments/studio-api/pkg/prom"
)

type BillingService interface {
	AddCustomer(ctx context.Context, p model.CustomerCreateRequest) (*model.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*model.Customer, error)
	ListCustomers(ctx context.Context) ([]*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) (int64, error)
	CreateInvoice(ctx context.Context, p model.InvoiceCreateRequest) (*model.Invoice, error)
	ListInvoices(ctx context.Context) ([]*model.Invoice, error)
	MarkInvoicePaid(ctx context.Context, id int64) (*model.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
}

type BillingHandler struct {
	svc   BillingService
	audit AuditRecorder
}

func RegisterBillingRoutes(e *router.Group, h *BillingHandler) {
	e.POST("/customers", h.CreateCustomer)
	e.GET("/customers", h.ListCustomers)
	e.GET("/customers/{id}", h.GetCustomer)
	e.DELETE("/customers/{id}", h.DeleteCustomer)

	e.POST("/invoices", h.CreateInvoice)
	e.GET("/invoices", h.ListInvoices)
	e.POST("/invoices/{id}/pay", h.PayInvoice)
	e.DELETE("/invoices/{id}", h.DeleteInvoice)
}

func NewBillingHandler(billingService BillingService, auditRecorder AuditRecorder) *BillingHandler {
	return &BillingHandler{
		svc:   billingService,
		audit: auditRecorder,
	}
}

type createCustomerRequest struct {
	Name        string  `json:"name"`
	Service     string  `json:"service"`
	Contact     string  `json:"contact"`
	TotalAmount float64 `json:"total_amount"`
	AmountPaid  float64 `json:"amount_paid"`
}

type createInvoiceRequest struct {
	CustomerID    int64   `json:"customer_id"`
	InvoiceNumber string  `json:"invoice_number"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
}

type customerResponse struct {
	*model.Customer
	Pending float64 `json:"pending"`
}

type customerListResponse struct {
	Items []customerResponse `json:"items"`
}

type invoiceListResponse struct {
	Items []*model.Invoice `json:"items"`
}

type deleteCustomerResponse struct {
	RemovedInvoices int64 `json:"removed_invoices"`
}

func newCustomerResponse(c *model.Customer) customerResponse {
	return customerResponse{Customer: c, Pending: c.Pending()}
}

/* --------------------------------- Routes ----------------------------------- */

func (h *BillingHandler) CreateCustomer(ctx *xhttp.RequestCtx) {
	var req createCustomerRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	c, err := h.svc.AddCustomer(ctx, model.CustomerCreateRequest{
		Name:        req.Name,
		Service:     req.Service,
		Contact:     req.Contact,
		TotalAmount: req.TotalAmount,
		AmountPaid:  req.AmountPaid,
	})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	prom.IncCounterVec(prom.SystemLedger, prom.MetricRecordsWritten, "customer")
	h.record(ctx, "create", "customer", c.ID)
	writeJSON(ctx, xhttp.StatusCreated, newCustomerResponse(c))
}

func (h *BillingHandler) GetCustomer(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}

	c, err := h.svc.GetCustomer(ctx, id)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, newCustomerResponse(c))
}

func (h *BillingHandler) ListCustomers(ctx *xhttp.RequestCtx) {
	customers, err := h.svc.ListCustomers(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	items := make([]customerResponse, len(customers))
	for i, c := range customers {
		items[i] = newCustomerResponse(c)
	}
	writeJSON(ctx, xhttp.StatusOK, customerListResponse{Items: items})
}

func (h *BillingHandler) DeleteCustomer(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}

	removed, err := h.svc.DeleteCustomer(ctx, id)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	prom.IncCounterVec(prom.SystemLedger, prom.MetricRecordsDeleted, "customer")
	h.record(ctx, "delete", "customer", id)
	writeJSON(ctx, xhttp.StatusOK, deleteCustomerResponse{RemovedInvoices: removed})
}

func (h *BillingHandler) CreateInvoice(ctx *xhttp.RequestCtx) {
	var req createInvoiceRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid date: "+req.Date)
		return
	}

	inv, err := h.svc.CreateInvoice(ctx, model.InvoiceCreateRequest{
		CustomerID:    req.CustomerID,
		InvoiceNumber: req.InvoiceNumber,
		Date:          date,
		Amount:        req.Amount,
	})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	prom.IncCounter(prom.SystemBilling, prom.MetricInvoicesIssued)
	h.record(ctx, "create", "invoice", inv.ID)
	writeJSON(ctx, xhttp.StatusCreated, inv)
}

func (h *BillingHandler) ListInvoices(ctx *xhttp.RequestCtx) {
	invoices, err := h.svc.ListInvoices(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, invoiceListResponse{Items: invoices})
}

func (h *BillingHandler) PayInvoice(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}

	inv, err := h.svc.MarkInvoicePaid(ctx, id)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	prom.IncCounter(prom.SystemBilling, prom.MetricInvoicesPaid)
	h.record(ctx, "pay", "invoice", id)
	writeJSON(ctx, xhttp.StatusOK, inv)
}

func (h *BillingHandler) DeleteInvoice(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.DeleteInvoice(ctx, id); err != nil {
		writeServiceError(ctx, err)
		return
	}

	prom.IncCounterVec(prom.SystemLedger, prom.MetricRecordsDeleted, "invoice")
	h.record(ctx, "delete", "invoice", id)
	ctx.SetStatusCode(xhttp.StatusNoContent)
}

func (h *BillingHandler) record(ctx *xhttp.RequestCtx, action, entityType string, entityID int64) {
	if h.audit == nil {
		return
	}
	h.audit.Record(auth.PrincipalFromCtx(ctx), action, entityType, entityID)
}
