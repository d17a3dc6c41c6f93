package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/fasthttp/router"

	"github.com/benjomoments/studio-api/internal/auth"
	"github.com/benjomoments/studio-api/internal/model"
	"github.com/benjomoments/studio-api/internal/repository"
	"github.com/benjomoments/studio-api/internal/services"
	xhttp "github.com/benjomoments/studio-api/pkg/http"
	"github.com/benjomoments/studio-api/pkg/logger"
	"github.com/benjomoments/studio-api/pkg/prom"
)

type LedgerService interface {
	RecordIncome(ctx context.Context, p model.IncomeCreateRequest) (*model.IncomeRecord, error)
	RecordExpense(ctx context.Context, p model.ExpenseCreateRequest) (*model.ExpenseRecord, error)
	DeleteIncome(ctx context.Context, id int64) error
	DeleteExpense(ctx context.Context, id int64) error
	ListIncome(ctx context.Context) ([]*model.IncomeRecord, float64, error)
	ListExpenses(ctx context.Context) ([]*model.ExpenseRecord, float64, error)
	AddAsset(ctx context.Context, p model.AssetCreateRequest) (*model.Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
	ListAssets(ctx context.Context) ([]*model.Asset, float64, error)
	Dashboard(ctx context.Context) (*model.DashboardSummary, error)
	Report(ctx context.Context, period model.ReportPeriod) (*model.Report, error)
}

// AuditRecorder is what handlers need from the audit trail. A nil recorder
// disables auditing, which the tests rely on.
type AuditRecorder interface {
	Record(principal *model.Principal, action, entityType string, entityID int64)
}

type LedgerHandler struct {
	svc   LedgerService
	audit AuditRecorder
}

func RegisterLedgerRoutes(e *router.Group, h *LedgerHandler) {
	e.POST("/income", h.CreateIncome)
	e.GET("/income", h.ListIncome)
	e.DELETE("/income/{id}", h.DeleteIncome)

	e.POST("/expenses", h.CreateExpense)
	e.GET("/expenses", h.ListExpenses)
	e.DELETE("/expenses/{id}", h.DeleteExpense)

	e.POST("/assets", h.CreateAsset)
	e.GET("/assets", h.ListAssets)
	e.DELETE("/assets/{id}", h.DeleteAsset)

	e.GET("/dashboard", h.GetDashboard)
	e.GET("/reports", h.GetReport)
}

func NewLedgerHandler(ledgerService LedgerService, auditRecorder AuditRecorder) *LedgerHandler {
	return &LedgerHandler{
		svc:   ledgerService,
		audit: auditRecorder,
	}
}

type createIncomeRequest struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
}

type createExpenseRequest struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
}

type createAssetRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Supplier string  `json:"supplier"`
}

type incomeListResponse struct {
	Items []*model.IncomeRecord `json:"items"`
	Total float64               `json:"total"`
}

type expenseListResponse struct {
	Items []*model.ExpenseRecord `json:"items"`
	Total float64                `json:"total"`
}

type assetListResponse struct {
	Items []*model.Asset `json:"items"`
	Total float64        `json:"total"`
}

/* --------------------------------- Routes ----------------------------------- */

func (h *LedgerHandler) CreateIncome(ctx *xhttp.RequestCtx) {
	var req createIncomeRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid date: "+req.Date)
		return
	}

	rec, err := h.svc.RecordIncome(ctx, model.IncomeCreateRequest{
		Date:        date,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
	})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	prom.IncCounterVec(prom.SystemLedger, prom.MetricRecordsWritten, "income")
	h.record(ctx, "create", "income", rec.ID)
	writeJSON(ctx, xhttp.StatusCreated, rec)
}

func (h *LedgerHandler) ListIncome(ctx *xhttp.RequestCtx) {
	items, total, err := h.svc.ListIncome(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, incomeListResponse{Items: items, Total: total})
}

func (h *LedgerHandler) DeleteIncome(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.DeleteIncome(ctx, id); err != nil {
		writeServiceError(ctx, err)
		return
	}

	prom.IncCounterVec(prom.SystemLedger, prom.MetricRecordsDeleted, "income")
	h.record(ctx, "delete", "income", id)
	ctx.SetStatusCode(xhttp.StatusNoContent)
}

func (h *LedgerHandler) CreateExpense(ctx *xhttp.RequestCtx) {
	var req createExpenseRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid date: "+req.Date)
		return
	}

	rec, err := h.svc.RecordExpense(ctx, model.ExpenseCreateRequest{
		Date:        date,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
	})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	prom.IncCounterVec(prom.SystemLedger, prom.MetricRecordsWritten, "expense")
	h.record(ctx, "create", "expense", rec.ID)
	writeJSON(ctx, xhttp.StatusCreated, rec)
}

func (h *LedgerHandler) ListExpenses(ctx *xhttp.RequestCtx) {
	items, total, err := h.svc.ListExpenses(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, expenseListResponse{Items: items, Total: total})
}

func (h *LedgerHandler) DeleteExpense(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.DeleteExpense(ctx, id); err != nil {
		writeServiceError(ctx, err)
		return
	}

	prom.IncCounterVec(prom.SystemLedger, prom.MetricRecordsDeleted, "expense")
	h.record(ctx, "delete", "expense", id)
	ctx.SetStatusCode(xhttp.StatusNoContent)
}

func (h *LedgerHandler) CreateAsset(ctx *xhttp.RequestCtx) {
	var req createAssetRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	a, err := h.svc.AddAsset(ctx, model.AssetCreateRequest{
		Name:     req.Name,
		Category: req.Category,
		Value:    req.Value,
		Supplier: req.Supplier,
	})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	prom.IncCounterVec(prom.SystemLedger, prom.MetricRecordsWritten, "asset")
	h.record(ctx, "create", "asset", a.ID)
	writeJSON(ctx, xhttp.StatusCreated, a)
}

func (h *LedgerHandler) ListAssets(ctx *xhttp.RequestCtx) {
	items, total, err := h.svc.ListAssets(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, assetListResponse{Items: items, Total: total})
}

func (h *LedgerHandler) DeleteAsset(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.DeleteAsset(ctx, id); err != nil {
		writeServiceError(ctx, err)
		return
	}

	prom.IncCounterVec(prom.SystemLedger, prom.MetricRecordsDeleted, "asset")
	h.record(ctx, "delete", "asset", id)
	ctx.SetStatusCode(xhttp.StatusNoContent)
}

func (h *LedgerHandler) GetDashboard(ctx *xhttp.RequestCtx) {
	summary, err := h.svc.Dashboard(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, summary)
}

func (h *LedgerHandler) GetReport(ctx *xhttp.RequestCtx) {
	start, err := parseDate(query(ctx, "start"))
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid start date")
		return
	}
	end, err := parseDate(query(ctx, "end"))
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid end date")
		return
	}

	report, err := h.svc.Report(ctx, model.ReportPeriod{Start: start, End: end})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	prom.IncCounter(prom.SystemLedger, prom.MetricReportsComputed)
	writeJSON(ctx, xhttp.StatusOK, report)
}

func (h *LedgerHandler) record(ctx *xhttp.RequestCtx, action, entityType string, entityID int64) {
	if h.audit == nil {
		return
	}
	h.audit.Record(auth.PrincipalFromCtx(ctx), action, entityType, entityID)
}

/* -------------------------------- Helpers ------------------------------------ */

func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	body := ctx.PostBody()
	return json.Unmarshal(body, dst)
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	b, _ := json.Marshal(v)
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func writeError(ctx *xhttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors onto HTTP statuses. Anything not
// recognized is a storage fault and stays opaque to the client.
func writeServiceError(ctx *xhttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeError(ctx, xhttp.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrDuplicateInvoiceNumber):
		writeError(ctx, xhttp.StatusConflict, err.Error())
	case isNotFound(err):
		writeError(ctx, xhttp.StatusNotFound, err.Error())
	default:
		logger.Error("request failed", "path", string(ctx.Path()), "error", err)
		writeError(ctx, xhttp.StatusInternalServerError, "internal error")
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrIncomeNotFound) ||
		errors.Is(err, repository.ErrExpenseNotFound) ||
		errors.Is(err, repository.ErrCustomerNotFound) ||
		errors.Is(err, repository.ErrInvoiceNotFound) ||
		errors.Is(err, repository.ErrAssetNotFound)
}

func pathID(ctx *xhttp.RequestCtx) (int64, error) {
	v, ok := ctx.UserValue("id").(string)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(v, 10, 64)
}

func query(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}

// parseDate accepts RFC3339 or YYYY-MM-DD.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
