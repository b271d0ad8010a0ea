package ledger

import (
	"fmt"
	"net/http"
	"time"

	ledgererrors "github.com/trungnguyen160923/coffee-management-sub002/internal/ledger/errors"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/shared/apperror"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store       *Store
	workflow    *Workflow
	coordinator *Coordinator
	applier     *TemplateApplier
}

func NewHandler(store *Store, workflow *Workflow, coordinator *Coordinator, applier *TemplateApplier) *Handler {
	return &Handler{
		store:       store,
		workflow:    workflow,
		coordinator: coordinator,
		applier:     applier,
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseDateFilter(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, ledgererrors.ErrInvalidDateFilter
	}
	return &t, nil
}

func (h *Handler) buildFilter(q ListQuery) (Filter, error) {
	dateFrom, err := parseDateFilter(q.DateFrom)
	if err != nil {
		return Filter{}, err
	}
	dateTo, err := parseDateFilter(q.DateTo)
	if err != nil {
		return Filter{}, err
	}
	return Filter{
		Kind:     q.Kind,
		Status:   q.Status,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Search:   q.Search,
	}, nil
}

// List mengembalikan satu halaman transaksi terurut dan terfilter.
func (h *Handler) List(c *gin.Context) {
	branchID := c.GetString("branch_id")

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	page := Page{Number: q.Page, Size: q.PageSize}
	if err := page.Validate(); err != nil {
		h.writeServiceError(c, err)
		return
	}
	filter, err := h.buildFilter(q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	snap, err := h.store.Load(c.Request.Context(), branchID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filtered := ApplyFilter(SortTransactions(snap.Unified()), filter)
	items := Paginate(filtered, page)

	meta := response.NewPaginationMeta(int64(len(filtered)), page.Number, page.Size)
	response.Success(c, http.StatusOK, mapTransactionList(items), &meta)
}

func (h *Handler) Kpi(c *gin.Context) {
	branchID := c.GetString("branch_id")

	snap, err := h.store.Load(c.Request.Context(), branchID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	report := ComputeKPI(snap.Unified(), time.Now().UTC())
	response.Success(c, http.StatusOK, report, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	branchID := c.GetString("branch_id")
	actorID := c.GetString("user_id_validated")
	id := c.Param("id")

	tx, err := h.workflow.Approve(c.Request.Context(), branchID, actorID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, mapTransaction(tx), nil)
}

func (h *Handler) Reject(c *gin.Context) {
	branchID := c.GetString("branch_id")
	actorID := c.GetString("user_id_validated")
	id := c.Param("id")

	// Notes opsional, body boleh kosong
	var req RejectRequest
	_ = c.ShouldBindJSON(&req)

	tx, err := h.workflow.Reject(c.Request.Context(), branchID, actorID, id, req.Notes)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, mapTransaction(tx), nil)
}

func (h *Handler) Bulk(c *gin.Context) {
	branchID := c.GetString("branch_id")
	actorID := c.GetString("user_id_validated")

	var req BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	result, err := h.coordinator.Execute(c.Request.Context(), branchID, actorID, req.Action, req.IDs, req.Notes)
	if err != nil {
		// Bulk delete melaporkan hasil parsial bersama errornya.
		if result.Requested > 0 {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, result)
			return
		}
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) ApplyTemplate(c *gin.Context) {
	branchID := c.GetString("branch_id")
	actorID := c.GetString("user_id_validated")

	var req ApplyTemplateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	result, err := h.applier.Apply(c.Request.Context(), branchID, actorID, req.TemplateID, req.UserIDs)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

// Export mengunduh set terfilter (tanpa pagination) sebagai xlsx.
func (h *Handler) Export(c *gin.Context) {
	branchID := c.GetString("branch_id")

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}
	filter, err := h.buildFilter(q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	snap, err := h.store.Load(c.Request.Context(), branchID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filtered := ApplyFilter(SortTransactions(snap.Unified()), filter)
	opts := ExportOptions{
		UserID: c.Query("user_id"),
		Kind:   c.Query("export_kind"),
	}

	f, name, err := BuildWorkbook(branchID, filtered, opts, time.Now().UTC())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, name))
	if err := f.Write(c.Writer); err != nil {
		h.writeServiceError(c, err)
		return
	}
}

// Reload memaksa muat ulang sesi branch, dipakai setelah operator
// berpindah branch atau saat data dicurigai basi.
func (h *Handler) Reload(c *gin.Context) {
	branchID := c.GetString("branch_id")

	h.store.Clear(branchID)
	snap, err := h.store.Reload(c.Request.Context(), branchID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"branch_id": snap.BranchID,
		"loaded_at": snap.LoadedAt.Format(time.RFC3339),
		"count":     len(snap.Unified()),
	}, nil)
}
