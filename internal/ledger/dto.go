package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListQuery struct {
	Kind     string `form:"kind"`
	Status   string `form:"status"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}

type BulkRequest struct {
	Action string   `json:"action" binding:"required,oneof=approve reject delete"`
	IDs    []string `json:"ids" binding:"required"`
	Notes  string   `json:"notes"`
}

type RejectRequest struct {
	Notes string `json:"notes"`
}

type ApplyTemplateBatchRequest struct {
	TemplateID string   `json:"template_id" binding:"required,uuid"`
	UserIDs    []string `json:"user_ids" binding:"required"`
}

type TransactionResponse struct {
	ID               string          `json:"id"`
	Kind             string          `json:"kind"`
	RecordID         string          `json:"record_id"`
	BranchID         string          `json:"branch_id"`
	UserID           string          `json:"user_id"`
	StaffName        string          `json:"staff_name"`
	TypeCode         string          `json:"type_code"`
	Amount           decimal.Decimal `json:"amount"`
	Period           string          `json:"period"`
	Description      string          `json:"description"`
	Status           string          `json:"status"`
	ShiftLabel       string          `json:"shift_label,omitempty"`
	CreatedBy        string          `json:"created_by"`
	CreatedAt        string          `json:"created_at"`
	SourceTemplateID *string         `json:"source_template_id,omitempty"`
	IncidentDate     *string         `json:"incident_date,omitempty"`
	RejectionNotes   *string         `json:"rejection_notes,omitempty"`
}

func mapTransaction(tx Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          tx.ID,
		Kind:        tx.Kind,
		RecordID:    tx.RecordID,
		BranchID:    tx.BranchID,
		UserID:      tx.UserID,
		StaffName:   tx.StaffName,
		TypeCode:    tx.TypeCode,
		Amount:      tx.Amount,
		Period:      tx.Period,
		Description: tx.Description,
		Status:      tx.Status,
		ShiftLabel:  tx.ShiftLabel,
		CreatedBy:   tx.CreatedBy,
		CreatedAt:   tx.CreatedAt.UTC().Format(time.RFC3339),
	}
	switch {
	case tx.Bonus != nil:
		resp.SourceTemplateID = tx.Bonus.SourceTemplateID
		resp.RejectionNotes = tx.Bonus.RejectionNotes
	case tx.Penalty != nil:
		resp.IncidentDate = tx.Penalty.IncidentDate
		resp.RejectionNotes = tx.Penalty.RejectionNotes
	case tx.Allowance != nil:
		resp.SourceTemplateID = tx.Allowance.SourceTemplateID
	}
	return resp
}

func mapTransactionList(txs []Transaction) []TransactionResponse {
	resp := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = mapTransaction(tx)
	}
	return resp
}
