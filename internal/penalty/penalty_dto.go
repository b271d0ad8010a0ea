package penalty

import "github.com/shopspring/decimal"

type CreatePenaltyRequest struct {
	UserID       string          `json:"user_id" binding:"required,uuid"`
	PenaltyType  string          `json:"penalty_type" binding:"required,oneof=NO_SHOW LATE EARLY_LEAVE MISTAKE VIOLATION OTHER"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Period       string          `json:"period" binding:"required"`
	Description  string          `json:"description"`
	ShiftID      *string         `json:"shift_id"`
	IncidentDate *string         `json:"incident_date"`
}

type UpdatePenaltyRequest struct {
	PenaltyType  string          `json:"penalty_type" binding:"required,oneof=NO_SHOW LATE EARLY_LEAVE MISTAKE VIOLATION OTHER"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Period       string          `json:"period" binding:"required"`
	Description  string          `json:"description"`
	IncidentDate *string         `json:"incident_date"`
}

type RejectPenaltyRequest struct {
	Notes string `json:"notes"`
}

type ApplyTemplateRequest struct {
	UserID     string `json:"user_id" binding:"required,uuid"`
	Period     string `json:"period" binding:"required"`
	TemplateID string `json:"template_id" binding:"required,uuid"`
}

type PenaltyResponse struct {
	ID             string          `json:"id"`
	BranchID       string          `json:"branch_id"`
	UserID         string          `json:"user_id"`
	PenaltyType    string          `json:"penalty_type"`
	Amount         decimal.Decimal `json:"amount"`
	Period         string          `json:"period"`
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	ShiftID        *string         `json:"shift_id,omitempty"`
	IncidentDate   *string         `json:"incident_date,omitempty"`
	CreatedBy      string          `json:"created_by"`
	ApprovedBy     *string         `json:"approved_by,omitempty"`
	RejectionNotes *string         `json:"rejection_notes,omitempty"`
	CreatedAt      string          `json:"created_at"`
}
