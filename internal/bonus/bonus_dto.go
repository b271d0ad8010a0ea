package bonus

import "github.com/shopspring/decimal"

type CreateBonusRequest struct {
	UserID      string          `json:"user_id" binding:"required,uuid"`
	BonusType   string          `json:"bonus_type" binding:"required,oneof=PERFORMANCE ATTENDANCE SPECIAL HOLIDAY OTHER"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Period      string          `json:"period" binding:"required"`
	Description string          `json:"description"`
	ShiftID     *string         `json:"shift_id"`
}

type UpdateBonusRequest struct {
	BonusType   string          `json:"bonus_type" binding:"required,oneof=PERFORMANCE ATTENDANCE SPECIAL HOLIDAY OTHER"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Period      string          `json:"period" binding:"required"`
	Description string          `json:"description"`
}

type RejectBonusRequest struct {
	Notes string `json:"notes"`
}

type ApplyTemplateRequest struct {
	UserID     string `json:"user_id" binding:"required,uuid"`
	Period     string `json:"period" binding:"required"`
	TemplateID string `json:"template_id" binding:"required,uuid"`
}

type BonusResponse struct {
	ID               string          `json:"id"`
	BranchID         string          `json:"branch_id"`
	UserID           string          `json:"user_id"`
	BonusType        string          `json:"bonus_type"`
	Amount           decimal.Decimal `json:"amount"`
	Period           string          `json:"period"`
	Description      string          `json:"description"`
	Status           string          `json:"status"`
	ShiftID          *string         `json:"shift_id,omitempty"`
	SourceTemplateID *string         `json:"source_template_id,omitempty"`
	CreatedBy        string          `json:"created_by"`
	ApprovedBy       *string         `json:"approved_by,omitempty"`
	RejectionNotes   *string         `json:"rejection_notes,omitempty"`
	CreatedAt        string          `json:"created_at"`
}
