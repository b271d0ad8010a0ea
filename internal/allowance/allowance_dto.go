package allowance

import "github.com/shopspring/decimal"

type CreateAllowanceRequest struct {
	UserID        string          `json:"user_id" binding:"required,uuid"`
	AllowanceType string          `json:"allowance_type" binding:"required,oneof=TRANSPORT MEAL PHONE HOUSING OTHER"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Period        string          `json:"period" binding:"required"`
	Description   string          `json:"description"`
}

type UpdateAllowanceRequest struct {
	AllowanceType string          `json:"allowance_type" binding:"required,oneof=TRANSPORT MEAL PHONE HOUSING OTHER"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Period        string          `json:"period" binding:"required"`
	Description   string          `json:"description"`
	Status        string          `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
}

type ApplyTemplateRequest struct {
	UserID     string `json:"user_id" binding:"required,uuid"`
	Period     string `json:"period" binding:"required"`
	TemplateID string `json:"template_id" binding:"required,uuid"`
}

type AllowanceResponse struct {
	ID               string          `json:"id"`
	BranchID         string          `json:"branch_id"`
	UserID           string          `json:"user_id"`
	AllowanceType    string          `json:"allowance_type"`
	Amount           decimal.Decimal `json:"amount"`
	Period           string          `json:"period"`
	Description      string          `json:"description"`
	Status           string          `json:"status"`
	SourceTemplateID *string         `json:"source_template_id,omitempty"`
	CreatedBy        string          `json:"created_by"`
	CreatedAt        string          `json:"created_at"`
}
