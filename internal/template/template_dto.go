package template

import "github.com/shopspring/decimal"

type CreateTemplateRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=bonus penalty allowance"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	TypeCode    string          `json:"type_code" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	BranchID    *string         `json:"branch_id"`
}

type UpdateTemplateRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	TypeCode    string          `json:"type_code" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	IsActive    *bool           `json:"is_active" binding:"required"`
}

type TemplateResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	TypeCode    string          `json:"type_code"`
	Amount      decimal.Decimal `json:"amount"`
	IsActive    bool            `json:"is_active"`
	Scope       string          `json:"scope"`
	BranchID    *string         `json:"branch_id,omitempty"`
}
