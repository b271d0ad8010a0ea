package allowance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allowance tidak punya alur approval; statusnya hanya ACTIVE/INACTIVE.
// Satu template hanya boleh diterapkan sekali per user per periode
// (unique index uq_allowances_template_period).
type Allowance struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID uuid.UUID `gorm:"type:uuid;not null;index:idx_allowances_branch_status"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:uq_allowances_template_period,unique,where:source_template_id IS NOT NULL"`

	AllowanceType string          `gorm:"type:varchar(20);not null;default:'OTHER'"`
	Amount        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Period        string          `gorm:"type:char(7);not null;index:uq_allowances_template_period,unique"`
	Description   string          `gorm:"type:text"`

	Status           string     `gorm:"type:varchar(20);not null;default:'ACTIVE';index:idx_allowances_branch_status"`
	SourceTemplateID *uuid.UUID `gorm:"type:uuid;index:uq_allowances_template_period,unique"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
