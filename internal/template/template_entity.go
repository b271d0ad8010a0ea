package template

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	KindBonus     = "bonus"
	KindPenalty   = "penalty"
	KindAllowance = "allowance"
)

// Template adalah definisi adjustment siap pakai (nama, tipe, nominal)
// yang bisa diterapkan ke banyak staff sekaligus.
// BranchID NULL berarti template berlaku global untuk semua cabang.
type Template struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind     string     `gorm:"type:varchar(20);not null;index:idx_templates_kind_active"`
	BranchID *uuid.UUID `gorm:"type:uuid;index"`

	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text"`
	TypeCode    string          `gorm:"type:varchar(30);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	IsActive    bool            `gorm:"not null;default:true;index:idx_templates_kind_active"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
