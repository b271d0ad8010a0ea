package bonus

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Satu template hanya boleh diterapkan sekali per user per periode;
// dijaga oleh unique index uq_bonuses_template_period.
type Bonus struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID uuid.UUID `gorm:"type:uuid;not null;index:idx_bonuses_branch_status"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:uq_bonuses_template_period,unique,where:source_template_id IS NOT NULL"`

	BonusType   string          `gorm:"type:varchar(20);not null;default:'OTHER'"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Period      string          `gorm:"type:char(7);not null;index:uq_bonuses_template_period,unique"`
	Description string          `gorm:"type:text"`

	Status           string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_bonuses_branch_status"`
	ShiftID          *uuid.UUID `gorm:"type:uuid"`
	SourceTemplateID *uuid.UUID `gorm:"type:uuid;index:uq_bonuses_template_period,unique"`

	CreatedBy      uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy     *uuid.UUID `gorm:"type:uuid"`
	RejectionNotes *string    `gorm:"type:text"`

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
