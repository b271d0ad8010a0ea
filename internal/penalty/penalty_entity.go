package penalty

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Penalty struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID uuid.UUID `gorm:"type:uuid;not null;index:idx_penalties_branch_status"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_penalties_user_period"`

	PenaltyType string          `gorm:"type:varchar(20);not null;default:'OTHER'"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Period      string          `gorm:"type:char(7);not null;index:idx_penalties_user_period"`
	Description string          `gorm:"type:text"`

	Status       string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_penalties_branch_status"`
	ShiftID      *uuid.UUID `gorm:"type:uuid"`
	IncidentDate *time.Time `gorm:"type:date"`

	CreatedBy      uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy     *uuid.UUID `gorm:"type:uuid"`
	RejectionNotes *string    `gorm:"type:text"`

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
