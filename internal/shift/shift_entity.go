package shift

import (
	"time"

	"github.com/google/uuid"
)

type Shift struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID uuid.UUID `gorm:"type:uuid;not null;index"`

	ShiftDate time.Time `gorm:"type:date;not null"`
	StartTime string    `gorm:"type:varchar(5);not null"` // HH:MM
	EndTime   string    `gorm:"type:varchar(5);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
