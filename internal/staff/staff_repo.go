package staff

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAllByBranch(ctx context.Context, branchID string) ([]Staff, error)
	FindByIDAndBranch(ctx context.Context, branchID, id string) (*Staff, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID string) ([]Staff, error) {
	var staff []Staff
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("full_name ASC").
		Find(&staff).Error
	return staff, err
}

func (r *repository) FindByIDAndBranch(ctx context.Context, branchID, id string) (*Staff, error) {
	var st Staff
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("branch_id = ?", branchID).
		First(&st).Error
	return &st, err
}
