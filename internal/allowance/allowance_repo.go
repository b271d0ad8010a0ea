package allowance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=allowance_repo.go -destination=mock/allowance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Allowance) error
	FindAllByBranch(ctx context.Context, branchID string) ([]Allowance, error)
	FindByIDAndBranch(ctx context.Context, branchID, id string) (*Allowance, error)
	Update(ctx context.Context, a *Allowance) error
	Delete(ctx context.Context, branchID, id string) error
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

func (r *repository) Create(ctx context.Context, a *Allowance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID string) ([]Allowance, error) {
	var allowances []Allowance
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("created_at DESC").
		Find(&allowances).Error
	return allowances, err
}

func (r *repository) FindByIDAndBranch(ctx context.Context, branchID, id string) (*Allowance, error) {
	var a Allowance
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("branch_id = ?", branchID).
		First(&a).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *Allowance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, branchID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("branch_id = ?", branchID).
		Delete(&Allowance{}).Error
}
