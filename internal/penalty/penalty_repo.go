package penalty

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=penalty_repo.go -destination=mock/penalty_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Penalty) error
	FindAllByBranch(ctx context.Context, branchID string) ([]Penalty, error)
	FindByIDAndBranch(ctx context.Context, branchID, id string) (*Penalty, error)
	Update(ctx context.Context, p *Penalty) error
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

func (r *repository) Create(ctx context.Context, p *Penalty) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID string) ([]Penalty, error) {
	var penalties []Penalty
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("created_at DESC").
		Find(&penalties).Error
	return penalties, err
}

func (r *repository) FindByIDAndBranch(ctx context.Context, branchID, id string) (*Penalty, error) {
	var p Penalty
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("branch_id = ?", branchID).
		First(&p).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Penalty) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, branchID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("branch_id = ?", branchID).
		Delete(&Penalty{}).Error
}
