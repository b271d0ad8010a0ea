package bonus

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=bonus_repo.go -destination=mock/bonus_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, b *Bonus) error
	FindAllByBranch(ctx context.Context, branchID string) ([]Bonus, error)
	FindByIDAndBranch(ctx context.Context, branchID, id string) (*Bonus, error)
	Update(ctx context.Context, b *Bonus) error
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

func (r *repository) Create(ctx context.Context, b *Bonus) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID string) ([]Bonus, error) {
	var bonuses []Bonus
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("created_at DESC").
		Find(&bonuses).Error
	return bonuses, err
}

func (r *repository) FindByIDAndBranch(ctx context.Context, branchID, id string) (*Bonus, error) {
	var b Bonus
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("branch_id = ?", branchID).
		First(&b).Error
	return &b, err
}

func (r *repository) Update(ctx context.Context, b *Bonus) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) Delete(ctx context.Context, branchID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("branch_id = ?", branchID).
		Delete(&Bonus{}).Error
}
