package template

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=template_repo.go -destination=mock/template_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, tpl *Template) error
	FindActiveByKind(ctx context.Context, kind, branchID string) ([]Template, error)
	FindByID(ctx context.Context, id string) (*Template, error)
	Update(ctx context.Context, tpl *Template) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, tpl *Template) error {
	return r.db.WithContext(ctx).Create(tpl).Error
}

// FindActiveByKind mengembalikan template aktif milik cabang ditambah
// template global (branch_id IS NULL).
func (r *repository) FindActiveByKind(ctx context.Context, kind, branchID string) ([]Template, error) {
	var templates []Template
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Where("is_active = ?", true).
		Where("branch_id IS NULL OR branch_id = ?", branchID).
		Order("branch_id NULLS LAST, name ASC").
		Find(&templates).Error
	return templates, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Template, error) {
	var tpl Template
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tpl).Error
	return &tpl, err
}

func (r *repository) Update(ctx context.Context, tpl *Template) error {
	return r.db.WithContext(ctx).Save(tpl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Template{}).Error
}
