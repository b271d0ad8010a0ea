package shift

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Shift, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Shift, error) {
	var sh Shift
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sh).Error
	return &sh, err
}
