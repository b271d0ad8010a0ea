package shift

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ShiftResponse struct {
	ID        string `json:"id"`
	BranchID  string `json:"branch_id"`
	ShiftDate string `json:"shift_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Label ringkas untuk anotasi transaksi, contoh: "2024-05-12 08:00-16:00"
func (r ShiftResponse) Label() string {
	return fmt.Sprintf("%s %s-%s", r.ShiftDate, r.StartTime, r.EndTime)
}

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id string) (ShiftResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

var ErrShiftNotFound = errors.New("shift not found")

func (s *service) GetByID(ctx context.Context, id string) (ShiftResponse, error) {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, ErrShiftNotFound
		}
		return ShiftResponse{}, err
	}

	return ShiftResponse{
		ID:        sh.ID.String(),
		BranchID:  sh.BranchID.String(),
		ShiftDate: sh.ShiftDate.Format("2006-01-02"),
		StartTime: sh.StartTime,
		EndTime:   sh.EndTime,
	}, nil
}
