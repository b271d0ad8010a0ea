package staff

import (
	"context"
	"database/sql"
	"errors"

	stafferrors "github.com/trungnguyen160923/coffee-management-sub002/internal/staff/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_service.go -destination=mock/staff_service_mock.go -package=mock
type Service interface {
	ListByBranch(ctx context.Context, branchID string) ([]StaffResponse, error)
	GetByID(ctx context.Context, branchID, id string) (StaffResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) ListByBranch(ctx context.Context, branchID string) ([]StaffResponse, error) {
	if _, err := uuid.Parse(branchID); err != nil {
		return nil, stafferrors.ErrInvalidBranchID
	}

	staff, err := s.repo.FindAllByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(staff), nil
}

func (s *service) GetByID(ctx context.Context, branchID, id string) (StaffResponse, error) {
	st, err := s.repo.FindByIDAndBranch(ctx, branchID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StaffResponse{}, stafferrors.ErrStaffNotFound
		}
		return StaffResponse{}, err
	}
	return mapToResponse(*st), nil
}

func mapToResponse(st Staff) StaffResponse {
	return StaffResponse{
		ID:       st.ID.String(),
		BranchID: st.BranchID.String(),
		FullName: st.FullName,
		Email:    st.Email,
		Position: st.Position,
		IsActive: st.IsActive,
	}
}

func mapToListResponse(staff []Staff) []StaffResponse {
	resp := make([]StaffResponse, len(staff))
	for i, st := range staff {
		resp[i] = mapToResponse(st)
	}
	return resp
}
