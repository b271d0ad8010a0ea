package template

import (
	"context"
	"database/sql"
	"errors"

	templateerrors "github.com/trungnguyen160923/coffee-management-sub002/internal/template/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=template_service.go -destination=mock/template_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateTemplateRequest) (TemplateResponse, error)
	ListBonusTemplates(ctx context.Context, branchID string) ([]TemplateResponse, error)
	ListPenaltyConfigs(ctx context.Context, branchID string) ([]TemplateResponse, error)
	ListAllowanceTemplates(ctx context.Context, branchID string) ([]TemplateResponse, error)
	GetForBranch(ctx context.Context, branchID, id string) (TemplateResponse, error)
	Update(ctx context.Context, id string, req UpdateTemplateRequest) (TemplateResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("template.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("template.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateTemplateRequest) (TemplateResponse, error) {
	createdBy, err := uuid.Parse(actorID)
	if err != nil {
		return TemplateResponse{}, templateerrors.ErrInvalidActorID
	}
	if !req.Amount.IsPositive() {
		return TemplateResponse{}, templateerrors.ErrAmountNotPositive
	}

	var branchUUID *uuid.UUID
	if req.BranchID != nil && *req.BranchID != "" {
		parsed, err := uuid.Parse(*req.BranchID)
		if err != nil {
			return TemplateResponse{}, templateerrors.ErrInvalidBranchID
		}
		branchUUID = &parsed
	}

	tpl := &Template{
		ID:          uuid.New(),
		Kind:        req.Kind,
		BranchID:    branchUUID,
		Name:        req.Name,
		Description: req.Description,
		TypeCode:    req.TypeCode,
		Amount:      req.Amount,
		IsActive:    true,
		CreatedBy:   createdBy,
	}

	if err := s.repo.Create(ctx, tpl); err != nil {
		s.logger.Error("create template persist failed", zap.Error(err))
		return TemplateResponse{}, err
	}
	s.logger.Info("create template success",
		zap.String("template_id", tpl.ID.String()),
		zap.String("kind", tpl.Kind),
	)

	return mapToResponse(*tpl), nil
}

func (s *service) ListBonusTemplates(ctx context.Context, branchID string) ([]TemplateResponse, error) {
	return s.listByKind(ctx, KindBonus, branchID)
}

func (s *service) ListPenaltyConfigs(ctx context.Context, branchID string) ([]TemplateResponse, error) {
	return s.listByKind(ctx, KindPenalty, branchID)
}

func (s *service) ListAllowanceTemplates(ctx context.Context, branchID string) ([]TemplateResponse, error) {
	return s.listByKind(ctx, KindAllowance, branchID)
}

func (s *service) listByKind(ctx context.Context, kind, branchID string) ([]TemplateResponse, error) {
	if _, err := uuid.Parse(branchID); err != nil {
		return nil, templateerrors.ErrInvalidBranchID
	}

	templates, err := s.repo.FindActiveByKind(ctx, kind, branchID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(templates), nil
}

// GetForBranch memvalidasi scope: template global boleh dipakai semua
// cabang, template branch-scoped hanya oleh cabang pemiliknya.
func (s *service) GetForBranch(ctx context.Context, branchID, id string) (TemplateResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TemplateResponse{}, templateerrors.ErrInvalidTemplateID
	}

	tpl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TemplateResponse{}, templateerrors.ErrTemplateNotFound
		}
		return TemplateResponse{}, err
	}
	if !tpl.IsActive {
		return TemplateResponse{}, templateerrors.ErrTemplateInactive
	}
	if tpl.BranchID != nil && tpl.BranchID.String() != branchID {
		return TemplateResponse{}, templateerrors.ErrTemplateWrongBranch
	}

	return mapToResponse(*tpl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTemplateRequest) (TemplateResponse, error) {
	if !req.Amount.IsPositive() {
		return TemplateResponse{}, templateerrors.ErrAmountNotPositive
	}

	tpl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TemplateResponse{}, templateerrors.ErrTemplateNotFound
		}
		return TemplateResponse{}, err
	}

	tpl.Name = req.Name
	tpl.Description = req.Description
	tpl.TypeCode = req.TypeCode
	tpl.Amount = req.Amount
	if req.IsActive != nil {
		tpl.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, tpl); err != nil {
		s.logger.Error("update template persist failed",
			zap.String("template_id", id),
			zap.Error(err),
		)
		return TemplateResponse{}, err
	}

	return mapToResponse(*tpl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func mapToResponse(tpl Template) TemplateResponse {
	resp := TemplateResponse{
		ID:          tpl.ID.String(),
		Kind:        tpl.Kind,
		Name:        tpl.Name,
		Description: tpl.Description,
		TypeCode:    tpl.TypeCode,
		Amount:      tpl.Amount,
		IsActive:    tpl.IsActive,
		Scope:       "GLOBAL",
	}
	if tpl.BranchID != nil {
		v := tpl.BranchID.String()
		resp.BranchID = &v
		resp.Scope = "BRANCH"
	}
	return resp
}

func mapToListResponse(templates []Template) []TemplateResponse {
	resp := make([]TemplateResponse, len(templates))
	for i, tpl := range templates {
		resp[i] = mapToResponse(tpl)
	}
	return resp
}
