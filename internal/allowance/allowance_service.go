package allowance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	allowanceerrors "github.com/trungnguyen160923/coffee-management-sub002/internal/allowance/errors"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/template"
	templateerrors "github.com/trungnguyen160923/coffee-management-sub002/internal/template/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type TemplateCatalog interface {
	GetForBranch(ctx context.Context, branchID, id string) (template.TemplateResponse, error)
}

//go:generate mockgen -source=allowance_service.go -destination=mock/allowance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, branchID, actorID string, req CreateAllowanceRequest) (AllowanceResponse, error)
	GetAll(ctx context.Context, branchID string) ([]AllowanceResponse, error)
	GetByID(ctx context.Context, branchID, id string) (AllowanceResponse, error)
	Update(ctx context.Context, branchID, id string, req UpdateAllowanceRequest) (AllowanceResponse, error)
	Delete(ctx context.Context, branchID, id string) error
	Deactivate(ctx context.Context, branchID, id string) (AllowanceResponse, error)
	Activate(ctx context.Context, branchID, id string) (AllowanceResponse, error)
	CreateFromTemplate(ctx context.Context, branchID, actorID string, req ApplyTemplateRequest) (AllowanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	templates TemplateCatalog
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, templates TemplateCatalog, logger ...*zap.Logger) Service {
	l := zap.L().Named("allowance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("allowance.service")
	}
	return &service{db: db, repo: repo, templates: templates, logger: l}
}

func parsePeriod(v string) error {
	if _, err := time.Parse("2006-01", v); err != nil {
		return allowanceerrors.ErrInvalidPeriod
	}
	return nil
}

func (s *service) Create(ctx context.Context, branchID, actorID string, req CreateAllowanceRequest) (AllowanceResponse, error) {
	s.logger.Debug("create allowance requested",
		zap.String("branch_id", branchID),
		zap.String("user_id", req.UserID),
		zap.String("period", req.Period),
	)

	branchUUID, err := uuid.Parse(branchID)
	if err != nil {
		return AllowanceResponse{}, allowanceerrors.ErrInvalidBranchID
	}
	createdBy, err := uuid.Parse(actorID)
	if err != nil {
		return AllowanceResponse{}, allowanceerrors.ErrInvalidActorID
	}
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return AllowanceResponse{}, allowanceerrors.ErrInvalidUserID
	}
	if err := parsePeriod(req.Period); err != nil {
		return AllowanceResponse{}, err
	}
	if !req.Amount.IsPositive() {
		return AllowanceResponse{}, allowanceerrors.ErrAmountNotPositive
	}

	a := &Allowance{
		ID:            uuid.New(),
		BranchID:      branchUUID,
		UserID:        userUUID,
		AllowanceType: req.AllowanceType,
		Amount:        req.Amount,
		Period:        req.Period,
		Description:   req.Description,
		Status:        StatusActive,
		CreatedBy:     createdBy,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("create allowance persist failed", zap.Error(err))
		return AllowanceResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("create allowance success",
		zap.String("allowance_id", a.ID.String()),
		zap.String("branch_id", branchID),
	)

	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, branchID string) ([]AllowanceResponse, error) {
	if _, err := uuid.Parse(branchID); err != nil {
		return nil, allowanceerrors.ErrInvalidBranchID
	}

	allowances, err := s.repo.FindAllByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(allowances), nil
}

func (s *service) GetByID(ctx context.Context, branchID, id string) (AllowanceResponse, error) {
	a, err := s.repo.FindByIDAndBranch(ctx, branchID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AllowanceResponse{}, allowanceerrors.ErrAllowanceNotFound
		}
		return AllowanceResponse{}, err
	}
	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, branchID, id string, req UpdateAllowanceRequest) (AllowanceResponse, error) {
	if err := parsePeriod(req.Period); err != nil {
		return AllowanceResponse{}, err
	}
	if !req.Amount.IsPositive() {
		return AllowanceResponse{}, allowanceerrors.ErrAmountNotPositive
	}

	a, err := s.repo.FindByIDAndBranch(ctx, branchID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AllowanceResponse{}, allowanceerrors.ErrAllowanceNotFound
		}
		return AllowanceResponse{}, err
	}

	a.AllowanceType = req.AllowanceType
	a.Amount = req.Amount
	a.Period = req.Period
	a.Description = req.Description
	a.Status = req.Status

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("update allowance persist failed",
			zap.String("allowance_id", id),
			zap.Error(err),
		)
		return AllowanceResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*a), nil
}

func (s *service) Delete(ctx context.Context, branchID, id string) error {
	if err := s.repo.Delete(ctx, branchID, id); err != nil {
		return err
	}
	s.logger.Info("delete allowance success",
		zap.String("allowance_id", id),
		zap.String("branch_id", branchID),
	)
	return nil
}

func (s *service) Deactivate(ctx context.Context, branchID, id string) (AllowanceResponse, error) {
	return s.setStatus(ctx, branchID, id, StatusInactive)
}

func (s *service) Activate(ctx context.Context, branchID, id string) (AllowanceResponse, error) {
	return s.setStatus(ctx, branchID, id, StatusActive)
}

func (s *service) setStatus(ctx context.Context, branchID, id, status string) (AllowanceResponse, error) {
	a, err := s.repo.FindByIDAndBranch(ctx, branchID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AllowanceResponse{}, allowanceerrors.ErrAllowanceNotFound
		}
		return AllowanceResponse{}, err
	}

	a.Status = status
	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("set allowance status persist failed",
			zap.String("allowance_id", id),
			zap.String("status", status),
			zap.Error(err),
		)
		return AllowanceResponse{}, err
	}
	s.logger.Info("set allowance status success",
		zap.String("allowance_id", id),
		zap.String("status", status),
	)

	return mapToResponse(*a), nil
}

// CreateFromTemplate membuat allowance langsung ACTIVE dari template;
// nominal dan tipe diambil dari template, bukan dari request.
func (s *service) CreateFromTemplate(ctx context.Context, branchID, actorID string, req ApplyTemplateRequest) (AllowanceResponse, error) {
	branchUUID, err := uuid.Parse(branchID)
	if err != nil {
		return AllowanceResponse{}, allowanceerrors.ErrInvalidBranchID
	}
	createdBy, err := uuid.Parse(actorID)
	if err != nil {
		return AllowanceResponse{}, allowanceerrors.ErrInvalidActorID
	}
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return AllowanceResponse{}, allowanceerrors.ErrInvalidUserID
	}
	if err := parsePeriod(req.Period); err != nil {
		return AllowanceResponse{}, err
	}

	tpl, err := s.templates.GetForBranch(ctx, branchID, req.TemplateID)
	if err != nil {
		return AllowanceResponse{}, err
	}
	if tpl.Kind != template.KindAllowance {
		return AllowanceResponse{}, templateerrors.ErrTemplateNotFound
	}

	templateUUID := uuid.MustParse(tpl.ID)
	a := &Allowance{
		ID:               uuid.New(),
		BranchID:         branchUUID,
		UserID:           userUUID,
		AllowanceType:    tpl.TypeCode,
		Amount:           tpl.Amount,
		Period:           req.Period,
		Description:      tpl.Name,
		Status:           StatusActive,
		SourceTemplateID: &templateUUID,
		CreatedBy:        createdBy,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Warn("create allowance from template failed",
			zap.String("template_id", req.TemplateID),
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return AllowanceResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("create allowance from template success",
		zap.String("allowance_id", a.ID.String()),
		zap.String("template_id", req.TemplateID),
		zap.String("user_id", req.UserID),
	)

	return mapToResponse(*a), nil
}

func mapToResponse(a Allowance) AllowanceResponse {
	resp := AllowanceResponse{
		ID:            a.ID.String(),
		BranchID:      a.BranchID.String(),
		UserID:        a.UserID.String(),
		AllowanceType: a.AllowanceType,
		Amount:        a.Amount,
		Period:        a.Period,
		Description:   a.Description,
		Status:        a.Status,
		CreatedBy:     a.CreatedBy.String(),
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.SourceTemplateID != nil {
		v := a.SourceTemplateID.String()
		resp.SourceTemplateID = &v
	}
	return resp
}

func mapToListResponse(allowances []Allowance) []AllowanceResponse {
	resp := make([]AllowanceResponse, len(allowances))
	for i, a := range allowances {
		resp[i] = mapToResponse(a)
	}
	return resp
}
