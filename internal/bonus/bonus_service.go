package bonus

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	bonuserrors "github.com/trungnguyen160923/coffee-management-sub002/internal/bonus/errors"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/events"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/messaging/kafka"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/shared/contextutil"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/template"
	templateerrors "github.com/trungnguyen160923/coffee-management-sub002/internal/template/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// TemplateCatalog adalah potongan kecil dari template.Service yang
// dibutuhkan untuk apply-template.
type TemplateCatalog interface {
	GetForBranch(ctx context.Context, branchID, id string) (template.TemplateResponse, error)
}

//go:generate mockgen -source=bonus_service.go -destination=mock/bonus_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, branchID, actorID string, req CreateBonusRequest) (BonusResponse, error)
	GetAll(ctx context.Context, branchID string) ([]BonusResponse, error)
	GetByID(ctx context.Context, branchID, id string) (BonusResponse, error)
	Update(ctx context.Context, branchID, id string, req UpdateBonusRequest) (BonusResponse, error)
	Delete(ctx context.Context, branchID, id string) error
	Approve(ctx context.Context, branchID, actorID, id string) (BonusResponse, error)
	Reject(ctx context.Context, branchID, actorID, id, notes string) (BonusResponse, error)
	CreateFromTemplate(ctx context.Context, branchID, actorID string, req ApplyTemplateRequest) (BonusResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	templates TemplateCatalog
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, templates TemplateCatalog, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, templates, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	templates TemplateCatalog,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("bonus.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bonus.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		templates: templates,
		outbox:    outboxRepo,
		logger:    l,
	}
}

func canTransition(currentStatus, targetStatus string) bool {
	if currentStatus != StatusPending {
		return false
	}
	return targetStatus == StatusApproved || targetStatus == StatusRejected
}

func parsePeriod(v string) error {
	if _, err := time.Parse("2006-01", v); err != nil {
		return bonuserrors.ErrInvalidPeriod
	}
	return nil
}

func (s *service) Create(ctx context.Context, branchID, actorID string, req CreateBonusRequest) (BonusResponse, error) {
	s.logger.Debug("create bonus requested",
		zap.String("branch_id", branchID),
		zap.String("user_id", req.UserID),
		zap.String("period", req.Period),
	)

	branchUUID, err := uuid.Parse(branchID)
	if err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidBranchID
	}
	createdBy, err := uuid.Parse(actorID)
	if err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidActorID
	}
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidUserID
	}
	if err := parsePeriod(req.Period); err != nil {
		return BonusResponse{}, err
	}
	if !req.Amount.IsPositive() {
		return BonusResponse{}, bonuserrors.ErrAmountNotPositive
	}

	var shiftUUID *uuid.UUID
	if req.ShiftID != nil && *req.ShiftID != "" {
		parsed, err := uuid.Parse(*req.ShiftID)
		if err != nil {
			return BonusResponse{}, bonuserrors.ErrInvalidShiftID
		}
		shiftUUID = &parsed
	}

	b := &Bonus{
		ID:          uuid.New(),
		BranchID:    branchUUID,
		UserID:      userUUID,
		BonusType:   req.BonusType,
		Amount:      req.Amount,
		Period:      req.Period,
		Description: req.Description,
		Status:      StatusPending,
		ShiftID:     shiftUUID,
		CreatedBy:   createdBy,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.logger.Error("create bonus persist failed", zap.Error(err))
		return BonusResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("create bonus success",
		zap.String("bonus_id", b.ID.String()),
		zap.String("branch_id", branchID),
	)

	return mapToResponse(*b), nil
}

func (s *service) GetAll(ctx context.Context, branchID string) ([]BonusResponse, error) {
	if _, err := uuid.Parse(branchID); err != nil {
		return nil, bonuserrors.ErrInvalidBranchID
	}

	bonuses, err := s.repo.FindAllByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(bonuses), nil
}

func (s *service) GetByID(ctx context.Context, branchID, id string) (BonusResponse, error) {
	b, err := s.repo.FindByIDAndBranch(ctx, branchID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BonusResponse{}, bonuserrors.ErrBonusNotFound
		}
		return BonusResponse{}, err
	}
	return mapToResponse(*b), nil
}

func (s *service) Update(ctx context.Context, branchID, id string, req UpdateBonusRequest) (BonusResponse, error) {
	if err := parsePeriod(req.Period); err != nil {
		return BonusResponse{}, err
	}
	if !req.Amount.IsPositive() {
		return BonusResponse{}, bonuserrors.ErrAmountNotPositive
	}

	b, err := s.repo.FindByIDAndBranch(ctx, branchID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BonusResponse{}, bonuserrors.ErrBonusNotFound
		}
		return BonusResponse{}, err
	}

	b.BonusType = req.BonusType
	b.Amount = req.Amount
	b.Period = req.Period
	b.Description = req.Description

	if err := s.repo.Update(ctx, b); err != nil {
		s.logger.Error("update bonus persist failed",
			zap.String("bonus_id", id),
			zap.Error(err),
		)
		return BonusResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*b), nil
}

func (s *service) Delete(ctx context.Context, branchID, id string) error {
	if err := s.repo.Delete(ctx, branchID, id); err != nil {
		return err
	}
	s.logger.Info("delete bonus success",
		zap.String("bonus_id", id),
		zap.String("branch_id", branchID),
	)
	return nil
}

func (s *service) Approve(ctx context.Context, branchID, actorID, id string) (BonusResponse, error) {
	return s.transitionStatus(ctx, branchID, actorID, id, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, branchID, actorID, id, notes string) (BonusResponse, error) {
	return s.transitionStatus(ctx, branchID, actorID, id, StatusRejected, &notes)
}

func (s *service) transitionStatus(ctx context.Context, branchID, actorID, id, targetStatus string, notes *string) (BonusResponse, error) {
	s.logger.Debug("transition bonus status requested",
		zap.String("bonus_id", id),
		zap.String("branch_id", branchID),
		zap.String("target_status", targetStatus),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition bonus status begin tx failed", zap.Error(err))
		return BonusResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidActorID
	}

	b, err := qtx.FindByIDAndBranch(ctx, branchID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BonusResponse{}, bonuserrors.ErrBonusNotFound
		}
		return BonusResponse{}, err
	}
	if !canTransition(b.Status, targetStatus) {
		s.logger.Warn("transition bonus status invalid",
			zap.String("bonus_id", id),
			zap.String("from_status", b.Status),
			zap.String("to_status", targetStatus),
		)
		return BonusResponse{}, bonuserrors.ErrInvalidStatusTransition
	}

	b.Status = targetStatus
	switch targetStatus {
	case StatusApproved:
		b.ApprovedBy = &actorUUID
		now := time.Now().UTC()
		b.ApprovedAt = &now
		b.RejectionNotes = nil
	case StatusRejected:
		b.ApprovedBy = nil
		b.ApprovedAt = nil
		if notes != nil && *notes != "" {
			b.RejectionNotes = notes
		}
	}

	if err := qtx.Update(ctx, b); err != nil {
		s.logger.Error("transition bonus status persist failed",
			zap.String("bonus_id", id),
			zap.Error(err),
		)
		return BonusResponse{}, err
	}

	if err := s.writeStatusEvent(ctx, tx, b, actorID); err != nil {
		return BonusResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("transition bonus status commit failed",
			zap.String("bonus_id", id),
			zap.Error(err),
		)
		return BonusResponse{}, err
	}
	s.logger.Info("transition bonus status success",
		zap.String("bonus_id", id),
		zap.String("status", targetStatus),
	)

	return mapToResponse(*b), nil
}

func (s *service) writeStatusEvent(ctx context.Context, tx *sql.Tx, b *Bonus, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.AdjustmentStatusChangedEvent{
		EventType:    "adjustment.status.changed",
		AdjustmentID: b.ID.String(),
		Kind:         "bonus",
		BranchID:     b.BranchID.String(),
		UserID:       b.UserID.String(),
		Status:       b.Status,
		ActorID:      actorID,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal status event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "bonus",
		AggregateID:   b.ID.String(),
		EventType:     event.EventType,
		Topic:         events.AdjustmentStatusChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("bonus status outbox persist failed",
			zap.String("bonus_id", b.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// CreateFromTemplate membuat bonus baru dari template aktif; nominal dan
// tipe diambil dari template, bukan dari request.
func (s *service) CreateFromTemplate(ctx context.Context, branchID, actorID string, req ApplyTemplateRequest) (BonusResponse, error) {
	branchUUID, err := uuid.Parse(branchID)
	if err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidBranchID
	}
	createdBy, err := uuid.Parse(actorID)
	if err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidActorID
	}
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidUserID
	}
	if err := parsePeriod(req.Period); err != nil {
		return BonusResponse{}, err
	}

	tpl, err := s.templates.GetForBranch(ctx, branchID, req.TemplateID)
	if err != nil {
		return BonusResponse{}, err
	}
	if tpl.Kind != template.KindBonus {
		return BonusResponse{}, templateerrors.ErrTemplateNotFound
	}

	templateUUID := uuid.MustParse(tpl.ID)
	b := &Bonus{
		ID:               uuid.New(),
		BranchID:         branchUUID,
		UserID:           userUUID,
		BonusType:        tpl.TypeCode,
		Amount:           tpl.Amount,
		Period:           req.Period,
		Description:      tpl.Name,
		Status:           StatusPending,
		SourceTemplateID: &templateUUID,
		CreatedBy:        createdBy,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.logger.Warn("create bonus from template failed",
			zap.String("template_id", req.TemplateID),
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return BonusResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("create bonus from template success",
		zap.String("bonus_id", b.ID.String()),
		zap.String("template_id", req.TemplateID),
		zap.String("user_id", req.UserID),
	)

	return mapToResponse(*b), nil
}

func mapToResponse(b Bonus) BonusResponse {
	resp := BonusResponse{
		ID:          b.ID.String(),
		BranchID:    b.BranchID.String(),
		UserID:      b.UserID.String(),
		BonusType:   b.BonusType,
		Amount:      b.Amount,
		Period:      b.Period,
		Description: b.Description,
		Status:      b.Status,
		CreatedBy:   b.CreatedBy.String(),
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if b.ShiftID != nil {
		v := b.ShiftID.String()
		resp.ShiftID = &v
	}
	if b.SourceTemplateID != nil {
		v := b.SourceTemplateID.String()
		resp.SourceTemplateID = &v
	}
	if b.ApprovedBy != nil {
		v := b.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	resp.RejectionNotes = b.RejectionNotes
	return resp
}

func mapToListResponse(bonuses []Bonus) []BonusResponse {
	resp := make([]BonusResponse, len(bonuses))
	for i, b := range bonuses {
		resp[i] = mapToResponse(b)
	}
	return resp
}
