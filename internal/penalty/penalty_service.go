package penalty

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/events"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/messaging/kafka"
	penaltyerrors "github.com/trungnguyen160923/coffee-management-sub002/internal/penalty/errors"
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

type TemplateCatalog interface {
	GetForBranch(ctx context.Context, branchID, id string) (template.TemplateResponse, error)
}

//go:generate mockgen -source=penalty_service.go -destination=mock/penalty_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, branchID, actorID string, req CreatePenaltyRequest) (PenaltyResponse, error)
	GetAll(ctx context.Context, branchID string) ([]PenaltyResponse, error)
	GetByID(ctx context.Context, branchID, id string) (PenaltyResponse, error)
	Update(ctx context.Context, branchID, id string, req UpdatePenaltyRequest) (PenaltyResponse, error)
	Delete(ctx context.Context, branchID, id string) error
	Approve(ctx context.Context, branchID, actorID, id string) (PenaltyResponse, error)
	Reject(ctx context.Context, branchID, actorID, id, notes string) (PenaltyResponse, error)
	CreateFromTemplate(ctx context.Context, branchID, actorID string, req ApplyTemplateRequest) (PenaltyResponse, error)
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
	l := zap.L().Named("penalty.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("penalty.service")
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
		return penaltyerrors.ErrInvalidPeriod
	}
	return nil
}

func parseIncidentDate(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *v)
	if err != nil {
		return nil, penaltyerrors.ErrInvalidIncidentDate
	}
	return &t, nil
}

func (s *service) Create(ctx context.Context, branchID, actorID string, req CreatePenaltyRequest) (PenaltyResponse, error) {
	s.logger.Debug("create penalty requested",
		zap.String("branch_id", branchID),
		zap.String("user_id", req.UserID),
		zap.String("period", req.Period),
	)

	branchUUID, err := uuid.Parse(branchID)
	if err != nil {
		return PenaltyResponse{}, penaltyerrors.ErrInvalidBranchID
	}
	createdBy, err := uuid.Parse(actorID)
	if err != nil {
		return PenaltyResponse{}, penaltyerrors.ErrInvalidActorID
	}
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return PenaltyResponse{}, penaltyerrors.ErrInvalidUserID
	}
	if err := parsePeriod(req.Period); err != nil {
		return PenaltyResponse{}, err
	}
	if !req.Amount.IsPositive() {
		return PenaltyResponse{}, penaltyerrors.ErrAmountNotPositive
	}

	var shiftUUID *uuid.UUID
	if req.ShiftID != nil && *req.ShiftID != "" {
		parsed, err := uuid.Parse(*req.ShiftID)
		if err != nil {
			return PenaltyResponse{}, penaltyerrors.ErrInvalidShiftID
		}
		shiftUUID = &parsed
	}

	incidentDate, err := parseIncidentDate(req.IncidentDate)
	if err != nil {
		return PenaltyResponse{}, err
	}

	p := &Penalty{
		ID:           uuid.New(),
		BranchID:     branchUUID,
		UserID:       userUUID,
		PenaltyType:  req.PenaltyType,
		Amount:       req.Amount,
		Period:       req.Period,
		Description:  req.Description,
		Status:       StatusPending,
		ShiftID:      shiftUUID,
		IncidentDate: incidentDate,
		CreatedBy:    createdBy,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create penalty persist failed", zap.Error(err))
		return PenaltyResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("create penalty success",
		zap.String("penalty_id", p.ID.String()),
		zap.String("branch_id", branchID),
	)

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, branchID string) ([]PenaltyResponse, error) {
	if _, err := uuid.Parse(branchID); err != nil {
		return nil, penaltyerrors.ErrInvalidBranchID
	}

	penalties, err := s.repo.FindAllByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(penalties), nil
}

func (s *service) GetByID(ctx context.Context, branchID, id string) (PenaltyResponse, error) {
	p, err := s.repo.FindByIDAndBranch(ctx, branchID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PenaltyResponse{}, penaltyerrors.ErrPenaltyNotFound
		}
		return PenaltyResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, branchID, id string, req UpdatePenaltyRequest) (PenaltyResponse, error) {
	if err := parsePeriod(req.Period); err != nil {
		return PenaltyResponse{}, err
	}
	if !req.Amount.IsPositive() {
		return PenaltyResponse{}, penaltyerrors.ErrAmountNotPositive
	}
	incidentDate, err := parseIncidentDate(req.IncidentDate)
	if err != nil {
		return PenaltyResponse{}, err
	}

	p, err := s.repo.FindByIDAndBranch(ctx, branchID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PenaltyResponse{}, penaltyerrors.ErrPenaltyNotFound
		}
		return PenaltyResponse{}, err
	}

	p.PenaltyType = req.PenaltyType
	p.Amount = req.Amount
	p.Period = req.Period
	p.Description = req.Description
	p.IncidentDate = incidentDate

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update penalty persist failed",
			zap.String("penalty_id", id),
			zap.Error(err),
		)
		return PenaltyResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, branchID, id string) error {
	if err := s.repo.Delete(ctx, branchID, id); err != nil {
		return err
	}
	s.logger.Info("delete penalty success",
		zap.String("penalty_id", id),
		zap.String("branch_id", branchID),
	)
	return nil
}

func (s *service) Approve(ctx context.Context, branchID, actorID, id string) (PenaltyResponse, error) {
	return s.transitionStatus(ctx, branchID, actorID, id, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, branchID, actorID, id, notes string) (PenaltyResponse, error) {
	return s.transitionStatus(ctx, branchID, actorID, id, StatusRejected, &notes)
}

func (s *service) transitionStatus(ctx context.Context, branchID, actorID, id, targetStatus string, notes *string) (PenaltyResponse, error) {
	s.logger.Debug("transition penalty status requested",
		zap.String("penalty_id", id),
		zap.String("branch_id", branchID),
		zap.String("target_status", targetStatus),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition penalty status begin tx failed", zap.Error(err))
		return PenaltyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PenaltyResponse{}, penaltyerrors.ErrInvalidActorID
	}

	p, err := qtx.FindByIDAndBranch(ctx, branchID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PenaltyResponse{}, penaltyerrors.ErrPenaltyNotFound
		}
		return PenaltyResponse{}, err
	}
	if !canTransition(p.Status, targetStatus) {
		s.logger.Warn("transition penalty status invalid",
			zap.String("penalty_id", id),
			zap.String("from_status", p.Status),
			zap.String("to_status", targetStatus),
		)
		return PenaltyResponse{}, penaltyerrors.ErrInvalidStatusTransition
	}

	p.Status = targetStatus
	switch targetStatus {
	case StatusApproved:
		p.ApprovedBy = &actorUUID
		now := time.Now().UTC()
		p.ApprovedAt = &now
		p.RejectionNotes = nil
	case StatusRejected:
		p.ApprovedBy = nil
		p.ApprovedAt = nil
		if notes != nil && *notes != "" {
			p.RejectionNotes = notes
		}
	}

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("transition penalty status persist failed",
			zap.String("penalty_id", id),
			zap.Error(err),
		)
		return PenaltyResponse{}, err
	}

	if err := s.writeStatusEvent(ctx, tx, p, actorID); err != nil {
		return PenaltyResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("transition penalty status commit failed",
			zap.String("penalty_id", id),
			zap.Error(err),
		)
		return PenaltyResponse{}, err
	}
	s.logger.Info("transition penalty status success",
		zap.String("penalty_id", id),
		zap.String("status", targetStatus),
	)

	return mapToResponse(*p), nil
}

func (s *service) writeStatusEvent(ctx context.Context, tx *sql.Tx, p *Penalty, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.AdjustmentStatusChangedEvent{
		EventType:    "adjustment.status.changed",
		AdjustmentID: p.ID.String(),
		Kind:         "penalty",
		BranchID:     p.BranchID.String(),
		UserID:       p.UserID.String(),
		Status:       p.Status,
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
		AggregateType: "penalty",
		AggregateID:   p.ID.String(),
		EventType:     event.EventType,
		Topic:         events.AdjustmentStatusChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("penalty status outbox persist failed",
			zap.String("penalty_id", p.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// CreateFromTemplate membuat penalty dari penalty config aktif; nominal
// dan tipe diambil dari config, bukan dari request.
func (s *service) CreateFromTemplate(ctx context.Context, branchID, actorID string, req ApplyTemplateRequest) (PenaltyResponse, error) {
	branchUUID, err := uuid.Parse(branchID)
	if err != nil {
		return PenaltyResponse{}, penaltyerrors.ErrInvalidBranchID
	}
	createdBy, err := uuid.Parse(actorID)
	if err != nil {
		return PenaltyResponse{}, penaltyerrors.ErrInvalidActorID
	}
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return PenaltyResponse{}, penaltyerrors.ErrInvalidUserID
	}
	if err := parsePeriod(req.Period); err != nil {
		return PenaltyResponse{}, err
	}

	tpl, err := s.templates.GetForBranch(ctx, branchID, req.TemplateID)
	if err != nil {
		return PenaltyResponse{}, err
	}
	if tpl.Kind != template.KindPenalty {
		return PenaltyResponse{}, templateerrors.ErrTemplateNotFound
	}

	p := &Penalty{
		ID:          uuid.New(),
		BranchID:    branchUUID,
		UserID:      userUUID,
		PenaltyType: tpl.TypeCode,
		Amount:      tpl.Amount,
		Period:      req.Period,
		Description: tpl.Name,
		Status:      StatusPending,
		CreatedBy:   createdBy,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Warn("create penalty from template failed",
			zap.String("template_id", req.TemplateID),
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return PenaltyResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("create penalty from template success",
		zap.String("penalty_id", p.ID.String()),
		zap.String("template_id", req.TemplateID),
		zap.String("user_id", req.UserID),
	)

	return mapToResponse(*p), nil
}

func mapToResponse(p Penalty) PenaltyResponse {
	resp := PenaltyResponse{
		ID:          p.ID.String(),
		BranchID:    p.BranchID.String(),
		UserID:      p.UserID.String(),
		PenaltyType: p.PenaltyType,
		Amount:      p.Amount,
		Period:      p.Period,
		Description: p.Description,
		Status:      p.Status,
		CreatedBy:   p.CreatedBy.String(),
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.ShiftID != nil {
		v := p.ShiftID.String()
		resp.ShiftID = &v
	}
	if p.IncidentDate != nil {
		v := p.IncidentDate.Format("2006-01-02")
		resp.IncidentDate = &v
	}
	if p.ApprovedBy != nil {
		v := p.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	resp.RejectionNotes = p.RejectionNotes
	return resp
}

func mapToListResponse(penalties []Penalty) []PenaltyResponse {
	resp := make([]PenaltyResponse, len(penalties))
	for i, p := range penalties {
		resp[i] = mapToResponse(p)
	}
	return resp
}
