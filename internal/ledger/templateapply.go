package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/allowance"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/bonus"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/events"
	ledgererrors "github.com/trungnguyen160923/coffee-management-sub002/internal/ledger/errors"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/messaging/kafka"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/penalty"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/shared/contextutil"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/template"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserFailure struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type TemplateApplyResult struct {
	TemplateID     string        `json:"template_id"`
	Kind           string        `json:"kind"`
	Period         string        `json:"period"`
	Requested      int           `json:"requested"`
	Succeeded      int           `json:"succeeded"`
	Failed         int           `json:"failed"`
	FailureSummary string        `json:"failure_summary,omitempty"`
	Failures       []UserFailure `json:"failures,omitempty"`
	ClearSelection bool          `json:"clear_selection"`
}

// TemplateApplier menerapkan satu template ke banyak staff untuk
// periode berjalan. Pemrosesan sengaja berurutan satu per satu supaya
// atribusi error per user tetap sederhana; satu kegagalan tidak pernah
// membatalkan sisa batch.
type TemplateApplier struct {
	store      *Store
	templates  template.Service
	bonuses    bonus.Service
	penalties  penalty.Service
	allowances allowance.Service
	outbox     kafka.OutboxRepository
	logger     *zap.Logger
}

func NewTemplateApplier(
	store *Store,
	templates template.Service,
	bonuses bonus.Service,
	penalties penalty.Service,
	allowances allowance.Service,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) *TemplateApplier {
	l := zap.L().Named("ledger.templateapply")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.templateapply")
	}
	return &TemplateApplier{
		store:      store,
		templates:  templates,
		bonuses:    bonuses,
		penalties:  penalties,
		allowances: allowances,
		outbox:     outbox,
		logger:     l,
	}
}

// CurrentPeriod mengembalikan periode kalender berjalan.
func CurrentPeriod(now time.Time) string {
	return now.Format("2006-01")
}

func (a *TemplateApplier) Apply(ctx context.Context, branchID, actorID, templateID string, userIDs []string) (TemplateApplyResult, error) {
	if len(userIDs) == 0 {
		return TemplateApplyResult{}, ledgererrors.ErrEmptySelection
	}

	tpl, err := a.templates.GetForBranch(ctx, branchID, templateID)
	if err != nil {
		return TemplateApplyResult{}, err
	}

	period := CurrentPeriod(time.Now().UTC())
	result := TemplateApplyResult{
		TemplateID: templateID,
		Kind:       tpl.Kind,
		Period:     period,
		Requested:  len(userIDs),
	}

	a.logger.Info("template apply start",
		zap.String("branch_id", branchID),
		zap.String("template_id", templateID),
		zap.String("kind", tpl.Kind),
		zap.Int("staff_count", len(userIDs)),
	)

	for _, userID := range userIDs {
		err := a.applyOne(ctx, branchID, actorID, tpl.Kind, userID, period, templateID)
		if err != nil {
			result.Failures = append(result.Failures, UserFailure{UserID: userID, Message: err.Error()})
			a.logger.Warn("template apply user failed",
				zap.String("template_id", templateID),
				zap.String("user_id", userID),
				zap.Error(err),
			)
			continue
		}
		result.Succeeded++
	}
	result.Failed = len(result.Failures)
	result.FailureSummary = summarizeFailures(result.Failures)

	if result.Succeeded > 0 {
		if _, err := a.store.Reload(ctx, branchID); err != nil {
			a.logger.Error("reload after template apply failed",
				zap.String("branch_id", branchID),
				zap.Error(err),
			)
		}
		result.ClearSelection = true
		a.writeAppliedEvent(ctx, branchID, actorID, tpl.Kind, templateID, period, result)
	}

	a.logger.Info("template apply done",
		zap.String("template_id", templateID),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (a *TemplateApplier) applyOne(ctx context.Context, branchID, actorID, kind, userID, period, templateID string) error {
	switch kind {
	case template.KindBonus:
		_, err := a.bonuses.CreateFromTemplate(ctx, branchID, actorID, bonus.ApplyTemplateRequest{
			UserID: userID, Period: period, TemplateID: templateID,
		})
		return err
	case template.KindPenalty:
		_, err := a.penalties.CreateFromTemplate(ctx, branchID, actorID, penalty.ApplyTemplateRequest{
			UserID: userID, Period: period, TemplateID: templateID,
		})
		return err
	case template.KindAllowance:
		_, err := a.allowances.CreateFromTemplate(ctx, branchID, actorID, allowance.ApplyTemplateRequest{
			UserID: userID, Period: period, TemplateID: templateID,
		})
		return err
	default:
		return ledgererrors.ErrUnknownKind
	}
}

// summarizeFailures merangkum pesan kegagalan: bila seragam, satu pesan
// dengan jumlah; bila beragam, pesan terbanyak plus jumlah pesan
// berbeda sisanya. Detail per user tetap tersedia di Failures dan log.
func summarizeFailures(failures []UserFailure) string {
	if len(failures) == 0 {
		return ""
	}

	counts := make(map[string]int)
	for _, f := range failures {
		counts[f.Message]++
	}

	top := failures[0].Message
	for msg, n := range counts {
		if n > counts[top] {
			top = msg
		}
	}

	if len(counts) == 1 {
		if len(failures) == 1 {
			return top
		}
		return fmt.Sprintf("%s (x%d)", top, len(failures))
	}
	return fmt.Sprintf("%s (+%d other distinct errors)", top, len(counts)-1)
}

func (a *TemplateApplier) writeAppliedEvent(ctx context.Context, branchID, actorID, kind, templateID, period string, result TemplateApplyResult) {
	if a.outbox == nil {
		return
	}

	event := events.TemplateAppliedEvent{
		EventType:    "adjustment.template.applied",
		TemplateID:   templateID,
		Kind:         kind,
		BranchID:     branchID,
		Period:       period,
		SuccessCount: result.Succeeded,
		FailureCount: result.Failed,
		AppliedBy:    actorID,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		a.logger.Error("marshal template event failed", zap.Error(err))
		return
	}

	if err := a.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "template",
		AggregateID:   templateID,
		EventType:     event.EventType,
		Topic:         events.TemplateAppliedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		a.logger.Error("template event outbox persist failed",
			zap.String("template_id", templateID),
			zap.Error(err),
		)
	}
}
