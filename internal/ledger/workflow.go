package ledger

import (
	"context"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/bonus"
	ledgererrors "github.com/trungnguyen160923/coffee-management-sub002/internal/ledger/errors"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/penalty"

	"go.uber.org/zap"
)

// Workflow mengeksekusi approve/reject satu transaksi lewat service
// kind-nya. Store tidak pernah dimutasi spekulatif: hanya record
// balasan server yang menggantikan record lama, dan hanya pada sukses.
type Workflow struct {
	store     *Store
	bonuses   bonus.Service
	penalties penalty.Service
	logger    *zap.Logger
}

func NewWorkflow(store *Store, bonuses bonus.Service, penalties penalty.Service, logger ...*zap.Logger) *Workflow {
	l := zap.L().Named("ledger.workflow")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.workflow")
	}
	return &Workflow{store: store, bonuses: bonuses, penalties: penalties, logger: l}
}

func (w *Workflow) Approve(ctx context.Context, branchID, actorID, compositeID string) (Transaction, error) {
	return w.transition(ctx, branchID, actorID, compositeID, StatusApproved, "")
}

func (w *Workflow) Reject(ctx context.Context, branchID, actorID, compositeID, notes string) (Transaction, error) {
	return w.transition(ctx, branchID, actorID, compositeID, StatusRejected, notes)
}

func (w *Workflow) transition(ctx context.Context, branchID, actorID, compositeID, target, notes string) (Transaction, error) {
	kind, recordID, err := ParseCompositeID(compositeID)
	if err != nil {
		return Transaction{}, err
	}

	snap, err := w.store.Load(ctx, branchID)
	if err != nil {
		return Transaction{}, err
	}

	switch kind {
	case KindBonus:
		var updated bonus.BonusResponse
		if target == StatusApproved {
			updated, err = w.bonuses.Approve(ctx, branchID, actorID, recordID)
		} else {
			updated, err = w.bonuses.Reject(ctx, branchID, actorID, recordID, notes)
		}
		if err != nil {
			w.logger.Warn("bonus transition failed",
				zap.String("transaction_id", compositeID),
				zap.String("target_status", target),
				zap.Error(err),
			)
			return Transaction{}, err
		}
		w.store.ReplaceBonus(branchID, updated)
		return Unify([]bonus.BonusResponse{updated}, nil, nil, snap.StaffNames, snap.ShiftLabels)[0], nil

	case KindPenalty:
		var updated penalty.PenaltyResponse
		if target == StatusApproved {
			updated, err = w.penalties.Approve(ctx, branchID, actorID, recordID)
		} else {
			updated, err = w.penalties.Reject(ctx, branchID, actorID, recordID, notes)
		}
		if err != nil {
			w.logger.Warn("penalty transition failed",
				zap.String("transaction_id", compositeID),
				zap.String("target_status", target),
				zap.Error(err),
			)
			return Transaction{}, err
		}
		w.store.ReplacePenalty(branchID, updated)
		return Unify(nil, []penalty.PenaltyResponse{updated}, nil, snap.StaffNames, snap.ShiftLabels)[0], nil

	default:
		// Allowance tidak punya alur approval.
		return Transaction{}, ledgererrors.ErrUnsupportedOperation
	}
}
