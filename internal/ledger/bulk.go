package ledger

import (
	"context"
	"sync"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/allowance"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/bonus"
	ledgererrors "github.com/trungnguyen160923/coffee-management-sub002/internal/ledger/errors"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/penalty"

	"go.uber.org/zap"
)

const (
	BulkActionApprove = "approve"
	BulkActionReject  = "reject"
	BulkActionDelete  = "delete"
)

// BulkResult merangkum satu operasi bulk. ClearSelection memberi tahu
// pemanggil apakah selection boleh dibuang: hanya bila semua item yang
// eligible sukses.
type BulkResult struct {
	Action         string `json:"action"`
	Requested      int    `json:"requested"`
	Eligible       int    `json:"eligible"`
	Succeeded      int    `json:"succeeded"`
	Failed         int    `json:"failed"`
	ErrorMessage   string `json:"error_message,omitempty"`
	ClearSelection bool   `json:"clear_selection"`
}

// Coordinator mengeksekusi aksi bulk atas satu selection set.
// Approve/reject berjalan konkuren antar item; delete berjalan
// berurutan dan gagal total pada error pertama.
type Coordinator struct {
	store      *Store
	workflow   *Workflow
	bonuses    bonus.Service
	penalties  penalty.Service
	allowances allowance.Service
	logger     *zap.Logger
}

func NewCoordinator(
	store *Store,
	workflow *Workflow,
	bonuses bonus.Service,
	penalties penalty.Service,
	allowances allowance.Service,
	logger ...*zap.Logger,
) *Coordinator {
	l := zap.L().Named("ledger.bulk")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.bulk")
	}
	return &Coordinator{
		store:      store,
		workflow:   workflow,
		bonuses:    bonuses,
		penalties:  penalties,
		allowances: allowances,
		logger:     l,
	}
}

func (c *Coordinator) Execute(ctx context.Context, branchID, actorID, action string, ids []string, notes string) (BulkResult, error) {
	if len(ids) == 0 {
		return BulkResult{}, ledgererrors.ErrEmptySelection
	}

	switch action {
	case BulkActionApprove, BulkActionReject:
		return c.transitionAll(ctx, branchID, actorID, action, ids, notes)
	case BulkActionDelete:
		return c.deleteAll(ctx, branchID, ids)
	default:
		return BulkResult{}, ledgererrors.ErrInvalidBulkAction
	}
}

// eligibleForTransition menyaring selection menjadi transaksi PENDING
// berjenis bonus/penalty. Item lain dibuang diam-diam, bukan error.
func eligibleForTransition(snap *Snapshot, ids []string) []Transaction {
	byID := make(map[string]Transaction)
	for _, tx := range snap.Unified() {
		byID[tx.ID] = tx
	}

	eligible := make([]Transaction, 0, len(ids))
	for _, id := range ids {
		tx, ok := byID[id]
		if !ok {
			continue
		}
		if tx.Status != StatusPending {
			continue
		}
		if tx.Kind != KindBonus && tx.Kind != KindPenalty {
			continue
		}
		eligible = append(eligible, tx)
	}
	return eligible
}

func (c *Coordinator) transitionAll(ctx context.Context, branchID, actorID, action string, ids []string, notes string) (BulkResult, error) {
	snap, err := c.store.Load(ctx, branchID)
	if err != nil {
		return BulkResult{}, err
	}

	eligible := eligibleForTransition(snap, ids)
	if len(eligible) == 0 {
		return BulkResult{}, ledgererrors.ErrNothingEligible
	}

	c.logger.Info("bulk transition dispatch",
		zap.String("branch_id", branchID),
		zap.String("action", action),
		zap.Int("requested", len(ids)),
		zap.Int("eligible", len(eligible)),
	)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		firstErr  error
		failed    []string
	)
	for _, tx := range eligible {
		wg.Add(1)
		go func(tx Transaction) {
			defer wg.Done()

			var err error
			if action == BulkActionApprove {
				_, err = c.workflow.Approve(ctx, branchID, actorID, tx.ID)
			} else {
				// Satu notes yang sama dipakai untuk seluruh batch.
				_, err = c.workflow.Reject(ctx, branchID, actorID, tx.ID, notes)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				failed = append(failed, tx.ID)
				return
			}
			succeeded++
		}(tx)
	}
	wg.Wait()

	for _, id := range failed {
		c.logger.Warn("bulk transition item failed",
			zap.String("transaction_id", id),
			zap.String("action", action),
		)
	}

	result := BulkResult{
		Action:         action,
		Requested:      len(ids),
		Eligible:       len(eligible),
		Succeeded:      succeeded,
		Failed:         len(failed),
		ClearSelection: len(failed) == 0,
	}
	if firstErr != nil {
		result.ErrorMessage = firstErr.Error()
	}

	if succeeded > 0 {
		if _, err := c.store.Reload(ctx, branchID); err != nil {
			c.logger.Error("reload after bulk transition failed",
				zap.String("branch_id", branchID),
				zap.Error(err),
			)
		}
	}
	return result, nil
}

// deleteAll menghapus setiap item terpilih tanpa filter kelayakan.
// Error pertama menggagalkan keseluruhan operasi; delete yang sudah
// jalan tidak di-rollback, store selalu di-reload agar mencerminkan
// keadaan server yang sebenarnya.
func (c *Coordinator) deleteAll(ctx context.Context, branchID string, ids []string) (BulkResult, error) {
	result := BulkResult{Action: BulkActionDelete, Requested: len(ids), Eligible: len(ids)}

	var firstErr error
	for _, id := range ids {
		kind, recordID, err := ParseCompositeID(id)
		if err != nil {
			firstErr = err
			break
		}

		switch kind {
		case KindBonus:
			err = c.bonuses.Delete(ctx, branchID, recordID)
		case KindPenalty:
			err = c.penalties.Delete(ctx, branchID, recordID)
		case KindAllowance:
			err = c.allowances.Delete(ctx, branchID, recordID)
		}
		if err != nil {
			c.logger.Warn("bulk delete item failed",
				zap.String("transaction_id", id),
				zap.Error(err),
			)
			firstErr = err
			break
		}
		result.Succeeded++
	}

	if _, err := c.store.Reload(ctx, branchID); err != nil {
		c.logger.Error("reload after bulk delete failed",
			zap.String("branch_id", branchID),
			zap.Error(err),
		)
	}

	if firstErr != nil {
		result.Failed = result.Requested - result.Succeeded
		result.ErrorMessage = firstErr.Error()
		return result, firstErr
	}

	result.ClearSelection = true
	return result, nil
}
