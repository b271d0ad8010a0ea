package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/bonus"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/ledger"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/penalty"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/shift"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/staff"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type storeDeps struct {
	bonuses    *fakeBonusService
	penalties  *fakePenaltyService
	allowances *fakeAllowanceService
	staff      *fakeStaffService
	shifts     *fakeShiftService
	store      *ledger.Store
}

func setupStoreTest(t *testing.T) *storeDeps {
	t.Helper()

	bonuses := &fakeBonusService{}
	penalties := &fakePenaltyService{}
	allowances := &fakeAllowanceService{}
	staffSvc := &fakeStaffService{}
	shifts := &fakeShiftService{}

	return &storeDeps{
		bonuses:    bonuses,
		penalties:  penalties,
		allowances: allowances,
		staff:      staffSvc,
		shifts:     shifts,
		store:      ledger.NewStore(bonuses, penalties, allowances, staffSvc, shifts),
	}
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.NewString()
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.NewString()

	t.Run("second load served from cache", func(t *testing.T) {
		deps := setupStoreTest(t)

		calls := 0
		deps.bonuses.getAllFn = func(ctx context.Context, bid string) ([]bonus.BonusResponse, error) {
			calls++
			return []bonus.BonusResponse{makeBonus(uuid.NewString(), userID, "2024-05", "PENDING", 500, now)}, nil
		}
		deps.staff.listByBranchFn = func(ctx context.Context, bid string) ([]staff.StaffResponse, error) {
			return []staff.StaffResponse{{ID: userID, FullName: "Dewi Lestari"}}, nil
		}

		first, err := deps.store.Load(ctx, branchID)
		assert.NoError(t, err)
		second, err := deps.store.Load(ctx, branchID)
		assert.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.Same(t, first, second)
		assert.Equal(t, "Dewi Lestari", first.Unified()[0].StaffName)
	})

	t.Run("reload replaces session", func(t *testing.T) {
		deps := setupStoreTest(t)

		calls := 0
		deps.bonuses.getAllFn = func(ctx context.Context, bid string) ([]bonus.BonusResponse, error) {
			calls++
			return nil, nil
		}

		_, err := deps.store.Load(ctx, branchID)
		assert.NoError(t, err)
		_, err = deps.store.Reload(ctx, branchID)
		assert.NoError(t, err)

		assert.Equal(t, 2, calls)
	})

	t.Run("clear forces fresh load", func(t *testing.T) {
		deps := setupStoreTest(t)

		calls := 0
		deps.bonuses.getAllFn = func(ctx context.Context, bid string) ([]bonus.BonusResponse, error) {
			calls++
			return nil, nil
		}

		_, _ = deps.store.Load(ctx, branchID)
		deps.store.Clear(branchID)
		_, _ = deps.store.Load(ctx, branchID)

		assert.Equal(t, 2, calls)
	})

	t.Run("negative collection error propagates", func(t *testing.T) {
		deps := setupStoreTest(t)

		deps.penalties.getAllFn = func(ctx context.Context, bid string) ([]penalty.PenaltyResponse, error) {
			return nil, errors.New("penalty service down")
		}

		_, err := deps.store.Load(ctx, branchID)
		assert.Error(t, err)
	})

	t.Run("shift lookup failure is tolerated", func(t *testing.T) {
		deps := setupStoreTest(t)

		shiftID := uuid.NewString()
		withShift := makeBonus(uuid.NewString(), userID, "2024-05", "PENDING", 500, now)
		withShift.ShiftID = &shiftID
		deps.bonuses.getAllFn = func(ctx context.Context, bid string) ([]bonus.BonusResponse, error) {
			return []bonus.BonusResponse{withShift}, nil
		}
		deps.shifts.getByIDFn = func(ctx context.Context, id string) (shift.ShiftResponse, error) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}

		snap, err := deps.store.Load(ctx, branchID)

		assert.NoError(t, err)
		assert.Empty(t, snap.Unified()[0].ShiftLabel)
	})

	t.Run("shift labels cached across reloads", func(t *testing.T) {
		deps := setupStoreTest(t)

		shiftID := uuid.NewString()
		withShift := makeBonus(uuid.NewString(), userID, "2024-05", "PENDING", 500, now)
		withShift.ShiftID = &shiftID
		deps.bonuses.getAllFn = func(ctx context.Context, bid string) ([]bonus.BonusResponse, error) {
			return []bonus.BonusResponse{withShift}, nil
		}

		lookups := 0
		deps.shifts.getByIDFn = func(ctx context.Context, id string) (shift.ShiftResponse, error) {
			lookups++
			return shift.ShiftResponse{
				ID:        id,
				ShiftDate: "2024-05-12",
				StartTime: "08:00",
				EndTime:   "16:00",
			}, nil
		}

		_, _ = deps.store.Load(ctx, branchID)
		snap, err := deps.store.Reload(ctx, branchID)

		assert.NoError(t, err)
		assert.Equal(t, 1, lookups)
		assert.Equal(t, "2024-05-12 08:00-16:00", snap.Unified()[0].ShiftLabel)
	})
}

func TestStore_ReplaceBonus(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.NewString()
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.NewString()

	t.Run("only the matching record is swapped", func(t *testing.T) {
		deps := setupStoreTest(t)

		target := makeBonus(uuid.NewString(), userID, "2024-05", "PENDING", 500, now)
		other := makeBonus(uuid.NewString(), userID, "2024-05", "PENDING", 300, now)
		deps.bonuses.getAllFn = func(ctx context.Context, bid string) ([]bonus.BonusResponse, error) {
			return []bonus.BonusResponse{target, other}, nil
		}

		_, err := deps.store.Load(ctx, branchID)
		assert.NoError(t, err)

		updated := target
		updated.Status = "APPROVED"
		deps.store.ReplaceBonus(branchID, updated)

		snap, err := deps.store.Load(ctx, branchID)
		assert.NoError(t, err)
		assert.Equal(t, "APPROVED", snap.Bonuses[0].Status)
		assert.Equal(t, "PENDING", snap.Bonuses[1].Status)
	})
}
