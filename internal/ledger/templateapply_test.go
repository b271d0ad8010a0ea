package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/allowance"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/bonus"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/ledger"
	ledgererrors "github.com/trungnguyen160923/coffee-management-sub002/internal/ledger/errors"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/template"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type applierDeps struct {
	bonuses    *fakeBonusService
	penalties  *fakePenaltyService
	allowances *fakeAllowanceService
	templates  *fakeTemplateService
	store      *ledger.Store
	applier    *ledger.TemplateApplier
}

func setupApplierTest(t *testing.T) *applierDeps {
	t.Helper()

	bonuses := &fakeBonusService{}
	penalties := &fakePenaltyService{}
	allowances := &fakeAllowanceService{}
	templates := &fakeTemplateService{}
	staffSvc := &fakeStaffService{}
	shifts := &fakeShiftService{}

	store := ledger.NewStore(bonuses, penalties, allowances, staffSvc, shifts)
	applier := ledger.NewTemplateApplier(store, templates, bonuses, penalties, allowances, nil)

	return &applierDeps{
		bonuses:    bonuses,
		penalties:  penalties,
		allowances: allowances,
		templates:  templates,
		store:      store,
		applier:    applier,
	}
}

func bonusTemplate(id string) template.TemplateResponse {
	return template.TemplateResponse{
		ID:       id,
		Kind:     template.KindBonus,
		Name:     "Bonus Kehadiran",
		TypeCode: "ATTENDANCE",
		Amount:   decimal.NewFromInt(250_000),
		IsActive: true,
		Scope:    "GLOBAL",
	}
}

func TestTemplateApplier_Apply(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.NewString()
	actorID := uuid.NewString()
	templateID := uuid.NewString()
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("sequential with per-user error capture", func(t *testing.T) {
		deps := setupApplierTest(t)

		user1 := uuid.NewString()
		user2 := uuid.NewString()
		user3 := uuid.NewString()

		deps.templates.getForBranchFn = func(ctx context.Context, bid, id string) (template.TemplateResponse, error) {
			assert.Equal(t, templateID, id)
			return bonusTemplate(id), nil
		}

		var order []string
		deps.bonuses.createFromTemplateFn = func(ctx context.Context, bid, aid string, req bonus.ApplyTemplateRequest) (bonus.BonusResponse, error) {
			order = append(order, req.UserID)
			assert.Equal(t, ledger.CurrentPeriod(time.Now().UTC()), req.Period)
			if req.UserID == user2 {
				return bonus.BonusResponse{}, errors.New("template already applied for this user and period")
			}
			return makeBonus(uuid.NewString(), req.UserID, req.Period, "PENDING", 250_000, now), nil
		}

		reloaded := false
		deps.bonuses.getAllFn = func(ctx context.Context, bid string) ([]bonus.BonusResponse, error) {
			reloaded = true
			return nil, nil
		}

		result, err := deps.applier.Apply(ctx, branchID, actorID, templateID, []string{user1, user2, user3})

		assert.NoError(t, err)
		// Urutan pemrosesan persis sama dengan urutan seleksi
		assert.Equal(t, []string{user1, user2, user3}, order)
		assert.Equal(t, 3, result.Requested)
		assert.Equal(t, 2, result.Succeeded)
		assert.Equal(t, 1, result.Failed)
		assert.Len(t, result.Failures, 1)
		assert.Equal(t, user2, result.Failures[0].UserID)
		assert.Contains(t, result.Failures[0].Message, "already applied")
		assert.True(t, result.ClearSelection)
		assert.True(t, reloaded)
	})

	t.Run("negative empty selection refused before any call", func(t *testing.T) {
		deps := setupApplierTest(t)

		deps.templates.getForBranchFn = func(ctx context.Context, bid, id string) (template.TemplateResponse, error) {
			t.Fatal("template lookup should not happen")
			return template.TemplateResponse{}, nil
		}

		_, err := deps.applier.Apply(ctx, branchID, actorID, templateID, nil)

		assert.ErrorIs(t, err, ledgererrors.ErrEmptySelection)
	})

	t.Run("uniform failures reported once with count", func(t *testing.T) {
		deps := setupApplierTest(t)

		deps.templates.getForBranchFn = func(ctx context.Context, bid, id string) (template.TemplateResponse, error) {
			return bonusTemplate(id), nil
		}
		deps.bonuses.createFromTemplateFn = func(ctx context.Context, bid, aid string, req bonus.ApplyTemplateRequest) (bonus.BonusResponse, error) {
			return bonus.BonusResponse{}, errors.New("branch closed for period")
		}

		result, err := deps.applier.Apply(ctx, branchID, actorID, templateID, []string{
			uuid.NewString(), uuid.NewString(), uuid.NewString(),
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Succeeded)
		assert.Equal(t, 3, result.Failed)
		assert.Equal(t, "branch closed for period (x3)", result.FailureSummary)
		assert.False(t, result.ClearSelection)
	})

	t.Run("mixed failures report most common plus distinct count", func(t *testing.T) {
		deps := setupApplierTest(t)

		deps.templates.getForBranchFn = func(ctx context.Context, bid, id string) (template.TemplateResponse, error) {
			return bonusTemplate(id), nil
		}
		calls := 0
		deps.bonuses.createFromTemplateFn = func(ctx context.Context, bid, aid string, req bonus.ApplyTemplateRequest) (bonus.BonusResponse, error) {
			calls++
			if calls == 2 {
				return bonus.BonusResponse{}, errors.New("staff inactive")
			}
			return bonus.BonusResponse{}, errors.New("duplicate entry")
		}

		result, err := deps.applier.Apply(ctx, branchID, actorID, templateID, []string{
			uuid.NewString(), uuid.NewString(), uuid.NewString(),
		})

		assert.NoError(t, err)
		assert.Equal(t, "duplicate entry (+1 other distinct errors)", result.FailureSummary)
	})

	t.Run("allowance template dispatches to allowance service", func(t *testing.T) {
		deps := setupApplierTest(t)

		deps.templates.getForBranchFn = func(ctx context.Context, bid, id string) (template.TemplateResponse, error) {
			tpl := bonusTemplate(id)
			tpl.Kind = template.KindAllowance
			return tpl, nil
		}

		called := false
		deps.allowances.createFromTemplateFn = func(ctx context.Context, bid, aid string, req allowance.ApplyTemplateRequest) (allowance.AllowanceResponse, error) {
			called = true
			return makeAllowance(uuid.NewString(), req.UserID, req.Period, "ACTIVE", 100, now), nil
		}
		deps.bonuses.createFromTemplateFn = func(ctx context.Context, bid, aid string, req bonus.ApplyTemplateRequest) (bonus.BonusResponse, error) {
			t.Fatal("bonus service should not be used for allowance template")
			return bonus.BonusResponse{}, nil
		}

		result, err := deps.applier.Apply(ctx, branchID, actorID, templateID, []string{uuid.NewString()})

		assert.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, 1, result.Succeeded)
		assert.Equal(t, template.KindAllowance, result.Kind)
	})
}
