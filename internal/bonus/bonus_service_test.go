package bonus_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/bonus"
	bonuserrors "github.com/trungnguyen160923/coffee-management-sub002/internal/bonus/errors"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/template"
	templateerrors "github.com/trungnguyen160923/coffee-management-sub002/internal/template/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeBonusRepository struct {
	withTxFn            func(tx *sql.Tx) bonus.Repository
	createFn            func(ctx context.Context, b *bonus.Bonus) error
	findAllByBranchFn   func(ctx context.Context, branchID string) ([]bonus.Bonus, error)
	findByIDAndBranchFn func(ctx context.Context, branchID, id string) (*bonus.Bonus, error)
	updateFn            func(ctx context.Context, b *bonus.Bonus) error
	deleteFn            func(ctx context.Context, branchID, id string) error
}

func (f *fakeBonusRepository) WithTx(tx *sql.Tx) bonus.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeBonusRepository) Create(ctx context.Context, b *bonus.Bonus) error {
	if f.createFn != nil {
		return f.createFn(ctx, b)
	}
	return nil
}

func (f *fakeBonusRepository) FindAllByBranch(ctx context.Context, branchID string) ([]bonus.Bonus, error) {
	if f.findAllByBranchFn != nil {
		return f.findAllByBranchFn(ctx, branchID)
	}
	return nil, nil
}

func (f *fakeBonusRepository) FindByIDAndBranch(ctx context.Context, branchID, id string) (*bonus.Bonus, error) {
	if f.findByIDAndBranchFn != nil {
		return f.findByIDAndBranchFn(ctx, branchID, id)
	}
	return nil, nil
}

func (f *fakeBonusRepository) Update(ctx context.Context, b *bonus.Bonus) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, b)
	}
	return nil
}

func (f *fakeBonusRepository) Delete(ctx context.Context, branchID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, branchID, id)
	}
	return nil
}

type fakeTemplateCatalog struct {
	getForBranchFn func(ctx context.Context, branchID, id string) (template.TemplateResponse, error)
}

func (f *fakeTemplateCatalog) GetForBranch(ctx context.Context, branchID, id string) (template.TemplateResponse, error) {
	if f.getForBranchFn != nil {
		return f.getForBranchFn(ctx, branchID, id)
	}
	return template.TemplateResponse{}, nil
}

type bonusServiceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  bonus.Service
	repo     *fakeBonusRepository
	catalog  *fakeTemplateCatalog
}

func setupBonusServiceTest(t *testing.T) *bonusServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeBonusRepository{}
	catalog := &fakeTemplateCatalog{}
	svc := bonus.NewService(db, repo, catalog)

	return &bonusServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		catalog: catalog,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestBonusService_Create(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New().String()
	actorID := uuid.New().String()
	userID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		req := bonus.CreateBonusRequest{
			UserID:      userID,
			BonusType:   "PERFORMANCE",
			Amount:      decimal.NewFromInt(500_000),
			Period:      "2024-05",
			Description: "Target bulanan tercapai",
		}

		deps.repo.createFn = func(ctx context.Context, b *bonus.Bonus) error {
			assert.Equal(t, uuid.MustParse(branchID), b.BranchID)
			assert.Equal(t, uuid.MustParse(userID), b.UserID)
			assert.Equal(t, uuid.MustParse(actorID), b.CreatedBy)
			assert.Equal(t, bonus.StatusPending, b.Status)
			assert.Nil(t, b.SourceTemplateID)
			return nil
		}

		resp, err := deps.service.Create(ctx, branchID, actorID, req)

		assert.NoError(t, err)
		assert.Equal(t, bonus.StatusPending, resp.Status)
		assert.Equal(t, "2024-05", resp.Period)
		assert.True(t, decimal.NewFromInt(500_000).Equal(resp.Amount))
	})

	t.Run("negative invalid period", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		req := bonus.CreateBonusRequest{
			UserID:    userID,
			BonusType: "PERFORMANCE",
			Amount:    decimal.NewFromInt(500),
			Period:    "05-2024",
		}

		_, err := deps.service.Create(ctx, branchID, actorID, req)

		assert.ErrorIs(t, err, bonuserrors.ErrInvalidPeriod)
	})

	t.Run("negative amount not positive", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		req := bonus.CreateBonusRequest{
			UserID:    userID,
			BonusType: "PERFORMANCE",
			Amount:    decimal.Zero,
			Period:    "2024-05",
		}

		_, err := deps.service.Create(ctx, branchID, actorID, req)

		assert.ErrorIs(t, err, bonuserrors.ErrAmountNotPositive)
	})

	t.Run("negative invalid shift id", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		shiftID := "not-a-uuid"
		req := bonus.CreateBonusRequest{
			UserID:    userID,
			BonusType: "PERFORMANCE",
			Amount:    decimal.NewFromInt(500),
			Period:    "2024-05",
			ShiftID:   &shiftID,
		}

		_, err := deps.service.Create(ctx, branchID, actorID, req)

		assert.ErrorIs(t, err, bonuserrors.ErrInvalidShiftID)
	})
}

func TestBonusService_Approve(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New().String()
	actorID := uuid.New().String()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDAndBranchFn = func(ctx context.Context, bid, targetID string) (*bonus.Bonus, error) {
			return &bonus.Bonus{
				ID:       uuid.MustParse(targetID),
				BranchID: uuid.MustParse(bid),
				UserID:   uuid.New(),
				Amount:   decimal.NewFromInt(500),
				Period:   "2024-05",
				Status:   bonus.StatusPending,
			}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, b *bonus.Bonus) error {
			assert.Equal(t, bonus.StatusApproved, b.Status)
			assert.NotNil(t, b.ApprovedBy)
			assert.Equal(t, actorID, b.ApprovedBy.String())
			assert.NotNil(t, b.ApprovedAt)
			return nil
		}

		resp, err := deps.service.Approve(ctx, branchID, actorID, id)

		assert.NoError(t, err)
		assert.Equal(t, bonus.StatusApproved, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative already approved", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDAndBranchFn = func(ctx context.Context, bid, targetID string) (*bonus.Bonus, error) {
			return &bonus.Bonus{
				ID:       uuid.MustParse(targetID),
				BranchID: uuid.MustParse(bid),
				Status:   bonus.StatusApproved,
			}, nil
		}

		_, err := deps.service.Approve(ctx, branchID, actorID, id)

		assert.ErrorIs(t, err, bonuserrors.ErrInvalidStatusTransition)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestBonusService_Reject(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New().String()
	actorID := uuid.New().String()
	id := uuid.New().String()

	t.Run("success with notes", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDAndBranchFn = func(ctx context.Context, bid, targetID string) (*bonus.Bonus, error) {
			return &bonus.Bonus{
				ID:       uuid.MustParse(targetID),
				BranchID: uuid.MustParse(bid),
				Status:   bonus.StatusPending,
			}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, b *bonus.Bonus) error {
			assert.Equal(t, bonus.StatusRejected, b.Status)
			assert.NotNil(t, b.RejectionNotes)
			assert.Equal(t, "target tidak tercapai", *b.RejectionNotes)
			return nil
		}

		resp, err := deps.service.Reject(ctx, branchID, actorID, id, "target tidak tercapai")

		assert.NoError(t, err)
		assert.Equal(t, bonus.StatusRejected, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success notes optional", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDAndBranchFn = func(ctx context.Context, bid, targetID string) (*bonus.Bonus, error) {
			return &bonus.Bonus{
				ID:       uuid.MustParse(targetID),
				BranchID: uuid.MustParse(bid),
				Status:   bonus.StatusPending,
			}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, b *bonus.Bonus) error {
			assert.Equal(t, bonus.StatusRejected, b.Status)
			assert.Nil(t, b.RejectionNotes)
			return nil
		}

		resp, err := deps.service.Reject(ctx, branchID, actorID, id, "")

		assert.NoError(t, err)
		assert.Equal(t, bonus.StatusRejected, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative already rejected", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDAndBranchFn = func(ctx context.Context, bid, targetID string) (*bonus.Bonus, error) {
			return &bonus.Bonus{
				ID:       uuid.MustParse(targetID),
				BranchID: uuid.MustParse(bid),
				Status:   bonus.StatusRejected,
			}, nil
		}

		_, err := deps.service.Reject(ctx, branchID, actorID, id, "")

		assert.ErrorIs(t, err, bonuserrors.ErrInvalidStatusTransition)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestBonusService_CreateFromTemplate(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New().String()
	actorID := uuid.New().String()
	userID := uuid.New().String()
	templateID := uuid.New().String()

	t.Run("success amount and type come from template", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		deps.catalog.getForBranchFn = func(ctx context.Context, bid, id string) (template.TemplateResponse, error) {
			assert.Equal(t, branchID, bid)
			assert.Equal(t, templateID, id)
			return template.TemplateResponse{
				ID:       templateID,
				Kind:     template.KindBonus,
				Name:     "Bonus Kehadiran",
				TypeCode: "ATTENDANCE",
				Amount:   decimal.NewFromInt(250_000),
				IsActive: true,
			}, nil
		}
		deps.repo.createFn = func(ctx context.Context, b *bonus.Bonus) error {
			assert.Equal(t, "ATTENDANCE", b.BonusType)
			assert.True(t, decimal.NewFromInt(250_000).Equal(b.Amount))
			assert.NotNil(t, b.SourceTemplateID)
			assert.Equal(t, templateID, b.SourceTemplateID.String())
			return nil
		}

		resp, err := deps.service.CreateFromTemplate(ctx, branchID, actorID, bonus.ApplyTemplateRequest{
			UserID:     userID,
			Period:     "2024-05",
			TemplateID: templateID,
		})

		assert.NoError(t, err)
		assert.Equal(t, bonus.StatusPending, resp.Status)
		assert.NotNil(t, resp.SourceTemplateID)
	})

	t.Run("negative template of wrong kind", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		deps.catalog.getForBranchFn = func(ctx context.Context, bid, id string) (template.TemplateResponse, error) {
			return template.TemplateResponse{
				ID:     id,
				Kind:   template.KindPenalty,
				Amount: decimal.NewFromInt(100),
			}, nil
		}

		_, err := deps.service.CreateFromTemplate(ctx, branchID, actorID, bonus.ApplyTemplateRequest{
			UserID:     userID,
			Period:     "2024-05",
			TemplateID: templateID,
		})

		assert.ErrorIs(t, err, templateerrors.ErrTemplateNotFound)
	})

	t.Run("negative catalog error propagates", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		deps.catalog.getForBranchFn = func(ctx context.Context, bid, id string) (template.TemplateResponse, error) {
			return template.TemplateResponse{}, errors.New("template inactive")
		}

		_, err := deps.service.CreateFromTemplate(ctx, branchID, actorID, bonus.ApplyTemplateRequest{
			UserID:     userID,
			Period:     "2024-05",
			TemplateID: templateID,
		})

		assert.Error(t, err)
	})
}

func TestBonusService_GetAll(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllByBranchFn = func(ctx context.Context, bid string) ([]bonus.Bonus, error) {
			assert.Equal(t, branchID, bid)
			return []bonus.Bonus{
				{
					ID:        uuid.New(),
					BranchID:  uuid.MustParse(branchID),
					UserID:    uuid.New(),
					BonusType: "HOLIDAY",
					Amount:    decimal.NewFromInt(100),
					Period:    "2024-05",
					Status:    bonus.StatusPending,
					CreatedBy: uuid.New(),
					CreatedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
				},
			}, nil
		}

		resp, err := deps.service.GetAll(ctx, branchID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "HOLIDAY", resp[0].BonusType)
	})

	t.Run("negative invalid branch id", func(t *testing.T) {
		deps := setupBonusServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, bonuserrors.ErrInvalidBranchID)
	})
}
