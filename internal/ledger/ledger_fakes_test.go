package ledger_test

import (
	"context"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/allowance"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/bonus"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/penalty"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/shift"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/staff"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/template"
)

type fakeBonusService struct {
	createFn             func(ctx context.Context, branchID, actorID string, req bonus.CreateBonusRequest) (bonus.BonusResponse, error)
	getAllFn             func(ctx context.Context, branchID string) ([]bonus.BonusResponse, error)
	getByIDFn            func(ctx context.Context, branchID, id string) (bonus.BonusResponse, error)
	updateFn             func(ctx context.Context, branchID, id string, req bonus.UpdateBonusRequest) (bonus.BonusResponse, error)
	deleteFn             func(ctx context.Context, branchID, id string) error
	approveFn            func(ctx context.Context, branchID, actorID, id string) (bonus.BonusResponse, error)
	rejectFn             func(ctx context.Context, branchID, actorID, id, notes string) (bonus.BonusResponse, error)
	createFromTemplateFn func(ctx context.Context, branchID, actorID string, req bonus.ApplyTemplateRequest) (bonus.BonusResponse, error)
}

func (f *fakeBonusService) Create(ctx context.Context, branchID, actorID string, req bonus.CreateBonusRequest) (bonus.BonusResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, branchID, actorID, req)
	}
	return bonus.BonusResponse{}, nil
}

func (f *fakeBonusService) GetAll(ctx context.Context, branchID string) ([]bonus.BonusResponse, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, branchID)
	}
	return nil, nil
}

func (f *fakeBonusService) GetByID(ctx context.Context, branchID, id string) (bonus.BonusResponse, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, branchID, id)
	}
	return bonus.BonusResponse{}, nil
}

func (f *fakeBonusService) Update(ctx context.Context, branchID, id string, req bonus.UpdateBonusRequest) (bonus.BonusResponse, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, branchID, id, req)
	}
	return bonus.BonusResponse{}, nil
}

func (f *fakeBonusService) Delete(ctx context.Context, branchID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, branchID, id)
	}
	return nil
}

func (f *fakeBonusService) Approve(ctx context.Context, branchID, actorID, id string) (bonus.BonusResponse, error) {
	if f.approveFn != nil {
		return f.approveFn(ctx, branchID, actorID, id)
	}
	return bonus.BonusResponse{}, nil
}

func (f *fakeBonusService) Reject(ctx context.Context, branchID, actorID, id, notes string) (bonus.BonusResponse, error) {
	if f.rejectFn != nil {
		return f.rejectFn(ctx, branchID, actorID, id, notes)
	}
	return bonus.BonusResponse{}, nil
}

func (f *fakeBonusService) CreateFromTemplate(ctx context.Context, branchID, actorID string, req bonus.ApplyTemplateRequest) (bonus.BonusResponse, error) {
	if f.createFromTemplateFn != nil {
		return f.createFromTemplateFn(ctx, branchID, actorID, req)
	}
	return bonus.BonusResponse{}, nil
}

type fakePenaltyService struct {
	createFn             func(ctx context.Context, branchID, actorID string, req penalty.CreatePenaltyRequest) (penalty.PenaltyResponse, error)
	getAllFn             func(ctx context.Context, branchID string) ([]penalty.PenaltyResponse, error)
	getByIDFn            func(ctx context.Context, branchID, id string) (penalty.PenaltyResponse, error)
	updateFn             func(ctx context.Context, branchID, id string, req penalty.UpdatePenaltyRequest) (penalty.PenaltyResponse, error)
	deleteFn             func(ctx context.Context, branchID, id string) error
	approveFn            func(ctx context.Context, branchID, actorID, id string) (penalty.PenaltyResponse, error)
	rejectFn             func(ctx context.Context, branchID, actorID, id, notes string) (penalty.PenaltyResponse, error)
	createFromTemplateFn func(ctx context.Context, branchID, actorID string, req penalty.ApplyTemplateRequest) (penalty.PenaltyResponse, error)
}

func (f *fakePenaltyService) Create(ctx context.Context, branchID, actorID string, req penalty.CreatePenaltyRequest) (penalty.PenaltyResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, branchID, actorID, req)
	}
	return penalty.PenaltyResponse{}, nil
}

func (f *fakePenaltyService) GetAll(ctx context.Context, branchID string) ([]penalty.PenaltyResponse, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, branchID)
	}
	return nil, nil
}

func (f *fakePenaltyService) GetByID(ctx context.Context, branchID, id string) (penalty.PenaltyResponse, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, branchID, id)
	}
	return penalty.PenaltyResponse{}, nil
}

func (f *fakePenaltyService) Update(ctx context.Context, branchID, id string, req penalty.UpdatePenaltyRequest) (penalty.PenaltyResponse, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, branchID, id, req)
	}
	return penalty.PenaltyResponse{}, nil
}

func (f *fakePenaltyService) Delete(ctx context.Context, branchID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, branchID, id)
	}
	return nil
}

func (f *fakePenaltyService) Approve(ctx context.Context, branchID, actorID, id string) (penalty.PenaltyResponse, error) {
	if f.approveFn != nil {
		return f.approveFn(ctx, branchID, actorID, id)
	}
	return penalty.PenaltyResponse{}, nil
}

func (f *fakePenaltyService) Reject(ctx context.Context, branchID, actorID, id, notes string) (penalty.PenaltyResponse, error) {
	if f.rejectFn != nil {
		return f.rejectFn(ctx, branchID, actorID, id, notes)
	}
	return penalty.PenaltyResponse{}, nil
}

func (f *fakePenaltyService) CreateFromTemplate(ctx context.Context, branchID, actorID string, req penalty.ApplyTemplateRequest) (penalty.PenaltyResponse, error) {
	if f.createFromTemplateFn != nil {
		return f.createFromTemplateFn(ctx, branchID, actorID, req)
	}
	return penalty.PenaltyResponse{}, nil
}

type fakeAllowanceService struct {
	createFn             func(ctx context.Context, branchID, actorID string, req allowance.CreateAllowanceRequest) (allowance.AllowanceResponse, error)
	getAllFn             func(ctx context.Context, branchID string) ([]allowance.AllowanceResponse, error)
	getByIDFn            func(ctx context.Context, branchID, id string) (allowance.AllowanceResponse, error)
	updateFn             func(ctx context.Context, branchID, id string, req allowance.UpdateAllowanceRequest) (allowance.AllowanceResponse, error)
	deleteFn             func(ctx context.Context, branchID, id string) error
	deactivateFn         func(ctx context.Context, branchID, id string) (allowance.AllowanceResponse, error)
	activateFn           func(ctx context.Context, branchID, id string) (allowance.AllowanceResponse, error)
	createFromTemplateFn func(ctx context.Context, branchID, actorID string, req allowance.ApplyTemplateRequest) (allowance.AllowanceResponse, error)
}

func (f *fakeAllowanceService) Create(ctx context.Context, branchID, actorID string, req allowance.CreateAllowanceRequest) (allowance.AllowanceResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, branchID, actorID, req)
	}
	return allowance.AllowanceResponse{}, nil
}

func (f *fakeAllowanceService) GetAll(ctx context.Context, branchID string) ([]allowance.AllowanceResponse, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, branchID)
	}
	return nil, nil
}

func (f *fakeAllowanceService) GetByID(ctx context.Context, branchID, id string) (allowance.AllowanceResponse, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, branchID, id)
	}
	return allowance.AllowanceResponse{}, nil
}

func (f *fakeAllowanceService) Update(ctx context.Context, branchID, id string, req allowance.UpdateAllowanceRequest) (allowance.AllowanceResponse, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, branchID, id, req)
	}
	return allowance.AllowanceResponse{}, nil
}

func (f *fakeAllowanceService) Delete(ctx context.Context, branchID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, branchID, id)
	}
	return nil
}

func (f *fakeAllowanceService) Deactivate(ctx context.Context, branchID, id string) (allowance.AllowanceResponse, error) {
	if f.deactivateFn != nil {
		return f.deactivateFn(ctx, branchID, id)
	}
	return allowance.AllowanceResponse{}, nil
}

func (f *fakeAllowanceService) Activate(ctx context.Context, branchID, id string) (allowance.AllowanceResponse, error) {
	if f.activateFn != nil {
		return f.activateFn(ctx, branchID, id)
	}
	return allowance.AllowanceResponse{}, nil
}

func (f *fakeAllowanceService) CreateFromTemplate(ctx context.Context, branchID, actorID string, req allowance.ApplyTemplateRequest) (allowance.AllowanceResponse, error) {
	if f.createFromTemplateFn != nil {
		return f.createFromTemplateFn(ctx, branchID, actorID, req)
	}
	return allowance.AllowanceResponse{}, nil
}

type fakeStaffService struct {
	listByBranchFn func(ctx context.Context, branchID string) ([]staff.StaffResponse, error)
	getByIDFn      func(ctx context.Context, branchID, id string) (staff.StaffResponse, error)
}

func (f *fakeStaffService) ListByBranch(ctx context.Context, branchID string) ([]staff.StaffResponse, error) {
	if f.listByBranchFn != nil {
		return f.listByBranchFn(ctx, branchID)
	}
	return nil, nil
}

func (f *fakeStaffService) GetByID(ctx context.Context, branchID, id string) (staff.StaffResponse, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, branchID, id)
	}
	return staff.StaffResponse{}, nil
}

type fakeShiftService struct {
	getByIDFn func(ctx context.Context, id string) (shift.ShiftResponse, error)
}

func (f *fakeShiftService) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return shift.ShiftResponse{}, shift.ErrShiftNotFound
}

type fakeTemplateService struct {
	createFn                 func(ctx context.Context, actorID string, req template.CreateTemplateRequest) (template.TemplateResponse, error)
	listBonusTemplatesFn     func(ctx context.Context, branchID string) ([]template.TemplateResponse, error)
	listPenaltyConfigsFn     func(ctx context.Context, branchID string) ([]template.TemplateResponse, error)
	listAllowanceTemplatesFn func(ctx context.Context, branchID string) ([]template.TemplateResponse, error)
	getForBranchFn           func(ctx context.Context, branchID, id string) (template.TemplateResponse, error)
	updateFn                 func(ctx context.Context, id string, req template.UpdateTemplateRequest) (template.TemplateResponse, error)
	deleteFn                 func(ctx context.Context, id string) error
}

func (f *fakeTemplateService) Create(ctx context.Context, actorID string, req template.CreateTemplateRequest) (template.TemplateResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, actorID, req)
	}
	return template.TemplateResponse{}, nil
}

func (f *fakeTemplateService) ListBonusTemplates(ctx context.Context, branchID string) ([]template.TemplateResponse, error) {
	if f.listBonusTemplatesFn != nil {
		return f.listBonusTemplatesFn(ctx, branchID)
	}
	return nil, nil
}

func (f *fakeTemplateService) ListPenaltyConfigs(ctx context.Context, branchID string) ([]template.TemplateResponse, error) {
	if f.listPenaltyConfigsFn != nil {
		return f.listPenaltyConfigsFn(ctx, branchID)
	}
	return nil, nil
}

func (f *fakeTemplateService) ListAllowanceTemplates(ctx context.Context, branchID string) ([]template.TemplateResponse, error) {
	if f.listAllowanceTemplatesFn != nil {
		return f.listAllowanceTemplatesFn(ctx, branchID)
	}
	return nil, nil
}

func (f *fakeTemplateService) GetForBranch(ctx context.Context, branchID, id string) (template.TemplateResponse, error) {
	if f.getForBranchFn != nil {
		return f.getForBranchFn(ctx, branchID, id)
	}
	return template.TemplateResponse{}, nil
}

func (f *fakeTemplateService) Update(ctx context.Context, id string, req template.UpdateTemplateRequest) (template.TemplateResponse, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, req)
	}
	return template.TemplateResponse{}, nil
}

func (f *fakeTemplateService) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}
