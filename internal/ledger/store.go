package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/allowance"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/bonus"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/penalty"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/shift"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/staff"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Snapshot adalah potret sesi satu branch: tiga koleksi mentah plus
// cache nama staff dan label shift yang sudah di-resolve. Snapshot
// bersifat immutable bagi pembaca; perubahan state selalu lewat
// Reload atau replace satu record hasil balasan server.
type Snapshot struct {
	BranchID    string
	Bonuses     []bonus.BonusResponse
	Penalties   []penalty.PenaltyResponse
	Allowances  []allowance.AllowanceResponse
	StaffNames  map[string]string
	ShiftLabels map[string]string
	LoadedAt    time.Time
}

// Unified membangun daftar Transaction dari snapshot.
func (s *Snapshot) Unified() []Transaction {
	return Unify(s.Bonuses, s.Penalties, s.Allowances, s.StaffNames, s.ShiftLabels)
}

// Store adalah AdjustmentRecordStore: cache sesi per branch atas tiga
// koleksi adjustment. Store hanyalah cache — konsistensi sejati ada di
// service per kind; setiap mutasi diikuti Reload penuh, tidak pernah
// ditambal spekulatif.
type Store struct {
	bonuses    bonus.Service
	penalties  penalty.Service
	allowances allowance.Service
	staff      staff.Service
	shifts     shift.Service

	mu       sync.RWMutex
	sessions map[string]*Snapshot
	// shiftCache bertahan lintas reload; label shift tidak berubah.
	shiftCache map[string]string

	group  singleflight.Group
	logger *zap.Logger
}

func NewStore(
	bonuses bonus.Service,
	penalties penalty.Service,
	allowances allowance.Service,
	staffSvc staff.Service,
	shifts shift.Service,
	logger ...*zap.Logger,
) *Store {
	l := zap.L().Named("ledger.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.store")
	}
	return &Store{
		bonuses:    bonuses,
		penalties:  penalties,
		allowances: allowances,
		staff:      staffSvc,
		shifts:     shifts,
		sessions:   make(map[string]*Snapshot),
		shiftCache: make(map[string]string),
		logger:     l,
	}
}

// Load mengembalikan snapshot sesi branch, memuatnya bila belum ada.
func (s *Store) Load(ctx context.Context, branchID string) (*Snapshot, error) {
	s.mu.RLock()
	snap, ok := s.sessions[branchID]
	s.mu.RUnlock()
	if ok {
		return snap, nil
	}
	return s.Reload(ctx, branchID)
}

// Reload memuat ulang seluruh sesi branch dari service per kind.
// Permintaan bersamaan untuk branch yang sama digabung via singleflight
// sehingga hanya satu yang benar-benar memanggil service.
func (s *Store) Reload(ctx context.Context, branchID string) (*Snapshot, error) {
	v, err, _ := s.group.Do(branchID, func() (any, error) {
		return s.load(ctx, branchID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

func (s *Store) load(ctx context.Context, branchID string) (*Snapshot, error) {
	started := time.Now()

	bonuses, err := s.bonuses.GetAll(ctx, branchID)
	if err != nil {
		s.logger.Error("load bonuses failed", zap.String("branch_id", branchID), zap.Error(err))
		return nil, err
	}
	penalties, err := s.penalties.GetAll(ctx, branchID)
	if err != nil {
		s.logger.Error("load penalties failed", zap.String("branch_id", branchID), zap.Error(err))
		return nil, err
	}
	allowances, err := s.allowances.GetAll(ctx, branchID)
	if err != nil {
		s.logger.Error("load allowances failed", zap.String("branch_id", branchID), zap.Error(err))
		return nil, err
	}

	staffList, err := s.staff.ListByBranch(ctx, branchID)
	if err != nil {
		s.logger.Error("load staff directory failed", zap.String("branch_id", branchID), zap.Error(err))
		return nil, err
	}
	names := make(map[string]string, len(staffList))
	for _, st := range staffList {
		names[st.ID] = st.FullName
	}

	snap := &Snapshot{
		BranchID:    branchID,
		Bonuses:     bonuses,
		Penalties:   penalties,
		Allowances:  allowances,
		StaffNames:  names,
		ShiftLabels: s.resolveShiftLabels(ctx, bonuses, penalties),
		LoadedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[branchID] = snap
	s.mu.Unlock()

	s.logger.Debug("session reloaded",
		zap.String("branch_id", branchID),
		zap.Int("bonuses", len(bonuses)),
		zap.Int("penalties", len(penalties)),
		zap.Int("allowances", len(allowances)),
		zap.Duration("took", time.Since(started)),
	)
	return snap, nil
}

// resolveShiftLabels mencari label shift untuk setiap shift_id yang
// direferensikan. Resolusi bersifat oportunistik: shift yang gagal
// ditemukan hanya dilewati, bukan error.
func (s *Store) resolveShiftLabels(
	ctx context.Context,
	bonuses []bonus.BonusResponse,
	penalties []penalty.PenaltyResponse,
) map[string]string {
	ids := make(map[string]struct{})
	for _, b := range bonuses {
		if b.ShiftID != nil && *b.ShiftID != "" {
			ids[*b.ShiftID] = struct{}{}
		}
	}
	for _, p := range penalties {
		if p.ShiftID != nil && *p.ShiftID != "" {
			ids[*p.ShiftID] = struct{}{}
		}
	}

	labels := make(map[string]string, len(ids))
	for id := range ids {
		s.mu.RLock()
		cached, ok := s.shiftCache[id]
		s.mu.RUnlock()
		if ok {
			labels[id] = cached
			continue
		}

		sh, err := s.shifts.GetByID(ctx, id)
		if err != nil {
			s.logger.Warn("shift lookup failed", zap.String("shift_id", id), zap.Error(err))
			continue
		}
		labels[id] = sh.Label()
		s.mu.Lock()
		s.shiftCache[id] = sh.Label()
		s.mu.Unlock()
	}
	return labels
}

// Clear membuang sesi branch, dipakai saat operator berganti branch.
func (s *Store) Clear(branchID string) {
	s.mu.Lock()
	delete(s.sessions, branchID)
	s.mu.Unlock()
}

// ReplaceBonus menukar satu bonus dalam snapshot dengan record balasan
// server. Record lain tidak disentuh. Dipakai oleh jalur approve/reject
// satu item agar tidak perlu reload penuh.
func (s *Store) ReplaceBonus(branchID string, updated bonus.BonusResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.sessions[branchID]
	if !ok {
		return
	}
	next := *snap
	next.Bonuses = make([]bonus.BonusResponse, len(snap.Bonuses))
	copy(next.Bonuses, snap.Bonuses)
	for i := range next.Bonuses {
		if next.Bonuses[i].ID == updated.ID {
			next.Bonuses[i] = updated
			break
		}
	}
	s.sessions[branchID] = &next
}

// ReplacePenalty adalah padanan ReplaceBonus untuk penalty.
func (s *Store) ReplacePenalty(branchID string, updated penalty.PenaltyResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.sessions[branchID]
	if !ok {
		return
	}
	next := *snap
	next.Penalties = make([]penalty.PenaltyResponse, len(snap.Penalties))
	copy(next.Penalties, snap.Penalties)
	for i := range next.Penalties {
		if next.Penalties[i].ID == updated.ID {
			next.Penalties[i] = updated
			break
		}
	}
	s.sessions[branchID] = &next
}
