package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/allowance"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/bonus"
	ledgererrors "github.com/trungnguyen160923/coffee-management-sub002/internal/ledger/errors"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/penalty"

	"github.com/shopspring/decimal"
)

const (
	KindBonus     = "bonus"
	KindPenalty   = "penalty"
	KindAllowance = "allowance"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Transaction adalah view gabungan lintas kind untuk listing, filter,
// seleksi bulk dan KPI. Bersifat ephemeral: dibangun ulang dari snapshot
// store setiap kali koleksi dasar berubah, tidak pernah dipersist.
type Transaction struct {
	ID          string
	Kind        string
	RecordID    string
	BranchID    string
	UserID      string
	StaffName   string
	TypeCode    string
	Amount      decimal.Decimal
	Period      string
	Description string
	Status      string
	ShiftLabel  string
	CreatedBy   string
	CreatedAt   time.Time

	// Back-reference ke record asal; tepat satu yang terisi sesuai Kind.
	Bonus     *bonus.BonusResponse
	Penalty   *penalty.PenaltyResponse
	Allowance *allowance.AllowanceResponse
}

func CompositeID(kind, recordID string) string {
	return fmt.Sprintf("%s-%s", kind, recordID)
}

// ParseCompositeID memecah "{kind}-{id}" menjadi kind dan id record asal.
func ParseCompositeID(id string) (string, string, error) {
	kind, recordID, ok := strings.Cut(id, "-")
	if !ok || recordID == "" {
		return "", "", ledgererrors.ErrInvalidTransactionID
	}
	switch kind {
	case KindBonus, KindPenalty, KindAllowance:
		return kind, recordID, nil
	default:
		return "", "", ledgererrors.ErrUnknownKind
	}
}

func parseCreatedAt(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Unify menormalkan tiga koleksi mentah menjadi satu daftar Transaction.
// Fungsi murni dan idempoten: input yang sama selalu menghasilkan output
// identik, urutan mengikuti urutan input (bonus, penalty, allowance).
func Unify(
	bonuses []bonus.BonusResponse,
	penalties []penalty.PenaltyResponse,
	allowances []allowance.AllowanceResponse,
	staffNames map[string]string,
	shiftLabels map[string]string,
) []Transaction {
	txs := make([]Transaction, 0, len(bonuses)+len(penalties)+len(allowances))

	for i := range bonuses {
		b := bonuses[i]
		tx := Transaction{
			ID:          CompositeID(KindBonus, b.ID),
			Kind:        KindBonus,
			RecordID:    b.ID,
			BranchID:    b.BranchID,
			UserID:      b.UserID,
			StaffName:   staffNames[b.UserID],
			TypeCode:    b.BonusType,
			Amount:      b.Amount,
			Period:      b.Period,
			Description: b.Description,
			Status:      b.Status,
			CreatedBy:   b.CreatedBy,
			CreatedAt:   parseCreatedAt(b.CreatedAt),
			Bonus:       &b,
		}
		if b.ShiftID != nil {
			tx.ShiftLabel = shiftLabels[*b.ShiftID]
		}
		txs = append(txs, tx)
	}

	for i := range penalties {
		p := penalties[i]
		tx := Transaction{
			ID:          CompositeID(KindPenalty, p.ID),
			Kind:        KindPenalty,
			RecordID:    p.ID,
			BranchID:    p.BranchID,
			UserID:      p.UserID,
			StaffName:   staffNames[p.UserID],
			TypeCode:    p.PenaltyType,
			Amount:      p.Amount,
			Period:      p.Period,
			Description: p.Description,
			Status:      p.Status,
			CreatedBy:   p.CreatedBy,
			CreatedAt:   parseCreatedAt(p.CreatedAt),
			Penalty:     &p,
		}
		if p.ShiftID != nil {
			tx.ShiftLabel = shiftLabels[*p.ShiftID]
		}
		txs = append(txs, tx)
	}

	for i := range allowances {
		a := allowances[i]
		txs = append(txs, Transaction{
			ID:          CompositeID(KindAllowance, a.ID),
			Kind:        KindAllowance,
			RecordID:    a.ID,
			BranchID:    a.BranchID,
			UserID:      a.UserID,
			StaffName:   staffNames[a.UserID],
			TypeCode:    a.AllowanceType,
			Amount:      a.Amount,
			Period:      a.Period,
			Description: a.Description,
			Status:      a.Status,
			CreatedBy:   a.CreatedBy,
			CreatedAt:   parseCreatedAt(a.CreatedAt),
			Allowance:   &a,
		})
	}

	return txs
}
