package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// KpiBucket adalah agregat satu periode.
type KpiBucket struct {
	Period         string          `json:"period"`
	TotalBonus     decimal.Decimal `json:"total_bonus"`
	TotalPenalty   decimal.Decimal `json:"total_penalty"`
	TotalAllowance decimal.Decimal `json:"total_allowance"`
	Net            decimal.Decimal `json:"net"`
	Count          int             `json:"count"`
	AvgNet         decimal.Decimal `json:"avg_net"`
}

type KpiRatio struct {
	Bonus     int `json:"bonus"`
	Penalty   int `json:"penalty"`
	Allowance int `json:"allowance"`
}

type KpiReport struct {
	Current            KpiBucket       `json:"current"`
	Prior              KpiBucket       `json:"prior"`
	BonusChangePct     decimal.Decimal `json:"bonus_change_pct"`
	PenaltyChangePct   decimal.Decimal `json:"penalty_change_pct"`
	AllowanceChangePct decimal.Decimal `json:"allowance_change_pct"`
	NetChangePct       decimal.Decimal `json:"net_change_pct"`
	Ratio              KpiRatio        `json:"ratio"`
}

// PriorPeriod mengembalikan periode satu bulan sebelum now.
func PriorPeriod(now time.Time) string {
	y, m, _ := now.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0).Format("2006-01")
}

// ComputeKPI adalah komputasi turunan murni atas daftar transaksi:
// bucket bulan berjalan vs bulan lalu berdasarkan kecocokan string
// period, hanya bonus/penalty APPROVED dan allowance ACTIVE yang
// dihitung dalam total.
func ComputeKPI(txs []Transaction, now time.Time) KpiReport {
	current := bucketFor(txs, CurrentPeriod(now))
	prior := bucketFor(txs, PriorPeriod(now))

	return KpiReport{
		Current:            current,
		Prior:              prior,
		BonusChangePct:     pctChange(current.TotalBonus, prior.TotalBonus),
		PenaltyChangePct:   pctChange(current.TotalPenalty, prior.TotalPenalty),
		AllowanceChangePct: pctChange(current.TotalAllowance, prior.TotalAllowance),
		NetChangePct:       pctChange(current.Net, prior.Net),
		Ratio:              ratioOf(current),
	}
}

func bucketFor(txs []Transaction, period string) KpiBucket {
	b := KpiBucket{Period: period}
	for _, tx := range txs {
		if tx.Period != period {
			continue
		}
		b.Count++

		switch tx.Kind {
		case KindBonus:
			if tx.Status == StatusApproved {
				b.TotalBonus = b.TotalBonus.Add(tx.Amount)
			}
		case KindPenalty:
			if tx.Status == StatusApproved {
				b.TotalPenalty = b.TotalPenalty.Add(tx.Amount)
			}
		case KindAllowance:
			if tx.Status == StatusActive {
				b.TotalAllowance = b.TotalAllowance.Add(tx.Amount)
			}
		}
	}

	b.Net = b.TotalBonus.Add(b.TotalAllowance).Sub(b.TotalPenalty)

	divisor := b.Count
	if divisor < 1 {
		divisor = 1
	}
	b.AvgNet = b.Net.Div(decimal.NewFromInt(int64(divisor))).Round(2)
	return b
}

// pctChange menghindari pembagian nol: prior 0 menghasilkan 100 bila
// ada aktivitas baru, 0 bila keduanya kosong.
func pctChange(current, prior decimal.Decimal) decimal.Decimal {
	if prior.IsZero() {
		if current.IsPositive() {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero
	}
	return current.Sub(prior).Div(prior).Mul(decimal.NewFromInt(100)).Round(2)
}

// ratioOf menghitung porsi tiap komponen terhadap total volume bucket,
// dibulatkan ke persentase bulat. Total nol atau negatif menghasilkan
// ketiganya 0.
func ratioOf(b KpiBucket) KpiRatio {
	total := b.TotalBonus.Add(b.TotalAllowance).Add(b.TotalPenalty)
	if !total.IsPositive() {
		return KpiRatio{}
	}

	hundred := decimal.NewFromInt(100)
	return KpiRatio{
		Bonus:     int(b.TotalBonus.Mul(hundred).Div(total).Round(0).IntPart()),
		Penalty:   int(b.TotalPenalty.Mul(hundred).Div(total).Round(0).IntPart()),
		Allowance: int(b.TotalAllowance.Mul(hundred).Div(total).Round(0).IntPart()),
	}
}
