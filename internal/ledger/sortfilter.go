package ledger

import (
	"sort"
	"strings"
	"time"

	ledgererrors "github.com/trungnguyen160923/coffee-management-sub002/internal/ledger/errors"
)

// Filter adalah kombinasi AND dari semua kriteria yang terisi.
type Filter struct {
	Kind     string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string
}

type Page struct {
	Number int
	Size   int
}

var allowedPageSizes = map[int]struct{}{10: {}, 20: {}, 50: {}, 100: {}}

func (p Page) Validate() error {
	if p.Number < 1 {
		return ledgererrors.ErrInvalidPage
	}
	if _, ok := allowedPageSizes[p.Size]; !ok {
		return ledgererrors.ErrInvalidPageSize
	}
	return nil
}

// SortTransactions menerapkan urutan prioritas tetap: PENDING dulu,
// lalu tanggal menurun. Stable sort menjaga urutan unifikasi sebagai
// tie-break. Mengembalikan slice baru, input tidak diubah.
func SortTransactions(txs []Transaction) []Transaction {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)

	sort.SliceStable(sorted, func(i, j int) bool {
		iPending := sorted[i].Status == StatusPending
		jPending := sorted[j].Status == StatusPending
		if iPending != jPending {
			return iPending
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// ApplyFilter menyaring daftar transaksi. dateTo diperlakukan inklusif
// sampai akhir hari.
func ApplyFilter(txs []Transaction, f Filter) []Transaction {
	var dateTo time.Time
	if f.DateTo != nil {
		y, m, d := f.DateTo.Date()
		dateTo = time.Date(y, m, d, 23, 59, 59, 999_000_000, f.DateTo.Location())
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Kind != "" && f.Kind != "all" && tx.Kind != f.Kind {
			continue
		}
		if f.Status != "" && f.Status != "all" && tx.Status != f.Status {
			continue
		}
		if f.DateFrom != nil && tx.CreatedAt.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && tx.CreatedAt.After(dateTo) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(tx.StaffName), search) &&
			!strings.Contains(strings.ToLower(tx.Description), search) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// Paginate memotong hasil terfilter menjadi satu halaman (1-indexed).
// Halaman di luar jangkauan menghasilkan slice kosong, bukan error.
func Paginate(txs []Transaction, p Page) []Transaction {
	start := (p.Number - 1) * p.Size
	if start >= len(txs) {
		return []Transaction{}
	}
	end := start + p.Size
	if end > len(txs) {
		end = len(txs)
	}
	return txs[start:end]
}
