package ledger

import (
	"fmt"
	"strings"
	"time"

	ledgererrors "github.com/trungnguyen160923/coffee-management-sub002/internal/ledger/errors"

	"github.com/xuri/excelize/v2"
)

type ExportOptions struct {
	UserID string
	Kind   string
}

var exportHeader = []string{
	"date", "staff_name", "user_id", "kind", "period",
	"amount", "status", "description", "created_by", "branch_id",
}

// Nama sheet xlsx dibatasi 31 karakter, jadi sheet memakai nama pendek
// dan nama branch+tanggal hanya dipakai untuk nama file.
const exportSheet = "adjustments"

// ExportName menamai file ekspor dengan branch dan tanggal.
func ExportName(branchID string, now time.Time) string {
	return fmt.Sprintf("adjustments_%s_%s", branchID, now.Format("2006-01-02"))
}

// BuildWorkbook menyerialisasi set transaksi terfilter (sebelum
// pagination) menjadi satu sheet xlsx, opsional dipersempit lagi ke
// satu staff atau satu kind. Set kosong ditolak, tidak ada file yang
// dihasilkan.
func BuildWorkbook(branchID string, txs []Transaction, opts ExportOptions, now time.Time) (*excelize.File, string, error) {
	rows := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if opts.UserID != "" && tx.UserID != opts.UserID {
			continue
		}
		if opts.Kind != "" && tx.Kind != opts.Kind {
			continue
		}
		rows = append(rows, tx)
	}
	if len(rows) == 0 {
		return nil, "", ledgererrors.ErrNothingToExport
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, "", err
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, "", err
	}
	for i, tx := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		row := []any{
			tx.CreatedAt.Format("2006-01-02"),
			tx.StaffName,
			tx.UserID,
			strings.ToUpper(tx.Kind),
			tx.Period,
			tx.Amount.String(),
			tx.Status,
			collapseNewlines(tx.Description),
			tx.CreatedBy,
			tx.BranchID,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, "", err
		}
	}

	return f, ExportName(branchID, now), nil
}

func collapseNewlines(v string) string {
	v = strings.ReplaceAll(v, "\r\n", " ")
	v = strings.ReplaceAll(v, "\n", " ")
	return strings.ReplaceAll(v, "\r", " ")
}
