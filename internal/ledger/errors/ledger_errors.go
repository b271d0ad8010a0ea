package ledgererrors

import (
	"net/http"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/shared/apperror"
)

var (
	ErrInvalidBranchID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid branch id",
		http.StatusBadRequest,
	)
	ErrInvalidTransactionID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid transaction id, expected {kind}-{id}",
		http.StatusBadRequest,
	)
	ErrUnknownKind = apperror.New(
		apperror.CodeInvalidInput,
		"unknown adjustment kind",
		http.StatusBadRequest,
	)
	ErrUnsupportedOperation = apperror.New(
		apperror.CodeUnsupportedOperation,
		"allowances do not support approve or reject",
		http.StatusUnprocessableEntity,
	)
	ErrTransactionNotFound = apperror.New(
		apperror.CodeNotFound,
		"transaction not found in the current branch session",
		http.StatusNotFound,
	)
	ErrNothingEligible = apperror.New(
		apperror.CodeInvalidInput,
		"no selected transaction is eligible for this action",
		http.StatusBadRequest,
	)
	ErrEmptySelection = apperror.New(
		apperror.CodeInvalidInput,
		"selection is empty",
		http.StatusBadRequest,
	)
	ErrInvalidBulkAction = apperror.New(
		apperror.CodeInvalidInput,
		"bulk action must be approve, reject or delete",
		http.StatusBadRequest,
	)
	ErrInvalidPageSize = apperror.New(
		apperror.CodeInvalidInput,
		"page size must be one of 10, 20, 50, 100",
		http.StatusBadRequest,
	)
	ErrInvalidPage = apperror.New(
		apperror.CodeInvalidInput,
		"page must be 1 or greater",
		http.StatusBadRequest,
	)
	ErrInvalidDateFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date filter, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNothingToExport = apperror.New(
		apperror.CodeInvalidInput,
		"no transactions match the export criteria",
		http.StatusBadRequest,
	)
)
