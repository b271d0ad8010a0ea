package allowanceerrors

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
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrAmountNotPositive = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrAllowanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"allowance not found",
		http.StatusNotFound,
	)
	ErrTemplateAlreadyApplied = apperror.New(
		apperror.CodeConflict,
		"allowance template already applied for this user and period",
		http.StatusConflict,
	)
)
