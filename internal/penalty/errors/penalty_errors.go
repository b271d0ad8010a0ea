package penaltyerrors

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
	ErrInvalidShiftID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid shift id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidIncidentDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid incident date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAmountNotPositive = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrPenaltyNotFound = apperror.New(
		apperror.CodeNotFound,
		"penalty not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"only pending penalties can be approved or rejected",
		http.StatusBadRequest,
	)
	ErrTemplateAlreadyApplied = apperror.New(
		apperror.CodeConflict,
		"penalty template already applied for this user and period",
		http.StatusConflict,
	)
)
