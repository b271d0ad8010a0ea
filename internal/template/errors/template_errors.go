package templateerrors

import (
	"net/http"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/shared/apperror"
)

var (
	ErrTemplateNotFound = apperror.New(
		apperror.CodeNotFound,
		"template not found",
		http.StatusNotFound,
	)
	ErrTemplateInactive = apperror.New(
		apperror.CodeInvalidState,
		"template is not active",
		http.StatusBadRequest,
	)
	ErrTemplateWrongBranch = apperror.New(
		apperror.CodeForbidden,
		"template belongs to another branch",
		http.StatusForbidden,
	)
	ErrInvalidTemplateID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid template id",
		http.StatusBadRequest,
	)
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
	ErrAmountNotPositive = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)
)
