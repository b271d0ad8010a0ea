package allowance

import (
	"errors"
	"strings"

	allowanceerrors "github.com/trungnguyen160923/coffee-management-sub002/internal/allowance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_allowances_template_period" {
			return allowanceerrors.ErrTemplateAlreadyApplied
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_allowances_template_period") {
		return allowanceerrors.ErrTemplateAlreadyApplied
	}

	return err
}
