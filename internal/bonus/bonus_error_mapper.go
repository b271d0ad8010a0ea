package bonus

import (
	"errors"
	"strings"

	bonuserrors "github.com/trungnguyen160923/coffee-management-sub002/internal/bonus/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_bonuses_template_period" {
			return bonuserrors.ErrTemplateAlreadyApplied
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_bonuses_template_period") {
		return bonuserrors.ErrTemplateAlreadyApplied
	}

	return err
}
