package repository

import (
	"errors"

	"engage-api/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// classifyPgErr maps constraint violations to repository error kinds so
// usecases can branch without parsing driver errors.
func classifyPgErr(err error) []infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return []infra.RepositoryErrorKind{infra.KindDuplicateKey}
	case pgErrCodeForeignKeyViolation:
		return []infra.RepositoryErrorKind{infra.KindForeignKeyViolated}
	default:
		return nil
	}
}

func wrapWriteErr(msg string, err error) error {
	return infra.WrapRepoErr(msg, err, classifyPgErr(err)...)
}
