package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/upparakash/AspireBrandApi/apperror"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Classify turns a gorm/pgx error into an apperror kind. what names the
// entity for the client message, e.g. "Product".
func Classify(err error, what string) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(what + " not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		field := ConstraintField(pgErr.TableName, pgErr.ConstraintName)
		if field == "" {
			return apperror.Duplicate("", what+" already exists")
		}
		return apperror.Duplicate(field, fmt.Sprintf("%s with this %s already exists", what, field))
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Duplicate("", what+" already exists")
	}

	return apperror.Unavailable("", err)
}

// ConstraintField recovers the column from an index named uq_<table>_<column>.
func ConstraintField(table, constraint string) string {
	if table != "" {
		if field, ok := strings.CutPrefix(constraint, "uq_"+table+"_"); ok {
			return field
		}
	}
	return ""
}
