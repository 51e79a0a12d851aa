package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// IsNotFound - signals that the error is a no-rows result.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
