package common

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateDBError(t *testing.T) {
	assert.NoError(t, TranslateDBError(nil, "warehouse"))

	var notFoundErr *NotFoundError
	err := TranslateDBError(pgx.ErrNoRows, "warehouse")
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "warehouse not found", err.Error())

	var dupErr *DuplicateError
	err = TranslateDBError(&pgconn.PgError{Code: "23505"}, "warehouse")
	assert.ErrorAs(t, err, &dupErr)

	// Other constraint violations pass through untranslated.
	fkErr := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, error(fkErr), TranslateDBError(fkErr, "warehouse"))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, TranslateDBError(plain, "warehouse"))
}
