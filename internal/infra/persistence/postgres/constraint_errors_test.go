package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		check      bool
	}{
		{name: "nil", err: nil},
		{name: "pg unique", err: &pgconn.PgError{Code: sqlStateUniqueViolation}, unique: true},
		{name: "wrapped pg foreign key", err: errors.Wrap(&pgconn.PgError{Code: sqlStateForeignKeyViolation}, "insert"), foreignKey: true},
		{name: "pg check", err: &pgconn.PgError{Code: sqlStateCheckViolation}, check: true},
		{name: "other pg code", err: &pgconn.PgError{Code: "40001", Message: "SQLSTATE 23505 in message only"}},
		{name: "gorm translated", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "text only", err: errors.New(`violates check constraint "chk_stock" (SQLSTATE 23514)`), check: true},
		{name: "unrelated", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
