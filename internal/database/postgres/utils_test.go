package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: PgErrorCodeUniqueViolation, ConstraintName: ConstraintRewardsJackpotID}
	other := &pgconn.PgError{Code: "23503", ConstraintName: "contributions_jackpot_id_fkey"}

	assert.Equal(t, ConstraintRewardsJackpotID, uniqueViolation(unique))
	assert.Equal(t, ConstraintRewardsJackpotID, uniqueViolation(fmt.Errorf("wrapped: %w", unique)))
	assert.Empty(t, uniqueViolation(other))
	assert.Empty(t, uniqueViolation(errors.New("plain")))
	assert.Empty(t, uniqueViolation(nil))
}
