package consumer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueOnboardingViolation(t *testing.T) {
	pgDup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_onboarding_staff"}
	assert.True(t, isUniqueOnboardingViolation(pgDup))
	assert.True(t, isUniqueOnboardingViolation(fmt.Errorf("create onboarding: %w", pgDup)))

	wrapped := errors.New(`ERROR: duplicate key value violates unique constraint "uq_onboarding_staff" (SQLSTATE 23505)`)
	assert.True(t, isUniqueOnboardingViolation(wrapped))

	otherConstraint := &pgconn.PgError{Code: "23505", ConstraintName: "uq_staff_email"}
	assert.False(t, isUniqueOnboardingViolation(otherConstraint))
	assert.False(t, isUniqueOnboardingViolation(errors.New("connection refused")))
}
