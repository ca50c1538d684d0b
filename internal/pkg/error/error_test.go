package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom_KeepsAppError(t *testing.T) {
	original := DuplicateEmail("Email already exists")
	wrapped := fmt.Errorf("add employee: %w", original)

	got := From(wrapped)
	assert.Same(t, original, got)
	assert.Equal(t, http.StatusBadRequest, got.HttpCode())
}

func TestFrom_UnknownErrorBecomesInternal(t *testing.T) {
	got := From(errors.New("boom"))
	assert.Equal(t, INTERNAL_ERROR, got.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, got.HttpCode())
	assert.Equal(t, "boom", got.ErrorDesc())
}

func TestHasCode(t *testing.T) {
	assert.True(t, HasCode(InvalidDecision("maybe"), INVALID_DECISION))
	assert.False(t, HasCode(NotFound("x"), INVALID_DECISION))
	assert.False(t, HasCode(errors.New("plain"), NOT_FOUND))
}

func TestStatusClasses(t *testing.T) {
	cases := []struct {
		err  *Error
		http int
	}{
		{InvalidID("invalid employeeID"), http.StatusBadRequest},
		{InvalidInput("reason is required"), http.StatusBadRequest},
		{WrongPassword("Current password is incorrect"), http.StatusBadRequest},
		{InvalidCredentials("Invalid credentials"), http.StatusUnauthorized},
		{Forbidden("hr only"), http.StatusForbidden},
		{NotFound("User not found"), http.StatusNotFound},
		{RateLimitExceeded("slow down"), http.StatusTooManyRequests},
		{DatabaseError("db"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.http, tc.err.HttpCode(), tc.err.Error())
	}
}

func TestMapHttpStatusToError(t *testing.T) {
	assert.Equal(t, NOT_FOUND, MapHttpStatusToError(http.StatusNotFound, "").ErrorCode())
	assert.Equal(t, INTERNAL_ERROR, MapHttpStatusToError(http.StatusTeapot, "").ErrorCode())
}
