package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"backend/pkg/apperr"
)

func TestConstructorsCarryStatusAndMessage(t *testing.T) {
	cases := []struct {
		err    *apperr.Error
		status int
	}{
		{apperr.BadRequest("bad field %s", "name"), http.StatusBadRequest},
		{apperr.Unauthorized("no token"), http.StatusUnauthorized},
		{apperr.NotFound("Missing object with %d", 42), http.StatusNotFound},
		{apperr.Conflict("duplicate"), http.StatusConflict},
		{apperr.ExpectationFailed("stale token"), http.StatusExpectationFailed},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status)
		assert.Equal(t, tc.status, apperr.StatusOf(tc.err))
		assert.NotEmpty(t, tc.err.Error())
	}
	assert.Equal(t, "Missing object with 42", apperr.NotFound("Missing object with %d", 42).Error())
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := apperr.Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Internal Server Error", err.Error())
	assert.True(t, errors.Is(err, cause), "cause must stay reachable for logging")
}

func TestAsUnwrapsThroughChains(t *testing.T) {
	inner := apperr.NotFound("gone")
	wrapped := fmt.Errorf("while loading: %w", inner)

	e, ok := apperr.As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, e.Status)

	_, ok = apperr.As(errors.New("plain"))
	assert.False(t, ok)
}

func TestStatusOfDefaultsTo500(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, apperr.StatusOf(errors.New("boom")))
}
