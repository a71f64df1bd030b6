package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeConflict, CodeOf(ErrDuplicateEmail))
	assert.Equal(t, CodeNotAuthorized, CodeOf(ErrNotRecipient))
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("plain")))
	assert.Equal(t, CodeUnknown, CodeOf(nil))
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", ErrDuplicateEmail)
	assert.ErrorIs(t, wrapped, ErrDuplicateEmail)
	assert.Equal(t, CodeConflict, CodeOf(wrapped))
}

func TestUnavailableCarriesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable("database error", cause)

	assert.Equal(t, CodeUnavailable, CodeOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
