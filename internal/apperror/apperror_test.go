package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	assert.ErrorIs(t, NotFound("User not found"), ErrNotFound)
	assert.ErrorIs(t, Validation("Email is required!"), ErrValidation)
	assert.ErrorIs(t, Conflict("User already exists"), ErrConflict)
	assert.ErrorIs(t, Unauthorized("Invalid Password"), ErrUnauthorized)
	assert.ErrorIs(t, Forbidden("User not verified"), ErrForbidden)
}

func TestMessageIsError(t *testing.T) {
	err := NotFound("Product not found in cart")
	assert.Equal(t, "Product not found in cart", err.Error())
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	err := fmt.Errorf("handling request: %w", Conflict("User already exists"))
	assert.ErrorIs(t, err, ErrConflict)

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "User already exists", appErr.Message)
}

func TestIsBusiness(t *testing.T) {
	assert.True(t, IsBusiness(NotFound("x")))
	assert.True(t, IsBusiness(fmt.Errorf("wrapped: %w", Validation("x"))))
	assert.False(t, IsBusiness(errors.New("driver exploded")))
	assert.False(t, IsBusiness(nil))
}
