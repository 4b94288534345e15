package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/student-marketplace/constant"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	err := SetCustomError(constant.ErrMessageInProgress)

	assert.Equal(t, "an identical message is already being sent", err.Error())
	assert.Equal(t, "0009", err.ErrorCode())
	assert.Equal(t, http.StatusConflict, err.ErrorHTTPCode())
}

func TestCustomError_Is(t *testing.T) {
	wrapped := fmt.Errorf("contact seller: %w", SetCustomError(constant.ErrSelfContact))

	assert.True(t, stderrors.Is(wrapped, SetCustomError(constant.ErrSelfContact)))
	assert.False(t, stderrors.Is(wrapped, SetCustomError(constant.ErrNotFound)))
}
