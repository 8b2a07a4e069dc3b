package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	err := SetCustomError(constant.ErrUserExists)

	assert.Equal(t, "User already exists", err.Error())
	assert.Equal(t, "0006", err.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, err.ErrorHTTPCode())
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("ctx: %w", SetCustomError(constant.ErrForbidden))

	assert.True(t, Is(wrapped, constant.ErrForbidden))
	assert.False(t, Is(wrapped, constant.ErrNotFound))
	assert.False(t, Is(fmt.Errorf("plain"), constant.ErrForbidden))
}

func TestFrom(t *testing.T) {
	assert.Equal(t, constant.ErrInternal, From(fmt.Errorf("boom")).Type())
	assert.Equal(t, constant.ErrNotFound, From(SetCustomError(constant.ErrNotFound)).Type())
}
