package stockwire_test

import (
	"errors"
	"testing"

	"github.com/stockwire/stockwire"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := stockwire.Errorf(stockwire.EFORBIDDEN, "HTTP %d for %q", 403, "https://example.com/a")

	assert.Equal(t, stockwire.EFORBIDDEN, stockwire.ErrorCode(err))
	assert.Equal(t, "HTTP 403 for \"https://example.com/a\"", stockwire.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, stockwire.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, stockwire.EINTERNAL, stockwire.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, stockwire.ErrorMessage(nil))
}
