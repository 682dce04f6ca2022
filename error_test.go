package placelist_test

import (
	"errors"
	"testing"

	"github.com/dtomczyk/placelist"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := placelist.Errorf(placelist.ENOTFOUND, "location %q not found", "test")

	assert.Equal(t, placelist.ENOTFOUND, placelist.ErrorCode(err))
	assert.Equal(t, "location \"test\" not found", placelist.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, placelist.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, placelist.EINTERNAL, placelist.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, placelist.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", placelist.ErrorMessage(errors.New("boom")))
}
