package testo_test

import (
	"errors"
	"testing"

	"github.com/aferrari/testo"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := testo.Errorf(testo.ENOTFOUND, "analysis %q not found", "test")

	assert.Equal(t, testo.ENOTFOUND, testo.ErrorCode(err))
	assert.Equal(t, "analysis \"test\" not found", testo.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, testo.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, testo.EINTERNAL, testo.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, testo.ErrorMessage(nil))
}
