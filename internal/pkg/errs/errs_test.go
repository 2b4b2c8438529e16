//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"pousada-api/internal/pkg/errs"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("sentinel")

	t.Run("sentinel is in the stdlib chain", func(t *testing.T) {
		err := errs.Mark(errs.New("inner detail"), sentinel)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("cause is in the stdlib chain", func(t *testing.T) {
		cause := errors.New("cause")
		err := errs.Mark(cause, sentinel)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("message stays the cause's own", func(t *testing.T) {
		err := errs.Mark(errs.New("inner detail"), sentinel)
		assert.Equal(t, "inner detail", err.Error())
	})

	t.Run("survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("inner"), sentinel), "outer")
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("nil cause falls back to the sentinel", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		assert.Equal(t, sentinel, err)
	})
}
