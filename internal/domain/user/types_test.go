//go:build unit

package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pousada-api/internal/domain/user"
)

func TestNewRole(t *testing.T) {
	t.Run("valid roles", func(t *testing.T) {
		for _, s := range []string{"guest", "admin"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := user.NewRole("superuser")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, err := user.NewRole("Admin")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestNewStatus(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, s := range []string{"active", "deactive"} {
			status, err := user.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := user.NewStatus("disabled")
		assert.ErrorIs(t, err, user.ErrInvalidStatus)
	})
}
